package record

import (
	"fmt"

	"github.com/meguriri/miniob-2025/errors"
	"github.com/meguriri/miniob-2025/storage/page"
)

const ErrOutOfBounds = errors.Error("field range is out of record bounds")

// Record is one fixed-layout row plus the slot it lives in.
// The data buffer is owned by the Record. Two Records never share a
// buffer: every way of building one from another copies the bytes.
type Record struct {
	rid  page.RID
	data []byte
}

// NewRecord copies data into a buffer owned by the new Record.
func NewRecord(rid page.RID, data []byte) *Record {
	r := &Record{rid: rid}
	r.CopyData(data)
	return r
}

func (r *Record) RID() page.RID {
	return r.rid
}

func (r *Record) SetRID(rid page.RID) {
	r.rid = rid
}

// Data returns the record buffer. writes through the slice change this
// record only.
func (r *Record) Data() []byte {
	return r.data
}

func (r *Record) Len() int {
	return len(r.data)
}

// CopyData replaces the buffer with a private copy of data.
func (r *Record) CopyData(data []byte) {
	r.data = make([]byte, len(data))
	copy(r.data, data)
}

// DeepCopy returns an independent record with the same rid and content.
func (r *Record) DeepCopy() *Record {
	return NewRecord(r.rid, r.data)
}

// SetField overwrites [offset, offset+len(src)) and zero fills the rest
// of [offset, offset+length). src longer than length is rejected so that
// nothing is written outside the field.
func (r *Record) SetField(offset uint32, length uint32, src []byte) error {
	end := uint64(offset) + uint64(length)
	if end > uint64(len(r.data)) || uint64(len(src)) > uint64(length) {
		return fmt.Errorf("offset %d len %d src %d record %d: %w", offset, length, len(src), len(r.data), ErrOutOfBounds)
	}
	field := r.data[offset:end]
	n := copy(field, src)
	for i := n; i < len(field); i++ {
		field[i] = 0
	}
	return nil
}

// Field returns a copy of the bytes of [offset, offset+length).
func (r *Record) Field(offset uint32, length uint32) ([]byte, error) {
	end := uint64(offset) + uint64(length)
	if end > uint64(len(r.data)) {
		return nil, fmt.Errorf("offset %d len %d record %d: %w", offset, length, len(r.data), ErrOutOfBounds)
	}
	ret := make([]byte, length)
	copy(ret, r.data[offset:end])
	return ret, nil
}
