package catalog

import (
	"fmt"

	"github.com/meguriri/miniob-2025/types"
)

// FieldMeta describes where a column lives inside a record.
// Char fields are fixed width too: content shorter than Len is zero padded.
type FieldMeta struct {
	name     string
	attrType types.TypeID
	offset   uint32
	len      uint32
}

func NewFieldMeta(name string, attrType types.TypeID, offset uint32, len uint32) *FieldMeta {
	return &FieldMeta{name, attrType, offset, len}
}

func (f *FieldMeta) Name() string {
	return f.name
}

func (f *FieldMeta) Type() types.TypeID {
	return f.attrType
}

func (f *FieldMeta) Offset() uint32 {
	return f.offset
}

func (f *FieldMeta) Len() uint32 {
	return f.len
}

func (f *FieldMeta) String() string {
	return fmt.Sprintf("%s(%s offset=%d len=%d)", f.name, f.attrType, f.offset, f.len)
}
