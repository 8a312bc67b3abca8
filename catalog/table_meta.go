package catalog

import (
	"fmt"
	"strings"

	"github.com/meguriri/miniob-2025/types"
)

// AttrInfo is a column definition given at table creation.
// Length is required for Char and ignored for the other types.
type AttrInfo struct {
	Name   string
	Type   types.TypeID
	Length uint32
}

// TableMeta is the record layout of a table. it does not change after creation.
type TableMeta struct {
	tableId    uint32
	name       string
	fields     []*FieldMeta
	recordSize uint32
}

// NewTableMeta lays the fields out in declaration order without gaps.
// note: field names are stored in lowercase
func NewTableMeta(tableId uint32, name string, attrs []AttrInfo) (*TableMeta, error) {
	if len(attrs) == 0 {
		return nil, fmt.Errorf("table %s has no fields: %w", name, ErrSchemaFieldInvalid)
	}

	fields := make([]*FieldMeta, 0, len(attrs))
	seen := make(map[string]bool, len(attrs))
	offset := uint32(0)
	for _, attr := range attrs {
		fieldName := strings.ToLower(attr.Name)
		if fieldName == "" {
			return nil, fmt.Errorf("table %s: empty field name: %w", name, ErrSchemaFieldInvalid)
		}
		if seen[fieldName] {
			return nil, fmt.Errorf("table %s field %s: %w", name, fieldName, ErrSchemaFieldDuplicate)
		}
		seen[fieldName] = true

		var length uint32
		switch attr.Type {
		case types.Integer, types.Float, types.Boolean, types.Date:
			length = attr.Type.Size()
		case types.Char:
			length = attr.Length
		default:
			return nil, fmt.Errorf("table %s field %s type %s: %w", name, fieldName, attr.Type, ErrSchemaFieldInvalid)
		}
		if length == 0 {
			return nil, fmt.Errorf("table %s field %s has zero length: %w", name, fieldName, ErrSchemaFieldInvalid)
		}

		fields = append(fields, NewFieldMeta(fieldName, attr.Type, offset, length))
		offset += length
	}

	return &TableMeta{tableId, strings.ToLower(name), fields, offset}, nil
}

func (t *TableMeta) TableID() uint32 {
	return t.tableId
}

func (t *TableMeta) Name() string {
	return t.name
}

// Field returns the field named name or nil
func (t *TableMeta) Field(name string) *FieldMeta {
	idx := t.FieldIndex(name)
	if idx < 0 {
		return nil
	}
	return t.fields[idx]
}

// FieldIndex returns -1 when no field is named name
func (t *TableMeta) FieldIndex(name string) int {
	fieldName := strings.ToLower(name)
	for i, f := range t.fields {
		if f.name == fieldName {
			return i
		}
	}
	return -1
}

func (t *TableMeta) FieldAt(idx int) *FieldMeta {
	if idx < 0 || idx >= len(t.fields) {
		return nil
	}
	return t.fields[idx]
}

func (t *TableMeta) FieldNum() int {
	return len(t.fields)
}

func (t *TableMeta) Fields() []*FieldMeta {
	ret := make([]*FieldMeta, len(t.fields))
	copy(ret, t.fields)
	return ret
}

func (t *TableMeta) RecordSize() uint32 {
	return t.recordSize
}
