package tuple

import (
	"fmt"
	"strings"

	"github.com/meguriri/miniob-2025/catalog"
	"github.com/meguriri/miniob-2025/storage/record"
	"github.com/meguriri/miniob-2025/types"
)

// RowTuple is a view of a stored record through the layout of its table
type RowTuple struct {
	record *record.Record
	meta   *catalog.TableMeta
}

func NewRowTuple(rec *record.Record, meta *catalog.TableMeta) *RowTuple {
	return &RowTuple{rec, meta}
}

// Record returns the backing record. it is shared, not copied.
func (t *RowTuple) Record() *record.Record {
	return t.record
}

func (t *RowTuple) TableMeta() *catalog.TableMeta {
	return t.meta
}

func (t *RowTuple) CellNum() int {
	return t.meta.FieldNum()
}

func (t *RowTuple) CellAt(idx int) (types.Value, error) {
	field := t.meta.FieldAt(idx)
	if field == nil {
		return types.Value{}, fmt.Errorf("cell %d of %s: %w", idx, t.meta.Name(), ErrCellNotExist)
	}
	return t.cellOf(field)
}

func (t *RowTuple) FindCell(name string) (types.Value, error) {
	fieldName := name
	if tableName, rest, ok := strings.Cut(name, "."); ok {
		if !strings.EqualFold(tableName, t.meta.Name()) {
			return types.Value{}, fmt.Errorf("cell %s: %w", name, ErrCellNotExist)
		}
		fieldName = rest
	}
	field := t.meta.Field(fieldName)
	if field == nil {
		return types.Value{}, fmt.Errorf("cell %s of %s: %w", name, t.meta.Name(), ErrCellNotExist)
	}
	return t.cellOf(field)
}

func (t *RowTuple) cellOf(field *catalog.FieldMeta) (types.Value, error) {
	data, err := t.record.Field(field.Offset(), field.Len())
	if err != nil {
		return types.Value{}, err
	}
	return types.NewValueFromBytes(data, field.Type()), nil
}

func (t *RowTuple) String() string {
	cells := make([]string, 0, t.CellNum())
	for i := 0; i < t.CellNum(); i++ {
		v, err := t.CellAt(i)
		if err != nil {
			cells = append(cells, "?")
			continue
		}
		cells = append(cells, v.ToString())
	}
	return strings.Join(cells, " | ")
}
