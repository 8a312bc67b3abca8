package catalog

import (
	"fmt"

	"github.com/meguriri/miniob-2025/storage/page"
	"github.com/meguriri/miniob-2025/storage/record"
	"github.com/meguriri/miniob-2025/storage/table"
	"github.com/meguriri/miniob-2025/types"
)

// Table binds a layout to the heap which stores its records.
// Its write methods apply changes directly. transactions call them.
type Table struct {
	meta *TableMeta
	heap *table.TableHeap
}

func NewTable(meta *TableMeta, heap *table.TableHeap) *Table {
	return &Table{meta, heap}
}

func (t *Table) Meta() *TableMeta {
	return t.meta
}

func (t *Table) Name() string {
	return t.meta.Name()
}

func (t *Table) Heap() *table.TableHeap {
	return t.heap
}

// InsertRecord stores rec and sets its rid to the slot it was stored in
func (t *Table) InsertRecord(rec *record.Record) error {
	rid, err := t.heap.InsertRecord(rec.Data())
	if err != nil {
		return fmt.Errorf("insert into %s: %w", t.Name(), err)
	}
	rec.SetRID(rid)
	return nil
}

func (t *Table) GetRecord(rid page.RID) (*record.Record, error) {
	return t.heap.GetRecord(rid)
}

// UpdateRecord replaces the content of old with the content of newRec.
// both must refer to the same slot.
func (t *Table) UpdateRecord(old *record.Record, newRec *record.Record) error {
	if old.RID() != newRec.RID() {
		return fmt.Errorf("old %v new %v: %w", old.RID(), newRec.RID(), ErrRIDMismatch)
	}
	if err := t.heap.UpdateRecord(newRec.RID(), newRec.Data()); err != nil {
		return fmt.Errorf("update %s: %w", t.Name(), err)
	}
	return nil
}

func (t *Table) DeleteRecord(rec *record.Record) error {
	if err := t.heap.DeleteRecord(rec.RID()); err != nil {
		return fmt.Errorf("delete from %s: %w", t.Name(), err)
	}
	return nil
}

// RestoreRecord puts a deleted record back into its slot
func (t *Table) RestoreRecord(rec *record.Record) error {
	return t.heap.RestoreRecord(rec.RID(), rec.Data())
}

func (t *Table) Iterator() *table.TableHeapIterator {
	return t.heap.Iterator()
}

// MakeRecord builds a record with one value per field in field order.
// values of another type are cast to the field type, char values longer
// than the field are truncated.
func (t *Table) MakeRecord(values []types.Value) (*record.Record, error) {
	if len(values) != t.meta.FieldNum() {
		return nil, fmt.Errorf("table %s has %d fields but got %d values: %w", t.Name(), t.meta.FieldNum(), len(values), types.ErrInvalidArgument)
	}

	rec := record.NewRecord(page.RID{PageId: types.InvalidPageID}, make([]byte, t.meta.RecordSize()))
	for i, value := range values {
		field := t.meta.FieldAt(i)
		if value.ValueType() != field.Type() {
			casted, err := value.CastTo(field.Type())
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", field.Name(), err)
			}
			value = casted
		}
		data := value.Data()
		if uint32(len(data)) > field.Len() {
			data = data[:field.Len()]
		}
		if err := rec.SetField(field.Offset(), field.Len(), data); err != nil {
			return nil, err
		}
	}
	return rec, nil
}
