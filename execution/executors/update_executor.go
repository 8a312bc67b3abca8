package executors

import (
	"fmt"

	"github.com/meguriri/miniob-2025/catalog"
	"github.com/meguriri/miniob-2025/common"
	"github.com/meguriri/miniob-2025/storage/access"
	"github.com/meguriri/miniob-2025/storage/record"
	"github.com/meguriri/miniob-2025/storage/tuple"
	"github.com/meguriri/miniob-2025/types"
)

/**
 * UpdateExecutor overwrites one field of every record its child emits.
 * All target records are collected before the first one is written, so
 * the write never disturbs the scan below.
 * It emits no tuples.
 */
type UpdateExecutor struct {
	table         *catalog.Table
	attributeName string
	value         types.Value
	child         Executor
	records       []*record.Record
	updatedCount  int
}

// NewUpdateExecutor creates an update executor. child may be nil, then Open does nothing.
func NewUpdateExecutor(table_ *catalog.Table, attributeName string, value types.Value, child Executor) *UpdateExecutor {
	return &UpdateExecutor{table_, attributeName, value, child, nil, 0}
}

func (e *UpdateExecutor) Open(txn access.Transaction) error {
	if e.child == nil {
		return nil
	}

	records, err := bufferRecords(e.child, txn)
	if err != nil {
		return err
	}
	e.records = records

	for _, old := range e.records {
		newRec, err := e.rewrite(old)
		if err != nil {
			common.ShPrintf(common.WARN, "failed to build new record. table:%s rid:%v err:%v\n", e.table.Name(), old.RID(), err)
			return err
		}
		// records already passed to the transaction stay updated
		if err := txn.UpdateRecord(e.table, old, newRec); err != nil {
			common.ShPrintf(common.WARN, "failed to update record. table:%s rid:%v err:%v\n", e.table.Name(), old.RID(), err)
			return err
		}
		e.updatedCount++
	}
	return nil
}

// rewrite returns a copy of old with the target field replaced
func (e *UpdateExecutor) rewrite(old *record.Record) (*record.Record, error) {
	newRec := old.DeepCopy()

	field := e.table.Meta().Field(e.attributeName)
	if field == nil {
		return nil, fmt.Errorf("table %s field %s: %w", e.table.Name(), e.attributeName, ErrFieldNotExist)
	}

	value := e.value
	if field.Type() != value.ValueType() {
		casted, err := value.CastTo(field.Type())
		if err != nil {
			return nil, err
		}
		value = casted
	}

	// text carries its terminator unless it fills the whole field
	copyLen := field.Len()
	if field.Type() == types.Char {
		copyLen = uint32(value.Length()) + 1
		if copyLen > field.Len() {
			copyLen = field.Len()
		}
	}
	src := make([]byte, copyLen)
	copy(src, value.Data())

	// SetField zero fills [offset+copyLen, offset+len)
	if err := newRec.SetField(field.Offset(), field.Len(), src); err != nil {
		return nil, err
	}
	return newRec, nil
}

func (e *UpdateExecutor) Next() (Done, error) {
	return true, nil
}

func (e *UpdateExecutor) CurrentTuple() tuple.Tuple {
	return nil
}

func (e *UpdateExecutor) Close() error {
	e.records = nil
	return nil
}

// UpdatedCount returns the number of records handed to the transaction successfully
func (e *UpdateExecutor) UpdatedCount() int {
	return e.updatedCount
}

func (e *UpdateExecutor) GetTableMetaData() *catalog.TableMeta {
	return e.table.Meta()
}
