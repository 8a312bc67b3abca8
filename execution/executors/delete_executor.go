package executors

import (
	"github.com/meguriri/miniob-2025/catalog"
	"github.com/meguriri/miniob-2025/common"
	"github.com/meguriri/miniob-2025/storage/access"
	"github.com/meguriri/miniob-2025/storage/record"
	"github.com/meguriri/miniob-2025/storage/tuple"
)

/**
 * DeleteExecutor deletes every record its child emits.
 * Like UpdateExecutor it collects the records first and emits no tuples.
 */
type DeleteExecutor struct {
	table        *catalog.Table
	child        Executor
	records      []*record.Record
	deletedCount int
}

func NewDeleteExecutor(table_ *catalog.Table, child Executor) *DeleteExecutor {
	return &DeleteExecutor{table_, child, nil, 0}
}

func (e *DeleteExecutor) Open(txn access.Transaction) error {
	if e.child == nil {
		return nil
	}

	records, err := bufferRecords(e.child, txn)
	if err != nil {
		return err
	}
	e.records = records

	for _, rec := range e.records {
		if err := txn.DeleteRecord(e.table, rec); err != nil {
			common.ShPrintf(common.WARN, "failed to delete record. table:%s rid:%v err:%v\n", e.table.Name(), rec.RID(), err)
			return err
		}
		e.deletedCount++
	}
	return nil
}

func (e *DeleteExecutor) Next() (Done, error) {
	return true, nil
}

func (e *DeleteExecutor) CurrentTuple() tuple.Tuple {
	return nil
}

func (e *DeleteExecutor) Close() error {
	e.records = nil
	return nil
}

func (e *DeleteExecutor) DeletedCount() int {
	return e.deletedCount
}

func (e *DeleteExecutor) GetTableMetaData() *catalog.TableMeta {
	return e.table.Meta()
}
