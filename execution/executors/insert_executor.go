package executors

import (
	"github.com/meguriri/miniob-2025/catalog"
	"github.com/meguriri/miniob-2025/common"
	"github.com/meguriri/miniob-2025/storage/access"
	"github.com/meguriri/miniob-2025/storage/tuple"
	"github.com/meguriri/miniob-2025/types"
)

// InsertExecutor inserts raw rows. every row lists one value per field.
type InsertExecutor struct {
	table         *catalog.Table
	rawValues     [][]types.Value
	insertedCount int
}

func NewInsertExecutor(table_ *catalog.Table, rawValues [][]types.Value) *InsertExecutor {
	return &InsertExecutor{table_, rawValues, 0}
}

func (e *InsertExecutor) Open(txn access.Transaction) error {
	for _, values := range e.rawValues {
		rec, err := e.table.MakeRecord(values)
		if err != nil {
			common.ShPrintf(common.WARN, "failed to make record. table:%s err:%v\n", e.table.Name(), err)
			return err
		}
		if err := txn.InsertRecord(e.table, rec); err != nil {
			common.ShPrintf(common.WARN, "failed to insert record. table:%s err:%v\n", e.table.Name(), err)
			return err
		}
		e.insertedCount++
	}
	return nil
}

func (e *InsertExecutor) Next() (Done, error) {
	return true, nil
}

func (e *InsertExecutor) CurrentTuple() tuple.Tuple {
	return nil
}

func (e *InsertExecutor) Close() error {
	return nil
}

func (e *InsertExecutor) InsertedCount() int {
	return e.insertedCount
}

func (e *InsertExecutor) GetTableMetaData() *catalog.TableMeta {
	return e.table.Meta()
}
