// this code is from https://github.com/brunocalza/go-bustub
// there is license and copyright notice in licenses/go-bustub dir

package executors

import (
	"github.com/meguriri/miniob-2025/catalog"
	"github.com/meguriri/miniob-2025/common"
	"github.com/meguriri/miniob-2025/storage/access"
	"github.com/meguriri/miniob-2025/storage/table"
	"github.com/meguriri/miniob-2025/storage/tuple"
)

/**
 * SeqScanExecutor executes a sequential scan over a table.
 */
type SeqScanExecutor struct {
	table   *catalog.Table
	it      *table.TableHeapIterator
	current *tuple.RowTuple
}

// NewSeqScanExecutor creates a new sequential executor
func NewSeqScanExecutor(table_ *catalog.Table) *SeqScanExecutor {
	return &SeqScanExecutor{table_, nil, nil}
}

func (e *SeqScanExecutor) Open(txn access.Transaction) error {
	e.it = e.table.Iterator()
	e.current = nil
	return nil
}

// Next uses the table heap iterator to iterate through the table heap.
// each emitted tuple owns a copy of the stored record.
func (e *SeqScanExecutor) Next() (Done, error) {
	if e.it == nil {
		return true, nil
	}
	rec, err := e.it.Next()
	if err != nil {
		common.ShPrintf(common.WARN, "failed to read next record. table:%s err:%v\n", e.table.Name(), err)
		return true, err
	}
	if rec == nil {
		e.current = nil
		return true, nil
	}
	e.current = tuple.NewRowTuple(rec.DeepCopy(), e.table.Meta())
	return false, nil
}

func (e *SeqScanExecutor) CurrentTuple() tuple.Tuple {
	if e.current == nil {
		return nil
	}
	return e.current
}

func (e *SeqScanExecutor) Close() error {
	e.it = nil
	e.current = nil
	return nil
}

func (e *SeqScanExecutor) GetTableMetaData() *catalog.TableMeta {
	return e.table.Meta()
}
