package miniob

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/meguriri/miniob-2025/catalog"
	"github.com/meguriri/miniob-2025/common"
	"github.com/meguriri/miniob-2025/errors"
	"github.com/meguriri/miniob-2025/execution/executors"
	"github.com/meguriri/miniob-2025/planner"
	"github.com/meguriri/miniob-2025/storage/access"
	"github.com/meguriri/miniob-2025/storage/tuple"
	"github.com/meguriri/miniob-2025/types"
)

// QueryAbortedErr is returned when a statement lost a record lock to
// another transaction and all of its writes were rolled back.
const QueryAbortedErr = errors.Error("query aborted")

type MiniobDB struct {
	mi_          *MiniobInstance
	catalog_     *catalog.Catalog
	exec_engine_ *executors.ExecutionEngine
	planner_     *planner.SimplePlanner
}

// memKBytes is the memory given to the buffer pool
func NewMiniobDB(dbName string, memKBytes int) *MiniobDB {
	bpoolSize := memKBytes * 1024 / common.PageSize
	if bpoolSize < 2 {
		bpoolSize = 2
	}
	mi := NewMiniobInstance(dbName, bpoolSize)
	c := catalog.NewCatalog(mi.GetBufferPoolManager())
	exec_engine := &executors.ExecutionEngine{}
	pnner := planner.NewSimplePlanner(c)

	return &MiniobDB{mi, c, exec_engine, pnner}
}

func (mdb *MiniobDB) GetCatalog() *catalog.Catalog {
	return mdb.catalog_
}

func (mdb *MiniobDB) CreateTable(name string, attrs []catalog.AttrInfo) error {
	_, err := mdb.catalog_.CreateTable(name, attrs)
	return err
}

// ExecuteStatement runs one of the planner's sql nodes in its own locking
// transaction. Rows are returned for SELECT only.
func (mdb *MiniobDB) ExecuteStatement(sqlNode interface{}) ([][]types.Value, error) {
	plan, err := mdb.planner_.MakePlan(sqlNode)
	if err != nil {
		return nil, err
	}

	txn_mgr := mdb.mi_.GetTransactionManager()
	txn := txn_mgr.Begin(access.LOCKING)
	context := executors.NewExecutorContext(mdb.catalog_, txn)
	result, err := mdb.exec_engine_.Execute(plan, context)
	if err != nil {
		if abortErr := txn_mgr.Abort(txn); abortErr != nil {
			common.ShPrintf(common.ERROR, "rollback of txn %d failed. err:%v\n", txn.GetTransactionId(), abortErr)
		}
		if stderrors.Is(err, access.ErrLockConflict) {
			return nil, fmt.Errorf("%w: %w", QueryAbortedErr, err)
		}
		return nil, err
	}
	if err := txn_mgr.Commit(txn); err != nil {
		return nil, err
	}

	if _, isSelect := sqlNode.(*planner.SelectSqlNode); !isSelect {
		return nil, nil
	}
	return ConvTupleListToValues(result)
}

func (mdb *MiniobDB) executeStatementForTxnTh(ch chan *ReqResult, qr *queryRequest) {
	result, err := mdb.ExecuteStatement(qr.stmt)
	ch <- &ReqResult{err, result, qr.reqId, qr.stmt, qr.callerCh}
}

func (mdb *MiniobDB) Select(sel *planner.SelectSqlNode) ([][]types.Value, error) {
	return mdb.ExecuteStatement(sel)
}

func (mdb *MiniobDB) Insert(insert *planner.InsertSqlNode) error {
	_, err := mdb.ExecuteStatement(insert)
	return err
}

func (mdb *MiniobDB) Delete(delete_ *planner.DeleteSqlNode) error {
	_, err := mdb.ExecuteStatement(delete_)
	return err
}

func (mdb *MiniobDB) Update(update *planner.UpdateSqlNode) error {
	_, err := mdb.ExecuteStatement(update)
	return err
}

func (mdb *MiniobDB) Shutdown() {
	mdb.mi_.Shutdown()
}

func ConvTupleListToValues(result []tuple.Tuple) ([][]types.Value, error) {
	retVals := make([][]types.Value, 0, len(result))
	for _, tuple_ := range result {
		rowVals := make([]types.Value, 0, tuple_.CellNum())
		for idx := 0; idx < tuple_.CellNum(); idx++ {
			val, err := tuple_.CellAt(idx)
			if err != nil {
				return nil, err
			}
			rowVals = append(rowVals, val)
		}
		retVals = append(retVals, rowVals)
	}
	return retVals, nil
}

func PrintExecuteResults(w io.Writer, results [][]types.Value) {
	fmt.Fprintln(w, "----")
	for _, valList := range results {
		for _, val := range valList {
			fmt.Fprintf(w, "%s ", val.ToString())
		}
		fmt.Fprintln(w, "")
	}
}
