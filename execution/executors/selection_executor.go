package executors

import (
	"github.com/meguriri/miniob-2025/catalog"
	"github.com/meguriri/miniob-2025/common"
	"github.com/meguriri/miniob-2025/execution/expression"
	"github.com/meguriri/miniob-2025/storage/access"
	"github.com/meguriri/miniob-2025/storage/tuple"
)

// do filtering according to WHERE clause for Executor which has no filtering feature

type SelectionExecutor struct {
	predicate expression.Expression
	child     Executor // the child executor that will provide tuples to the this executor
}

func NewSelectionExecutor(predicate expression.Expression, child Executor) *SelectionExecutor {
	return &SelectionExecutor{predicate, child}
}

func (e *SelectionExecutor) Open(txn access.Transaction) error {
	return e.child.Open(txn)
}

func (e *SelectionExecutor) Next() (Done, error) {
	for {
		done, err := e.child.Next()
		if err != nil || done {
			return done, err
		}
		ok, err := e.selects(e.child.CurrentTuple())
		if err != nil {
			common.ShPrintf(common.WARN, "failed to evaluate predicate. err:%v\n", err)
			return true, err
		}
		if ok {
			return false, nil
		}
	}
}

// selects evaluates the predicate on the tuple
func (e *SelectionExecutor) selects(tuple_ tuple.Tuple) (bool, error) {
	if e.predicate == nil {
		return true, nil
	}
	v, err := e.predicate.Evaluate(tuple_)
	if err != nil {
		return false, err
	}
	return v.ToBoolean(), nil
}

func (e *SelectionExecutor) CurrentTuple() tuple.Tuple {
	return e.child.CurrentTuple()
}

func (e *SelectionExecutor) Close() error {
	return e.child.Close()
}

func (e *SelectionExecutor) GetTableMetaData() *catalog.TableMeta {
	return e.child.GetTableMetaData()
}
