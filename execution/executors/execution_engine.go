package executors

import (
	"fmt"

	"github.com/meguriri/miniob-2025/catalog"
	"github.com/meguriri/miniob-2025/common"
	"github.com/meguriri/miniob-2025/execution/plans"
	"github.com/meguriri/miniob-2025/storage/tuple"
)

type ExecutionEngine struct {
}

// Execute runs the plan to the end and returns the emitted tuples.
// the executor tree is closed whether or not execution succeeds.
func (e *ExecutionEngine) Execute(plan plans.Plan, context *ExecutorContext) (ret []tuple.Tuple, retErr error) {
	executor, err := e.CreateExecutor(plan, context)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := executor.Close(); err != nil && retErr == nil {
			retErr = err
		}
	}()

	if err := executor.Open(context.GetTransaction()); err != nil {
		common.ShPrintf(common.WARN, "failed to execute %s plan. err:%v\n", plan.GetType(), err)
		return nil, err
	}

	tuples := make([]tuple.Tuple, 0)
	for {
		done, err := executor.Next()
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
		tuples = append(tuples, executor.CurrentTuple())
	}
	return tuples, nil
}

func (e *ExecutionEngine) CreateExecutor(plan plans.Plan, context *ExecutorContext) (Executor, error) {
	table_, err := e.findTable(plan, context.GetCatalog())
	if err != nil {
		return nil, err
	}

	var child Executor
	if childPlan := plan.GetChildAt(0); childPlan != nil {
		if child, err = e.CreateExecutor(childPlan, context); err != nil {
			return nil, err
		}
	}

	switch p := plan.(type) {
	case *plans.SeqScanPlanNode:
		return NewSeqScanExecutor(table_), nil
	case *plans.SelectionPlanNode:
		return NewSelectionExecutor(p.GetPredicate(), child), nil
	case *plans.InsertPlanNode:
		return NewInsertExecutor(table_, p.GetRawValues()), nil
	case *plans.UpdatePlanNode:
		return NewUpdateExecutor(table_, p.GetAttributeName(), p.GetValue(), child), nil
	case *plans.DeletePlanNode:
		return NewDeleteExecutor(table_, child), nil
	}
	return nil, fmt.Errorf("%T: %w", plan, ErrUnsupportedPlan)
}

func (e *ExecutionEngine) findTable(plan plans.Plan, catalog_ *catalog.Catalog) (*catalog.Table, error) {
	table_ := catalog_.FindTable(plan.GetTableName())
	if table_ == nil {
		return nil, fmt.Errorf("%s plan table %s: %w", plan.GetType(), plan.GetTableName(), ErrTableNotExist)
	}
	return table_, nil
}
