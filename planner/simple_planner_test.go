package planner

import (
	"errors"
	"testing"

	"github.com/meguriri/miniob-2025/catalog"
	"github.com/meguriri/miniob-2025/execution/executors"
	"github.com/meguriri/miniob-2025/execution/expression"
	"github.com/meguriri/miniob-2025/execution/plans"
	"github.com/meguriri/miniob-2025/storage/access"
	"github.com/meguriri/miniob-2025/testing/testing_util"
	"github.com/meguriri/miniob-2025/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPlanner(t *testing.T) (*SimplePlanner, *catalog.Catalog) {
	c, dm := testing_util.NewTestCatalog()
	t.Cleanup(dm.ShutDown)
	_, err := testing_util.MakeTable(c, "t", []catalog.AttrInfo{
		{Name: "id", Type: types.Integer},
		{Name: "name", Type: types.Char, Length: 10},
		{Name: "d", Type: types.Date},
	}, [][]interface{}{
		{1, "alice", "2021-09-01"},
		{2, "bob", "2022-02-28"},
		{3, "carol", "2023-12-31"},
	})
	require.NoError(t, err)
	return NewSimplePlanner(c), c
}

func TestMakeUpdatePlanValidation(t *testing.T) {
	pner, _ := setupPlanner(t)

	_, err := pner.MakeUpdatePlan(&UpdateSqlNode{RelationName: "t", AttributeName: "", Value: types.NewInteger(1)})
	assert.True(t, errors.Is(err, types.ErrInvalidArgument))

	_, err = pner.MakeUpdatePlan(&UpdateSqlNode{RelationName: "t", AttributeName: "id"})
	assert.True(t, errors.Is(err, types.ErrInvalidArgument))

	_, err = pner.MakeUpdatePlan(&UpdateSqlNode{RelationName: "", AttributeName: "id", Value: types.NewInteger(1)})
	assert.True(t, errors.Is(err, types.ErrInvalidArgument))

	_, err = pner.MakeUpdatePlan(&UpdateSqlNode{RelationName: "nothing", AttributeName: "id", Value: types.NewInteger(1)})
	assert.True(t, errors.Is(err, catalog.ErrSchemaTableNotExist))

	_, err = pner.MakeUpdatePlan(&UpdateSqlNode{RelationName: "t", AttributeName: "age", Value: types.NewInteger(1)})
	assert.True(t, errors.Is(err, catalog.ErrSchemaFieldNotExist))

	_, err = pner.MakeUpdatePlan(&UpdateSqlNode{RelationName: "t", AttributeName: "id", Value: types.NewInteger(1),
		Conditions: []ConditionSqlNode{{AttributeName: "age", Op: expression.Equal, Value: types.NewInteger(1)}}})
	assert.True(t, errors.Is(err, catalog.ErrSchemaFieldNotExist))
}

func TestMakeUpdatePlanShape(t *testing.T) {
	pner, _ := setupPlanner(t)

	plan, err := pner.MakeUpdatePlan(&UpdateSqlNode{RelationName: "T", AttributeName: "NAME", Value: types.NewChar("ab")})
	require.NoError(t, err)
	upd := plan.(*plans.UpdatePlanNode)
	assert.Equal(t, "t", upd.GetTableName())
	assert.Equal(t, "name", upd.GetAttributeName())
	assert.Equal(t, plans.SeqScan, upd.GetChildAt(0).GetType())

	plan, err = pner.MakeUpdatePlan(&UpdateSqlNode{RelationName: "t", AttributeName: "name", Value: types.NewChar("ab"),
		Conditions: []ConditionSqlNode{
			{AttributeName: "id", Op: expression.GreaterThan, Value: types.NewInteger(1)},
			{AttributeName: "id", Op: expression.LessThan, Value: types.NewInteger(3)},
		}})
	require.NoError(t, err)
	sel := plan.GetChildAt(0).(*plans.SelectionPlanNode)
	assert.Equal(t, expression.EXPRESSION_TYPE_LOGICAL_OP, sel.GetPredicate().GetType())
	assert.Equal(t, plans.SeqScan, sel.GetChildAt(0).GetType())
}

func TestPlannedStatementsRun(t *testing.T) {
	pner, c := setupPlanner(t)
	txnMgr := access.NewTransactionManager(access.NewLockManager())
	txn := txnMgr.Begin(access.LOCKING)
	ctx := executors.NewExecutorContext(c, txn)
	engine := &executors.ExecutionEngine{}

	plan, err := pner.MakeUpdatePlan(&UpdateSqlNode{RelationName: "t", AttributeName: "d", Value: types.NewChar("2020-01-15"),
		Conditions: []ConditionSqlNode{{AttributeName: "name", Op: expression.Equal, Value: types.NewChar("bob")}}})
	require.NoError(t, err)
	_, err = engine.Execute(plan, ctx)
	require.NoError(t, err)

	plan, err = pner.MakeDeletePlan(&DeleteSqlNode{RelationName: "t",
		Conditions: []ConditionSqlNode{{AttributeName: "id", Op: expression.Equal, Value: types.NewInteger(3)}}})
	require.NoError(t, err)
	_, err = engine.Execute(plan, ctx)
	require.NoError(t, err)

	plan, err = pner.MakeInsertPlan(&InsertSqlNode{RelationName: "t", Values: [][]types.Value{
		{types.NewInteger(4), types.NewChar("dave"), types.NewChar("2024-02-29")},
	}})
	require.NoError(t, err)
	_, err = engine.Execute(plan, ctx)
	require.NoError(t, err)
	require.NoError(t, txnMgr.Commit(txn))

	ctx.SetTransaction(txnMgr.Begin(access.VACUOUS))
	rows, err := engine.Execute(plans.NewSeqScanPlanNode("t"), ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	got := make(map[int32]string)
	for _, row := range rows {
		id, err := row.FindCell("id")
		require.NoError(t, err)
		d, err := row.FindCell("d")
		require.NoError(t, err)
		got[id.ToInteger()] = d.ToString()
	}
	assert.Equal(t, map[int32]string{1: "2021-09-01", 2: "2020-01-15", 4: "2024-02-29"}, got)
}

func TestMakeDeleteAndInsertPlanValidation(t *testing.T) {
	pner, _ := setupPlanner(t)

	_, err := pner.MakeDeletePlan(&DeleteSqlNode{RelationName: "nothing"})
	assert.True(t, errors.Is(err, catalog.ErrSchemaTableNotExist))

	plan, err := pner.MakeDeletePlan(&DeleteSqlNode{RelationName: "t"})
	require.NoError(t, err)
	assert.Equal(t, plans.Delete, plan.GetType())

	_, err = pner.MakeInsertPlan(&InsertSqlNode{RelationName: "t"})
	assert.True(t, errors.Is(err, types.ErrInvalidArgument))

	_, err = pner.MakeInsertPlan(&InsertSqlNode{RelationName: "t", Values: [][]types.Value{{types.NewInteger(1)}}})
	assert.True(t, errors.Is(err, types.ErrInvalidArgument))
}

func TestMakePlanDispatch(t *testing.T) {
	pner, _ := setupPlanner(t)

	plan, err := pner.MakePlan(&SelectSqlNode{RelationName: "t"})
	require.NoError(t, err)
	assert.Equal(t, plans.SeqScan, plan.GetType())

	plan, err = pner.MakePlan(&SelectSqlNode{RelationName: "t",
		Conditions: []ConditionSqlNode{{AttributeName: "id", Op: expression.Equal, Value: types.NewInteger(1)}}})
	require.NoError(t, err)
	assert.Equal(t, plans.Selection, plan.GetType())

	plan, err = pner.MakePlan(&UpdateSqlNode{RelationName: "t", AttributeName: "id", Value: types.NewInteger(1)})
	require.NoError(t, err)
	assert.Equal(t, plans.Update, plan.GetType())

	_, err = pner.MakePlan("SELECT 1")
	assert.True(t, errors.Is(err, types.ErrInvalidArgument))
}
