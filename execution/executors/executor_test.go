package executors

import (
	"errors"
	"testing"

	"github.com/meguriri/miniob-2025/execution/expression"
	"github.com/meguriri/miniob-2025/execution/plans"
	"github.com/meguriri/miniob-2025/storage/access"
	"github.com/meguriri/miniob-2025/storage/tuple"
	"github.com/meguriri/miniob-2025/testing/testing_util"
	"github.com/meguriri/miniob-2025/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, exec Executor) []tuple.Tuple {
	ret := make([]tuple.Tuple, 0)
	for {
		done, err := exec.Next()
		require.NoError(t, err)
		if done {
			return ret
		}
		ret = append(ret, exec.CurrentTuple())
	}
}

func cellInt(t *testing.T, tup tuple.Tuple, name string) int32 {
	v, err := tup.FindCell(name)
	require.NoError(t, err)
	return v.ToInteger()
}

func TestSeqScanEmitsCopies(t *testing.T) {
	tbl := setupSampleTable(t)
	exec := NewSeqScanExecutor(tbl)
	require.NoError(t, exec.Open(access.NewVacuousTransaction(1)))
	tuples := drain(t, exec)
	require.Len(t, tuples, 3)
	assert.Nil(t, exec.CurrentTuple())

	row := tuples[0].(*tuple.RowTuple)
	assert.Equal(t, int32(1), cellInt(t, row, "id"))
	require.NoError(t, row.Record().SetField(0, 4, types.NewInteger(100).Data()))

	stored, err := tbl.GetRecord(row.Record().RID())
	require.NoError(t, err)
	assert.Equal(t, types.NewInteger(1).Data(), fieldBytes(t, tbl, stored, "id"))

	require.NoError(t, exec.Close())
	done, err := exec.Next()
	require.NoError(t, err)
	assert.True(t, bool(done))
	assert.Same(t, tbl.Meta(), exec.GetTableMetaData())
}

func TestSelectionFilters(t *testing.T) {
	tbl := setupSampleTable(t)
	pred := expression.NewLogicalOp(
		expression.NewComparison(expression.NewColumnValue("id"), expression.NewConstantValue(types.NewInteger(1)), expression.GreaterThan),
		expression.NewComparison(expression.NewColumnValue("d"), expression.NewConstantValue(types.NewChar("2023-01-01")), expression.LessThan),
		expression.AND)
	exec := NewSelectionExecutor(pred, NewSeqScanExecutor(tbl))
	require.NoError(t, exec.Open(access.NewVacuousTransaction(1)))
	tuples := drain(t, exec)
	require.NoError(t, exec.Close())

	require.Len(t, tuples, 1)
	assert.Equal(t, int32(2), cellInt(t, tuples[0], "id"))
}

func TestSelectionPropagatesEvaluationError(t *testing.T) {
	tbl := setupSampleTable(t)
	pred := expression.NewComparison(expression.NewColumnValue("missing"), expression.NewConstantValue(types.NewInteger(1)), expression.Equal)
	exec := NewSelectionExecutor(pred, NewSeqScanExecutor(tbl))
	require.NoError(t, exec.Open(access.NewVacuousTransaction(1)))
	_, err := exec.Next()
	assert.True(t, errors.Is(err, tuple.ErrCellNotExist))
}

func TestDeleteMatchingRows(t *testing.T) {
	tbl := setupSampleTable(t)
	txn := testing_util.NewRecordingTransaction(access.NewVacuousTransaction(1))
	exec := NewDeleteExecutor(tbl, idFilter(tbl, expression.NotEqual, 2))
	require.NoError(t, exec.Open(txn))
	require.NoError(t, exec.Close())
	assert.Equal(t, 2, exec.DeletedCount())
	assert.Equal(t, 2, txn.DeleteCalls())

	records := scanRecords(t, tbl)
	require.Len(t, records, 1)
	assert.Equal(t, types.NewInteger(2).Data(), fieldBytes(t, tbl, records[0], "id"))
}

func TestInsertRows(t *testing.T) {
	tbl := setupSampleTable(t)
	txn := testing_util.NewRecordingTransaction(access.NewVacuousTransaction(1))
	exec := NewInsertExecutor(tbl, [][]types.Value{
		{types.NewInteger(4), types.NewChar("dave"), types.NewDate(2024, 2, 29)},
		{types.NewChar("5"), types.NewChar("eve"), types.NewChar("2024-3-1")},
	})
	require.NoError(t, exec.Open(txn))
	assert.Equal(t, 2, exec.InsertedCount())
	assert.Equal(t, 2, txn.InsertCalls())

	records := scanRecords(t, tbl)
	require.Len(t, records, 5)
	assert.Equal(t, types.NewInteger(5).Data(), fieldBytes(t, tbl, records[4], "id"))
	assert.Equal(t, types.NewDate(2024, 3, 1).Data(), fieldBytes(t, tbl, records[4], "d"))

	bad := NewInsertExecutor(tbl, [][]types.Value{{types.NewInteger(6)}})
	assert.True(t, errors.Is(bad.Open(txn), types.ErrInvalidArgument))
}

func TestExecutionEngineRunsUpdatePlan(t *testing.T) {
	c, dm := testing_util.NewTestCatalog()
	defer dm.ShutDown()
	tbl, err := testing_util.MakeTable(c, "t", sampleAttrs, [][]interface{}{
		{1, "alice", "2021-09-01"},
		{2, "bob", "2022-02-28"},
	})
	require.NoError(t, err)

	txnMgr := access.NewTransactionManager(access.NewLockManager())
	txn := txnMgr.Begin(access.LOCKING)
	ctx := NewExecutorContext(c, txn)
	engine := &ExecutionEngine{}

	pred := expression.NewComparison(expression.NewColumnValue("name"), expression.NewConstantValue(types.NewChar("bob")), expression.Equal)
	plan := plans.NewUpdatePlanNode(plans.NewSelectionPlanNode(plans.NewSeqScanPlanNode("t"), pred), "t", "name", types.NewChar("robert"))
	result, err := engine.Execute(plan, ctx)
	require.NoError(t, err)
	assert.Empty(t, result)
	require.NoError(t, txnMgr.Commit(txn))

	ctx.SetTransaction(txnMgr.Begin(access.VACUOUS))
	rows, err := engine.Execute(plans.NewSeqScanPlanNode("T"), ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	name, err := rows[1].FindCell("name")
	require.NoError(t, err)
	assert.Equal(t, "robert", name.ToString())

	_, err = engine.Execute(plans.NewDeletePlanNode(plans.NewSeqScanPlanNode("t"), "t"), ctx)
	require.NoError(t, err)
	assert.Empty(t, scanRecords(t, tbl))

	_, err = engine.Execute(plans.NewInsertPlanNode([][]types.Value{{types.NewInteger(3), types.NewChar("c"), types.NewDate(2020, 1, 1)}}, "t"), ctx)
	require.NoError(t, err)
	assert.Len(t, scanRecords(t, tbl), 1)
}

func TestExecutionEngineErrors(t *testing.T) {
	c, dm := testing_util.NewTestCatalog()
	defer dm.ShutDown()
	_, err := c.CreateTable("t", sampleAttrs)
	require.NoError(t, err)
	ctx := NewExecutorContext(c, access.NewVacuousTransaction(1))
	engine := &ExecutionEngine{}

	_, err = engine.Execute(plans.NewSeqScanPlanNode("missing"), ctx)
	assert.True(t, errors.Is(err, ErrTableNotExist))

	_, err = engine.Execute(plans.NewUpdatePlanNode(plans.NewSeqScanPlanNode("t"), "t", "id", types.NewInteger(1)), ctx)
	require.NoError(t, err)

	_, err = engine.CreateExecutor(unknownPlan{}, ctx)
	assert.True(t, errors.Is(err, ErrUnsupportedPlan))
}

type unknownPlan struct{}

func (unknownPlan) GetChildAt(uint32) plans.Plan { return nil }
func (unknownPlan) GetChildren() []plans.Plan    { return nil }
func (unknownPlan) GetType() plans.PlanType      { return plans.PlanType(-1) }
func (unknownPlan) GetTableName() string         { return "t" }
