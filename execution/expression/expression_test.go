package expression

import (
	"errors"
	"testing"

	"github.com/meguriri/miniob-2025/storage/tuple"
	"github.com/meguriri/miniob-2025/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTuple() tuple.Tuple {
	return tuple.NewValueListTuple(
		[]string{"id", "score", "name", "d", "flag", "n"},
		[]types.Value{
			types.NewInteger(10),
			types.NewFloat(2.5),
			types.NewChar("bob"),
			types.NewDate(2020, 1, 15),
			types.NewBoolean(true),
			types.NewNull(),
		})
}

func evalBool(t *testing.T, exp Expression) bool {
	v, err := exp.Evaluate(sampleTuple())
	require.NoError(t, err)
	require.Equal(t, types.Boolean, v.ValueType())
	return v.ToBoolean()
}

func cmp(field string, op ComparisonType, value types.Value) Expression {
	return NewComparison(NewColumnValue(field), NewConstantValue(value), op)
}

func TestComparisonOperators(t *testing.T) {
	cases := []struct {
		exp    Expression
		expect bool
	}{
		{cmp("id", Equal, types.NewInteger(10)), true},
		{cmp("id", NotEqual, types.NewInteger(10)), false},
		{cmp("id", GreaterThan, types.NewInteger(9)), true},
		{cmp("id", GreaterThanOrEqual, types.NewInteger(10)), true},
		{cmp("id", LessThan, types.NewInteger(10)), false},
		{cmp("id", LessThanOrEqual, types.NewInteger(11)), true},
		{cmp("name", Equal, types.NewChar("bob")), true},
		{cmp("name", LessThan, types.NewChar("carl")), true},
	}
	for _, c := range cases {
		assert.Equal(t, c.expect, evalBool(t, c.exp), "%v", c.exp.(*Comparison).GetComparisonType())
	}
}

func TestComparisonMixedTypes(t *testing.T) {
	assert.True(t, evalBool(t, cmp("score", GreaterThan, types.NewInteger(2))))
	assert.True(t, evalBool(t, cmp("id", Equal, types.NewFloat(10))))
	assert.True(t, evalBool(t, cmp("d", Equal, types.NewChar("2020-01-15"))))
	assert.True(t, evalBool(t, cmp("d", LessThan, types.NewChar("2020-02-01"))))
	assert.True(t, evalBool(t, NewComparison(NewConstantValue(types.NewChar("2019-12-31")), NewColumnValue("d"), LessThan)))
	assert.True(t, evalBool(t, cmp("id", Equal, types.NewChar("10"))))
	assert.True(t, evalBool(t, cmp("flag", Equal, types.NewChar("true"))))

	// numeric text compares by value on either side
	nine := NewConstantValue(types.NewInteger(9))
	assert.False(t, evalBool(t, NewComparison(NewConstantValue(types.NewChar("10")), nine, LessThan)))
	assert.True(t, evalBool(t, NewComparison(NewConstantValue(types.NewChar("10")), nine, GreaterThan)))
	assert.True(t, evalBool(t, NewComparison(nine, NewConstantValue(types.NewChar("10")), LessThan)))
	assert.True(t, evalBool(t, NewComparison(NewConstantValue(types.NewChar("9.5")), nine, GreaterThan)))

	_, err := cmp("d", Equal, types.NewFloat(1)).Evaluate(sampleTuple())
	assert.True(t, errors.Is(err, types.ErrUnimplemented))
}

func TestComparisonWithNullIsFalse(t *testing.T) {
	assert.False(t, evalBool(t, cmp("n", Equal, types.NewInteger(1))))
	assert.False(t, evalBool(t, cmp("n", NotEqual, types.NewInteger(1))))
	assert.False(t, evalBool(t, cmp("id", Equal, types.NewNull())))
}

func TestColumnValueMissingField(t *testing.T) {
	_, err := cmp("nothing", Equal, types.NewInteger(1)).Evaluate(sampleTuple())
	assert.True(t, errors.Is(err, tuple.ErrCellNotExist))
}

func TestLogicalOp(t *testing.T) {
	yes := cmp("id", Equal, types.NewInteger(10))
	no := cmp("id", Equal, types.NewInteger(11))

	assert.True(t, evalBool(t, NewLogicalOp(yes, yes, AND)))
	assert.False(t, evalBool(t, NewLogicalOp(yes, no, AND)))
	assert.True(t, evalBool(t, NewLogicalOp(no, yes, OR)))
	assert.False(t, evalBool(t, NewLogicalOp(no, no, OR)))
	assert.True(t, evalBool(t, NewLogicalOp(no, nil, NOT)))

	// the right side is not evaluated once the result is known
	broken := cmp("nothing", Equal, types.NewInteger(1))
	assert.False(t, evalBool(t, NewLogicalOp(no, broken, AND)))
	assert.True(t, evalBool(t, NewLogicalOp(yes, broken, OR)))

	assert.Same(t, yes, AppendLogicalCondition(nil, AND, yes))
	joined := AppendLogicalCondition(yes, AND, no)
	assert.Equal(t, EXPRESSION_TYPE_LOGICAL_OP, joined.GetType())
	assert.Same(t, yes, joined.GetChildAt(0))
	assert.Same(t, no, joined.GetChildAt(1))
	assert.Nil(t, joined.GetChildAt(2))
	assert.False(t, evalBool(t, joined))
}
