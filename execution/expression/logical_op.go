package expression

import (
	"fmt"

	"github.com/meguriri/miniob-2025/storage/tuple"
	"github.com/meguriri/miniob-2025/types"
)

type LogicalOpType int

/** LogicalOpType represents the type of comparison that we want to perform. */
const (
	AND LogicalOpType = iota
	OR
	NOT
)

/**
 * LogicalOp represents two expressions or one expression being evaluated with logical operator.
 */
type LogicalOp struct {
	logicalOpType LogicalOpType
	children      [2]Expression
}

// if logicalOpType is "NOT", right value must be nil
func NewLogicalOp(left Expression, right Expression, logicalOpType LogicalOpType) Expression {
	return &LogicalOp{logicalOpType, [2]Expression{left, right}}
}

// AppendLogicalCondition joins addCond to baseConds. a nil baseConds yields addCond itself
func AppendLogicalCondition(baseConds Expression, opType LogicalOpType, addCond Expression) Expression {
	if baseConds == nil {
		return addCond
	}
	return NewLogicalOp(baseConds, addCond, opType)
}

func (c *LogicalOp) Evaluate(tuple_ tuple.Tuple) (types.Value, error) {
	lhs, err := c.children[0].Evaluate(tuple_)
	if err != nil {
		return types.Value{}, err
	}
	switch c.logicalOpType {
	case NOT:
		return types.NewBoolean(!lhs.ToBoolean()), nil
	case AND:
		if !lhs.ToBoolean() {
			return types.NewBoolean(false), nil
		}
	case OR:
		if lhs.ToBoolean() {
			return types.NewBoolean(true), nil
		}
	default:
		panic(fmt.Sprintf("unknown logicalOpType is passed! %d", c.logicalOpType))
	}
	rhs, err := c.children[1].Evaluate(tuple_)
	if err != nil {
		return types.Value{}, err
	}
	return types.NewBoolean(rhs.ToBoolean()), nil
}

func (c *LogicalOp) GetLogicalOpType() LogicalOpType {
	return c.logicalOpType
}

func (c *LogicalOp) GetChildAt(child_idx uint32) Expression {
	if child_idx >= uint32(len(c.children)) {
		return nil
	}
	return c.children[child_idx]
}

func (c *LogicalOp) GetType() ExpressionType {
	return EXPRESSION_TYPE_LOGICAL_OP
}
