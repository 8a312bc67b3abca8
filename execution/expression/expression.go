// this code is from https://github.com/brunocalza/go-bustub
// there is license and copyright notice in licenses/go-bustub dir

package expression

import (
	"github.com/meguriri/miniob-2025/storage/tuple"
	"github.com/meguriri/miniob-2025/types"
)

type ExpressionType int

const (
	EXPRESSION_TYPE_INVALID ExpressionType = iota
	EXPRESSION_TYPE_COLUMN_VALUE
	EXPRESSION_TYPE_CONSTANT_VALUE
	EXPRESSION_TYPE_COMPARISON
	EXPRESSION_TYPE_LOGICAL_OP
)

/**
 * Expression interface is the base of all the expressions in the system.
 * Expressions are modeled as trees, i.e. every expression may have a variable number of children.
 */
type Expression interface {
	Evaluate(tuple.Tuple) (types.Value, error)
	GetType() ExpressionType
	GetChildAt(child_idx uint32) Expression
}
