// this code is from https://github.com/brunocalza/go-bustub
// there is license and copyright notice in licenses/go-bustub dir

package expression

import (
	"fmt"

	"github.com/meguriri/miniob-2025/storage/tuple"
	"github.com/meguriri/miniob-2025/types"
)

type ComparisonType int

/** ComparisonType represents the type of comparison that we want to perform. */
const (
	Equal ComparisonType = iota
	NotEqual
	GreaterThan
	GreaterThanOrEqual
	LessThan
	LessThanOrEqual
)

func (c ComparisonType) String() string {
	switch c {
	case Equal:
		return "="
	case NotEqual:
		return "<>"
	case GreaterThan:
		return ">"
	case GreaterThanOrEqual:
		return ">="
	case LessThan:
		return "<"
	case LessThanOrEqual:
		return "<="
	}
	return "?"
}

/**
 * Comparison represents two expressions being compared.
 * A NULL operand makes the result false whatever the operator is.
 */
type Comparison struct {
	comparisonType ComparisonType
	children       [2]Expression
}

func NewComparison(left Expression, right Expression, comparisonType ComparisonType) Expression {
	return &Comparison{comparisonType, [2]Expression{left, right}}
}

func (c *Comparison) Evaluate(tuple_ tuple.Tuple) (types.Value, error) {
	lhs, err := c.children[0].Evaluate(tuple_)
	if err != nil {
		return types.Value{}, err
	}
	rhs, err := c.children[1].Evaluate(tuple_)
	if err != nil {
		return types.Value{}, err
	}
	if lhs.IsNull() || rhs.IsNull() {
		return types.NewBoolean(false), nil
	}
	cmp, err := compareValues(lhs, rhs)
	if err != nil {
		return types.Value{}, fmt.Errorf("%s %s %s: %w", lhs.ToString(), c.comparisonType, rhs.ToString(), err)
	}
	return types.NewBoolean(c.performComparison(cmp)), nil
}

func isNumeric(t types.TypeID) bool {
	return t == types.Integer || t == types.Float
}

// compareValues brings both sides to a common type first.
// a date compared with text parses the text, text compared with a number is
// read as a number when it parses as one. any other mixed pair casts the right
// side to the left side's type, or the left to the right's when that fails.
func compareValues(lhs types.Value, rhs types.Value) (int, error) {
	lt, rt := lhs.ValueType(), rhs.ValueType()
	switch {
	case lt == rt, isNumeric(lt) && isNumeric(rt):
		return lhs.CompareTo(rhs), nil
	case lt == types.Date && rt == types.Char:
		return lhs.CompareTo(rhs), nil
	case lt == types.Char && rt == types.Date:
		return -rhs.CompareTo(lhs), nil
	case lt == types.Char && isNumeric(rt):
		if num, err := lhs.CastTo(types.Float); err == nil {
			return num.CompareTo(rhs), nil
		}
	case isNumeric(lt) && rt == types.Char:
		if num, err := rhs.CastTo(types.Float); err == nil {
			return lhs.CompareTo(num), nil
		}
	}

	if casted, err := rhs.CastTo(lt); err == nil {
		return lhs.CompareTo(casted), nil
	}
	casted, err := lhs.CastTo(rt)
	if err != nil {
		return 0, err
	}
	return casted.CompareTo(rhs), nil
}

func (c *Comparison) performComparison(cmp int) bool {
	switch c.comparisonType {
	case Equal:
		return cmp == 0
	case NotEqual:
		return cmp != 0
	case GreaterThan:
		return cmp > 0
	case GreaterThanOrEqual:
		return cmp >= 0
	case LessThan:
		return cmp < 0
	case LessThanOrEqual:
		return cmp <= 0
	}
	return false
}

func (c *Comparison) GetComparisonType() ComparisonType {
	return c.comparisonType
}

func (c *Comparison) GetChildAt(child_idx uint32) Expression {
	if child_idx >= uint32(len(c.children)) {
		return nil
	}
	return c.children[child_idx]
}

func (c *Comparison) GetType() ExpressionType {
	return EXPRESSION_TYPE_COMPARISON
}
