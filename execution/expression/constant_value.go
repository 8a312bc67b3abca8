// this code is from https://github.com/brunocalza/go-bustub
// there is license and copyright notice in licenses/go-bustub dir

package expression

import (
	"github.com/meguriri/miniob-2025/storage/tuple"
	"github.com/meguriri/miniob-2025/types"
)

type ConstantValue struct {
	value types.Value
}

func NewConstantValue(value types.Value) Expression {
	return &ConstantValue{value}
}

func (c *ConstantValue) Evaluate(tuple_ tuple.Tuple) (types.Value, error) {
	return c.value, nil
}

func (c *ConstantValue) GetValue() types.Value {
	return c.value
}

func (c *ConstantValue) GetChildAt(child_idx uint32) Expression {
	return nil
}

func (c *ConstantValue) GetType() ExpressionType {
	return EXPRESSION_TYPE_CONSTANT_VALUE
}
