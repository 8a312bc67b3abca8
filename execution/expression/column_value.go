// this code is from https://github.com/brunocalza/go-bustub
// there is license and copyright notice in licenses/go-bustub dir

package expression

import (
	"github.com/meguriri/miniob-2025/storage/tuple"
	"github.com/meguriri/miniob-2025/types"
)

/**
 * ColumnValue reads the cell of a field from the tuple.
 */
type ColumnValue struct {
	fieldName string
}

func NewColumnValue(fieldName string) Expression {
	return &ColumnValue{fieldName}
}

func (c *ColumnValue) Evaluate(tuple_ tuple.Tuple) (types.Value, error) {
	return tuple_.FindCell(c.fieldName)
}

func (c *ColumnValue) GetFieldName() string {
	return c.fieldName
}

func (c *ColumnValue) GetChildAt(child_idx uint32) Expression {
	return nil
}

func (c *ColumnValue) GetType() ExpressionType {
	return EXPRESSION_TYPE_COLUMN_VALUE
}
