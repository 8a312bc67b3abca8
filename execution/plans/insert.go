// this code is from https://github.com/brunocalza/go-bustub
// there is license and copyright notice in licenses/go-bustub dir

package plans

import (
	"github.com/meguriri/miniob-2025/types"
)

/**
 * InsertPlanNode identifies a table that should be inserted into.
 * The values to be inserted are embedded into the InsertPlanNode itself, i.e. a "raw insert".
 */
type InsertPlanNode struct {
	*AbstractPlanNode
	rawValues [][]types.Value
	tableName string
}

// NewInsertPlanNode creates a new insert plan node for inserting raw values
func NewInsertPlanNode(rawValues [][]types.Value, tableName string) Plan {
	return &InsertPlanNode{&AbstractPlanNode{nil}, rawValues, tableName}
}

// GetTableName returns the name of the table that should be inserted into
func (p *InsertPlanNode) GetTableName() string {
	return p.tableName
}

// GetRawValues returns the raw values to be inserted
func (p *InsertPlanNode) GetRawValues() [][]types.Value {
	return p.rawValues
}

func (p *InsertPlanNode) GetType() PlanType {
	return Insert
}
