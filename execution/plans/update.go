package plans

import (
	"github.com/meguriri/miniob-2025/types"
)

/**
 * UpdatePlanNode identifies a table and the field to be overwritten with value.
 * Records to be updated come from the child.
 */
type UpdatePlanNode struct {
	*AbstractPlanNode
	tableName     string
	attributeName string
	value         types.Value
}

func NewUpdatePlanNode(child Plan, tableName string, attributeName string, value types.Value) Plan {
	return &UpdatePlanNode{&AbstractPlanNode{[]Plan{child}}, tableName, attributeName, value}
}

func (p *UpdatePlanNode) GetTableName() string {
	return p.tableName
}

func (p *UpdatePlanNode) GetAttributeName() string {
	return p.attributeName
}

// GetValue returns the value to overwrite the field with
func (p *UpdatePlanNode) GetValue() types.Value {
	return p.value
}

func (p *UpdatePlanNode) GetType() PlanType {
	return Update
}
