package plans

/**
 * DeletePlanNode identifies a table. Records to be deleted come from the child.
 */
type DeletePlanNode struct {
	*AbstractPlanNode
	tableName string
}

func NewDeletePlanNode(child Plan, tableName string) Plan {
	return &DeletePlanNode{&AbstractPlanNode{[]Plan{child}}, tableName}
}

func (p *DeletePlanNode) GetTableName() string {
	return p.tableName
}

func (p *DeletePlanNode) GetType() PlanType {
	return Delete
}
