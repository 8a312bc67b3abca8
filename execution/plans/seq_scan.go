package plans

/**
 * SeqScanPlanNode emits every live record of a table.
 */
type SeqScanPlanNode struct {
	*AbstractPlanNode
	tableName string
}

func NewSeqScanPlanNode(tableName string) Plan {
	return &SeqScanPlanNode{&AbstractPlanNode{nil}, tableName}
}

func (p *SeqScanPlanNode) GetTableName() string {
	return p.tableName
}

func (p *SeqScanPlanNode) GetType() PlanType {
	return SeqScan
}
