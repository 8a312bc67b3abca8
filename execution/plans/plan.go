package plans

type PlanType int

const (
	SeqScan PlanType = iota
	Selection
	Insert
	Delete
	Update
)

func (p PlanType) String() string {
	switch p {
	case SeqScan:
		return "SeqScan"
	case Selection:
		return "Selection"
	case Insert:
		return "Insert"
	case Delete:
		return "Delete"
	case Update:
		return "Update"
	}
	return "Unknown"
}

type Plan interface {
	GetChildAt(childIndex uint32) Plan
	GetChildren() []Plan
	GetType() PlanType
	// GetTableName returns the table the plan reads or writes
	GetTableName() string
}

type AbstractPlanNode struct {
	children []Plan
}

func (p *AbstractPlanNode) GetChildAt(childIndex uint32) Plan {
	if childIndex >= uint32(len(p.children)) {
		return nil
	}
	return p.children[childIndex]
}

func (p *AbstractPlanNode) GetChildren() []Plan {
	return p.children
}
