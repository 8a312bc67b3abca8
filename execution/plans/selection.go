package plans

import (
	"github.com/meguriri/miniob-2025/execution/expression"
)

// do selection according to WHERE clause for Plan(Executor) which has no selection functionality

type SelectionPlanNode struct {
	*AbstractPlanNode
	predicate expression.Expression
}

func NewSelectionPlanNode(child Plan, predicate expression.Expression) Plan {
	return &SelectionPlanNode{&AbstractPlanNode{[]Plan{child}}, predicate}
}

func (p *SelectionPlanNode) GetType() PlanType {
	return Selection
}

func (p *SelectionPlanNode) GetPredicate() expression.Expression {
	return p.predicate
}

func (p *SelectionPlanNode) GetTableName() string {
	return p.children[0].GetTableName()
}
