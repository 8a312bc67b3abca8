package planner

import (
	"fmt"

	"github.com/meguriri/miniob-2025/catalog"
	"github.com/meguriri/miniob-2025/common"
	"github.com/meguriri/miniob-2025/execution/expression"
	"github.com/meguriri/miniob-2025/execution/plans"
	"github.com/meguriri/miniob-2025/types"
)

// SimplePlanner checks parsed statements against the catalog and turns them into plans
type SimplePlanner struct {
	catalog_ *catalog.Catalog
}

func NewSimplePlanner(c *catalog.Catalog) *SimplePlanner {
	return &SimplePlanner{c}
}

// MakePlan dispatches on the kind of sql node
func (pner *SimplePlanner) MakePlan(sqlNode interface{}) (plans.Plan, error) {
	switch node := sqlNode.(type) {
	case *SelectSqlNode:
		return pner.MakeSelectPlan(node)
	case *InsertSqlNode:
		return pner.MakeInsertPlan(node)
	case *DeleteSqlNode:
		return pner.MakeDeletePlan(node)
	case *UpdateSqlNode:
		return pner.MakeUpdatePlan(node)
	}
	return nil, fmt.Errorf("unknown sql node %T: %w", sqlNode, types.ErrInvalidArgument)
}

func (pner *SimplePlanner) findTable(relationName string) (*catalog.Table, error) {
	if relationName == "" {
		common.ShPrintf(common.WARN, "invalid argument. empty table name\n")
		return nil, fmt.Errorf("empty table name: %w", types.ErrInvalidArgument)
	}
	table_ := pner.catalog_.FindTable(relationName)
	if table_ == nil {
		common.ShPrintf(common.WARN, "no such table. table_name=%s\n", relationName)
		return nil, fmt.Errorf("table %s: %w", relationName, catalog.ErrSchemaTableNotExist)
	}
	return table_, nil
}

// ConstructPredicate builds the AND of all conditions. it returns nil for no conditions
func (pner *SimplePlanner) ConstructPredicate(table_ *catalog.Table, conditions []ConditionSqlNode) (expression.Expression, error) {
	var predicate expression.Expression
	for _, cond := range conditions {
		if table_.Meta().Field(cond.AttributeName) == nil {
			common.ShPrintf(common.WARN, "no such column in condition. table_name=%s column_name=%s\n", table_.Name(), cond.AttributeName)
			return nil, fmt.Errorf("table %s field %s: %w", table_.Name(), cond.AttributeName, catalog.ErrSchemaFieldNotExist)
		}
		if cond.Value.ValueType() == types.Invalid {
			return nil, fmt.Errorf("condition on %s has no value: %w", cond.AttributeName, types.ErrInvalidArgument)
		}
		comparison := expression.NewComparison(expression.NewColumnValue(cond.AttributeName), expression.NewConstantValue(cond.Value), cond.Op)
		predicate = expression.AppendLogicalCondition(predicate, expression.AND, comparison)
	}
	return predicate, nil
}

// makeScanPlan returns SeqScan, topped with Selection when there are conditions
func (pner *SimplePlanner) makeScanPlan(table_ *catalog.Table, conditions []ConditionSqlNode) (plans.Plan, error) {
	predicate, err := pner.ConstructPredicate(table_, conditions)
	if err != nil {
		return nil, err
	}
	var plan plans.Plan = plans.NewSeqScanPlanNode(table_.Name())
	if predicate != nil {
		plan = plans.NewSelectionPlanNode(plan, predicate)
	}
	return plan, nil
}

func (pner *SimplePlanner) MakeSelectPlan(sel *SelectSqlNode) (plans.Plan, error) {
	table_, err := pner.findTable(sel.RelationName)
	if err != nil {
		return nil, err
	}
	return pner.makeScanPlan(table_, sel.Conditions)
}

func (pner *SimplePlanner) MakeUpdatePlan(update *UpdateSqlNode) (plans.Plan, error) {
	if update.AttributeName == "" || update.Value.ValueType() == types.Invalid {
		common.ShPrintf(common.WARN, "invalid argument. table_name=%s attribute_name=%s\n", update.RelationName, update.AttributeName)
		return nil, fmt.Errorf("update %s set %q: %w", update.RelationName, update.AttributeName, types.ErrInvalidArgument)
	}
	table_, err := pner.findTable(update.RelationName)
	if err != nil {
		return nil, err
	}

	// check whether the column exists
	field := table_.Meta().Field(update.AttributeName)
	if field == nil {
		common.ShPrintf(common.WARN, "no such column. table_name=%s column_name=%s\n", table_.Name(), update.AttributeName)
		return nil, fmt.Errorf("table %s field %s: %w", table_.Name(), update.AttributeName, catalog.ErrSchemaFieldNotExist)
	}

	child, err := pner.makeScanPlan(table_, update.Conditions)
	if err != nil {
		return nil, err
	}
	return plans.NewUpdatePlanNode(child, table_.Name(), field.Name(), update.Value), nil
}

func (pner *SimplePlanner) MakeDeletePlan(delete_ *DeleteSqlNode) (plans.Plan, error) {
	table_, err := pner.findTable(delete_.RelationName)
	if err != nil {
		return nil, err
	}
	child, err := pner.makeScanPlan(table_, delete_.Conditions)
	if err != nil {
		return nil, err
	}
	return plans.NewDeletePlanNode(child, table_.Name()), nil
}

func (pner *SimplePlanner) MakeInsertPlan(insert *InsertSqlNode) (plans.Plan, error) {
	table_, err := pner.findTable(insert.RelationName)
	if err != nil {
		return nil, err
	}
	if len(insert.Values) == 0 {
		return nil, fmt.Errorf("insert into %s without values: %w", table_.Name(), types.ErrInvalidArgument)
	}
	for i, row := range insert.Values {
		if len(row) != table_.Meta().FieldNum() {
			common.ShPrintf(common.WARN, "value count mismatch. table_name=%s row=%d values=%d fields=%d\n", table_.Name(), i, len(row), table_.Meta().FieldNum())
			return nil, fmt.Errorf("insert into %s row %d: %w", table_.Name(), i, types.ErrInvalidArgument)
		}
	}
	return plans.NewInsertPlanNode(insert.Values, table_.Name()), nil
}
