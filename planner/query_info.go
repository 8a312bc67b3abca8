package planner

import (
	"github.com/meguriri/miniob-2025/execution/expression"
	"github.com/meguriri/miniob-2025/types"
)

// ConditionSqlNode is one "attribute op value" term of a WHERE clause.
// terms of a statement are joined with AND.
type ConditionSqlNode struct {
	AttributeName string
	Op            expression.ComparisonType
	Value         types.Value
}

// UpdateSqlNode is a parsed "UPDATE relation SET attribute = value WHERE conditions"
type UpdateSqlNode struct {
	RelationName  string
	AttributeName string
	Value         types.Value
	Conditions    []ConditionSqlNode
}

// DeleteSqlNode is a parsed "DELETE FROM relation WHERE conditions"
type DeleteSqlNode struct {
	RelationName string
	Conditions   []ConditionSqlNode
}

// InsertSqlNode is a parsed "INSERT INTO relation VALUES (...), (...)"
type InsertSqlNode struct {
	RelationName string
	Values       [][]types.Value
}

// SelectSqlNode is a parsed "SELECT * FROM relation WHERE conditions"
type SelectSqlNode struct {
	RelationName string
	Conditions   []ConditionSqlNode
}
