package main

import (
	"os"

	"github.com/meguriri/miniob-2025/catalog"
	"github.com/meguriri/miniob-2025/common"
	"github.com/meguriri/miniob-2025/execution/expression"
	"github.com/meguriri/miniob-2025/miniob"
	"github.com/meguriri/miniob-2025/planner"
	"github.com/meguriri/miniob-2025/types"
)

// there is no sql front end yet, statements are built as planner nodes.
// this entry point runs a snippet for debugging.
func main() {
	db := miniob.NewMiniobDB("example", 200)
	defer db.Shutdown()

	err := db.CreateTable("name_age_list", []catalog.AttrInfo{
		{Name: "name", Type: types.Char, Length: 16},
		{Name: "age", Type: types.Integer},
		{Name: "birthday", Type: types.Date},
	})
	if err != nil {
		common.ShPrintf(common.FATAL, "create table failed. err:%v\n", err)
		os.Exit(1)
	}

	err = db.Insert(&planner.InsertSqlNode{RelationName: "name_age_list", Values: [][]types.Value{
		{types.NewChar("suzuki"), types.NewInteger(20), types.NewChar("2004-04-01")},
		{types.NewChar("aoki"), types.NewInteger(22), types.NewChar("2002-11-23")},
		{types.NewChar("yamada"), types.NewInteger(25), types.NewChar("1999-07-07")},
	}})
	if err != nil {
		common.ShPrintf(common.FATAL, "insert failed. err:%v\n", err)
		os.Exit(1)
	}

	err = db.Update(&planner.UpdateSqlNode{
		RelationName:  "name_age_list",
		AttributeName: "birthday",
		Value:         types.NewChar("2000-01-01"),
		Conditions: []planner.ConditionSqlNode{
			{AttributeName: "age", Op: expression.GreaterThanOrEqual, Value: types.NewInteger(22)},
		},
	})
	if err != nil {
		common.ShPrintf(common.ERROR, "update failed. err:%v\n", err)
	}

	results, err := db.Select(&planner.SelectSqlNode{RelationName: "name_age_list"})
	if err != nil {
		common.ShPrintf(common.FATAL, "select failed. err:%v\n", err)
		os.Exit(1)
	}
	miniob.PrintExecuteResults(os.Stdout, results)
}
