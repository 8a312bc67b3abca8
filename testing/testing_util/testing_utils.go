// this code is from https://github.com/brunocalza/go-bustub
// there is license and copyright notice in licenses/go-bustub dir

package testing_util

import (
	"fmt"

	"github.com/meguriri/miniob-2025/catalog"
	"github.com/meguriri/miniob-2025/common"
	"github.com/meguriri/miniob-2025/storage/buffer"
	"github.com/meguriri/miniob-2025/storage/disk"
	"github.com/meguriri/miniob-2025/types"
)

func GetValue(data interface{}) (value types.Value) {
	switch v := data.(type) {
	case int:
		value = types.NewInteger(int32(v))
	case int32:
		value = types.NewInteger(v)
	case float32:
		value = types.NewFloat(float32(v))
	case string:
		value = types.NewChar(v)
	case bool:
		value = types.NewBoolean(v)
	case nil:
		value = types.NewNull()
	case types.Value:
		return v
	case *types.Value:
		return *v
	}
	return
}

func GetValueType(data interface{}) (value types.TypeID) {
	switch data.(type) {
	case int, int32:
		return types.Integer
	case float32:
		return types.Float
	case string:
		return types.Char
	case bool:
		return types.Boolean
	case nil:
		return types.Null
	case types.Value:
		return data.(types.Value).ValueType()
	case *types.Value:
		val := data.(*types.Value)
		return val.ValueType()
	}
	panic("not implemented")
}

// NewTestCatalog returns an empty catalog over an in-memory disk.
// the caller should ShutDown the disk manager.
func NewTestCatalog() (*catalog.Catalog, disk.DiskManager) {
	dm := disk.NewVirtualDiskManagerImpl("test.db")
	return catalog.NewCatalog(buffer.NewBufferPoolManager(common.BufferPoolMaxFrameNum, dm)), dm
}

// MakeTable creates a table and stores rows in it directly, bypassing any transaction.
// each row holds one Go value per field, converted with GetValue.
func MakeTable(c *catalog.Catalog, name string, attrs []catalog.AttrInfo, rows [][]interface{}) (*catalog.Table, error) {
	table_, err := c.CreateTable(name, attrs)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		values := make([]types.Value, 0, len(row))
		for _, data := range row {
			values = append(values, GetValue(data))
		}
		rec, err := table_.MakeRecord(values)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if err := table_.InsertRecord(rec); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	return table_, nil
}
