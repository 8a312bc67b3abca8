package tuple

import (
	"github.com/meguriri/miniob-2025/errors"
	"github.com/meguriri/miniob-2025/types"
)

const ErrCellNotExist = errors.Error("cell does not exist")

// Tuple is the unit which flows between executors.
type Tuple interface {
	CellNum() int
	CellAt(idx int) (types.Value, error)
	// FindCell looks a cell up by field name. "table.field" is accepted too.
	FindCell(name string) (types.Value, error)
}
