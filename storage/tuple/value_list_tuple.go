package tuple

import (
	"fmt"
	"strings"

	"github.com/meguriri/miniob-2025/types"
)

// ValueListTuple holds computed values which are not backed by a stored record
type ValueListTuple struct {
	names []string
	cells []types.Value
}

// NewValueListTuple builds a tuple from parallel name and value lists.
// names may be nil, then FindCell never matches.
func NewValueListTuple(names []string, cells []types.Value) *ValueListTuple {
	return &ValueListTuple{names, cells}
}

func (t *ValueListTuple) CellNum() int {
	return len(t.cells)
}

func (t *ValueListTuple) CellAt(idx int) (types.Value, error) {
	if idx < 0 || idx >= len(t.cells) {
		return types.Value{}, fmt.Errorf("cell %d: %w", idx, ErrCellNotExist)
	}
	return t.cells[idx], nil
}

func (t *ValueListTuple) FindCell(name string) (types.Value, error) {
	for i, n := range t.names {
		if strings.EqualFold(n, name) && i < len(t.cells) {
			return t.cells[i], nil
		}
	}
	return types.Value{}, fmt.Errorf("cell %s: %w", name, ErrCellNotExist)
}
