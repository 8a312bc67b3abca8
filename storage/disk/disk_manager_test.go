package disk

import (
	"errors"
	"testing"

	"github.com/meguriri/miniob-2025/common"
	"github.com/meguriri/miniob-2025/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWritePage(t *testing.T) {
	dm := NewVirtualDiskManagerImpl("test.db")
	defer dm.ShutDown()

	data := make([]byte, common.PageSize)
	buffer := make([]byte, common.PageSize)

	copy(data, "A test string.")

	assert.True(t, errors.Is(dm.ReadPage(0, buffer), ErrReadPastEOF))
	require.NoError(t, dm.WritePage(0, data))
	require.NoError(t, dm.ReadPage(0, buffer))
	assert.Equal(t, data, buffer)

	copy(data, "Another test string.")

	require.NoError(t, dm.WritePage(5, data))
	require.NoError(t, dm.ReadPage(5, buffer))
	assert.Equal(t, data, buffer)

	assert.Equal(t, uint64(2), dm.GetNumWrites())
	assert.Equal(t, int64(6*common.PageSize), dm.Size())
}

func TestDeallocatedPageSpaceIsReused(t *testing.T) {
	dm := NewVirtualDiskManagerImpl("test.db")
	defer dm.ShutDown()

	first := dm.AllocatePage()
	second := dm.AllocatePage()
	assert.Equal(t, types.PageID(0), first)
	assert.Equal(t, types.PageID(1), second)

	data := make([]byte, common.PageSize)
	copy(data, "first")
	require.NoError(t, dm.WritePage(first, data))
	require.NoError(t, dm.WritePage(second, data))

	dm.DeallocatePage(first)
	buffer := make([]byte, common.PageSize)
	assert.Equal(t, types.DeallocatedPageErr, dm.ReadPage(first, buffer))

	third := dm.AllocatePage()
	assert.Equal(t, types.PageID(2), third)
	copy(data, "third")
	require.NoError(t, dm.WritePage(third, data))
	// the third page lives in the space of the first one
	assert.Equal(t, int64(2*common.PageSize), dm.Size())
	require.NoError(t, dm.ReadPage(third, buffer))
	assert.Equal(t, data, buffer)
}
