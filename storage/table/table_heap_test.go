package table

import (
	"bytes"
	"errors"
	"testing"

	"github.com/meguriri/miniob-2025/storage/buffer"
	"github.com/meguriri/miniob-2025/storage/disk"
	"github.com/meguriri/miniob-2025/storage/page"
	"github.com/meguriri/miniob-2025/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBPM(poolSize uint32) *buffer.BufferPoolManager {
	return buffer.NewBufferPoolManager(poolSize, disk.NewVirtualDiskManagerImpl("heap.db"))
}

func fill(b byte, size int) []byte {
	return bytes.Repeat([]byte{b}, size)
}

func TestSlotCapacity(t *testing.T) {
	assert.Equal(t, uint32(4), slotCapacity(1000))
	assert.Equal(t, uint32(0), slotCapacity(5000))
	assert.Equal(t, uint32(0), slotCapacity(0))

	n := slotCapacity(7)
	assert.True(t, sizeTablePageHeader+bitmapSize(n)+n*7 <= 4096)
	assert.True(t, sizeTablePageHeader+bitmapSize(n+1)+(n+1)*7 > 4096)
}

func TestTableHeapInsertAndIterate(t *testing.T) {
	heap, err := NewTableHeap(newBPM(8), 1000)
	require.NoError(t, err)

	rids := make([]page.RID, 0)
	for i := 0; i < 6; i++ {
		rid, err := heap.InsertRecord(fill(byte(i+1), 1000))
		require.NoError(t, err)
		rids = append(rids, rid)
	}
	// four records fit in a page, so the heap grew a second page
	assert.Equal(t, heap.GetFirstPageId(), rids[3].GetPageId())
	assert.NotEqual(t, rids[3].GetPageId(), rids[4].GetPageId())
	assert.Equal(t, uint32(0), rids[4].GetSlotNum())

	it := heap.Iterator()
	count := 0
	for rec, err := it.Next(); rec != nil; rec, err = it.Next() {
		require.NoError(t, err)
		assert.Equal(t, rids[count], rec.RID())
		assert.Equal(t, fill(byte(count+1), 1000), rec.Data())
		count++
	}
	assert.Equal(t, 6, count)
	assert.True(t, it.End())
	assert.Nil(t, it.Current())
}

func TestTableHeapUpdateDeleteRestore(t *testing.T) {
	heap, err := NewTableHeap(newBPM(8), 8)
	require.NoError(t, err)

	rid, err := heap.InsertRecord(fill(1, 8))
	require.NoError(t, err)

	require.NoError(t, heap.UpdateRecord(rid, fill(2, 8)))
	rec, err := heap.GetRecord(rid)
	require.NoError(t, err)
	assert.Equal(t, fill(2, 8), rec.Data())

	// the returned record owns its bytes
	rec.Data()[0] = 9
	again, err := heap.GetRecord(rid)
	require.NoError(t, err)
	assert.Equal(t, fill(2, 8), again.Data())

	err = heap.UpdateRecord(rid, fill(3, 7))
	assert.True(t, errors.Is(err, ErrRecordSizeMismatch))

	require.NoError(t, heap.DeleteRecord(rid))
	_, err = heap.GetRecord(rid)
	assert.True(t, errors.Is(err, ErrRecordNotExist))
	assert.True(t, errors.Is(heap.UpdateRecord(rid, fill(3, 8)), ErrRecordNotExist))
	assert.True(t, errors.Is(heap.DeleteRecord(rid), ErrRecordNotExist))

	require.NoError(t, heap.RestoreRecord(rid, fill(2, 8)))
	assert.True(t, errors.Is(heap.RestoreRecord(rid, fill(2, 8)), ErrSlotInUse))
	rec, err = heap.GetRecord(rid)
	require.NoError(t, err)
	assert.Equal(t, fill(2, 8), rec.Data())

	// slot freed by delete is reused by the next insert
	require.NoError(t, heap.DeleteRecord(rid))
	reused, err := heap.InsertRecord(fill(4, 8))
	require.NoError(t, err)
	assert.Equal(t, rid, reused)

	_, err = heap.GetRecord(page.NewRID(types.PageID(42), 0))
	assert.True(t, errors.Is(err, ErrRecordNotExist))
}

func TestTableHeapRejectsHugeRecords(t *testing.T) {
	_, err := NewTableHeap(newBPM(8), 5000)
	assert.True(t, errors.Is(err, ErrRecordTooLarge))
}

func TestTableHeapOutgrowsBufferPool(t *testing.T) {
	// ten pages of records through three frames
	heap, err := NewTableHeap(newBPM(3), 1000)
	require.NoError(t, err)

	for i := 0; i < 40; i++ {
		_, err := heap.InsertRecord(fill(byte(i), 1000))
		require.NoError(t, err)
	}

	it := heap.Iterator()
	count := 0
	for rec, err := it.Next(); rec != nil; rec, err = it.Next() {
		require.NoError(t, err)
		assert.Equal(t, fill(byte(count), 1000), rec.Data())
		count++
	}
	require.NoError(t, it.tableHeap.bpm.FlushAllPages())
	assert.Equal(t, 40, count)
}
