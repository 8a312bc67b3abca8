package table

import (
	"github.com/meguriri/miniob-2025/storage/page"
	"github.com/meguriri/miniob-2025/storage/record"
	"github.com/meguriri/miniob-2025/types"
)

// TableHeapIterator is the access method for table heaps
//
// It iterates through a table heap when Next is called
// The record that it is being pointed to can be accessed with the method Current
type TableHeapIterator struct {
	tableHeap *TableHeap
	pageId    types.PageID
	nextSlot  uint32
	current   *record.Record
}

func newTableHeapIterator(tableHeap *TableHeap) *TableHeapIterator {
	return &TableHeapIterator{tableHeap: tableHeap, pageId: tableHeap.GetFirstPageId()}
}

// Current points to the record returned by the last Next call
func (it *TableHeapIterator) Current() *record.Record {
	return it.current
}

// End checks if the iterator has no more records
func (it *TableHeapIterator) End() bool {
	return !it.pageId.IsValid()
}

// Next advances the iterator and returns the next live record,
// or nil once the heap is exhausted.
func (it *TableHeapIterator) Next() (*record.Record, error) {
	it.tableHeap.latch.RLock()
	defer it.tableHeap.latch.RUnlock()

	for it.pageId.IsValid() {
		tp, err := it.tableHeap.fetchPage(it.pageId)
		if err != nil {
			return nil, err
		}
		slot, found := tp.NextUsedSlot(it.nextSlot)
		if found {
			it.current = record.NewRecord(page.NewRID(it.pageId, slot), tp.GetRecordData(slot))
		}
		nextPageId := tp.GetNextPageId()
		if err := it.tableHeap.unpinPage(tp, false); err != nil {
			return nil, err
		}
		if found {
			it.nextSlot = slot + 1
			return it.current, nil
		}
		it.pageId = nextPageId
		it.nextSlot = 0
	}
	it.current = nil
	return nil, nil
}
