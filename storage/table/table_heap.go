package table

import (
	"fmt"

	"github.com/meguriri/miniob-2025/common"
	"github.com/meguriri/miniob-2025/errors"
	"github.com/meguriri/miniob-2025/storage/buffer"
	"github.com/meguriri/miniob-2025/storage/page"
	"github.com/meguriri/miniob-2025/storage/record"
	"github.com/meguriri/miniob-2025/types"
)

const (
	ErrRecordNotExist     = errors.Error("record does not exist")
	ErrRecordSizeMismatch = errors.Error("record size does not match the table")
	ErrRecordTooLarge     = errors.Error("record does not fit in a page")
	ErrSlotInUse          = errors.Error("slot is already in use")
)

// TableHeap represents a physical table on disk.
// It contains the id of the first table page. Table pages are singly linked through NextPageId.
// Pages are reached through the buffer pool and every page access happens under
// the heap latch, so a reader sees either the whole old content of a record or the whole new one.
type TableHeap struct {
	bpm         *buffer.BufferPoolManager
	recordSize  uint32
	firstPageId types.PageID
	lastPageId  types.PageID
	latch       common.ReaderWriterLatch
}

// NewTableHeap creates a table heap with one empty page
func NewTableHeap(bpm *buffer.BufferPoolManager, recordSize uint32) (*TableHeap, error) {
	if slotCapacity(recordSize) == 0 {
		return nil, fmt.Errorf("record size %d: %w", recordSize, ErrRecordTooLarge)
	}
	t := &TableHeap{bpm: bpm, recordSize: recordSize, latch: common.NewRWLatch()}
	firstPage, err := t.newPage()
	if err != nil {
		return nil, err
	}
	t.firstPageId = firstPage.GetPageId()
	t.lastPageId = t.firstPageId
	if err := t.unpinPage(firstPage, true); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *TableHeap) GetFirstPageId() types.PageID {
	return t.firstPageId
}

func (t *TableHeap) RecordSize() uint32 {
	return t.recordSize
}

// newPage returns a pinned, initialized page
func (t *TableHeap) newPage() (*TablePage, error) {
	pg, err := t.bpm.NewPage()
	if err != nil {
		return nil, fmt.Errorf("new table page: %w", err)
	}
	tp := newTablePage(pg.ID(), pg.Data()[:])
	tp.Init(t.recordSize)
	return tp, nil
}

// fetchPage pins the page. the caller unpins it with unpinPage
func (t *TableHeap) fetchPage(pageId types.PageID) (*TablePage, error) {
	pg, err := t.bpm.FetchPage(pageId)
	if err != nil {
		return nil, fmt.Errorf("fetch page %d: %w", pageId, err)
	}
	return newTablePage(pageId, pg.Data()[:]), nil
}

func (t *TableHeap) unpinPage(tp *TablePage, isDirty bool) error {
	return t.bpm.UnpinPage(tp.GetPageId(), isDirty)
}

func (t *TableHeap) checkSize(data []byte) error {
	if uint32(len(data)) != t.recordSize {
		return fmt.Errorf("got %d bytes, table uses %d: %w", len(data), t.recordSize, ErrRecordSizeMismatch)
	}
	return nil
}

// InsertRecord stores data in the first free slot and returns its rid
func (t *TableHeap) InsertRecord(data []byte) (page.RID, error) {
	if err := t.checkSize(data); err != nil {
		return page.RID{}, err
	}

	t.latch.WLock()
	defer t.latch.WUnlock()

	pageId := t.firstPageId
	for {
		tp, err := t.fetchPage(pageId)
		if err != nil {
			return page.RID{}, err
		}
		if slot, found := tp.FindFreeSlot(); found {
			tp.SetRecordData(slot, data)
			tp.setSlotUsed(slot, true)
			return page.NewRID(pageId, slot), t.unpinPage(tp, true)
		}

		if next := tp.GetNextPageId(); next.IsValid() {
			if err := t.unpinPage(tp, false); err != nil {
				return page.RID{}, err
			}
			pageId = next
			continue
		}

		// every page is full. link a new one at the tail
		newPage, err := t.newPage()
		if err != nil {
			t.unpinPage(tp, false)
			return page.RID{}, err
		}
		tp.SetNextPageId(newPage.GetPageId())
		t.lastPageId = newPage.GetPageId()
		pageId = t.lastPageId
		if err := t.unpinPage(tp, true); err != nil {
			return page.RID{}, err
		}
		if err := t.unpinPage(newPage, true); err != nil {
			return page.RID{}, err
		}
	}
}

// fetchUsedSlot must be called with the latch held. the returned page is pinned
func (t *TableHeap) fetchUsedSlot(rid page.RID) (*TablePage, error) {
	tp, err := t.fetchPage(rid.GetPageId())
	if err != nil {
		return nil, fmt.Errorf("rid %v: %w", rid, ErrRecordNotExist)
	}
	if !tp.IsSlotUsed(rid.GetSlotNum()) {
		t.unpinPage(tp, false)
		return nil, fmt.Errorf("rid %v: %w", rid, ErrRecordNotExist)
	}
	return tp, nil
}

// GetRecord returns a record which owns a copy of the stored bytes
func (t *TableHeap) GetRecord(rid page.RID) (*record.Record, error) {
	t.latch.RLock()
	defer t.latch.RUnlock()

	tp, err := t.fetchUsedSlot(rid)
	if err != nil {
		return nil, err
	}
	rec := record.NewRecord(rid, tp.GetRecordData(rid.GetSlotNum()))
	return rec, t.unpinPage(tp, false)
}

// UpdateRecord replaces the whole content of the slot at rid
func (t *TableHeap) UpdateRecord(rid page.RID, data []byte) error {
	if err := t.checkSize(data); err != nil {
		return err
	}

	t.latch.WLock()
	defer t.latch.WUnlock()

	tp, err := t.fetchUsedSlot(rid)
	if err != nil {
		return err
	}
	tp.SetRecordData(rid.GetSlotNum(), data)
	return t.unpinPage(tp, true)
}

func (t *TableHeap) DeleteRecord(rid page.RID) error {
	t.latch.WLock()
	defer t.latch.WUnlock()

	tp, err := t.fetchUsedSlot(rid)
	if err != nil {
		return err
	}
	tp.setSlotUsed(rid.GetSlotNum(), false)
	return t.unpinPage(tp, true)
}

// RestoreRecord puts data back into the free slot at rid. used on rollback of delete
func (t *TableHeap) RestoreRecord(rid page.RID, data []byte) error {
	if err := t.checkSize(data); err != nil {
		return err
	}

	t.latch.WLock()
	defer t.latch.WUnlock()

	tp, err := t.fetchPage(rid.GetPageId())
	if err != nil {
		return err
	}
	if rid.GetSlotNum() >= tp.GetSlotCount() {
		t.unpinPage(tp, false)
		return fmt.Errorf("rid %v: %w", rid, ErrRecordNotExist)
	}
	if tp.IsSlotUsed(rid.GetSlotNum()) {
		t.unpinPage(tp, false)
		return fmt.Errorf("rid %v: %w", rid, ErrSlotInUse)
	}
	tp.SetRecordData(rid.GetSlotNum(), data)
	tp.setSlotUsed(rid.GetSlotNum(), true)
	return t.unpinPage(tp, true)
}

// Iterator returns an iterator over the live records in rid order
func (t *TableHeap) Iterator() *TableHeapIterator {
	return newTableHeapIterator(t)
}
