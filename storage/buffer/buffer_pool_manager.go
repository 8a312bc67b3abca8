// this code is from https://github.com/brunocalza/go-bustub
// there is license and copyright notice in licenses/go-bustub dir

package buffer

import (
	"fmt"
	"sync"

	"github.com/meguriri/miniob-2025/common"
	"github.com/meguriri/miniob-2025/errors"
	"github.com/meguriri/miniob-2025/storage/disk"
	"github.com/meguriri/miniob-2025/storage/page"
	"github.com/meguriri/miniob-2025/types"
)

const (
	ErrBufferPoolFull = errors.Error("every frame of the buffer pool is pinned")
	ErrPageNotInPool  = errors.Error("page is not in the buffer pool")
	ErrPagePinned     = errors.Error("page is pinned")
)

//BufferPoolManager represents the buffer pool manager
type BufferPoolManager struct {
	diskManager disk.DiskManager
	pages       []*page.Page
	replacer    *ClockReplacer
	freeList    []FrameID
	pageTable   map[types.PageID]FrameID
	mutex       *sync.Mutex
}

// FetchPage fetches the requested page from the buffer pool and pins it.
func (b *BufferPoolManager) FetchPage(pageID types.PageID) (*page.Page, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	// if it is on buffer pool return it
	if frameID, ok := b.pageTable[pageID]; ok {
		pg := b.pages[frameID]
		pg.IncPinCount()
		b.replacer.Pin(frameID)
		return pg, nil
	}

	// get the id from free list or from replacer
	frameID, err := b.getFrameID()
	if err != nil {
		return nil, err
	}

	var pageData [common.PageSize]byte
	if err := b.diskManager.ReadPage(pageID, pageData[:]); err != nil {
		b.freeList = append(b.freeList, frameID)
		return nil, err
	}
	pg := page.New(pageID, 1, false, &pageData)
	b.pageTable[pageID] = frameID
	b.pages[frameID] = pg

	return pg, nil
}

// UnpinPage unpins the target page from the buffer pool.
func (b *BufferPoolManager) UnpinPage(pageID types.PageID, isDirty bool) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	frameID, ok := b.pageTable[pageID]
	if !ok {
		return fmt.Errorf("unpin page %d: %w", pageID, ErrPageNotInPool)
	}
	pg := b.pages[frameID]
	pg.DecPinCount()
	if pg.PinCount() <= 0 {
		b.replacer.Unpin(frameID)
	}
	if isDirty {
		pg.SetIsDirty(true)
	}
	return nil
}

// FlushPage Flushes the target page to disk.
func (b *BufferPoolManager) FlushPage(pageID types.PageID) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	frameID, ok := b.pageTable[pageID]
	if !ok {
		return fmt.Errorf("flush page %d: %w", pageID, ErrPageNotInPool)
	}
	return b.writeBack(b.pages[frameID])
}

// NewPage allocates a new page in the buffer pool with the disk manager help.
// the returned page is pinned.
func (b *BufferPoolManager) NewPage() (*page.Page, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	frameID, err := b.getFrameID()
	if err != nil {
		return nil, err
	}

	// allocates new page
	pageID := b.diskManager.AllocatePage()
	pg := page.NewEmpty(pageID)
	pg.SetIsDirty(true)

	b.pageTable[pageID] = frameID
	b.pages[frameID] = pg

	return pg, nil
}

// DeletePage deletes a page from the buffer pool and deallocates it on disk.
func (b *BufferPoolManager) DeletePage(pageID types.PageID) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if frameID, ok := b.pageTable[pageID]; ok {
		pg := b.pages[frameID]
		if pg.PinCount() > 0 {
			return fmt.Errorf("delete page %d pin count %d: %w", pageID, pg.PinCount(), ErrPagePinned)
		}
		delete(b.pageTable, pageID)
		b.pages[frameID] = nil
		b.replacer.Pin(frameID)
		b.freeList = append(b.freeList, frameID)
	}
	b.diskManager.DeallocatePage(pageID)
	return nil
}

// FlushAllPages flushes all the pages in the buffer pool to disk.
func (b *BufferPoolManager) FlushAllPages() error {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	for _, frameID := range b.pageTable {
		if err := b.writeBack(b.pages[frameID]); err != nil {
			return err
		}
	}
	return nil
}

// caller must hold mutex
func (b *BufferPoolManager) writeBack(pg *page.Page) error {
	data := pg.Data()
	if err := b.diskManager.WritePage(pg.ID(), data[:]); err != nil {
		return fmt.Errorf("write page %d: %w", pg.ID(), err)
	}
	pg.SetIsDirty(false)
	return nil
}

// getFrameID returns an empty frame. a victim page is written back when dirty.
// caller must hold mutex
func (b *BufferPoolManager) getFrameID() (FrameID, error) {
	if len(b.freeList) > 0 {
		frameID := b.freeList[0]
		b.freeList = b.freeList[1:]
		return frameID, nil
	}

	victim := b.replacer.Victim()
	if victim == nil {
		return 0, ErrBufferPoolFull
	}
	currentPage := b.pages[*victim]
	if currentPage != nil {
		if currentPage.IsDirty() {
			if err := b.writeBack(currentPage); err != nil {
				b.replacer.Unpin(*victim)
				return 0, err
			}
		}
		delete(b.pageTable, currentPage.ID())
		b.pages[*victim] = nil
	}
	common.ShPrintf(common.DEBUG_INFO_DETAIL, "evicted frame %d\n", *victim)
	return *victim, nil
}

// PoolSize is the number of frames
func (b *BufferPoolManager) PoolSize() int {
	return len(b.pages)
}

//NewBufferPoolManager returns a empty buffer pool manager
func NewBufferPoolManager(poolSize uint32, diskManager disk.DiskManager) *BufferPoolManager {
	freeList := make([]FrameID, poolSize)
	pages := make([]*page.Page, poolSize)
	for i := uint32(0); i < poolSize; i++ {
		freeList[i] = FrameID(i)
	}

	replacer := NewClockReplacer(poolSize)
	return &BufferPoolManager{diskManager, pages, replacer, freeList, make(map[types.PageID]FrameID), new(sync.Mutex)}
}
