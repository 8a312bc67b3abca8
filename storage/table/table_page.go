package table

import (
	"encoding/binary"

	"github.com/meguriri/miniob-2025/common"
	"github.com/meguriri/miniob-2025/types"
)

const offsetNextPageId = uint32(0)
const offsetSlotCount = uint32(4)
const offsetRecordSize = uint32(8)
const sizeTablePageHeader = uint32(12)

// Slotted page for fixed width records:
//
//	-----------------------------------------------------------------------
//	| HEADER | USED SLOT BITMAP | SLOT_0 | SLOT_1 | ... | SLOT_(count-1) |
//	-----------------------------------------------------------------------
//	Header format (size in bytes):
//	-------------------------------------------------------
//	| NextPageId (4) | SlotCount (4) | RecordSize (4) |
//	-------------------------------------------------------
type TablePage struct {
	pageId types.PageID
	data   []byte
}

func newTablePage(pageId types.PageID, data []byte) *TablePage {
	return &TablePage{pageId, data}
}

// slotCapacity returns how many records of recordSize fit in one page
func slotCapacity(recordSize uint32) uint32 {
	if recordSize == 0 {
		return 0
	}
	avail := uint32(common.PageSize) - sizeTablePageHeader
	n := avail * 8 / (recordSize*8 + 1)
	for n > 0 && bitmapSize(n)+n*recordSize > avail {
		n--
	}
	return n
}

func bitmapSize(slotCount uint32) uint32 {
	return (slotCount + 7) / 8
}

func (tp *TablePage) Init(recordSize uint32) {
	for i := range tp.data {
		tp.data[i] = 0
	}
	tp.SetNextPageId(types.InvalidPageID)
	binary.LittleEndian.PutUint32(tp.data[offsetSlotCount:], slotCapacity(recordSize))
	binary.LittleEndian.PutUint32(tp.data[offsetRecordSize:], recordSize)
}

func (tp *TablePage) GetPageId() types.PageID {
	return tp.pageId
}

func (tp *TablePage) GetNextPageId() types.PageID {
	return types.NewPageIDFromBytes(tp.data[offsetNextPageId:])
}

func (tp *TablePage) SetNextPageId(pageId types.PageID) {
	copy(tp.data[offsetNextPageId:], pageId.Serialize())
}

func (tp *TablePage) GetSlotCount() uint32 {
	return binary.LittleEndian.Uint32(tp.data[offsetSlotCount:])
}

func (tp *TablePage) GetRecordSize() uint32 {
	return binary.LittleEndian.Uint32(tp.data[offsetRecordSize:])
}

func (tp *TablePage) IsSlotUsed(slot uint32) bool {
	if slot >= tp.GetSlotCount() {
		return false
	}
	return tp.data[sizeTablePageHeader+slot/8]&(1<<(slot%8)) != 0
}

func (tp *TablePage) setSlotUsed(slot uint32, used bool) {
	idx := sizeTablePageHeader + slot/8
	if used {
		tp.data[idx] |= 1 << (slot % 8)
	} else {
		tp.data[idx] &^= 1 << (slot % 8)
	}
}

func (tp *TablePage) slotOffset(slot uint32) uint32 {
	return sizeTablePageHeader + bitmapSize(tp.GetSlotCount()) + slot*tp.GetRecordSize()
}

// GetRecordData returns a copy of the slot content
func (tp *TablePage) GetRecordData(slot uint32) []byte {
	size := tp.GetRecordSize()
	ret := make([]byte, size)
	offset := tp.slotOffset(slot)
	copy(ret, tp.data[offset:offset+size])
	return ret
}

func (tp *TablePage) SetRecordData(slot uint32, data []byte) {
	offset := tp.slotOffset(slot)
	copy(tp.data[offset:offset+tp.GetRecordSize()], data)
}

func (tp *TablePage) FindFreeSlot() (uint32, bool) {
	count := tp.GetSlotCount()
	for slot := uint32(0); slot < count; slot++ {
		if !tp.IsSlotUsed(slot) {
			return slot, true
		}
	}
	return 0, false
}

// NextUsedSlot returns the first used slot at or after from
func (tp *TablePage) NextUsedSlot(from uint32) (uint32, bool) {
	count := tp.GetSlotCount()
	for slot := from; slot < count; slot++ {
		if tp.IsSlotUsed(slot) {
			return slot, true
		}
	}
	return 0, false
}
