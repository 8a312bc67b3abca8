package page

import (
	"encoding/binary"
	"fmt"

	"github.com/meguriri/miniob-2025/types"
)

// RID is the record identifier for the given page identifier and slot number
type RID struct {
	PageId  types.PageID
	SlotNum uint32
}

func NewRID(pageId types.PageID, slotNum uint32) RID {
	return RID{pageId, slotNum}
}

// Set sets the recod identifier
func (r *RID) Set(pageId types.PageID, slot uint32) {
	r.PageId = pageId
	r.SlotNum = slot
}

// GetPageId gets the page id
func (r *RID) GetPageId() types.PageID {
	return r.PageId
}

// GetSlotNum gets the slot number
func (r *RID) GetSlotNum() uint32 {
	return r.SlotNum
}

// Serialize returns 8 bytes. page id first, then slot number
func (r *RID) Serialize() []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(r.PageId))
	binary.LittleEndian.PutUint32(buf[4:8], r.SlotNum)
	return buf
}

func (r RID) String() string {
	return fmt.Sprintf("%d:%d", r.PageId, r.SlotNum)
}
