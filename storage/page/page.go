package page

import (
	"github.com/meguriri/miniob-2025/common"
	"github.com/meguriri/miniob-2025/types"
)

// Page is a frame of the buffer pool holding the content of one disk page
type Page struct {
	id       types.PageID
	pinCount int
	isDirty  bool
	data     *[common.PageSize]byte
}

// IncPinCount increments pin count
func (p *Page) IncPinCount() {
	p.pinCount++
}

// DecPinCount decrements pin count
func (p *Page) DecPinCount() {
	if p.pinCount > 0 {
		p.pinCount--
	}
}

// PinCount returns the pin count
func (p *Page) PinCount() int {
	return p.pinCount
}

// ID returns the page id
func (p *Page) ID() types.PageID {
	return p.id
}

func (p *Page) Data() *[common.PageSize]byte {
	return p.data
}

// Copy writes data into the page at offset
func (p *Page) Copy(offset uint32, data []byte) {
	copy(p.data[offset:], data)
}

func (p *Page) SetIsDirty(isDirty bool) {
	p.isDirty = isDirty
}

func (p *Page) IsDirty() bool {
	return p.isDirty
}

func New(id types.PageID, pinCount int, isDirty bool, data *[common.PageSize]byte) *Page {
	return &Page{id, pinCount, isDirty, data}
}

// NewEmpty returns a zeroed page pinned once
func NewEmpty(id types.PageID) *Page {
	return &Page{id, 1, false, &[common.PageSize]byte{}}
}
