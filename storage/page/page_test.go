package page

import (
	"testing"

	"github.com/meguriri/miniob-2025/types"
	"github.com/stretchr/testify/assert"
)

func TestPinCountAndCopy(t *testing.T) {
	p := NewEmpty(types.PageID(3))
	assert.Equal(t, types.PageID(3), p.ID())
	assert.Equal(t, 1, p.PinCount())

	p.IncPinCount()
	p.DecPinCount()
	p.DecPinCount()
	p.DecPinCount()
	assert.Equal(t, 0, p.PinCount())

	p.Copy(2, []byte("abc"))
	assert.Equal(t, []byte{0, 0, 'a', 'b', 'c', 0}, p.Data()[:6])

	assert.False(t, p.IsDirty())
	p.SetIsDirty(true)
	assert.True(t, p.IsDirty())
}
