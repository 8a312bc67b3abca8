package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenHashMurMurIsStable(t *testing.T) {
	a := GenHashMurMur([]byte{1, 0, 0, 0, 2, 0, 0, 0})
	b := GenHashMurMur([]byte{1, 0, 0, 0, 2, 0, 0, 0})
	c := GenHashMurMur([]byte{1, 0, 0, 0, 3, 0, 0, 0})
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

