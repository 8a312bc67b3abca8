package hash

import (
	"encoding/binary"

	"github.com/spaolacci/murmur3"
)

func GenHashMurMur(key []byte) uint32 {
	h := murmur3.New128()
	h.Write(key)
	hash := h.Sum(nil)
	return binary.LittleEndian.Uint32(hash)
}
