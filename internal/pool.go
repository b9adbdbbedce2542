package internal

import (
	"sync"

	"github.com/bits-and-blooms/bitset"
)

// BitSetPool holds scratch bitsets used while decomposing grids into boxes.
var BitSetPool = sync.Pool{
	New: func() interface{} {
		return bitset.New(64)
	},
}

// GetBitSet returns a cleared bitset from the pool.
func GetBitSet() *bitset.BitSet {
	return BitSetPool.Get().(*bitset.BitSet).ClearAll()
}

// PutBitSet returns a bitset to the pool.
func PutBitSet(b *bitset.BitSet) {
	BitSetPool.Put(b)
}
