package join

import (
	"math/bits"

	"github.com/katalvlaran/kgraphcore/bitmatrix"
	"github.com/katalvlaran/kgraphcore/ids"
)

// ResultVec is a bit-vector over a fixed universe (subjects, objects, or
// classes depending on what produced it) accompanied by its cached
// popcount. It is caller-owned and per-query: nothing in this package
// retains a ResultVec across calls.
type ResultVec struct {
	words    []uint64
	n        int // universe size (number of addressable elements)
	popcount int
}

// NewResultVec allocates an empty (all-zero) result vector over a
// universe of n elements.
func NewResultVec(n int) *ResultVec {
	stride := (n + 63) / 64
	if stride == 0 {
		stride = 1
	}

	return &ResultVec{words: make([]uint64, stride), n: n}
}

// Len returns the universe size this vector is defined over.
func (r *ResultVec) Len() int { return r.n }

// Popcount returns the cached cardinality.
func (r *ResultVec) Popcount() int { return r.popcount }

// Test reports whether element i is a member.
func (r *ResultVec) Test(i int) bool {
	if i < 0 || i >= r.n {
		return false
	}

	return r.words[i/64]&(uint64(1)<<uint(i%64)) != 0
}

// Set adds element i to the vector and refreshes the cached popcount.
func (r *ResultVec) Set(i int) {
	if i < 0 || i >= r.n {
		return
	}
	word := i / 64
	mask := uint64(1) << uint(i%64)
	if r.words[word]&mask == 0 {
		r.words[word] |= mask
		r.popcount++
	}
}

// Members extracts every set element via find-lowest-set-bit +
// clear-lowest-set-bit, the standard popcount-style bit iteration idiom.
//
// Complexity: O(stride + popcount).
func (r *ResultVec) Members() []ids.ID {
	out := make([]ids.ID, 0, r.popcount)
	for wordIdx, w := range r.words {
		for w != 0 {
			bit := bits.TrailingZeros64(w)
			out = append(out, ids.ID(wordIdx*64+bit))
			w &= w - 1 // clear lowest set bit
		}
	}

	return out
}
