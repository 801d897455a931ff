package bitmatrix_test

import (
	"testing"

	"github.com/katalvlaran/kgraphcore/bitmatrix"
	"github.com/stretchr/testify/assert"
)

func TestAndOrAndNot(t *testing.T) {
	a := []uint64{0b1010, 0b1111}
	b := []uint64{0b0110, 0b0001}

	and := make([]uint64, 2)
	bitmatrix.And(and, a, b)
	assert.Equal(t, []uint64{0b0010, 0b0001}, and)

	or := make([]uint64, 2)
	bitmatrix.Or(or, a, b)
	assert.Equal(t, []uint64{0b1110, 0b1111}, or)

	andNot := make([]uint64, 2)
	bitmatrix.AndNot(andNot, a, b)
	assert.Equal(t, []uint64{0b1000, 0b1110}, andNot)
}

func TestSetOpLaws(t *testing.T) {
	a := []uint64{0xF0F0F0F0, 0x0000FFFF}
	b := []uint64{0x0F0F0F0F, 0xFFFF0000}

	ab := make([]uint64, 2)
	ba := make([]uint64, 2)
	bitmatrix.And(ab, a, b)
	bitmatrix.And(ba, b, a)
	assert.Equal(t, ab, ba, "intersect must be commutative")

	ub := make([]uint64, 2)
	bu := make([]uint64, 2)
	bitmatrix.Or(ub, a, b)
	bitmatrix.Or(bu, b, a)
	assert.Equal(t, ub, bu, "union must be commutative")

	selfDiff := make([]uint64, 2)
	bitmatrix.AndNot(selfDiff, a, a)
	assert.Equal(t, 0, bitmatrix.PopcountWords(selfDiff), "difference(a,a) must be empty")

	// union(a, difference(b,a)) == union(a,b)
	diffBA := make([]uint64, 2)
	bitmatrix.AndNot(diffBA, b, a)
	lhs := make([]uint64, 2)
	bitmatrix.Or(lhs, a, diffBA)
	assert.Equal(t, ub, lhs)
}

func TestAnyAndContainsAll(t *testing.T) {
	have := []uint64{0b1110}
	required := []uint64{0b0110}
	assert.True(t, bitmatrix.ContainsAll(have, required))
	assert.True(t, bitmatrix.AnyAnd(have, required))

	missing := []uint64{0b0001}
	assert.False(t, bitmatrix.ContainsAll(have, missing))
	assert.False(t, bitmatrix.AnyAnd(have, missing))
}

func TestEqual(t *testing.T) {
	assert.True(t, bitmatrix.Equal([]uint64{1, 2}, []uint64{1, 2}))
	assert.False(t, bitmatrix.Equal([]uint64{1, 2}, []uint64{1, 3}))
	assert.False(t, bitmatrix.Equal([]uint64{1}, []uint64{1, 2}))
}

func TestMismatchedLengthPanics(t *testing.T) {
	assert.Panics(t, func() {
		bitmatrix.And(make([]uint64, 2), []uint64{1}, []uint64{1, 2})
	})
}
