package join

import "github.com/katalvlaran/kgraphcore/bitmatrix"

const (
	opIntersect  = "Intersect"
	opUnion      = "Union"
	opDifference = "Difference"
)

func checkSameUniverse(a, b *ResultVec) error {
	if a.n != b.n {
		return ErrDimensionMismatch
	}

	return nil
}

// Intersect returns the word-wise AND of a and b with a fresh popcount.
// Intersect(a,b) == Intersect(b,a).
func Intersect(a, b *ResultVec) (*ResultVec, error) {
	if err := checkSameUniverse(a, b); err != nil {
		return nil, joinErrorf(opIntersect, err)
	}
	out := NewResultVec(a.n)
	bitmatrix.And(out.words, a.words, b.words)
	out.popcount = bitmatrix.PopcountWords(out.words)

	return out, nil
}

// Union returns the word-wise OR of a and b with a fresh popcount.
// Union(a,b) == Union(b,a).
func Union(a, b *ResultVec) (*ResultVec, error) {
	if err := checkSameUniverse(a, b); err != nil {
		return nil, joinErrorf(opUnion, err)
	}
	out := NewResultVec(a.n)
	bitmatrix.Or(out.words, a.words, b.words)
	out.popcount = bitmatrix.PopcountWords(out.words)

	return out, nil
}

// Difference returns the word-wise AND-NOT of a and b (a minus b) with a
// fresh popcount. Difference(a,a) always has cardinality zero.
func Difference(a, b *ResultVec) (*ResultVec, error) {
	if err := checkSameUniverse(a, b); err != nil {
		return nil, joinErrorf(opDifference, err)
	}
	out := NewResultVec(a.n)
	bitmatrix.AndNot(out.words, a.words, b.words)
	out.popcount = bitmatrix.PopcountWords(out.words)

	return out, nil
}
