package reasoner

import "github.com/katalvlaran/kgraphcore/bitmatrix"

// warshallCloseInPlace computes the reflexive-transitive closure of a
// square bit-matrix in place: after it returns, m.Test(i, j) holds iff j
// is reachable from i by zero or more hops along the original relation.
//
// This is the bit-parallel transposition of a Floyd–Warshall-style
// closure: instead of relaxing a scalar distance d[i][j] = min(d[i][j],
// d[i][k]+d[k][j]), it relaxes a bit row[i] |= row[i] OR-ed with row[k]
// whenever i can reach k. Loop order is fixed (k -> i -> j) to match the
// same deterministic accumulation order; the innermost "j" loop is
// replaced wholesale by one word-parallel OR across the row, since OR is
// associative and commutative and a whole row is one relaxation step.
//
// Complexity: O(n^2 * n/64) word operations, O(1) extra space beyond the
// matrix itself.
func warshallCloseInPlace(m *bitmatrix.Matrix) {
	n := m.Rows()

	for k := 0; k < n; k++ {
		kRow := m.Row(k)

		for i := 0; i < n; i++ {
			if !m.Test(i, k) {
				// i cannot reach k: no relaxation via k can improve row i.
				continue
			}

			iRow := m.Row(i)
			bitmatrix.Or(iRow, iRow, kRow)
		}
	}
}
