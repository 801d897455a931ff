package syntheticgraph

import (
	"github.com/katalvlaran/kgraphcore/ids"
	"github.com/katalvlaran/kgraphcore/reasoner"
)

const (
	methodChain   = "ChainClassHierarchy"
	minChainDepth = 1
)

// ChainClassHierarchy returns depth AxiomSubClass axioms forming a linear
// chain 1 subClassOf 0, 2 subClassOf 1, ..., depth subClassOf depth-1.
// This is the transitive-closure stress shape used by the reasoner
// benchmarks: a single Materialize must make class 0 reachable from class
// `depth` (IsSubclassOf(depth, 0)).
//
// Complexity: O(depth) time, O(depth) space.
func ChainClassHierarchy(depth int, _ ...Option) ([]reasoner.Axiom, error) {
	if depth < minChainDepth {
		return nil, tooFewErrorf(methodChain, depth, minChainDepth)
	}

	axioms := make([]reasoner.Axiom, 0, depth)
	for i := 1; i <= depth; i++ {
		axioms = append(axioms, reasoner.Axiom{
			Kind: reasoner.AxiomSubClass,
			A:    ids.ID(i),
			B:    ids.ID(i - 1),
		})
	}

	return axioms, nil
}
