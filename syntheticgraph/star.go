package syntheticgraph

import (
	"github.com/katalvlaran/kgraphcore/ids"
	"github.com/katalvlaran/kgraphcore/reasoner"
)

const (
	methodStar      = "StarOntology"
	minStarLeaves   = 1
	starHubClass    = ids.ID(0)
	starFirstLeafID = ids.ID(1)
)

// StarOntology returns nLeaves AxiomSubClass axioms, one per leaf class
// pointing at the fixed hub class 0: leaf[i] subClassOf hub, for
// i = 1..nLeaves. Unlike ChainClassHierarchy this produces a flat
// fan-in shape with no transitive depth beyond one hop, exercising the
// reasoner's closure on a wide rather than deep hierarchy.
//
// Complexity: O(nLeaves) time, O(nLeaves) space.
func StarOntology(nLeaves int, _ ...Option) ([]reasoner.Axiom, error) {
	if nLeaves < minStarLeaves {
		return nil, tooFewErrorf(methodStar, nLeaves, minStarLeaves)
	}

	axioms := make([]reasoner.Axiom, 0, nLeaves)
	for i := 0; i < nLeaves; i++ {
		axioms = append(axioms, reasoner.Axiom{
			Kind: reasoner.AxiomSubClass,
			A:    starFirstLeafID + ids.ID(i),
			B:    starHubClass,
		})
	}

	return axioms, nil
}
