package syntheticgraph_test

import (
	"testing"

	"github.com/katalvlaran/kgraphcore/reasoner"
	"github.com/katalvlaran/kgraphcore/syntheticgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainClassHierarchy(t *testing.T) {
	axioms, err := syntheticgraph.ChainClassHierarchy(5)
	require.NoError(t, err)
	require.Len(t, axioms, 5)
	for i, a := range axioms {
		assert.Equal(t, reasoner.AxiomSubClass, a.Kind)
		assert.EqualValues(t, i+1, a.A)
		assert.EqualValues(t, i, a.B)
	}

	_, err = syntheticgraph.ChainClassHierarchy(0)
	assert.ErrorIs(t, err, syntheticgraph.ErrTooFewElements)
}

func TestStarOntology(t *testing.T) {
	axioms, err := syntheticgraph.StarOntology(10)
	require.NoError(t, err)
	require.Len(t, axioms, 10)
	for _, a := range axioms {
		assert.Equal(t, reasoner.AxiomSubClass, a.Kind)
		assert.EqualValues(t, 0, a.B)
	}

	_, err = syntheticgraph.StarOntology(0)
	assert.ErrorIs(t, err, syntheticgraph.ErrTooFewElements)
}

func TestDepartmentFixture(t *testing.T) {
	triples, err := syntheticgraph.DepartmentFixture(100)
	require.NoError(t, err)
	require.Len(t, triples, 200)

	var typeTriples, deptTriples int
	for _, tr := range triples {
		switch tr.Predicate {
		case 0:
			typeTriples++
			assert.EqualValues(t, 100, tr.Object)
		case 1:
			deptTriples++
			assert.GreaterOrEqual(t, tr.Object, uint32(200))
			assert.Less(t, tr.Object, uint32(250))
		}
	}
	assert.Equal(t, 100, typeTriples)
	assert.Equal(t, 100, deptTriples)
}

func TestDepartmentFixtureCustomPredicates(t *testing.T) {
	triples, err := syntheticgraph.DepartmentFixture(5,
		syntheticgraph.WithTypePredicate(9), syntheticgraph.WithDeptPredicate(8))
	require.NoError(t, err)
	assert.EqualValues(t, 9, triples[0].Predicate)
	assert.EqualValues(t, 8, triples[1].Predicate)
}

func TestRandomShapeBatchDeterministic(t *testing.T) {
	a, err := syntheticgraph.RandomShapeBatch(4, 2, 2, syntheticgraph.WithSeed(42))
	require.NoError(t, err)
	b, err := syntheticgraph.RandomShapeBatch(4, 2, 2, syntheticgraph.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := syntheticgraph.RandomShapeBatch(4, 2, 2, syntheticgraph.WithSeed(7))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}
