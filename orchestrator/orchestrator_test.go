package orchestrator_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/kgraphcore/ids"
	"github.com/katalvlaran/kgraphcore/join"
	"github.com/katalvlaran/kgraphcore/orchestrator"
	"github.com/katalvlaran/kgraphcore/reasoner"
	"github.com/katalvlaran/kgraphcore/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrchestrator(t *testing.T) *orchestrator.Orchestrator {
	t.Helper()
	o, err := orchestrator.New(orchestrator.Config{
		Capacity: ids.Capacity{
			Subjects:   1100,
			Predicates: 10,
			Objects:    300,
			Classes:    300,
			Properties: 10,
			Shapes:     4,
		},
		MaxNodes:      1100,
		TypePredicate: 0,
	})
	require.NoError(t, err)

	return o
}

// Cross-engine wiring of S2: through the orchestrator, a subclass axiom
// plus a type triple yields the reasoning-aware answer after Materialize
// while plain Ask stays false, and NeedsRematerialize clears.
func TestOrchestratorS2Wiring(t *testing.T) {
	const employee, manager ids.ID = 100, 101
	o := newOrchestrator(t)

	require.NoError(t, o.AddAxiom(reasoner.Axiom{Kind: reasoner.AxiomSubClass, A: manager, B: employee}))
	require.NoError(t, o.AddTriple(7, 0, manager))
	assert.True(t, o.NeedsRematerialize())

	require.NoError(t, o.Materialize(context.Background()))
	assert.False(t, o.NeedsRematerialize())

	assert.False(t, o.Ask(7, 0, employee))
	assert.True(t, o.AskWithReasoning(7, 0, employee))
	assert.True(t, o.IsSubclassOf(manager, employee))
}

// Cross-engine wiring of S3: AddTriple mirrors rdf:type into the
// validator's node-class matrix and any predicate into node-property.
func TestOrchestratorS3Wiring(t *testing.T) {
	o := newOrchestrator(t)

	require.NoError(t, o.RegisterShape(0, shape.CompiledShape{
		TargetClassMask:      []uint64{0b10, 0, 0, 0, 0},
		RequiredPropertyMask: []uint64{0b10000000},
	}))
	require.NoError(t, o.AddTriple(100, 0, 1))  // rdf:type class 1
	require.NoError(t, o.AddTriple(100, 7, 200)) // has-property 7

	ok, err := o.ValidateNode(100, 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

// Cross-engine wiring of S4: JoinConjunctive over orchestrator-inserted
// triples.
func TestOrchestratorS4Wiring(t *testing.T) {
	o := newOrchestrator(t)

	for s := ids.ID(0); s < 1000; s++ {
		require.NoError(t, o.AddTriple(s, 0, 100))
		require.NoError(t, o.AddTriple(s, 1, 200+s%50))
	}

	subjects, err := o.JoinConjunctive([]join.BoundPattern{
		{Predicate: 0, Object: 100},
		{Predicate: 1, Object: 210},
	})
	require.NoError(t, err)
	assert.Len(t, subjects, 20)
}

// AddAxiom dispatches AxiomReflexive to the reasoner instead of silently
// doing nothing for a tagged-union variant it doesn't recognize.
func TestOrchestratorAddAxiomReflexive(t *testing.T) {
	o := newOrchestrator(t)

	require.NoError(t, o.AddAxiom(reasoner.Axiom{Kind: reasoner.AxiomReflexive, A: 1}))
	assert.True(t, o.IsReflexive(1))
}

// §8 property 10: a mutation between query operations invalidates
// materialize-dependent answers until the next materialize, surfaced
// via NeedsRematerialize.
func TestOrchestratorPhaseSafety(t *testing.T) {
	o := newOrchestrator(t)

	require.NoError(t, o.AddAxiom(reasoner.Axiom{Kind: reasoner.AxiomSubClass, A: 2, B: 1}))
	require.NoError(t, o.Materialize(context.Background()))
	assert.False(t, o.NeedsRematerialize())
	assert.True(t, o.IsSubclassOf(2, 1))

	require.NoError(t, o.AddAxiom(reasoner.Axiom{Kind: reasoner.AxiomSubClass, A: 3, B: 2}))
	assert.True(t, o.NeedsRematerialize())
	// 3 subclass-of 1 is a transitive consequence not yet reflected.
	assert.False(t, o.IsSubclassOf(3, 1))

	require.NoError(t, o.Materialize(context.Background()))
	assert.True(t, o.IsSubclassOf(3, 1))
}
