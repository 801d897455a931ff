package triplestore_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/kgraphcore/ids"
	"github.com/katalvlaran/kgraphcore/triplestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S1 from spec.md §8.
func TestStoreBasicsScenarioS1(t *testing.T) {
	s, err := triplestore.New(100, 10, 300)
	require.NoError(t, err)

	require.NoError(t, s.AddTriple(42, 1, 100))
	require.NoError(t, s.AddTriple(42, 2, 200))
	require.NoError(t, s.AddTriple(99, 1, 100))

	assert.True(t, s.Ask(42, 1, 100))
	assert.False(t, s.Ask(42, 1, 200))
	assert.True(t, s.Ask(42, 2, 200))
	assert.True(t, s.Ask(99, 1, 100))
	assert.False(t, s.Ask(99, 2, 200))
}

// S6 from spec.md §8.
func TestBatchedAskScenarioS6(t *testing.T) {
	s, err := triplestore.New(100, 10, 300)
	require.NoError(t, err)
	require.NoError(t, s.AddTriple(42, 1, 100))
	require.NoError(t, s.AddTriple(42, 2, 200))
	require.NoError(t, s.AddTriple(99, 1, 100))

	got := s.AskBatch([]triplestore.Pattern{
		{Subject: 42, Predicate: 1, Object: 100},
		{Subject: 42, Predicate: 1, Object: 200},
		{Subject: 42, Predicate: 2, Object: 200},
		{Subject: 99, Predicate: 1, Object: 100},
	})
	assert.Equal(t, []bool{true, false, true, true}, got)
}

func TestAskConsistency(t *testing.T) {
	s, err := triplestore.New(50, 5, 50)
	require.NoError(t, err)

	applied := map[triplestore.Triple]bool{}
	ops := []triplestore.Triple{
		{Subject: 1, Predicate: 0, Object: 2},
		{Subject: 1, Predicate: 0, Object: 3},
		{Subject: 2, Predicate: 1, Object: 2},
		{Subject: 1, Predicate: 0, Object: 2}, // duplicate
	}
	for _, tr := range ops {
		require.NoError(t, s.AddTriple(tr.Subject, tr.Predicate, tr.Object))
		applied[tr] = true
	}

	for s1 := ids.ID(0); s1 < 50; s1++ {
		for p1 := ids.ID(0); p1 < 5; p1++ {
			for o1 := ids.ID(0); o1 < 50; o1++ {
				want := applied[triplestore.Triple{Subject: s1, Predicate: p1, Object: o1}]
				assert.Equal(t, want, s.Ask(s1, p1, o1))
			}
		}
	}
}

func TestIdempotentInsertion(t *testing.T) {
	s, err := triplestore.New(10, 10, 10)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, s.AddTriple(1, 1, 1))
	}
	objs := s.Objects(1, 1)
	assert.Equal(t, []ids.ID{1}, objs, "object list must contain the object exactly once")
}

func TestMultiValuedObjectList(t *testing.T) {
	s, err := triplestore.New(10, 10, 10)
	require.NoError(t, err)

	require.NoError(t, s.AddTriple(1, 1, 5)) // head
	require.NoError(t, s.AddTriple(1, 1, 6)) // overflow
	require.NoError(t, s.AddTriple(1, 1, 7)) // overflow

	assert.True(t, s.Ask(1, 1, 5))
	assert.True(t, s.Ask(1, 1, 6))
	assert.True(t, s.Ask(1, 1, 7))
	assert.False(t, s.Ask(1, 1, 8))
	assert.ElementsMatch(t, []ids.ID{5, 6, 7}, s.Objects(1, 1))
}

func TestAddTripleOutOfRange(t *testing.T) {
	s, err := triplestore.New(10, 10, 10)
	require.NoError(t, err)

	err = s.AddTriple(10, 0, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, triplestore.ErrOutOfRange))

	// Out-of-range Ask is harmless and returns false, not an error.
	assert.False(t, s.Ask(1000, 1000, 1000))
}

func TestNewInvalidCapacity(t *testing.T) {
	_, err := triplestore.New(0, 10, 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, triplestore.ErrCapacityExceeded))
}

// Batched ASK equals sequential ASK for arbitrary pattern arrays,
// including arrays not a multiple of 4 (§8 property 3).
func TestBatchedAskEqualsSequential(t *testing.T) {
	s, err := triplestore.New(20, 4, 20)
	require.NoError(t, err)
	require.NoError(t, s.AddTriple(1, 0, 2))
	require.NoError(t, s.AddTriple(3, 1, 4))
	require.NoError(t, s.AddTriple(5, 2, 6))

	var patterns []triplestore.Pattern
	for sub := ids.ID(0); sub < 6; sub++ {
		for pred := ids.ID(0); pred < 3; pred++ {
			for obj := ids.ID(0); obj < 7; obj++ {
				patterns = append(patterns, triplestore.Pattern{Subject: sub, Predicate: pred, Object: obj})
			}
		}
	}

	got := s.AskBatch(patterns)
	for i, p := range patterns {
		assert.Equal(t, s.Ask(p.Subject, p.Predicate, p.Object), got[i], "pattern %d: %+v", i, p)
	}
}
