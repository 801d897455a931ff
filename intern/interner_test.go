package intern_test

import (
	"testing"

	"github.com/katalvlaran/kgraphcore/ids"
	"github.com/katalvlaran/kgraphcore/intern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternIdempotent(t *testing.T) {
	in := intern.New(ids.Capacity{Subjects: 10, Predicates: 5, Objects: 10, Classes: 5, Properties: 5, Shapes: 2})

	a, err := in.Intern(ids.SortSubject, "alice")
	require.NoError(t, err)
	b, err := in.Intern(ids.SortSubject, "bob")
	require.NoError(t, err)
	aAgain, err := in.Intern(ids.SortSubject, "alice")
	require.NoError(t, err)

	assert.Equal(t, ids.ID(0), a)
	assert.Equal(t, ids.ID(1), b)
	assert.Equal(t, a, aAgain)
}

func TestInternSeparateNamespaces(t *testing.T) {
	in := intern.New(ids.Capacity{Subjects: 10, Predicates: 5, Objects: 10, Classes: 5, Properties: 5, Shapes: 2})

	subj, err := in.Intern(ids.SortSubject, "x")
	require.NoError(t, err)
	pred, err := in.Intern(ids.SortPredicate, "x")
	require.NoError(t, err)
	assert.Equal(t, ids.ID(0), subj)
	assert.Equal(t, ids.ID(0), pred)
}

func TestResolveRoundTrip(t *testing.T) {
	in := intern.New(ids.Capacity{Subjects: 10})
	id, err := in.Intern(ids.SortSubject, "alice")
	require.NoError(t, err)

	name, err := in.Resolve(ids.SortSubject, id)
	require.NoError(t, err)
	assert.Equal(t, "alice", name)

	_, err = in.Resolve(ids.SortSubject, 999)
	assert.Error(t, err)
}

func TestInternCapacityExceeded(t *testing.T) {
	in := intern.New(ids.Capacity{Subjects: 2})
	_, err := in.Intern(ids.SortSubject, "a")
	require.NoError(t, err)
	_, err = in.Intern(ids.SortSubject, "b")
	require.NoError(t, err)
	_, err = in.Intern(ids.SortSubject, "c")
	assert.ErrorIs(t, err, intern.ErrCapacityExceeded)
	assert.Equal(t, 2, in.Count(ids.SortSubject))
}
