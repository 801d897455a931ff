package ids_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/kgraphcore/ids"
	"github.com/katalvlaran/kgraphcore/internal/xerrors"
	"github.com/stretchr/testify/assert"
)

func TestCheckRange(t *testing.T) {
	assert.NoError(t, ids.CheckRange(ids.SortSubject, 0, 1))
	assert.NoError(t, ids.CheckRange(ids.SortSubject, 41, 42))

	err := ids.CheckRange(ids.SortObject, 42, 42)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, xerrors.ErrOutOfRange))
	assert.Contains(t, err.Error(), "object")
}

func TestSortString(t *testing.T) {
	cases := map[ids.Sort]string{
		ids.SortSubject:   "subject",
		ids.SortPredicate: "predicate",
		ids.SortObject:    "object",
		ids.SortClass:     "class",
		ids.SortProperty:  "property",
		ids.SortShape:     "shape",
		ids.Sort(99):      "unknown-sort",
	}
	for sort, want := range cases {
		assert.Equal(t, want, sort.String())
	}
}
