package ids

import (
	"fmt"

	"github.com/katalvlaran/kgraphcore/internal/xerrors"
)

// CheckRange returns nil if id < capacity, else a wrapped
// xerrors.ErrOutOfRange naming the offending sort. Every mutation-phase
// operation across the engines pre-checks all of its ID arguments this
// way before touching any matrix, so a multi-matrix write (e.g.
// add_triple) can never partially apply.
func CheckRange(sort Sort, id, capacity ID) error {
	if id >= capacity {
		return xerrors.Wrap("ids", "CheckRange", fmt.Errorf("%s id %d >= capacity %d: %w", sort, id, capacity, xerrors.ErrOutOfRange))
	}

	return nil
}
