package intern

import "github.com/katalvlaran/kgraphcore/internal/xerrors"

// ErrCapacityExceeded indicates a sort's namespace has no room left for
// a new name under its declared capacity.
var ErrCapacityExceeded = xerrors.ErrCapacityExceeded

// ErrOutOfRange indicates Resolve was asked about an ID never allocated
// for that sort.
var ErrOutOfRange = xerrors.ErrOutOfRange

func internErrorf(op string, err error) error {
	return xerrors.Wrap("intern", op, err)
}
