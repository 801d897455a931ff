package join

import (
	"errors"

	"github.com/katalvlaran/kgraphcore/internal/xerrors"
)

// ErrOutOfRange indicates a pattern referenced an ID outside its sort's
// capacity.
var ErrOutOfRange = xerrors.ErrOutOfRange

// ErrDimensionMismatch indicates two ResultVecs of different sizes were
// combined with Intersect/Union/Difference.
var ErrDimensionMismatch = errors.New("join: dimension mismatch")

func joinErrorf(op string, err error) error {
	return xerrors.Wrap("join", op, err)
}
