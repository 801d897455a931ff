// Package bitmatrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// bitmatrix package. All algorithms MUST return these sentinels and
// tests MUST check them via errors.Is.
package bitmatrix

import (
	"fmt"

	"github.com/katalvlaran/kgraphcore/internal/xerrors"
)

// ErrInvalidDimensions is returned when requested shape is invalid
// (rows<=0 or cols<=0).
var ErrInvalidDimensions = xerrors.ErrInvalidDimensions

// ErrOutOfRange indicates that a row or column index is outside valid
// bounds. Public indexers (Test/Set/Clear) MUST return this, not panic.
var ErrOutOfRange = xerrors.ErrOutOfRange

// ErrDimensionMismatch names incompatible dimensions between two
// operands. No function in this package returns it: And/Or/AndNot and
// the other word-parallel kernels panic on mismatched rows instead (see
// mustSameLen).
var ErrDimensionMismatch = fmt.Errorf("bitmatrix: dimension mismatch")

func matrixErrorf(op string, err error) error {
	return xerrors.Wrap("bitmatrix", op, err)
}
