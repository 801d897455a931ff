package shape

import "github.com/katalvlaran/kgraphcore/internal/xerrors"

// ErrOutOfRange indicates a node, class, or property ID exceeds its
// capacity.
var ErrOutOfRange = xerrors.ErrOutOfRange

// ErrCapacityExceeded indicates NewValidator was asked for an allocation
// the backing bitmatrix allocator refused.
var ErrCapacityExceeded = xerrors.ErrCapacityExceeded

// ErrUnknownShape indicates a validation request named a shape slot that
// was never registered, per §4.4's "unknown_shape" failure reason.
var ErrUnknownShape = xerrors.ErrUnknownShape

// ErrInvalidDimensions indicates a malformed validator input: a zero
// shape-slot count in NewValidator, a mask whose length does not match
// the validator's row stride in RegisterShape, or a store-backed extended
// constraint evaluated without a Store.
var ErrInvalidDimensions = xerrors.ErrInvalidDimensions

func shapeErrorf(op string, err error) error {
	return xerrors.Wrap("shape", op, err)
}
