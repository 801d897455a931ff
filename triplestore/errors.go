// Package triplestore: sentinel error set.
package triplestore

import "github.com/katalvlaran/kgraphcore/internal/xerrors"

// ErrOutOfRange indicates an ID argument exceeds its sort's capacity.
var ErrOutOfRange = xerrors.ErrOutOfRange

// ErrCapacityExceeded indicates create() was asked for an allocation the
// backing bitmatrix allocator refused.
var ErrCapacityExceeded = xerrors.ErrCapacityExceeded

// ErrAllocationFailed is the shared allocation-failure sentinel. No
// function in this package returns it.
var ErrAllocationFailed = xerrors.ErrAllocationFailed

func storeErrorf(op string, err error) error {
	return xerrors.Wrap("triplestore", op, err)
}
