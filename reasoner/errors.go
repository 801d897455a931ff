package reasoner

import "github.com/katalvlaran/kgraphcore/internal/xerrors"

// ErrOutOfRange indicates a class or property ID exceeds its capacity.
var ErrOutOfRange = xerrors.ErrOutOfRange

// ErrCapacityExceeded indicates New() was asked for an allocation the
// backing bitmatrix allocator refused.
var ErrCapacityExceeded = xerrors.ErrCapacityExceeded

// ErrAllocationFailed is the shared allocation-failure sentinel. No
// function in this package returns it.
var ErrAllocationFailed = xerrors.ErrAllocationFailed

// ErrPhaseViolation marks a domain/range axiom with no type predicate
// configured to receive its inferred facts.
var ErrPhaseViolation = xerrors.ErrPhaseViolation

func reasonerErrorf(op string, err error) error {
	return xerrors.Wrap("reasoner", op, err)
}
