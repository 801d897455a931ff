package orchestrator

import "github.com/katalvlaran/kgraphcore/internal/xerrors"

// ErrPhaseViolation is the shared phase-violation sentinel. No method in
// this package returns it: the RWMutex gives mutations exclusive access
// and queries shared access, and stale reasoning is reported through
// NeedsRematerialize rather than as an error.
var ErrPhaseViolation = xerrors.ErrPhaseViolation

// ErrOutOfRange is returned when an ID argument exceeds its sort's
// declared capacity.
var ErrOutOfRange = xerrors.ErrOutOfRange

func orchestratorErrorf(op string, err error) error {
	return xerrors.Wrap("orchestrator", op, err)
}
