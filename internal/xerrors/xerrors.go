// Package xerrors centralizes the sentinel error taxonomy shared by every
// engine package (triplestore, reasoner, shape, compliance, orchestrator).
//
// The taxonomy mirrors the roles described in the error-handling design:
// hot-path query operations never fail (they are total functions of
// in-range inputs), mutation-phase operations can fail and report the
// error to the caller, and no engine terminates the process or returns a
// silent partial result.
//
// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message returned by Wrap is prefixed "<pkg>.<op>: ..." for
// consistency and to allow easy grepping across logs. Callers that need
// to distinguish error kinds MUST use errors.Is against the sentinels
// below, never string-match the wrapped message.
package xerrors

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityExceeded is returned when a mutation would push a matrix
	// dimension past its declared capacity. Never retried inside the core.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrOutOfRange is returned when an ID argument exceeds its sort's
	// declared capacity. Always a caller bug; never recovered internally.
	ErrOutOfRange = errors.New("id out of range")

	// ErrPhaseViolation is returned when a mutation is issued on a shared
	// engine, or when a query depends on a materialization that has not
	// run (and the engine chooses to refuse rather than answer partially).
	ErrPhaseViolation = errors.New("phase violation")

	// ErrUnknownShape is returned as an invalid validation result's reason
	// when a shape slot is empty, not as a fatal error.
	ErrUnknownShape = errors.New("unknown shape")

	// ErrAllocationFailed marks a fatal failure during create/materialize
	// when the allocator refuses a request.
	ErrAllocationFailed = errors.New("allocation failed")

	// ErrInvalidDimensions is returned by constructors given non-positive
	// or otherwise malformed shape parameters.
	ErrInvalidDimensions = errors.New("invalid dimensions")
)

// Wrap attaches package and operation context to err without disturbing
// errors.Is matching against the sentinels above.
func Wrap(pkg, op string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s.%s: %w", pkg, op, err)
}
