package syntheticgraph

import (
	"errors"
	"fmt"
)

// ErrTooFewElements indicates a numeric parameter (depth, leaf count,
// node count) fell below the constructor's minimum, mirroring the
// teacher's ErrTooFewVertices validation habit.
var ErrTooFewElements = errors.New("syntheticgraph: too few elements")

func tooFewErrorf(method string, got, min int) error {
	return fmt.Errorf("%s: got %d < min %d: %w", method, got, min, ErrTooFewElements)
}
