package compliance

import "github.com/katalvlaran/kgraphcore/internal/xerrors"

// ErrInvalidDimensions indicates a Certify input had a non-positive
// count where one is required.
var ErrInvalidDimensions = xerrors.ErrInvalidDimensions

func complianceErrorf(op string, err error) error {
	return xerrors.Wrap("compliance", op, err)
}
