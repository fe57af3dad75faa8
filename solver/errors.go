package solver

import "errors"

// Sentinel errors for the elimination engine.
//
// Input-shape violations (ragged rows, too few rows/columns) surface as the
// matrix package sentinels ErrBadShape and ErrRagged, wrapped with the
// operation name; match them with errors.Is.
var (
	// ErrArithmetic indicates a division by zero inside the engine. Pivots
	// are only selected when confirmed non-zero, so this cannot occur on the
	// normal path; seeing it means an engine invariant was violated and the
	// result must be discarded, not retried.
	ErrArithmetic = errors.New("solver: arithmetic invariant violated")
)
