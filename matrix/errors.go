// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All operations return these sentinels and tests check them
// via errors.Is. No operation panics on user-triggered error conditions.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested or ingested shape is invalid:
	// fewer than MinRows rows or fewer than MinCols columns.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrRagged indicates rows of differing lengths in ingested cell data.
	ErrRagged = errors.New("matrix: all rows must have the same length")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	// Public indexers and row kernels return this, they never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrZeroScale indicates an attempt to scale a row by zero, which is not
	// an elementary row operation (it is irreversible).
	ErrZeroScale = errors.New("matrix: row scale factor must be non-zero")
)
