// Package matrix provides dense rectangular matrices of exact rationals for
// augmented linear systems.
//
// The matrix package provides:
//
//   - Dense, a rows×cols matrix of rational.Rational with O(1) cell access
//     over a flat backing slice.
//   - Strict ingestion: FromStrings and FromCells validate rectangularity
//     and minimum dimensions (≥1 row, ≥2 columns — at least one coefficient
//     column plus the augmented column) before any arithmetic begins, and
//     always deep-copy so callers' input is never aliased.
//   - The three elementary row operations as in-place kernels (SwapRows,
//     ScaleRow, AddScaledRow), index-checked and exact.
//   - Clone/Equal/Strings for snapshotting, bit-for-bit comparison, and the
//     display-string output contract.
//
// Matrices here are small (an augmented system a person would type in), so
// O(rows·cols) copies for snapshots are acceptable by design.
//
// See the examples in this package and solver for usage patterns.
package matrix
