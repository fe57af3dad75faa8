// Package matrix: elementary row operations.
// These are the three Type I/II/III kernels the elimination engine records
// and the replay path re-executes. All three mutate the receiver in place
// and are index-checked; arithmetic is exact throughout.
package matrix

import "github.com/katalvlaran/rref/rational"

// SwapRows exchanges rows i and j (elementary operation Type I).
// Swapping a row with itself is a no-op.
// Returns ErrOutOfRange for invalid row indices.
// Complexity: O(cols).
func (d *Dense) SwapRows(i, j int) error {
	if !d.inBounds(i, 0) || !d.inBounds(j, 0) {
		return ErrOutOfRange
	}
	if i == j {
		return nil
	}

	for col := 0; col < d.cols; col++ {
		a, b := d.index(i, col), d.index(j, col)
		d.cells[a], d.cells[b] = d.cells[b], d.cells[a]
	}

	return nil
}

// ScaleRow multiplies every cell of row i by the non-zero factor f
// (elementary operation Type II).
// Returns ErrOutOfRange for an invalid row index and ErrZeroScale when f is
// zero, since scaling by zero is irreversible and thus not elementary.
// Complexity: O(cols).
func (d *Dense) ScaleRow(i int, f rational.Rational) error {
	if !d.inBounds(i, 0) {
		return ErrOutOfRange
	}
	if f.IsZero() {
		return ErrZeroScale
	}

	for col := 0; col < d.cols; col++ {
		idx := d.index(i, col)
		d.cells[idx] = d.cells[idx].Mul(f)
	}

	return nil
}

// AddScaledRow adds f times row src onto row dst (elementary operation
// Type III): row_dst ← row_dst + f·row_src. dst and src must differ.
// Returns ErrOutOfRange for invalid or equal row indices.
// Complexity: O(cols).
func (d *Dense) AddScaledRow(dst, src int, f rational.Rational) error {
	if !d.inBounds(dst, 0) || !d.inBounds(src, 0) || dst == src {
		return ErrOutOfRange
	}

	for col := 0; col < d.cols; col++ {
		di, si := d.index(dst, col), d.index(src, col)
		d.cells[di] = d.cells[di].Add(d.cells[si].Mul(f))
	}

	return nil
}
