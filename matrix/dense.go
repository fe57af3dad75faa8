// Package matrix: the Dense type and its accessors.
// Ingestion lives in build.go, elementary row operations in rows.go.
package matrix

import "github.com/katalvlaran/rref/rational"

// Minimum dimensions for an augmented system: one equation, one coefficient
// column plus the augmented/constants column.
const (
	MinRows = 1
	MinCols = 2
)

// Dense is a rectangular rows×cols matrix of exact rationals stored in a
// flat row-major backing slice. The zero cell value is rational zero, so a
// fresh Dense is an all-zero matrix.
//
// Dense is mutable through Set and the row kernels; use Clone to take an
// independent snapshot. All methods are O(1) except Clone, Equal and
// Strings, which are O(rows·cols).
type Dense struct {
	rows, cols int
	cells      []rational.Rational
}

// NewDense allocates an all-zero rows×cols matrix.
// Returns ErrBadShape unless rows ≥ MinRows and cols ≥ MinCols.
// Complexity: O(rows·cols) allocation.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < MinRows || cols < MinCols {
		return nil, ErrBadShape
	}

	return &Dense{
		rows:  rows,
		cols:  cols,
		cells: make([]rational.Rational, rows*cols),
	}, nil
}

// Rows returns the number of rows.
func (d *Dense) Rows() int { return d.rows }

// Cols returns the number of columns (augmented column included).
func (d *Dense) Cols() int { return d.cols }

// index maps (i, j) onto the flat backing slice. Bounds already checked.
func (d *Dense) index(i, j int) int { return i*d.cols + j }

// inBounds reports whether (i, j) addresses a valid cell.
func (d *Dense) inBounds(i, j int) bool {
	return i >= 0 && i < d.rows && j >= 0 && j < d.cols
}

// At retrieves the cell at (i, j).
// Returns ErrOutOfRange for invalid indices; never panics.
// Complexity: O(1).
func (d *Dense) At(i, j int) (rational.Rational, error) {
	if !d.inBounds(i, j) {
		return rational.Zero(), ErrOutOfRange
	}

	return d.cells[d.index(i, j)], nil
}

// Set assigns v to the cell at (i, j).
// Returns ErrOutOfRange for invalid indices; never panics.
// Complexity: O(1).
func (d *Dense) Set(i, j int, v rational.Rational) error {
	if !d.inBounds(i, j) {
		return ErrOutOfRange
	}
	d.cells[d.index(i, j)] = v

	return nil
}

// Clone returns a deep, independent copy of d. Rationals are immutable
// values, so copying the backing slice fully detaches the snapshot.
// Complexity: O(rows·cols).
func (d *Dense) Clone() *Dense {
	cells := make([]rational.Rational, len(d.cells))
	copy(cells, d.cells)

	return &Dense{rows: d.rows, cols: d.cols, cells: cells}
}

// Equal reports whether d and b have identical shape and bit-for-bit equal
// cells. Exact comparison, no epsilon.
// Complexity: O(rows·cols).
func (d *Dense) Equal(b *Dense) bool {
	if b == nil || d.rows != b.rows || d.cols != b.cols {
		return false
	}
	for idx := range d.cells {
		if !d.cells[idx].Equal(b.cells[idx]) {
			return false
		}
	}

	return true
}

// Strings renders every cell in canonical display form, row by row.
// This is the display contract consumed by UI collaborators.
// Complexity: O(rows·cols).
func (d *Dense) Strings() [][]string {
	out := make([][]string, d.rows)
	var i, j int // loop iterators
	for i = 0; i < d.rows; i++ {
		row := make([]string, d.cols)
		for j = 0; j < d.cols; j++ {
			row[j] = d.cells[d.index(i, j)].String()
		}
		out[i] = row
	}

	return out
}
