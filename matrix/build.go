// Package matrix: ingestion of caller-supplied cell data.
// Shape is validated before any parsing or arithmetic begins, and the input
// is always deep-copied so the caller's slices are never aliased.
package matrix

import "github.com/katalvlaran/rref/rational"

// FromStrings builds a Dense from raw cell text, one string per cell.
// Each cell goes through rational.Parse, so malformed text becomes zero
// (the lenient cell contract); shape violations are the only errors:
// ErrBadShape for fewer than MinRows rows or MinCols columns,
// ErrRagged when row lengths differ.
// Complexity: O(rows·cols).
func FromStrings(cells [][]string) (*Dense, error) {
	rows := len(cells)
	if rows < MinRows {
		return nil, ErrBadShape
	}
	cols := len(cells[0])

	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}

	var i, j int // loop iterators
	for i = 0; i < rows; i++ {
		if len(cells[i]) != cols {
			return nil, ErrRagged
		}
		for j = 0; j < cols; j++ {
			d.cells[d.index(i, j)] = rational.Parse(cells[i][j])
		}
	}

	return d, nil
}

// FromCells builds a Dense from already-parsed rational values.
// Same shape validation as FromStrings; values are copied, never aliased.
// Complexity: O(rows·cols).
func FromCells(cells [][]rational.Rational) (*Dense, error) {
	rows := len(cells)
	if rows < MinRows {
		return nil, ErrBadShape
	}
	cols := len(cells[0])

	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}

	var i int // loop iterator
	for i = 0; i < rows; i++ {
		if len(cells[i]) != cols {
			return nil, ErrRagged
		}
		copy(d.cells[d.index(i, 0):d.index(i, cols)], cells[i])
	}

	return d, nil
}
