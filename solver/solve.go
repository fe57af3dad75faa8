// Package solver: the elimination engine.
//
// Gauss–Jordan reduction, column by column, augmented column included:
//
//	Stage 1 (Validate): ingest and shape-check the input before any
//	        arithmetic (matrix.FromStrings / a defensive Clone).
//	Stage 2 (Record): append the pristine input as the Initial step.
//	Stage 3 (Reduce): for each column, scan rows pivotRow..rows-1 top-down
//	        for the first non-zero entry; no pivot → the column is a
//	        free-variable candidate. Otherwise Swap it up if needed,
//	        Scale the pivot row to a leading 1, and Replace every other
//	        row holding a non-zero entry in the column. One Step with a
//	        full snapshot per mutation.
//	Stage 4 (Classify): rank, free variables and solution expressions from
//	        the final matrix and the pivot-column list (classify.go).
//
// Determinism: the pivot is always the first non-zero entry in row order.
// Arithmetic is exact, so no magnitude-based pivoting is needed — any
// non-zero pivot yields the same final RREF.
package solver

import (
	"fmt"

	"github.com/katalvlaran/rref/matrix"
)

// Solve reduces the raw cell matrix to RREF and classifies the system,
// rendering with DefaultOptions. Cell text follows the lenient rational
// grammar (malformed cells read as zero); the input shape must be
// rectangular with ≥1 row and ≥2 columns or the matrix sentinels
// ErrBadShape / ErrRagged are returned before any arithmetic begins.
// Complexity: O(rows·cols·min(rows, cols)) rational operations.
func Solve(cells [][]string) (*Result, error) {
	return SolveWithOptions(cells, DefaultOptions())
}

// SolveWithOptions is Solve with custom rendering options.
func SolveWithOptions(cells [][]string, opts Options) (*Result, error) {
	m, err := matrix.FromStrings(cells)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	return solve(m, opts)
}

// SolveMatrix reduces an already-built matrix. The input is cloned first
// and never mutated, so the caller's matrix stays intact.
func SolveMatrix(m *matrix.Dense) (*Result, error) {
	return solve(m.Clone(), DefaultOptions())
}

// solve owns work exclusively: it is the engine's private working copy.
func solve(work *matrix.Dense, opts Options) (*Result, error) {
	rows, cols := work.Rows(), work.Cols()

	// The pristine input is always step zero.
	steps := []Step{{Kind: Initial, Snapshot: work.Clone()}}

	// pivotCols collects completed pivot columns in strictly increasing
	// order; its length drives rank and free-variable discovery.
	pivotCols := make([]int, 0, cols)

	var (
		pivotRow int // next row to host a pivot
		col, r   int // loop iterators
	)
	for col = 0; col < cols && pivotRow < rows; col++ {
		// Stage 3a: first non-zero entry at or below pivotRow.
		found := -1
		for r = pivotRow; r < rows; r++ {
			if v, _ := work.At(r, col); !v.IsZero() {
				found = r
				break
			}
		}
		if found < 0 {
			// No pivot in this column: free-variable candidate. Advance
			// col only; pivotRow stays.
			continue
		}

		// Stage 3b: Type I — move the pivot row up.
		if found != pivotRow {
			_ = work.SwapRows(pivotRow, found) // indices verified by the scan
			steps = append(steps, Step{
				Kind:     Swap,
				Row:      pivotRow,
				Other:    found,
				Snapshot: work.Clone(),
			})
		}

		// Stage 3c: Type II — normalize the pivot to a leading 1.
		pivot, _ := work.At(pivotRow, col)
		if !pivot.IsOne() {
			inv, err := pivot.Inv()
			if err != nil {
				// The scan guarantees a non-zero pivot; reaching this
				// branch means the engine's invariant is broken.
				return nil, fmt.Errorf("Solve: pivot (%d,%d): %w", pivotRow, col, ErrArithmetic)
			}
			_ = work.ScaleRow(pivotRow, inv)
			steps = append(steps, Step{
				Kind:     Scale,
				Row:      pivotRow,
				Factor:   inv,
				Snapshot: work.Clone(),
			})
		}

		// Stage 3d: Type III — clear the column in every other row.
		for r = 0; r < rows; r++ {
			if r == pivotRow {
				continue
			}
			factor, _ := work.At(r, col)
			if factor.IsZero() {
				continue
			}
			_ = work.AddScaledRow(r, pivotRow, factor.Neg())
			steps = append(steps, Step{
				Kind:     Replace,
				Row:      r,
				Other:    pivotRow,
				Factor:   factor,
				Snapshot: work.Clone(),
			})
		}

		pivotCols = append(pivotCols, col)
		pivotRow++
	}

	// Stage 4: post-elimination analysis. The classifier never fails.
	solType, solution, freeVars, rank := classify(work, pivotCols)

	return &Result{
		RREF:     work,
		Steps:    steps,
		Type:     solType,
		Solution: solution,
		FreeVars: freeVars,
		Rank:     rank,
		Opts:     opts,
	}, nil
}
