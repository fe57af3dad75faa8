// Package solver: the solution classifier.
// Runs once after elimination on the final matrix and the pivot-column
// list. The three categories are mutually exclusive and collectively
// exhaustive, so classification itself cannot fail.
package solver

import (
	"github.com/katalvlaran/rref/matrix"
)

// classify derives the solution type, per-variable expressions, free
// variables and rank from a reduced matrix.
//
// Order of checks, per the contract:
//  1. Inconsistent: any row with an all-zero coefficient block and a
//     non-zero augmented entry. No expressions are produced.
//  2. Infinite: rank < numVariables; pivot variables get parametric
//     expressions over the free variables, free variables become bare
//     parameters.
//  3. Unique: rank == numVariables; variable j's value is the augmented
//     entry of pivot row j (columns are processed strictly left-to-right,
//     so with full rank the pivot row for variable j is exactly j).
//
// Complexity: O(rows·cols).
func classify(m *matrix.Dense, pivotCols []int) (SolutionType, []Expression, []int, int) {
	numVars := m.Cols() - 1 // last column holds the constants

	// Rank counts pivots inside the coefficient block only: an inconsistent
	// system can pivot in the augmented column, which never counts.
	rank := 0
	for _, col := range pivotCols {
		if col < numVars {
			rank++
		}
	}

	// Free variables: coefficient columns without a pivot, ascending.
	freeVars := freeColumns(pivotCols, numVars)

	if hasContradiction(m, numVars) {
		return Inconsistent, nil, freeVars, rank
	}

	if rank < numVars {
		return Infinite, parametricSolution(m, pivotCols, freeVars, numVars), freeVars, rank
	}

	return Unique, uniqueSolution(m, numVars), freeVars, rank
}

// hasContradiction scans every row for the 0 = non-zero pattern.
func hasContradiction(m *matrix.Dense, numVars int) bool {
	var i, j int // loop iterators
	for i = 0; i < m.Rows(); i++ {
		allZero := true
		for j = 0; j < numVars; j++ {
			if v, _ := m.At(i, j); !v.IsZero() {
				allZero = false
				break
			}
		}
		if !allZero {
			continue
		}
		if aug, _ := m.At(i, numVars); !aug.IsZero() {
			return true
		}
	}

	return false
}

// freeColumns returns the coefficient columns absent from pivotCols,
// ascending. pivotCols is strictly increasing, so a single merge-style walk
// suffices. pivotCols may end with the augmented column (inconsistent
// systems), which the walk naturally never visits.
func freeColumns(pivotCols []int, numVars int) []int {
	free := make([]int, 0, numVars)
	next := 0 // index into pivotCols
	for col := 0; col < numVars; col++ {
		if next < len(pivotCols) && pivotCols[next] == col {
			next++
			continue
		}
		free = append(free, col)
	}

	return free
}

// uniqueSolution reads each variable's value off its pivot row.
func uniqueSolution(m *matrix.Dense, numVars int) []Expression {
	out := make([]Expression, numVars)
	for j := 0; j < numVars; j++ {
		aug, _ := m.At(j, numVars) // pivot row for variable j is j at full rank
		out[j] = Expression{Variable: j, Constant: aug}
	}

	return out
}

// parametricSolution builds one Expression per variable.
//
// Free variable f becomes its own parameter t{p}, numbered 1..k in the
// order free columns were discovered (ascending). Pivot variable j on pivot
// row r reads: the row's augmented entry, plus one term per free column f
// with a non-zero coefficient c on that row — the coefficient crosses to
// the right-hand side, so the term carries -c.
func parametricSolution(m *matrix.Dense, pivotCols []int, freeVars []int, numVars int) []Expression {
	// Parameter index per free column, 1-based.
	paramOf := make(map[int]int, len(freeVars))
	for i, col := range freeVars {
		paramOf[col] = i + 1
	}

	out := make([]Expression, 0, numVars)

	// Pivot row r hosts the pivot of pivotCols[r]: rows fill top-down, one
	// per completed pivot.
	rowOf := make(map[int]int, len(pivotCols))
	for r, col := range pivotCols {
		rowOf[col] = r
	}

	for j := 0; j < numVars; j++ {
		if p, isFree := paramOf[j]; isFree {
			out = append(out, Expression{Variable: j, Free: true, Param: p})
			continue
		}

		r := rowOf[j]
		aug, _ := m.At(r, numVars)
		expr := Expression{Variable: j, Constant: aug}
		for _, f := range freeVars {
			coeff, _ := m.At(r, f)
			if coeff.IsZero() {
				continue
			}
			// Moving c·t to the right-hand side flips its sign.
			expr.Terms = append(expr.Terms, Term{Coeff: coeff.Neg(), Param: paramOf[f]})
		}
		out = append(out, expr)
	}

	return out
}
