// Package solver reduces augmented rational matrices to Reduced Row Echelon
// Form, records every elementary row operation as a replayable step, and
// classifies the linear system's solutions.
//
// 🚀 What does it do?
//
//	Solve takes a raw cell matrix (text or parsed rationals) and returns:
//	  • the final RREF matrix, exact to the last fraction
//	  • an ordered step log: Initial, then one Swap/Scale/Replace per
//	    operation, each with a full matrix snapshot
//	  • a classification: Unique, Infinite or Inconsistent
//	  • per-variable solution expressions, parametric when variables are free
//	  • the pivot rank and the free-variable columns
//
// ✨ Key guarantees:
//   - Exact – all arithmetic is rational; a cell entered as "1/3" stays 1/3
//     through every intermediate step
//   - Deterministic – the pivot is always the first non-zero entry in row
//     order; no magnitude-based tie-breaking is needed because arithmetic
//     is exact, so identical input yields an identical step log
//   - Replayable – applying the recorded steps to the original input
//     reproduces the RREF bit-for-bit (Step.Apply)
//   - Pure – Solve is a pure function: a private working copy per call, no
//     shared state, safe for concurrent callers without coordination
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rref/solver"
//
//	res, err := solver.Solve([][]string{
//	  {"2", "1", "-1", "8"},
//	  {"-3", "-1", "2", "-11"},
//	  {"-2", "1", "2", "-3"},
//	})
//	if err != nil {
//	  // ErrBadShape / ErrRagged from the matrix package
//	}
//	fmt.Println(res.Type)              // Unique
//	fmt.Println(res.SolutionStrings()) // [x1 = 2 x2 = 3 x3 = -1]
//
// Performance:
//
//   - Time:   O(rows·cols·min(rows, cols)) rational operations
//   - Memory: O(rows·cols) per recorded step (full snapshots)
//
// See example_test.go for complete walkthroughs of all three outcomes.
package solver
