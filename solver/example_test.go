// File: solver/example_test.go
package solver_test

import (
	"fmt"

	"github.com/katalvlaran/rref/solver"
)

////////////////////////////////////////////////////////////////////////////////
// Example: unique solution
////////////////////////////////////////////////////////////////////////////////

// ExampleSolve reduces the classic 3×3 system and reads off the single
// solution. Every cell is exact text — integers here, but fractions and
// decimals are equally welcome.
func ExampleSolve() {
	res, _ := solver.Solve([][]string{
		{"2", "1", "-1", "8"},
		{"-3", "-1", "2", "-11"},
		{"-2", "1", "2", "-3"},
	})

	fmt.Println(res.Type)
	for _, s := range res.SolutionStrings() {
		fmt.Println(s)
	}

	// Output:
	// Unique
	// x1 = 2
	// x2 = 3
	// x3 = -1
}

////////////////////////////////////////////////////////////////////////////////
// Example: infinite solutions
////////////////////////////////////////////////////////////////////////////////

// ExampleSolve_infinite shows an underdetermined system: column 2 has no
// pivot, so x2 becomes the free parameter t1 and the pivot variables are
// expressed through it.
func ExampleSolve_infinite() {
	res, _ := solver.Solve([][]string{
		{"1", "2", "1", "5"},
		{"2", "4", "0", "8"},
		{"3", "6", "1", "13"},
	})

	fmt.Println(res.Type, "rank:", res.Rank, "free:", res.FreeVars)
	for _, s := range res.SolutionStrings() {
		fmt.Println(s)
	}

	// Output:
	// Infinite rank: 2 free: [1]
	// x1 = 4 - 2t1
	// x2 = t1
	// x3 = 1
}

////////////////////////////////////////////////////////////////////////////////
// Example: no solution
////////////////////////////////////////////////////////////////////////////////

// ExampleSolve_inconsistent feeds two parallel equations with different
// constants: elimination surfaces a 0 = non-zero row and classification
// reports Inconsistent with no expressions.
func ExampleSolve_inconsistent() {
	res, _ := solver.Solve([][]string{
		{"1", "1", "1", "6"},
		{"1", "1", "1", "8"},
		{"0", "0", "1", "3"},
	})

	fmt.Println(res.Type, "solutions:", len(res.SolutionStrings()))

	// Output:
	// Inconsistent solutions: 0
}

////////////////////////////////////////////////////////////////////////////////
// Example: replaying the step log
////////////////////////////////////////////////////////////////////////////////

// ExampleSolve_steps walks the recorded operations like a playback UI
// would: each step names its operation, the rows it touched, and carries a
// full snapshot; replaying them onto the original input (Step.Apply) lands
// exactly on the RREF.
func ExampleSolve_steps() {
	res, _ := solver.Solve([][]string{
		{"0", "2", "4"},
		{"1", "1", "3"},
	})

	for _, step := range res.Steps {
		fmt.Println(step.Kind, step.Rows())
	}

	// Output:
	// Initial []
	// Swap [0 1]
	// Scale [1]
	// Replace [0 1]
}
