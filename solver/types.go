// Package solver defines the result types, options, and enums shared by the
// elimination engine and the solution classifier.
package solver

import (
	"github.com/katalvlaran/rref/matrix"
	"github.com/katalvlaran/rref/rational"
)

// SolutionType classifies a reduced system.
type SolutionType int

const (
	// Unique — every variable has exactly one value (rank == numVariables).
	Unique SolutionType = iota
	// Infinite — at least one free variable; solutions are parametric.
	Infinite
	// Inconsistent — some row reads 0 = non-zero; no solution exists.
	Inconsistent
)

// String returns the canonical name of the solution type.
func (st SolutionType) String() string {
	switch st {
	case Unique:
		return "Unique"
	case Infinite:
		return "Infinite"
	case Inconsistent:
		return "Inconsistent"
	default:
		return "Unknown"
	}
}

// Term is one signed parametric contribution Coeff·t{Param} inside an
// Expression. Param indices are 1-based and assigned to free variables in
// ascending column order.
type Term struct {
	Coeff rational.Rational // exact coefficient, sign included
	Param int               // 1-based parameter index
}

// Expression is the solved form of a single variable.
//
// For a free variable, Free is true and the variable simply equals its
// parameter t{Param}. For a pivot variable, the value is Constant plus the
// sum of Terms (empty in the unique-solution case). Rendering to text lives
// in format.go; the structured fields are the testable contract.
type Expression struct {
	Variable int               // zero-based coefficient-column index
	Free     bool              // true when the variable is a free parameter
	Param    int               // parameter index when Free (0 otherwise)
	Constant rational.Rational // augmented-column constant
	Terms    []Term            // parametric terms, ascending by Param
}

// Options tunes presentation only; the engine itself has no knobs.
//   - VarPrefix:   variable name prefix in rendered expressions ("x" → "x1").
//   - ParamPrefix: free-parameter prefix in rendered expressions ("t" → "t1").
type Options struct {
	VarPrefix   string
	ParamPrefix string
}

// DefaultOptions returns the canonical rendering settings: variables named
// x1..xn and parameters named t1..tk.
func DefaultOptions() Options {
	return Options{
		VarPrefix:   "x",
		ParamPrefix: "t",
	}
}

// Result is the complete outcome of one Solve call, immutable thereafter.
//
// Invariant: Rank + len(FreeVars) == numVariables whenever Type is not
// Inconsistent. Steps always starts with the Initial snapshot, and the last
// snapshot equals RREF.
type Result struct {
	// RREF is the final reduced matrix.
	RREF *matrix.Dense
	// Steps is the ordered, append-only operation log, Initial first.
	Steps []Step
	// Type classifies the system: Unique, Infinite or Inconsistent.
	Type SolutionType
	// Solution holds one Expression per variable, ordered by variable
	// index. Empty when Type is Inconsistent.
	Solution []Expression
	// FreeVars lists zero-based coefficient columns without a pivot,
	// ascending.
	FreeVars []int
	// Rank is the number of pivot columns inside the coefficient block.
	Rank int
	// Opts records the rendering options the result was produced with.
	Opts Options
}

// RREFStrings renders the final matrix as canonical display strings,
// the form consumed by UI collaborators.
// Complexity: O(rows·cols).
func (r *Result) RREFStrings() [][]string {
	return r.RREF.Strings()
}

// SolutionStrings renders every solution expression with the result's
// options. Returns nil when the system is inconsistent.
// Complexity: O(numVariables · terms).
func (r *Result) SolutionStrings() []string {
	if len(r.Solution) == 0 {
		return nil
	}

	out := make([]string, len(r.Solution))
	for i, expr := range r.Solution {
		out[i] = expr.Render(r.Opts)
	}

	return out
}
