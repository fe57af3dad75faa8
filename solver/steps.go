// Package solver: the step log.
// Every state-changing operation appends exactly one Step before the next
// operation begins; a Step's snapshot is a full, independent copy of the
// matrix at that instant, never a reference to later-mutated state.
package solver

import (
	"github.com/katalvlaran/rref/matrix"
	"github.com/katalvlaran/rref/rational"
)

// StepKind tags the elementary operation a Step records.
type StepKind int

const (
	// Initial — the unmodified input matrix; always the first step.
	Initial StepKind = iota
	// Swap — rows Row and Other exchanged (Type I).
	Swap
	// Scale — row Row multiplied by Factor (Type II).
	Scale
	// Replace — Factor times row Other subtracted from row Row (Type III):
	// row_Row ← row_Row − Factor·row_Other.
	Replace
)

// String returns the canonical name of the step kind.
func (k StepKind) String() string {
	switch k {
	case Initial:
		return "Initial"
	case Swap:
		return "Swap"
	case Scale:
		return "Scale"
	case Replace:
		return "Replace"
	default:
		return "Unknown"
	}
}

// Step records one elementary row operation and the full matrix state
// immediately after it. Field meaning depends on Kind:
//
//	Initial: Snapshot only; Row/Other/Factor are zero values.
//	Swap:    Row and Other are the exchanged rows.
//	Scale:   Row was multiplied by Factor (the pivot's inverse).
//	Replace: Factor·row_Other was subtracted from row_Row.
type Step struct {
	Kind     StepKind
	Row      int
	Other    int
	Factor   rational.Rational
	Snapshot *matrix.Dense
}

// Rows returns the row indices this step touched, for UI highlighting:
// none for Initial, both rows for Swap and Replace, one for Scale.
func (s Step) Rows() []int {
	switch s.Kind {
	case Swap, Replace:
		return []int{s.Row, s.Other}
	case Scale:
		return []int{s.Row}
	default:
		return nil
	}
}

// Apply replays this step's operation onto m, mutating it in place.
// Applying a full step log, in order, to the original input reproduces the
// final RREF bit-for-bit. Initial steps are no-ops.
// Errors surface the matrix row-kernel sentinels (ErrOutOfRange,
// ErrZeroScale) when m does not match the step's provenance.
// Complexity: O(cols).
func (s Step) Apply(m *matrix.Dense) error {
	switch s.Kind {
	case Swap:
		return m.SwapRows(s.Row, s.Other)
	case Scale:
		return m.ScaleRow(s.Row, s.Factor)
	case Replace:
		return m.AddScaledRow(s.Row, s.Other, s.Factor.Neg())
	default:
		return nil
	}
}

// SnapshotStrings renders the step's snapshot as display strings,
// the per-step form of the UI output contract.
// Complexity: O(rows·cols).
func (s Step) SnapshotStrings() [][]string {
	return s.Snapshot.Strings()
}
