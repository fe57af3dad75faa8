package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rref/matrix"
	"github.com/katalvlaran/rref/rational"
	"github.com/katalvlaran/rref/solver"
)

// propertyCases is the shared fixture set for the law-style tests below:
// square, wide, tall, degenerate and already-reduced systems.
var propertyCases = map[string][][]string{
	"unique_3x4": {
		{"2", "1", "-1", "8"},
		{"-3", "-1", "2", "-11"},
		{"-2", "1", "2", "-3"},
	},
	"infinite_3x5": {
		{"1", "2", "1", "0", "5"},
		{"2", "4", "0", "1", "8"},
		{"3", "6", "1", "1", "13"},
	},
	"inconsistent_3x4": {
		{"1", "1", "1", "6"},
		{"1", "1", "1", "8"},
		{"0", "0", "1", "3"},
	},
	"zero_2x3": {
		{"0", "0", "0"},
		{"0", "0", "0"},
	},
	"zero_column": {
		{"0", "1", "2"},
		{"0", "3", "4"},
	},
	"single_row": {
		{"3", "6", "9"},
	},
	"single_var": {
		{"5", "10"},
		{"1", "2"},
	},
	"tall_4x3": {
		{"1", "2", "3"},
		{"2", "4", "6"},
		{"1", "0", "1"},
		{"0", "1", "1"},
	},
	"fractions": {
		{"1/2", "1/3", "1"},
		{"1/4", "2/3", "1"},
	},
	// Every column pivots here, augmented one included; guards the
	// free-variable walk against the pivot list outgrowing the
	// coefficient block.
	"contradiction_2x2": {
		{"1", "0"},
		{"0", "1"},
	},
	"needs_swap": {
		{"0", "0", "1", "2"},
		{"0", "1", "0", "3"},
		{"1", "0", "0", "4"},
	},
}

// assertRREFForm checks the four structural RREF laws on a reduced matrix:
// leading entries are exactly 1, their columns are clear elsewhere, pivot
// columns strictly increase with row index, and zero rows sort to the
// bottom.
func assertRREFForm(t *testing.T, m *matrix.Dense) {
	t.Helper()

	lastPivotCol := -1
	seenZeroRow := false
	var i, j, r int // loop iterators
	for i = 0; i < m.Rows(); i++ {
		lead := -1
		for j = 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			if !v.IsZero() {
				lead = j
				break
			}
		}

		if lead < 0 {
			seenZeroRow = true
			continue
		}
		assert.False(t, seenZeroRow, "non-zero row %d below a zero row", i)

		v, err := m.At(i, lead)
		require.NoError(t, err)
		assert.True(t, v.IsOne(), "pivot at (%d,%d) must be exactly 1", i, lead)
		assert.Greater(t, lead, lastPivotCol, "pivot columns must strictly increase")
		lastPivotCol = lead

		for r = 0; r < m.Rows(); r++ {
			if r == i {
				continue
			}
			other, err := m.At(r, lead)
			require.NoError(t, err)
			assert.True(t, other.IsZero(), "pivot column %d must be clear in row %d", lead, r)
		}
	}
}

// TestSolve_RREFForm asserts the structural laws for every fixture.
func TestSolve_RREFForm(t *testing.T) {
	for name, cells := range propertyCases {
		t.Run(name, func(t *testing.T) {
			assertRREFForm(t, mustSolve(t, cells).RREF)
		})
	}
}

// TestSolve_ReplayLaw applies the recorded steps, in order, to the original
// input and demands bit-for-bit equality with the final RREF.
func TestSolve_ReplayLaw(t *testing.T) {
	for name, cells := range propertyCases {
		t.Run(name, func(t *testing.T) {
			res := mustSolve(t, cells)

			replay, err := matrix.FromStrings(cells)
			require.NoError(t, err)
			for i, s := range res.Steps {
				require.NoError(t, s.Apply(replay), "step %d (%s)", i, s.Kind)
				assert.True(t, replay.Equal(s.Snapshot),
					"state after step %d (%s) must match its snapshot", i, s.Kind)
			}

			assert.True(t, replay.Equal(res.RREF), "replayed steps must reproduce the RREF exactly")
		})
	}
}

// TestSolve_RankInvariant checks rank + |free| == numVariables for every
// consistent fixture (and that rank never exceeds it otherwise).
func TestSolve_RankInvariant(t *testing.T) {
	for name, cells := range propertyCases {
		t.Run(name, func(t *testing.T) {
			res := mustSolve(t, cells)
			numVars := res.RREF.Cols() - 1

			if res.Type != solver.Inconsistent {
				assert.Equal(t, numVars, res.Rank+len(res.FreeVars))
				assert.Len(t, res.Solution, numVars, "one expression per variable")
			}
			assert.LessOrEqual(t, res.Rank, numVars)
		})
	}
}

// TestSolve_Idempotence re-solves each RREF: the second pass must record
// only the Initial step and leave the matrix unchanged.
func TestSolve_Idempotence(t *testing.T) {
	for name, cells := range propertyCases {
		t.Run(name, func(t *testing.T) {
			first := mustSolve(t, cells)
			second := mustSolve(t, first.RREFStrings())

			assert.Len(t, second.Steps, 1, "an RREF input needs no operations")
			assert.Equal(t, solver.Initial, second.Steps[0].Kind)
			assert.True(t, second.RREF.Equal(first.RREF), "RREF must be a fixed point")
		})
	}
}

// TestSolve_FreeVarsAscending checks the discovery order contract.
func TestSolve_FreeVarsAscending(t *testing.T) {
	for name, cells := range propertyCases {
		t.Run(name, func(t *testing.T) {
			res := mustSolve(t, cells)
			for i := 1; i < len(res.FreeVars); i++ {
				assert.Less(t, res.FreeVars[i-1], res.FreeVars[i], "free variables must ascend")
			}
			numVars := res.RREF.Cols() - 1
			for _, col := range res.FreeVars {
				assert.Less(t, col, numVars, "free variables live in the coefficient block")
			}
		})
	}
}

// TestSolve_Determinism runs the same input twice and compares the full
// step logs: identical input must yield an identical trace.
func TestSolve_Determinism(t *testing.T) {
	cells := propertyCases["needs_swap"]

	a := mustSolve(t, cells)
	b := mustSolve(t, cells)

	require.Equal(t, len(a.Steps), len(b.Steps))
	for i := range a.Steps {
		assert.Equal(t, a.Steps[i].Kind, b.Steps[i].Kind, "step %d kind", i)
		assert.Equal(t, a.Steps[i].Row, b.Steps[i].Row, "step %d row", i)
		assert.Equal(t, a.Steps[i].Other, b.Steps[i].Other, "step %d other", i)
		assert.True(t, a.Steps[i].Factor.Equal(b.Steps[i].Factor), "step %d factor", i)
		assert.True(t, a.Steps[i].Snapshot.Equal(b.Steps[i].Snapshot), "step %d snapshot", i)
	}
}

// TestSolve_ExactChain stresses exactness: a system whose elimination walks
// through awkward fractions must still land on integer answers.
func TestSolve_ExactChain(t *testing.T) {
	// x + y/3 = 1 and x/7 + y = 1 meet at (7/10, 9/10).
	res := mustSolve(t, [][]string{
		{"1", "1/3", "1"},
		{"1/7", "1", "1"},
	})

	require.Equal(t, solver.Unique, res.Type)

	// Verify by substitution instead of trusting precomputed strings.
	x := res.Solution[0].Constant
	y := res.Solution[1].Constant
	third, err := rational.New(1, 3)
	require.NoError(t, err)
	seventh, err := rational.New(1, 7)
	require.NoError(t, err)

	assert.True(t, x.Add(third.Mul(y)).IsOne(), "first equation must hold exactly")
	assert.True(t, seventh.Mul(x).Add(y).IsOne(), "second equation must hold exactly")
}
