// Package solver: presentation layer.
// The engine and classifier work on structured data only; this file derives
// the human-readable strings from it.
package solver

import (
	"fmt"
	"strings"
)

// Render formats the expression with the given prefixes, e.g.
//
//	x1 = 2                    unique value
//	x2 = t1                   free variable
//	x1 = 4 - 2t1 - (1/2)t2    parametric pivot variable
//
// Rules: a unit coefficient renders without a numeric literal; fractional
// coefficients are parenthesized to keep "1/2t1" unambiguous; a zero
// constant is omitted when parametric terms exist and a bare zero renders
// only when there is nothing else.
func (e Expression) Render(opts Options) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s%d = ", opts.VarPrefix, e.Variable+1)

	if e.Free {
		fmt.Fprintf(&sb, "%s%d", opts.ParamPrefix, e.Param)

		return sb.String()
	}

	wrote := false
	if !e.Constant.IsZero() || len(e.Terms) == 0 {
		sb.WriteString(e.Constant.String())
		wrote = true
	}

	for _, term := range e.Terms {
		neg := term.Coeff.Sign() < 0
		switch {
		case !wrote && neg:
			sb.WriteString("-")
		case wrote && neg:
			sb.WriteString(" - ")
		case wrote:
			sb.WriteString(" + ")
		}

		mag := term.Coeff.Abs()
		if !mag.IsOne() {
			if mag.IsInt() {
				sb.WriteString(mag.String())
			} else {
				sb.WriteString("(" + mag.String() + ")")
			}
		}
		fmt.Fprintf(&sb, "%s%d", opts.ParamPrefix, term.Param)
		wrote = true
	}

	return sb.String()
}

// String renders with DefaultOptions.
func (e Expression) String() string {
	return e.Render(DefaultOptions())
}
