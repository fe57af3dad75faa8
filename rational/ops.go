// Package rational: exact arithmetic kernels.
// All kernels are pure: operands are never mutated, results are normalized
// (lowest terms, positive denominator) before being returned.
package rational

import "math/big"

// Add returns r + b exactly: (rn·bd + bn·rd) / (rd·bd), reduced.
// Complexity: O(M(len)) where M is big-int multiplication cost.
func (r Rational) Add(b Rational) Rational {
	rn, rd := r.parts()
	bn, bd := b.parts()

	num := new(big.Int).Mul(rn, bd)
	num.Add(num, new(big.Int).Mul(bn, rd))
	den := new(big.Int).Mul(rd, bd)

	return normalize(num, den)
}

// Sub returns r - b exactly.
// Complexity: O(M(len)).
func (r Rational) Sub(b Rational) Rational {
	rn, rd := r.parts()
	bn, bd := b.parts()

	num := new(big.Int).Mul(rn, bd)
	num.Sub(num, new(big.Int).Mul(bn, rd))
	den := new(big.Int).Mul(rd, bd)

	return normalize(num, den)
}

// Mul returns r · b exactly.
// Complexity: O(M(len)).
func (r Rational) Mul(b Rational) Rational {
	rn, rd := r.parts()
	bn, bd := b.parts()

	num := new(big.Int).Mul(rn, bn)
	den := new(big.Int).Mul(rd, bd)

	return normalize(num, den)
}

// Div returns r / b exactly, or ErrDivisionByZero when b is zero.
// The elimination engine only divides by pivots it has already confirmed
// non-zero, so the error path signals an invariant violation there.
// Complexity: O(M(len)).
func (r Rational) Div(b Rational) (Rational, error) {
	if b.IsZero() {
		return Rational{}, ErrDivisionByZero
	}
	rn, rd := r.parts()
	bn, bd := b.parts()

	num := new(big.Int).Mul(rn, bd)
	den := new(big.Int).Mul(rd, bn)

	return normalize(num, den), nil
}

// Inv returns the multiplicative inverse 1/r, or ErrDivisionByZero when r is zero.
// Complexity: O(log len) for re-normalization.
func (r Rational) Inv() (Rational, error) {
	if r.IsZero() {
		return Rational{}, ErrDivisionByZero
	}
	num, den := r.parts()

	return normalize(new(big.Int).Set(den), new(big.Int).Set(num)), nil
}

// Neg returns -r.
// Complexity: O(len).
func (r Rational) Neg() Rational {
	num, den := r.parts()

	return normalize(new(big.Int).Neg(num), new(big.Int).Set(den))
}

// Abs returns |r|.
// Complexity: O(len).
func (r Rational) Abs() Rational {
	num, den := r.parts()

	return normalize(new(big.Int).Abs(num), new(big.Int).Set(den))
}
