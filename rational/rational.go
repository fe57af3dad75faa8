// Package rational: the Rational value type, constructors and predicates.
// Arithmetic kernels live in ops.go, text ingestion in parse.go.
package rational

import "math/big"

// Rational is an exact signed fraction num/den.
//
// Invariants (maintained by every constructor and operation):
//   - den > 0 — the sign always lives on the numerator;
//   - gcd(|num|, den) == 1 — values are stored in lowest terms;
//   - zero is canonicalized as 0/1.
//
// Rational is an immutable value type: operations never mutate their
// operands and always return a fresh value. The zero value of the struct
// (nil internals) is a valid representation of 0.
type Rational struct {
	num *big.Int // numerator, carries the sign
	den *big.Int // denominator, always positive
}

// Cached small integers for canonical zero/one handling.
var (
	intZero = big.NewInt(0)
	intOne  = big.NewInt(1)
)

// Zero returns the canonical zero value 0/1.
// Complexity: O(1).
func Zero() Rational {
	return Rational{}
}

// One returns the rational 1/1.
// Complexity: O(1).
func One() Rational {
	return FromInt(1)
}

// FromInt returns the rational n/1.
// Complexity: O(1).
func FromInt(n int64) Rational {
	return normalize(big.NewInt(n), big.NewInt(1))
}

// New returns the reduced rational num/den.
// Returns ErrZeroDenominator when den == 0.
// Complexity: O(log min(|num|, den)) for the gcd reduction.
func New(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, ErrZeroDenominator
	}

	return normalize(big.NewInt(num), big.NewInt(den)), nil
}

// parts returns the underlying numerator and denominator, mapping the
// struct zero value onto the canonical 0/1. Callers must not mutate the
// returned integers.
func (r Rational) parts() (*big.Int, *big.Int) {
	if r.num == nil || r.den == nil {
		return intZero, intOne
	}

	return r.num, r.den
}

// normalize reduces num/den into canonical form: positive denominator,
// lowest terms, zero as 0/1. The inputs are owned by normalize and may be
// mutated; callers must pass fresh big.Ints.
// Assumes den != 0 (constructors validate before calling).
func normalize(num, den *big.Int) Rational {
	// Move the sign onto the numerator.
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}

	// Canonical zero.
	if num.Sign() == 0 {
		return Rational{num: big.NewInt(0), den: big.NewInt(1)}
	}

	// Reduce to lowest terms.
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	if g.Cmp(intOne) != 0 {
		num.Quo(num, g)
		den.Quo(den, g)
	}

	return Rational{num: num, den: den}
}

// IsZero reports whether r equals 0.
// Complexity: O(1).
func (r Rational) IsZero() bool {
	num, _ := r.parts()

	return num.Sign() == 0
}

// IsOne reports whether r equals exactly +1.
// Complexity: O(1).
func (r Rational) IsOne() bool {
	num, den := r.parts()

	return num.Cmp(intOne) == 0 && den.Cmp(intOne) == 0
}

// IsInt reports whether r is an integer (denominator 1).
// Complexity: O(1).
func (r Rational) IsInt() bool {
	_, den := r.parts()

	return den.Cmp(intOne) == 0
}

// Sign returns -1, 0 or +1 according to the sign of r.
// Complexity: O(1).
func (r Rational) Sign() int {
	num, _ := r.parts()

	return num.Sign()
}

// Cmp compares r and b exactly, returning -1 if r < b, 0 if equal, +1 if r > b.
// No epsilon is involved: the comparison cross-multiplies the exact integers.
// Complexity: O(len(num)·len(den)) big-int multiplications.
func (r Rational) Cmp(b Rational) int {
	rn, rd := r.parts()
	bn, bd := b.parts()

	left := new(big.Int).Mul(rn, bd)
	right := new(big.Int).Mul(bn, rd)

	return left.Cmp(right)
}

// Equal reports whether r and b represent the same exact value.
// Because values are canonical, this is a component-wise comparison.
// Complexity: O(len) big-int comparison.
func (r Rational) Equal(b Rational) bool {
	rn, rd := r.parts()
	bn, bd := b.parts()

	return rn.Cmp(bn) == 0 && rd.Cmp(bd) == 0
}

// Num returns a copy of the numerator (sign included).
func (r Rational) Num() *big.Int {
	num, _ := r.parts()

	return new(big.Int).Set(num)
}

// Den returns a copy of the (always positive) denominator.
func (r Rational) Den() *big.Int {
	_, den := r.parts()

	return new(big.Int).Set(den)
}

// String renders the canonical display form: "{n}" when the denominator is
// 1, "{n}/{d}" otherwise. The sign is folded into the numerator and the
// denominator is always a positive integer; zero renders as "0".
// Complexity: O(digits).
func (r Rational) String() string {
	num, den := r.parts()
	if den.Cmp(intOne) == 0 {
		return num.String()
	}

	return num.String() + "/" + den.String()
}
