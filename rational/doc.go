// Package rational provides an immutable, exact fraction type backed by
// big-integer numerators and denominators.
//
// The rational package provides:
//
//   - A value type Rational that is always stored in lowest terms, with a
//     strictly positive denominator and zero canonicalized as 0/1.
//   - Exact arithmetic (Add, Sub, Mul, Div, Neg, Abs, Inv) with no epsilon
//     and no floating-point drift; every operation returns a new value.
//   - Lenient Parse for user-entered cell text (empty, "-", integers,
//     decimals, "p/d" fractions — anything else falls back to zero) and a
//     strict ParseStrict variant that rejects malformed text instead.
//   - Canonical display strings: "{n}" for integers, "{n}/{d}" otherwise,
//     sign always carried by the numerator.
//
// Rationals are safe to copy and compare with Equal; the zero value of the
// struct is a usable representation of 0.
//
// See the examples in this package and solver for usage patterns.
package rational
