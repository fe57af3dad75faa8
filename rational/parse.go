// Package rational: text ingestion for user-entered cell values.
//
// The accepted grammar is:
//
//	["-"] digits ["." digits] | ["-"] digits "/" digits | "" | "-"
//
// Empty text and a lone minus sign mean zero (a half-typed cell). Parse is
// lenient: anything outside the grammar, including a zero denominator, also
// falls back to zero. ParseStrict applies the same grammar but rejects
// malformed text instead, for callers that prefer validation up front.
package rational

import (
	"math/big"
	"strings"
)

const (
	fractionSep = "/"
	decimalSep  = "."
	minusSign   = "-"
	decimalBase = 10
)

// Parse converts cell text into a Rational, never failing: empty text, a
// lone "-", and any malformed input all yield zero. This lenient fallback
// mirrors how a half-typed matrix cell is treated as an empty entry.
// Complexity: O(len(text)).
func Parse(text string) Rational {
	r, err := ParseStrict(text)
	if err != nil {
		return Zero()
	}

	return r
}

// ParseStrict converts cell text into a Rational, rejecting malformed input.
// Empty text and a lone "-" still parse as zero (they are in the grammar);
// other deviations return ErrBadNumber, and "p/0" returns ErrZeroDenominator.
// Complexity: O(len(text)).
func ParseStrict(text string) (Rational, error) {
	s := strings.TrimSpace(text)

	// Empty cell or a half-typed sign: zero by contract.
	if s == "" || s == minusSign {
		return Zero(), nil
	}

	if strings.Contains(s, fractionSep) {
		return parseFraction(s)
	}

	return parseDecimal(s)
}

// parseFraction handles the "p/d" form: p is an optionally signed integer,
// d is an unsigned integer per the grammar. d must be non-zero.
func parseFraction(s string) (Rational, error) {
	parts := strings.SplitN(s, fractionSep, 2)

	sign, pDigits := splitSign(parts[0])
	if !allDigits(pDigits) || !allDigits(parts[1]) {
		return Rational{}, ErrBadNumber
	}

	num, ok := new(big.Int).SetString(sign+pDigits, decimalBase)
	if !ok {
		return Rational{}, ErrBadNumber
	}
	den, ok := new(big.Int).SetString(parts[1], decimalBase)
	if !ok {
		return Rational{}, ErrBadNumber
	}
	if den.Sign() == 0 {
		return Rational{}, ErrZeroDenominator
	}

	return normalize(num, den), nil
}

// parseDecimal handles the ["-"] digits ["." digits] form by scaling the
// concatenated digits over a power of ten: "1.25" becomes 125/100 → 5/4.
func parseDecimal(s string) (Rational, error) {
	sign, body := splitSign(s)

	intPart, fracPart := body, ""
	if idx := strings.Index(body, decimalSep); idx >= 0 {
		intPart, fracPart = body[:idx], body[idx+1:]
		// Both sides of the decimal point must be non-empty digit runs.
		if !allDigits(fracPart) {
			return Rational{}, ErrBadNumber
		}
	}
	if !allDigits(intPart) {
		return Rational{}, ErrBadNumber
	}

	num, ok := new(big.Int).SetString(sign+intPart+fracPart, decimalBase)
	if !ok {
		return Rational{}, ErrBadNumber
	}

	// 10^len(fracPart) scales the fractional digits into the denominator.
	den := new(big.Int).Exp(big.NewInt(decimalBase), big.NewInt(int64(len(fracPart))), nil)

	return normalize(num, den), nil
}

// splitSign strips a single leading minus sign, returning it separately.
func splitSign(s string) (sign, rest string) {
	if strings.HasPrefix(s, minusSign) {
		return minusSign, s[1:]
	}

	return "", s
}

// allDigits reports whether s is a non-empty run of ASCII digits.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
