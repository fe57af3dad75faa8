package rational

import "errors"

// Sentinel errors for rational operations.
var (
	// ErrZeroDenominator indicates a fraction was constructed with denominator 0.
	ErrZeroDenominator = errors.New("rational: denominator must be non-zero")
	// ErrDivisionByZero indicates Div or Inv was called with a zero operand.
	ErrDivisionByZero = errors.New("rational: division by zero")
	// ErrBadNumber indicates ParseStrict rejected malformed numeric text.
	ErrBadNumber = errors.New("rational: malformed number")
)
