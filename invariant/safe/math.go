package safe

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrDivisionByZero is returned when attempting to divide by zero.
var ErrDivisionByZero = errors.New("division by zero")

// Divide performs decimal division with zero check.
// Returns ErrDivisionByZero if denominator is zero.
//
// Example:
//
//	result, err := safe.Divide(numerator, denominator)
//	if err != nil {
//	    return fmt.Errorf("evaluate operand: %w", err)
//	}
func Divide(numerator, denominator decimal.Decimal) (decimal.Decimal, error) {
	if denominator.IsZero() {
		return decimal.Zero, ErrDivisionByZero
	}

	return numerator.Div(denominator), nil
}

// Modulo returns the decimal remainder of numerator / denominator.
// decimal.Decimal.Mod panics on a zero divisor; Modulo reports it instead.
func Modulo(numerator, denominator decimal.Decimal) (decimal.Decimal, error) {
	if denominator.IsZero() {
		return decimal.Zero, ErrDivisionByZero
	}

	return numerator.Mod(denominator), nil
}

// DivideFloat64 performs float64 division with zero check.
// Returns ErrDivisionByZero if denominator is zero.
func DivideFloat64(numerator, denominator float64) (float64, error) {
	if denominator == 0 {
		return 0, ErrDivisionByZero
	}

	return numerator / denominator, nil
}

// DivideComplex128 performs complex division with zero check.
func DivideComplex128(numerator, denominator complex128) (complex128, error) {
	if denominator == 0 {
		return 0, ErrDivisionByZero
	}

	return numerator / denominator, nil
}

// DivideInt64 performs truncated integer division with zero check.
// The most negative value divided by -1 wraps, as it does in Go.
func DivideInt64(numerator, denominator int64) (int64, error) {
	if denominator == 0 {
		return 0, ErrDivisionByZero
	}

	return numerator / denominator, nil
}

// ModuloInt64 returns the remainder of truncated division with zero check.
func ModuloInt64(numerator, denominator int64) (int64, error) {
	if denominator == 0 {
		return 0, ErrDivisionByZero
	}

	return numerator % denominator, nil
}

// DivideUint64 performs unsigned division with zero check.
func DivideUint64(numerator, denominator uint64) (uint64, error) {
	if denominator == 0 {
		return 0, ErrDivisionByZero
	}

	return numerator / denominator, nil
}

// ModuloUint64 returns the unsigned remainder with zero check.
func ModuloUint64(numerator, denominator uint64) (uint64, error) {
	if denominator == 0 {
		return 0, ErrDivisionByZero
	}

	return numerator % denominator, nil
}
