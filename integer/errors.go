package integer

import "github.com/zeebo/errs"

// Error is the error class for this package.
var Error = errs.Class("integer")

// The sentinels carry no class. Errors returned by this package wrap them in
// Error.
var (
	// ErrSyntax is returned when a string is not an optionally negative
	// sequence of decimal digits.
	ErrSyntax = errs.New("invalid syntax")

	// ErrDivisionByZero is returned by Div, Rem, Mod and QuoRem when the
	// divisor is zero.
	ErrDivisionByZero = errs.New("division by zero")

	// ErrInvalidExponent is returned by Exp for negative exponents.
	ErrInvalidExponent = errs.New("invalid exponent")

	// ErrOverflow is returned when a value does not fit a native integer.
	ErrOverflow = errs.New("overflow")

	// ErrInvalidEncoding is returned when packed decimal data is malformed.
	ErrInvalidEncoding = errs.New("invalid encoding")
)
