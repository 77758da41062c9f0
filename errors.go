package bignum

import "errors"

// Error kinds surfaced to callers (spec §7). None of these are recovered
// from inside the package; they are returned, never panicked, from the
// public entry points. Internal invariant violations (malformed scratch
// buffers, mismatched lengths passed between private helpers) remain
// panics, since those indicate a bug in this package rather than bad
// caller input.
var (
	// ErrDivisionByZero is returned when a divisor is zero.
	ErrDivisionByZero = errors.New("bignum: division by zero")

	// ErrNegativeModulus is returned when an operation requiring a
	// positive modulus is given one that is zero or negative.
	ErrNegativeModulus = errors.New("bignum: modulus must be positive")

	// ErrNotInvertible is returned when no modular inverse exists, that
	// is when gcd(a, m) != 1; no other condition produces it.
	ErrNotInvertible = errors.New("bignum: not invertible")

	// ErrNegativeExponent is returned by ModPow/SquareAndMultiply when the
	// exponent is negative and the base has no inverse mod m to delegate
	// to (spec §7's "no inverse path is selected").
	ErrNegativeExponent = errors.New("bignum: negative exponent with no inverse")
)
