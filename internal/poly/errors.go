package poly

import (
	"errors"
	"fmt"
)

// Domain errors for polynomial algebra.
var (
	// ErrDimensionMismatch indicates operands with incompatible dimension
	// counts or coefficient array lengths.
	ErrDimensionMismatch = errors.New("poly: dimension mismatch")

	// ErrUnsupportedOperation indicates algebra the representation cannot
	// express exactly, such as division by a non-constant polynomial.
	ErrUnsupportedOperation = errors.New("poly: unsupported operation")

	// ErrInvalidTerm indicates a malformed term: negative exponents or an
	// exponent tuple of the wrong length.
	ErrInvalidTerm = errors.New("poly: invalid term")
)

// OpError wraps a polynomial algebra failure with the operation name and
// the operand dimension counts.
type OpError struct {
	Op          string
	Left, Right int
	Wrapped     error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("poly: %s with dims %d and %d: %v", e.Op, e.Left, e.Right, e.Wrapped)
}

func (e *OpError) Unwrap() error {
	return e.Wrapped
}
