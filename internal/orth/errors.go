package orth

import (
	"errors"
	"fmt"
)

// Domain errors for orthogonal basis construction.
var (
	// ErrNumericalInstability indicates the moment sequence does not
	// produce a positive-definite Hankel structure within tolerance. The
	// caller may retry at a reduced order.
	ErrNumericalInstability = errors.New("orth: moment sequence numerically unstable")

	// ErrInvalidOrder indicates a negative requested order.
	ErrInvalidOrder = errors.New("orth: order must be non-negative")
)

// InstabilityError carries the dimension and recurrence step at which
// the Hankel pivot degenerated. Dim is -1 when the derivation ran
// outside a multivariate construction.
type InstabilityError struct {
	Dim   int
	Order int
	Pivot float64
}

func (e *InstabilityError) Error() string {
	if e.Dim < 0 {
		return fmt.Sprintf("orth: Hankel pivot %g at recurrence step %d: %v", e.Pivot, e.Order, ErrNumericalInstability)
	}
	return fmt.Sprintf("orth: dimension %d: Hankel pivot %g at recurrence step %d: %v", e.Dim, e.Pivot, e.Order, ErrNumericalInstability)
}

func (e *InstabilityError) Unwrap() error {
	return ErrNumericalInstability
}
