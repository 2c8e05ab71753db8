package dist

import (
	"errors"
	"fmt"
)

// ErrMomentUnavailable indicates the distribution cannot supply a moment
// of the requested order, because of malformed parameters, an empty
// sample, or a dimension index outside the provider's range.
var ErrMomentUnavailable = errors.New("dist: moment unavailable")

// MomentError wraps a moment request failure with the dimension and
// order attempted, so callers can retry at a reduced order.
type MomentError struct {
	Dim     int
	Order   int
	Wrapped error
}

func (e *MomentError) Error() string {
	return fmt.Sprintf("dist: moments up to order %d for dimension %d: %v", e.Order, e.Dim, e.Wrapped)
}

func (e *MomentError) Unwrap() error {
	return e.Wrapped
}
