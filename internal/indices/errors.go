package indices

import "errors"

// Domain errors for multi-index generation.
var (
	// ErrInvalidRange indicates malformed degree bounds (start > stop,
	// negative bounds, or a non-positive cross-truncation exponent).
	ErrInvalidRange = errors.New("indices: invalid truncation range")

	// ErrInvalidDimension indicates a dimension count below 1.
	ErrInvalidDimension = errors.New("indices: dimension count must be at least 1")
)
