package poly

import "fmt"

// Expansion is an ordered sequence of polynomials sharing a dimension
// count. Order is significant: downstream quadrature and regression
// collaborators pair entries positionally with the multi-index set that
// produced them.
type Expansion []*Polynomial

// Dims returns the shared dimension count, or 0 for an empty expansion.
func (e Expansion) Dims() int {
	if len(e) == 0 {
		return 0
	}
	return e[0].Dims()
}

// Degree returns the maximum degree across the expansion.
func (e Expansion) Degree() int {
	deg := 0
	for _, p := range e {
		if d := p.Degree(); d > deg {
			deg = d
		}
	}
	return deg
}

// Eval evaluates every polynomial at the same point, preserving order.
func (e Expansion) Eval(point []float64) ([][]float64, error) {
	out := make([][]float64, len(e))
	for i, p := range e {
		v, err := p.Eval(point)
		if err != nil {
			return nil, fmt.Errorf("expansion entry %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// Validate checks that every entry shares the expansion's dimension
// count.
func (e Expansion) Validate() error {
	if len(e) == 0 {
		return nil
	}
	dims := e[0].Dims()
	for i, p := range e {
		if p.Dims() != dims {
			return fmt.Errorf("%w: entry %d has %d dimensions, expansion has %d", ErrDimensionMismatch, i, p.Dims(), dims)
		}
	}
	return nil
}
