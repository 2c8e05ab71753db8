package orth

import (
	"fmt"

	"github.com/san-kum/polychaos/internal/poly"
)

// Univariate evaluates the three-term recurrence forward and returns
// the monic polynomials P_0..P_order as polynomials in global dimension
// dim of a dims-dimensional space.
func Univariate(rec Recurrence, dim, dims int) (poly.Expansion, error) {
	x, err := poly.Variable(dims, dim)
	if err != nil {
		return nil, err
	}

	out := make(poly.Expansion, rec.Order()+1)
	out[0] = poly.Constant(dims, 1)
	for k := 0; k < rec.Order(); k++ {
		// P_{k+1} = (x - alpha_k) P_k - beta_k P_{k-1}
		shifted, err := poly.Sub(x, poly.Constant(dims, rec.Alpha[k]))
		if err != nil {
			return nil, err
		}
		next, err := poly.Mul(shifted, out[k])
		if err != nil {
			return nil, err
		}
		if k > 0 {
			next, err = poly.Sub(next, out[k-1].Scale(rec.Beta[k]))
			if err != nil {
				return nil, err
			}
		}
		out[k+1] = next
	}
	return out, nil
}

// Normalize divides each P_k by its norm sqrt(beta_0*...*beta_k),
// turning a monic orthogonal family into an orthonormal one.
func Normalize(basis poly.Expansion, rec Recurrence) (poly.Expansion, error) {
	if len(basis) > len(rec.Norms) {
		return nil, fmt.Errorf("orth: %d norms for %d polynomials: %w", len(rec.Norms), len(basis), ErrNumericalInstability)
	}
	out := make(poly.Expansion, len(basis))
	for k, p := range basis {
		n := rec.Norms[k]
		if n <= 0 {
			return nil, &InstabilityError{Dim: -1, Order: k, Pivot: n * n}
		}
		out[k] = p.Scale(1 / n)
	}
	return out, nil
}
