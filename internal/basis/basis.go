// Package basis assembles ordered polynomial expansions from
// multi-index sets: plain monomial bases, per-dimension variables, and
// Lagrange interpolating bases. It holds no statistical knowledge;
// orthogonal construction lives in the orth package.
package basis

import (
	"github.com/san-kum/polychaos/internal/indices"
	"github.com/san-kum/polychaos/internal/poly"
)

// Monomials returns the pure monomial expansion for the multi-index set
// of the given truncation request: one polynomial per tuple, coefficient
// 1 at that tuple and zero elsewhere, in the canonical indexer order.
func Monomials(start, stop, dims int, ct float64) (poly.Expansion, error) {
	tuples, err := indices.Generate(start, stop, dims, ct)
	if err != nil {
		return nil, err
	}
	return monomials(tuples)
}

// Variables returns the D single-variable polynomials q0..q(D-1), in
// dimension order.
func Variables(dims int) ([]*poly.Polynomial, error) {
	out := make([]*poly.Polynomial, dims)
	for d := 0; d < dims; d++ {
		v, err := poly.Variable(dims, d)
		if err != nil {
			return nil, err
		}
		out[d] = v
	}
	return out, nil
}

func monomials(tuples [][]int) (poly.Expansion, error) {
	out := make(poly.Expansion, len(tuples))
	for i, exps := range tuples {
		p, err := poly.Monomial(exps, 1)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}
