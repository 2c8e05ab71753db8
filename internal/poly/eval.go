package poly

import (
	"fmt"
	"sort"
)

// Eval substitutes a concrete value for every dimension and collapses
// the polynomial to its coefficient array.
func (p *Polynomial) Eval(point []float64) ([]float64, error) {
	if len(point) != p.dims {
		return nil, fmt.Errorf("%w: %d values for %d dimensions", ErrDimensionMismatch, len(point), p.dims)
	}
	out := make([]float64, p.size)
	for _, t := range p.terms {
		w := 1.0
		for dim, e := range t.Exponents {
			w *= powInt(point[dim], e)
		}
		for i := range out {
			v := t.Coeffs[0]
			if len(t.Coeffs) > 1 {
				v = t.Coeffs[i]
			}
			out[i] += v * w
		}
	}
	return out, nil
}

// EvalPartial substitutes concrete values for a subset of dimensions
// and returns the lower-dimensional polynomial over the remaining ones.
// Remaining dimensions are re-indexed downward in their original order,
// so fixing dimension 0 of a 3-dimensional polynomial leaves dimensions
// 1 and 2 as the new 0 and 1.
func (p *Polynomial) EvalPartial(values map[int]float64) (*Polynomial, error) {
	for dim := range values {
		if dim < 0 || dim >= p.dims {
			return nil, fmt.Errorf("%w: dimension %d in %d-dimensional polynomial", ErrDimensionMismatch, dim, p.dims)
		}
	}

	remap := make([]int, p.dims) // old dim -> new dim, -1 when fixed
	next := 0
	for dim := 0; dim < p.dims; dim++ {
		if _, fixed := values[dim]; fixed {
			remap[dim] = -1
			continue
		}
		remap[dim] = next
		next++
	}

	acc := newAccumulator(next, p.size)
	exps := make([]int, next)
	scaled := make([]float64, p.size)
	for _, t := range p.terms {
		w := 1.0
		for i := range exps {
			exps[i] = 0
		}
		for dim, e := range t.Exponents {
			if remap[dim] < 0 {
				w *= powInt(values[dim], e)
				continue
			}
			exps[remap[dim]] = e
		}
		for i := range scaled {
			v := t.Coeffs[0]
			if len(t.Coeffs) > 1 {
				v = t.Coeffs[i]
			}
			scaled[i] = v * w
		}
		acc.add(exps, scaled)
	}
	return acc.finish(), nil
}

// Reindex maps each dimension of p onto a new dimension index inside a
// space of newDims dimensions. The mapping must be injective and in
// range. This is the explicit form of "joining" expansions: a
// univariate polynomial becomes a participant in a wider multivariate
// space by stating which global dimension its variable occupies.
func (p *Polynomial) Reindex(mapping []int, newDims int) (*Polynomial, error) {
	if len(mapping) != p.dims {
		return nil, fmt.Errorf("%w: mapping of length %d for %d dimensions", ErrDimensionMismatch, len(mapping), p.dims)
	}
	seen := make(map[int]bool, len(mapping))
	for _, to := range mapping {
		if to < 0 || to >= newDims {
			return nil, fmt.Errorf("%w: target dimension %d outside [0,%d)", ErrDimensionMismatch, to, newDims)
		}
		if seen[to] {
			return nil, fmt.Errorf("%w: duplicate target dimension %d", ErrDimensionMismatch, to)
		}
		seen[to] = true
	}

	acc := newAccumulator(newDims, p.size)
	exps := make([]int, newDims)
	for _, t := range p.terms {
		for i := range exps {
			exps[i] = 0
		}
		for dim, e := range t.Exponents {
			exps[mapping[dim]] = e
		}
		acc.add(exps, t.Coeffs)
	}
	return acc.finish(), nil
}

// Compose substitutes a polynomial for each listed dimension's
// variable. Substituted polynomials live in the same dimension space as
// p; substituting the constant polynomial c for a dimension agrees with
// EvalPartial at value c up to the dimension lowering.
func (p *Polynomial) Compose(subs map[int]*Polynomial) (*Polynomial, error) {
	dims := make([]int, 0, len(subs))
	for dim, sub := range subs {
		if dim < 0 || dim >= p.dims {
			return nil, fmt.Errorf("%w: dimension %d in %d-dimensional polynomial", ErrDimensionMismatch, dim, p.dims)
		}
		if sub.dims != p.dims {
			return nil, &OpError{Op: "compose", Left: p.dims, Right: sub.dims, Wrapped: ErrDimensionMismatch}
		}
		dims = append(dims, dim)
	}
	sort.Ints(dims)

	// Powers of each substituted polynomial up to the largest exponent
	// it has to absorb.
	powers := make(map[int][]*Polynomial, len(dims))
	for _, dim := range dims {
		max := 0
		for _, t := range p.terms {
			if t.Exponents[dim] > max {
				max = t.Exponents[dim]
			}
		}
		pw := make([]*Polynomial, max+1)
		pw[0] = Constant(p.dims, 1)
		for e := 1; e <= max; e++ {
			var err error
			if pw[e], err = Mul(pw[e-1], subs[dim]); err != nil {
				return nil, err
			}
		}
		powers[dim] = pw
	}

	out := Constant(p.dims, 0)
	for _, t := range p.terms {
		kept := append([]int(nil), t.Exponents...)
		for _, dim := range dims {
			kept[dim] = 0
		}
		piece, err := NewFromTerms(p.dims, []Term{{Exponents: kept, Coeffs: t.Coeffs}})
		if err != nil {
			return nil, err
		}
		for _, dim := range dims {
			if e := t.Exponents[dim]; e > 0 {
				if piece, err = Mul(piece, powers[dim][e]); err != nil {
					return nil, err
				}
			}
		}
		if out, err = Add(out, piece); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func powInt(x float64, n int) float64 {
	out := 1.0
	for i := 0; i < n; i++ {
		out *= x
	}
	return out
}
