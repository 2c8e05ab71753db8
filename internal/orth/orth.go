package orth

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/san-kum/polychaos/internal/dist"
	"github.com/san-kum/polychaos/internal/indices"
	"github.com/san-kum/polychaos/internal/poly"
)

// Option configures orthogonal basis construction.
type Option func(*options)

type options struct {
	normed bool
	ct     float64
}

// Normed requests an orthonormal basis instead of a monic orthogonal
// one: each univariate factor is divided by its norm under the measure.
func Normed() Option {
	return func(o *options) { o.normed = true }
}

// CrossTruncation sets the Lp exponent of the multi-index truncation
// ball. The default 1 is plain total-degree truncation.
func CrossTruncation(p float64) Option {
	return func(o *options) { o.ct = p }
}

// Orthogonal builds the multivariate basis orthogonal under the
// provider's probability measure, up to the given total order. The
// per-dimension recurrences run concurrently; the combination step
// multiplies univariate factors along the canonical multi-index set, so
// entry i of the result corresponds positionally to tuple i of
// indices.Generate(0, order, dims, ct).
//
// Orthogonality of the products requires independence across
// dimensions, which dist.Join guarantees by construction. Dependent
// joints must be decorrelated before this call.
func Orthogonal(order int, mp dist.MomentProvider, opts ...Option) (poly.Expansion, error) {
	o := options{ct: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if order < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidOrder, order)
	}

	dims := mp.Dims()
	univariates, err := univariateBases(order, dims, mp, o)
	if err != nil {
		return nil, err
	}

	tuples, err := indices.Generate(0, order, dims, o.ct)
	if err != nil {
		return nil, err
	}

	out := make(poly.Expansion, len(tuples))
	for i, exps := range tuples {
		p := poly.Constant(dims, 1)
		for d, k := range exps {
			if k == 0 {
				continue
			}
			if p, err = poly.Mul(p, univariates[d][k]); err != nil {
				return nil, err
			}
		}
		out[i] = p
	}
	return out, nil
}

// univariateBases derives the per-dimension orthogonal families, one
// goroutine per dimension writing into its own slot.
func univariateBases(order, dims int, mp dist.MomentProvider, o options) ([]poly.Expansion, error) {
	bases := make([]poly.Expansion, dims)
	errs := make([]error, dims)

	var wg sync.WaitGroup
	for d := 0; d < dims; d++ {
		wg.Add(1)
		go func(d int) {
			defer wg.Done()
			bases[d], errs[d] = univariateBasis(order, d, dims, mp, o)
		}(d)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return bases, nil
}

func univariateBasis(order, dim, dims int, mp dist.MomentProvider, o options) (poly.Expansion, error) {
	moments, err := mp.Moments(dim, 2*order+1)
	if err != nil {
		return nil, err
	}
	rec, err := Coefficients(moments, order)
	if err != nil {
		return nil, tagDim(err, dim)
	}
	basis, err := Univariate(rec, dim, dims)
	if err != nil {
		return nil, err
	}
	if o.normed {
		if basis, err = Normalize(basis, rec); err != nil {
			return nil, tagDim(err, dim)
		}
	}
	return basis, nil
}

// tagDim stamps the owning dimension onto instability errors raised by
// the dimension-agnostic derivation helpers.
func tagDim(err error, dim int) error {
	var ie *InstabilityError
	if errors.As(err, &ie) && ie.Dim < 0 {
		return &InstabilityError{Dim: dim, Order: ie.Order, Pivot: ie.Pivot}
	}
	return err
}

// Request is one basis construction job for Batch.
type Request struct {
	Order    int
	Provider dist.MomentProvider
	Options  []Option
}

// Batch constructs several orthogonal bases concurrently, one goroutine
// per request, and preserves request order in the results. The context
// is checked before each request starts; already-running constructions
// finish on their own.
func Batch(ctx context.Context, reqs []Request) ([]poly.Expansion, error) {
	results := make([]poly.Expansion, len(reqs))
	errs := make([]error, len(reqs))

	var wg sync.WaitGroup
	for i, req := range reqs {
		if err := ctx.Err(); err != nil {
			errs[i] = err
			continue
		}
		wg.Add(1)
		go func(i int, req Request) {
			defer wg.Done()
			results[i], errs[i] = Orthogonal(req.Order, req.Provider, req.Options...)
		}(i, req)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("orth: batch request %d: %w", i, err)
		}
	}
	return results, nil
}

// InnerProduct computes the expectation E[p*q] under the provider's
// measure, factoring mixed moments across independent dimensions. It is
// the inner product the Orthogonal basis is orthogonal under, exposed
// for verification and diagnostics.
func InnerProduct(p, q *poly.Polynomial, mp dist.MomentProvider) (float64, error) {
	prod, err := poly.Mul(p, q)
	if err != nil {
		return 0, err
	}
	dims := prod.Dims()

	maxOrder := 0
	for _, t := range prod.Terms() {
		for _, e := range t.Exponents {
			if e > maxOrder {
				maxOrder = e
			}
		}
	}
	moments := make([][]float64, dims)
	for d := 0; d < dims; d++ {
		raw, err := mp.Moments(d, maxOrder)
		if err != nil {
			return 0, err
		}
		moments[d] = make([]float64, len(raw))
		for i, m := range raw {
			moments[d][i], _ = m.Float64()
		}
	}

	total := 0.0
	for _, t := range prod.Terms() {
		w := t.Coeffs[0]
		for d, e := range t.Exponents {
			w *= moments[d][e]
		}
		total += w
	}
	if math.IsNaN(total) || math.IsInf(total, 0) {
		return 0, fmt.Errorf("%w: inner product not finite", ErrNumericalInstability)
	}
	return total, nil
}
