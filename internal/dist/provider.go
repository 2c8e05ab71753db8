package dist

import (
	"fmt"
	"math/big"
)

// Precision is the working mantissa precision, in bits, of every moment
// produced by this package.
const Precision = 256

// MomentProvider supplies raw moments of a multivariate probability
// distribution, one marginal per dimension.
type MomentProvider interface {
	// Dims returns the number of stochastic dimensions.
	Dims() int

	// Moments returns the raw moments m_0..m_maxOrder of the marginal
	// along the given dimension.
	Moments(dim, maxOrder int) ([]*big.Float, error)
}

// Joint is an independent product of marginal providers. Moment
// requests dispatch to the marginal owning the requested dimension;
// mixed moments of an independent product factor across dimensions, so
// per-marginal sequences are all the orthogonalizer needs.
type Joint struct {
	marginals []MomentProvider
	dims      int
}

// Join composes providers into an independent multivariate provider.
func Join(marginals ...MomentProvider) *Joint {
	dims := 0
	for _, m := range marginals {
		dims += m.Dims()
	}
	return &Joint{marginals: marginals, dims: dims}
}

func (j *Joint) Dims() int { return j.dims }

func (j *Joint) Moments(dim, maxOrder int) ([]*big.Float, error) {
	if dim < 0 || dim >= j.dims {
		return nil, &MomentError{Dim: dim, Order: maxOrder,
			Wrapped: fmt.Errorf("%w: dimension outside [0,%d)", ErrMomentUnavailable, j.dims)}
	}
	local := dim
	for _, m := range j.marginals {
		if local < m.Dims() {
			return m.Moments(local, maxOrder)
		}
		local -= m.Dims()
	}
	return nil, &MomentError{Dim: dim, Order: maxOrder, Wrapped: ErrMomentUnavailable}
}

// newFloat allocates a big.Float at the package working precision.
func newFloat() *big.Float {
	return new(big.Float).SetPrec(Precision)
}

// powInt raises x to a non-negative integer power by repeated
// multiplication, which stays exact for negative bases.
func powInt(x *big.Float, n int) *big.Float {
	out := newFloat().SetInt64(1)
	for i := 0; i < n; i++ {
		out.Mul(out, x)
	}
	return out
}

// checkUnivariate validates a dimension index against a one-dimensional
// provider.
func checkUnivariate(name string, dim, maxOrder int) error {
	if dim != 0 {
		return &MomentError{Dim: dim, Order: maxOrder,
			Wrapped: fmt.Errorf("%w: %s is univariate", ErrMomentUnavailable, name)}
	}
	if maxOrder < 0 {
		return &MomentError{Dim: dim, Order: maxOrder,
			Wrapped: fmt.Errorf("%w: negative order", ErrMomentUnavailable)}
	}
	return nil
}
