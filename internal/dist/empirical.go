package dist

import (
	"fmt"
	"math"
	"math/big"

	"github.com/montanaflynn/stats"
)

// Empirical estimates raw moments from a univariate sample:
// m_k = mean(x^k) over the observations.
type Empirical struct {
	samples []float64
}

// NewEmpirical copies the sample so later mutation by the caller cannot
// change the moments.
func NewEmpirical(samples []float64) *Empirical {
	return &Empirical{samples: append([]float64(nil), samples...)}
}

func (*Empirical) Dims() int { return 1 }

func (e *Empirical) Moments(dim, maxOrder int) ([]*big.Float, error) {
	if err := checkUnivariate("empirical", dim, maxOrder); err != nil {
		return nil, err
	}
	if len(e.samples) == 0 {
		return nil, &MomentError{Dim: dim, Order: maxOrder,
			Wrapped: fmt.Errorf("%w: empty sample", ErrMomentUnavailable)}
	}

	out := make([]*big.Float, maxOrder+1)
	powered := make(stats.Float64Data, len(e.samples))
	for k := 0; k <= maxOrder; k++ {
		for i, x := range e.samples {
			powered[i] = math.Pow(x, float64(k))
		}
		m, err := stats.Mean(powered)
		if err != nil {
			return nil, &MomentError{Dim: dim, Order: k,
				Wrapped: fmt.Errorf("%w: %v", ErrMomentUnavailable, err)}
		}
		if math.IsNaN(m) || math.IsInf(m, 0) {
			return nil, &MomentError{Dim: dim, Order: k,
				Wrapped: fmt.Errorf("%w: sample moment of order %d is not finite", ErrMomentUnavailable, k)}
		}
		out[k] = newFloat().SetFloat64(m)
	}
	return out, nil
}
