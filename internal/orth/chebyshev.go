package orth

import (
	"fmt"
	"math/big"
)

// pivotFloor is the relative tolerance on Hankel pivots. A pivot below
// m_0 * pivotFloor means the moment sequence has numerically lost
// positive definiteness at the attempted order.
const pivotFloor = 1e-60

// Recurrence holds the three-term recurrence coefficients of a family
// of monic orthogonal polynomials:
//
//	P_{k+1}(x) = (x - Alpha[k]) P_k(x) - Beta[k] P_{k-1}(x)
//
// with P_{-1} = 0 and P_0 = 1. Beta[0] is the total mass m_0. Norms[k]
// is sqrt(Beta[0]*...*Beta[k]), the L2 norm of P_k under the measure.
type Recurrence struct {
	Alpha []float64
	Beta  []float64
	Norms []float64
}

// Order returns the highest polynomial order the coefficients support.
func (r Recurrence) Order() int { return len(r.Alpha) - 1 }

// Coefficients derives the recurrence coefficients alpha_0..alpha_order
// and beta_0..beta_order from the raw moments m_0..m_{2*order+1} using
// the Chebyshev sigma-table algorithm. The derivation runs at the
// precision of the input moments; pivots sigma_{k,k} are the squared
// norms of the monic polynomials and must stay positive.
func Coefficients(moments []*big.Float, order int) (Recurrence, error) {
	if order < 0 {
		return Recurrence{}, fmt.Errorf("%w: got %d", ErrInvalidOrder, order)
	}
	if len(moments) < 2*order+2 {
		return Recurrence{}, fmt.Errorf("orth: need %d moments for order %d, got %d: %w",
			2*order+2, order, len(moments), ErrNumericalInstability)
	}
	if moments[0].Sign() <= 0 {
		m0, _ := moments[0].Float64()
		return Recurrence{}, &InstabilityError{Dim: -1, Order: 0, Pivot: m0}
	}

	prec := moments[0].Prec()
	nf := func() *big.Float { return new(big.Float).SetPrec(prec) }

	floor := nf().SetFloat64(pivotFloor)
	floor.Mul(floor, moments[0])

	cols := 2*order + 2
	prev := make([]*big.Float, cols) // sigma_{k-2,l}
	curr := make([]*big.Float, cols) // sigma_{k-1,l}
	for l := 0; l < cols; l++ {
		prev[l] = nf() // zero row for sigma_{-1,l}
		curr[l] = nf().Set(moments[l])
	}

	alpha := make([]*big.Float, order+1)
	beta := make([]*big.Float, order+1)
	alpha[0] = nf().Quo(moments[1], moments[0])
	beta[0] = nf().Set(moments[0])

	for k := 1; k <= order; k++ {
		next := make([]*big.Float, cols)
		for l := 0; l < cols; l++ {
			next[l] = nf()
		}
		for l := k; l <= 2*order-k+1; l++ {
			// sigma_{k,l} = sigma_{k-1,l+1} - alpha_{k-1} sigma_{k-1,l}
			//             - beta_{k-1} sigma_{k-2,l}
			t := nf().Mul(alpha[k-1], curr[l])
			next[l].Sub(curr[l+1], t)
			t.Mul(beta[k-1], prev[l])
			next[l].Sub(next[l], t)
		}

		pivot := next[k]
		if pivot.Sign() <= 0 || pivot.Cmp(floor) < 0 {
			pv, _ := pivot.Float64()
			return Recurrence{}, &InstabilityError{Dim: -1, Order: k, Pivot: pv}
		}

		// alpha_k = sigma_{k,k+1}/sigma_{k,k} - sigma_{k-1,k}/sigma_{k-1,k-1}
		a := nf().Quo(next[k+1], pivot)
		b := nf().Quo(curr[k], curr[k-1])
		alpha[k] = a.Sub(a, b)
		beta[k] = nf().Quo(pivot, curr[k-1])

		prev, curr = curr, next
	}

	out := Recurrence{
		Alpha: make([]float64, order+1),
		Beta:  make([]float64, order+1),
		Norms: make([]float64, order+1),
	}
	normSq := nf().SetInt64(1)
	for k := 0; k <= order; k++ {
		out.Alpha[k], _ = alpha[k].Float64()
		out.Beta[k], _ = beta[k].Float64()
		normSq.Mul(normSq, beta[k])
		n := nf().Sqrt(normSq)
		out.Norms[k], _ = n.Float64()
	}
	return out, nil
}
