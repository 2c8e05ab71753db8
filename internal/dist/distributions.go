package dist

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// Normal is the normal distribution N(mu, sigma^2).
type Normal struct {
	Mu    float64
	Sigma float64
}

func NewNormal(mu, sigma float64) Normal { return Normal{Mu: mu, Sigma: sigma} }

func (Normal) Dims() int { return 1 }

// Moments uses the recurrence m_k = mu*m_{k-1} + (k-1)*sigma^2*m_{k-2}.
func (n Normal) Moments(dim, maxOrder int) ([]*big.Float, error) {
	if err := checkUnivariate("normal", dim, maxOrder); err != nil {
		return nil, err
	}
	if n.Sigma <= 0 {
		return nil, &MomentError{Dim: dim, Order: maxOrder,
			Wrapped: fmt.Errorf("%w: sigma %g must be positive", ErrMomentUnavailable, n.Sigma)}
	}
	mu := newFloat().SetFloat64(n.Mu)
	sigma2 := newFloat().SetFloat64(n.Sigma)
	sigma2.Mul(sigma2, sigma2)

	out := make([]*big.Float, maxOrder+1)
	out[0] = newFloat().SetInt64(1)
	if maxOrder >= 1 {
		out[1] = newFloat().Set(mu)
	}
	for k := 2; k <= maxOrder; k++ {
		a := newFloat().Mul(mu, out[k-1])
		b := newFloat().SetInt64(int64(k - 1))
		b.Mul(b, sigma2)
		b.Mul(b, out[k-2])
		out[k] = a.Add(a, b)
	}
	return out, nil
}

// Uniform is the continuous uniform distribution on [A, B].
type Uniform struct {
	A float64
	B float64
}

func NewUniform(a, b float64) Uniform { return Uniform{A: a, B: b} }

func (Uniform) Dims() int { return 1 }

// Moments evaluates m_k = (B^(k+1) - A^(k+1)) / ((k+1)(B-A)).
func (u Uniform) Moments(dim, maxOrder int) ([]*big.Float, error) {
	if err := checkUnivariate("uniform", dim, maxOrder); err != nil {
		return nil, err
	}
	if u.B <= u.A {
		return nil, &MomentError{Dim: dim, Order: maxOrder,
			Wrapped: fmt.Errorf("%w: interval [%g,%g] is empty", ErrMomentUnavailable, u.A, u.B)}
	}
	a := newFloat().SetFloat64(u.A)
	b := newFloat().SetFloat64(u.B)
	width := newFloat().Sub(b, a)

	out := make([]*big.Float, maxOrder+1)
	for k := 0; k <= maxOrder; k++ {
		num := newFloat().Sub(powInt(b, k+1), powInt(a, k+1))
		den := newFloat().SetInt64(int64(k + 1))
		den.Mul(den, width)
		out[k] = num.Quo(num, den)
	}
	return out, nil
}

// Exponential is the exponential distribution with the given rate.
type Exponential struct {
	Rate float64
}

func NewExponential(rate float64) Exponential { return Exponential{Rate: rate} }

func (Exponential) Dims() int { return 1 }

// Moments evaluates m_k = k! / rate^k.
func (e Exponential) Moments(dim, maxOrder int) ([]*big.Float, error) {
	if err := checkUnivariate("exponential", dim, maxOrder); err != nil {
		return nil, err
	}
	if e.Rate <= 0 {
		return nil, &MomentError{Dim: dim, Order: maxOrder,
			Wrapped: fmt.Errorf("%w: rate %g must be positive", ErrMomentUnavailable, e.Rate)}
	}
	rate := newFloat().SetFloat64(e.Rate)

	out := make([]*big.Float, maxOrder+1)
	out[0] = newFloat().SetInt64(1)
	for k := 1; k <= maxOrder; k++ {
		// m_k = m_{k-1} * k / rate
		m := newFloat().SetInt64(int64(k))
		m.Mul(m, out[k-1])
		out[k] = m.Quo(m, rate)
	}
	return out, nil
}

// Gamma is the gamma distribution with shape and scale parameters.
type Gamma struct {
	Shape float64
	Scale float64
}

func NewGamma(shape, scale float64) Gamma { return Gamma{Shape: shape, Scale: scale} }

func (Gamma) Dims() int { return 1 }

// Moments evaluates m_k = scale^k * shape*(shape+1)*...*(shape+k-1).
func (g Gamma) Moments(dim, maxOrder int) ([]*big.Float, error) {
	if err := checkUnivariate("gamma", dim, maxOrder); err != nil {
		return nil, err
	}
	if g.Shape <= 0 || g.Scale <= 0 {
		return nil, &MomentError{Dim: dim, Order: maxOrder,
			Wrapped: fmt.Errorf("%w: shape %g and scale %g must be positive", ErrMomentUnavailable, g.Shape, g.Scale)}
	}
	shape := newFloat().SetFloat64(g.Shape)
	scale := newFloat().SetFloat64(g.Scale)

	out := make([]*big.Float, maxOrder+1)
	out[0] = newFloat().SetInt64(1)
	rising := newFloat().SetInt64(1)
	for k := 1; k <= maxOrder; k++ {
		factor := newFloat().SetInt64(int64(k - 1))
		factor.Add(factor, shape)
		rising.Mul(rising, factor)
		out[k] = newFloat().Mul(bigfloat.Pow(scale, newFloat().SetInt64(int64(k))), rising)
	}
	return out, nil
}

// Lognormal is the distribution of exp(N(mu, sigma^2)).
type Lognormal struct {
	Mu    float64
	Sigma float64
}

func NewLognormal(mu, sigma float64) Lognormal { return Lognormal{Mu: mu, Sigma: sigma} }

func (Lognormal) Dims() int { return 1 }

// Moments evaluates m_k = exp(k*mu + k^2*sigma^2/2), which overflows
// float64 even at moderate orders; the big.Float path keeps the full
// magnitude.
func (l Lognormal) Moments(dim, maxOrder int) ([]*big.Float, error) {
	if err := checkUnivariate("lognormal", dim, maxOrder); err != nil {
		return nil, err
	}
	if l.Sigma <= 0 {
		return nil, &MomentError{Dim: dim, Order: maxOrder,
			Wrapped: fmt.Errorf("%w: sigma %g must be positive", ErrMomentUnavailable, l.Sigma)}
	}
	mu := newFloat().SetFloat64(l.Mu)
	half := newFloat().SetFloat64(0.5)
	sigma2 := newFloat().SetFloat64(l.Sigma)
	sigma2.Mul(sigma2, sigma2)

	out := make([]*big.Float, maxOrder+1)
	for k := 0; k <= maxOrder; k++ {
		kf := newFloat().SetInt64(int64(k))
		arg := newFloat().Mul(kf, mu)
		sq := newFloat().Mul(kf, kf)
		sq.Mul(sq, sigma2)
		sq.Mul(sq, half)
		arg.Add(arg, sq)
		out[k] = bigfloat.Exp(arg)
	}
	return out, nil
}

// Beta is the beta distribution on [0, 1] with shape parameters A and B.
type Beta struct {
	A float64
	B float64
}

func NewBeta(a, b float64) Beta { return Beta{A: a, B: b} }

func (Beta) Dims() int { return 1 }

// Moments uses the rising-factorial ratio m_k = m_{k-1} * (A+k-1)/(A+B+k-1).
func (b Beta) Moments(dim, maxOrder int) ([]*big.Float, error) {
	if err := checkUnivariate("beta", dim, maxOrder); err != nil {
		return nil, err
	}
	if b.A <= 0 || b.B <= 0 {
		return nil, &MomentError{Dim: dim, Order: maxOrder,
			Wrapped: fmt.Errorf("%w: shapes %g and %g must be positive", ErrMomentUnavailable, b.A, b.B)}
	}
	alpha := newFloat().SetFloat64(b.A)
	total := newFloat().SetFloat64(b.A + b.B)

	out := make([]*big.Float, maxOrder+1)
	out[0] = newFloat().SetInt64(1)
	for k := 1; k <= maxOrder; k++ {
		num := newFloat().SetInt64(int64(k - 1))
		num.Add(num, alpha)
		den := newFloat().SetInt64(int64(k - 1))
		den.Add(den, total)
		m := newFloat().Mul(out[k-1], num)
		out[k] = m.Quo(m, den)
	}
	return out, nil
}
