package poly

import "fmt"

// Add returns p + q. Operands must share the dimension count; scalar
// and array coefficients broadcast.
func Add(p, q *Polynomial) (*Polynomial, error) {
	size, err := checkOperands("add", p, q)
	if err != nil {
		return nil, err
	}
	acc := newAccumulator(p.dims, size)
	for _, t := range p.terms {
		acc.add(t.Exponents, t.Coeffs)
	}
	for _, t := range q.terms {
		acc.add(t.Exponents, t.Coeffs)
	}
	return acc.finish(), nil
}

// Sub returns p - q.
func Sub(p, q *Polynomial) (*Polynomial, error) {
	return Add(p, q.Scale(-1))
}

// Mul returns the Cauchy product p * q: every pair of terms contributes
// its coefficient product at the sum of the exponent tuples, and pairs
// landing on the same tuple accumulate.
func Mul(p, q *Polynomial) (*Polynomial, error) {
	size, err := checkOperands("multiply", p, q)
	if err != nil {
		return nil, err
	}
	acc := newAccumulator(p.dims, size)
	exps := make([]int, p.dims)
	for _, tp := range p.terms {
		for _, tq := range q.terms {
			for i := range exps {
				exps[i] = tp.Exponents[i] + tq.Exponents[i]
			}
			acc.add(exps, mulBroadcast(tp.Coeffs, tq.Coeffs, size))
		}
	}
	return acc.finish(), nil
}

// Scale returns c * p.
func (p *Polynomial) Scale(c float64) *Polynomial {
	acc := newAccumulator(p.dims, p.size)
	for _, t := range p.terms {
		scaled := make([]float64, len(t.Coeffs))
		for i, v := range t.Coeffs {
			scaled[i] = c * v
		}
		acc.add(t.Exponents, scaled)
	}
	return acc.finish()
}

// Pow returns p raised to a non-negative integer power.
func Pow(p *Polynomial, n int) (*Polynomial, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative power %d", ErrUnsupportedOperation, n)
	}
	out := Constant(p.dims, 1)
	var err error
	for i := 0; i < n; i++ {
		if out, err = Mul(out, p); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Div returns p / q for a constant, non-zero q. Division by a
// polynomial with variable dependence has no polynomial normal form and
// fails with ErrUnsupportedOperation.
func Div(p, q *Polynomial) (*Polynomial, error) {
	size, err := checkOperands("divide", p, q)
	if err != nil {
		return nil, err
	}
	if !q.IsConstant() {
		return nil, fmt.Errorf("%w: division by non-constant polynomial %s", ErrUnsupportedOperation, q)
	}
	divisor := make([]float64, size)
	src := q.Coefficient(make([]int, q.dims))
	for i := range divisor {
		v := src[0]
		if len(src) > 1 {
			v = src[i]
		}
		if v == 0 {
			return nil, fmt.Errorf("%w: division by zero constant", ErrUnsupportedOperation)
		}
		divisor[i] = v
	}

	acc := newAccumulator(p.dims, size)
	quot := make([]float64, size)
	for _, t := range p.terms {
		for i := range quot {
			v := t.Coeffs[0]
			if len(t.Coeffs) > 1 {
				v = t.Coeffs[i]
			}
			quot[i] = v / divisor[i]
		}
		acc.add(t.Exponents, quot)
	}
	return acc.finish(), nil
}

// checkOperands validates dimension counts and resolves the broadcast
// coefficient array length for a binary operation.
func checkOperands(op string, p, q *Polynomial) (int, error) {
	if p.dims != q.dims {
		return 0, &OpError{Op: op, Left: p.dims, Right: q.dims, Wrapped: ErrDimensionMismatch}
	}
	size := p.size
	if q.size > size {
		size = q.size
	}
	if p.size > 1 && q.size > 1 && p.size != q.size {
		return 0, &OpError{Op: op, Left: p.size, Right: q.size,
			Wrapped: fmt.Errorf("%w: coefficient arrays of length %d and %d", ErrDimensionMismatch, p.size, q.size)}
	}
	return size, nil
}

// mulBroadcast returns the elementwise product of two coefficient
// arrays at the broadcast length.
func mulBroadcast(a, b []float64, size int) []float64 {
	out := make([]float64, size)
	for i := range out {
		av, bv := a[0], b[0]
		if len(a) > 1 {
			av = a[i]
		}
		if len(b) > 1 {
			bv = b[i]
		}
		out[i] = av * bv
	}
	return out
}
