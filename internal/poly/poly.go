package poly

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/san-kum/polychaos/internal/indices"
)

// Term pairs one exponent tuple with its coefficient array.
type Term struct {
	Exponents []int
	Coeffs    []float64
}

// Polynomial is an exact multivariate polynomial: a set of terms with
// pairwise distinct exponent tuples, each carrying a coefficient array
// of the shared length size. The zero polynomial has no terms.
type Polynomial struct {
	dims  int
	size  int
	terms []Term // canonical order, zero coefficients pruned
}

// NewFromTerms builds a polynomial in dims dimensions from an explicit
// term list. Duplicate exponent tuples are summed. Coefficient arrays
// must all have the same length or length 1 (scalars broadcast to the
// widest array present).
func NewFromTerms(dims int, terms []Term) (*Polynomial, error) {
	if dims < 0 {
		return nil, fmt.Errorf("%w: negative dimension count %d", ErrDimensionMismatch, dims)
	}
	size := 1
	for _, t := range terms {
		if len(t.Exponents) != dims {
			return nil, fmt.Errorf("%w: tuple %v in %d dimensions", ErrInvalidTerm, t.Exponents, dims)
		}
		for _, e := range t.Exponents {
			if e < 0 {
				return nil, fmt.Errorf("%w: negative exponent in %v", ErrInvalidTerm, t.Exponents)
			}
		}
		if len(t.Coeffs) == 0 {
			return nil, fmt.Errorf("%w: empty coefficient array", ErrInvalidTerm)
		}
		if len(t.Coeffs) > 1 {
			if size > 1 && len(t.Coeffs) != size {
				return nil, fmt.Errorf("%w: coefficient arrays of length %d and %d", ErrDimensionMismatch, size, len(t.Coeffs))
			}
			size = len(t.Coeffs)
		}
	}

	acc := newAccumulator(dims, size)
	for _, t := range terms {
		acc.add(t.Exponents, t.Coeffs)
	}
	return acc.finish(), nil
}

// Constant returns the constant scalar polynomial with the given value.
func Constant(dims int, value float64) *Polynomial {
	return ConstantArray(dims, []float64{value})
}

// ConstantArray returns the constant polynomial with an array
// coefficient.
func ConstantArray(dims int, values []float64) *Polynomial {
	if len(values) == 0 {
		return &Polynomial{dims: dims, size: 1}
	}
	coeffs := make([]float64, len(values))
	copy(coeffs, values)
	p := &Polynomial{dims: dims, size: len(coeffs)}
	if !allZero(coeffs) {
		p.terms = []Term{{Exponents: make([]int, dims), Coeffs: coeffs}}
	}
	return p
}

// Variable returns the polynomial q_dim in a space of dims dimensions.
func Variable(dims, dim int) (*Polynomial, error) {
	if dims < 1 {
		return nil, fmt.Errorf("%w: dimension count %d", ErrDimensionMismatch, dims)
	}
	if dim < 0 || dim >= dims {
		return nil, fmt.Errorf("%w: variable index %d in %d dimensions", ErrDimensionMismatch, dim, dims)
	}
	exps := make([]int, dims)
	exps[dim] = 1
	return &Polynomial{
		dims:  dims,
		size:  1,
		terms: []Term{{Exponents: exps, Coeffs: []float64{1}}},
	}, nil
}

// Monomial returns the single-term polynomial coeff * q^exps.
func Monomial(exps []int, coeff float64) (*Polynomial, error) {
	return NewFromTerms(len(exps), []Term{{Exponents: exps, Coeffs: []float64{coeff}}})
}

// Dims returns the dimension count fixed at construction.
func (p *Polynomial) Dims() int { return p.dims }

// Size returns the shared coefficient array length (1 for scalar
// polynomials).
func (p *Polynomial) Size() int { return p.size }

// IsZero reports whether the polynomial has no non-zero terms.
func (p *Polynomial) IsZero() bool { return len(p.terms) == 0 }

// IsConstant reports whether the polynomial has no variable dependence.
func (p *Polynomial) IsConstant() bool {
	return len(p.terms) == 0 || (len(p.terms) == 1 && indices.TotalDegree(p.terms[0].Exponents) == 0)
}

// Degree returns the maximum total degree among non-zero terms. The
// zero polynomial has degree 0.
func (p *Polynomial) Degree() int {
	deg := 0
	for _, t := range p.terms {
		if d := indices.TotalDegree(t.Exponents); d > deg {
			deg = d
		}
	}
	return deg
}

// Terms returns a deep copy of the canonical term list, sorted by total
// degree then reverse-lexicographic tie-break.
func (p *Polynomial) Terms() []Term {
	out := make([]Term, len(p.terms))
	for i, t := range p.terms {
		out[i] = Term{
			Exponents: append([]int(nil), t.Exponents...),
			Coeffs:    append([]float64(nil), t.Coeffs...),
		}
	}
	return out
}

// Coefficient returns a copy of the coefficient array stored at the
// given exponent tuple, or an all-zero array when the tuple is not in
// the support.
func (p *Polynomial) Coefficient(exps []int) []float64 {
	if i, ok := p.find(exps); ok {
		return append([]float64(nil), p.terms[i].Coeffs...)
	}
	return make([]float64, p.size)
}

// Equal reports structural equality on the canonical pruned mapping:
// same dimension count, same coefficient array length, identical terms.
func (p *Polynomial) Equal(q *Polynomial) bool {
	return p.equal(q, func(a, b float64) bool { return a == b })
}

// EqualTol is Equal with an absolute per-coefficient tolerance, for
// comparing results of float computations.
func (p *Polynomial) EqualTol(q *Polynomial, tol float64) bool {
	return p.equal(q, func(a, b float64) bool { return math.Abs(a-b) <= tol })
}

func (p *Polynomial) equal(q *Polynomial, eq func(a, b float64) bool) bool {
	if p.dims != q.dims || p.size != q.size || len(p.terms) != len(q.terms) {
		return false
	}
	for i, t := range p.terms {
		u := q.terms[i]
		if indices.Compare(t.Exponents, u.Exponents) != 0 {
			return false
		}
		for j := range t.Coeffs {
			if !eq(t.Coeffs[j], u.Coeffs[j]) {
				return false
			}
		}
	}
	return true
}

// String renders the polynomial with per-dimension variables q0, q1,
// ... in canonical term order. Array coefficients render as bracketed
// lists. The zero polynomial renders as "0".
func (p *Polynomial) String() string {
	if len(p.terms) == 0 {
		return "0"
	}
	parts := make([]string, 0, len(p.terms))
	for _, t := range p.terms {
		parts = append(parts, formatTerm(t))
	}
	return strings.Join(parts, " + ")
}

func formatTerm(t Term) string {
	var vars []string
	for dim, e := range t.Exponents {
		switch {
		case e == 1:
			vars = append(vars, fmt.Sprintf("q%d", dim))
		case e > 1:
			vars = append(vars, fmt.Sprintf("q%d^%d", dim, e))
		}
	}
	coeff := formatCoeffs(t.Coeffs)
	if len(vars) == 0 {
		return coeff
	}
	if coeff == "1" {
		return strings.Join(vars, "*")
	}
	return coeff + "*" + strings.Join(vars, "*")
}

func formatCoeffs(coeffs []float64) string {
	if len(coeffs) == 1 {
		return fmt.Sprintf("%g", coeffs[0])
	}
	parts := make([]string, len(coeffs))
	for i, c := range coeffs {
		parts[i] = fmt.Sprintf("%g", c)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// find locates the term with the given exponent tuple by binary search
// over the canonically sorted term list.
func (p *Polynomial) find(exps []int) (int, bool) {
	i := sort.Search(len(p.terms), func(i int) bool {
		return indices.Compare(p.terms[i].Exponents, exps) >= 0
	})
	if i < len(p.terms) && indices.Compare(p.terms[i].Exponents, exps) == 0 {
		return i, true
	}
	return i, false
}

func allZero(coeffs []float64) bool {
	for _, c := range coeffs {
		if c != 0 {
			return false
		}
	}
	return true
}

// accumulator collects terms during an algebraic operation, merging
// duplicate exponent tuples and broadcasting scalar coefficients to the
// target array length.
type accumulator struct {
	dims  int
	size  int
	terms []Term // kept sorted canonically
}

func newAccumulator(dims, size int) *accumulator {
	return &accumulator{dims: dims, size: size}
}

func (a *accumulator) add(exps []int, coeffs []float64) {
	i := sort.Search(len(a.terms), func(i int) bool {
		return indices.Compare(a.terms[i].Exponents, exps) >= 0
	})
	if i < len(a.terms) && indices.Compare(a.terms[i].Exponents, exps) == 0 {
		addBroadcast(a.terms[i].Coeffs, coeffs)
		return
	}
	t := Term{
		Exponents: append([]int(nil), exps...),
		Coeffs:    make([]float64, a.size),
	}
	addBroadcast(t.Coeffs, coeffs)
	a.terms = append(a.terms, Term{})
	copy(a.terms[i+1:], a.terms[i:])
	a.terms[i] = t
}

// addBroadcast accumulates src into dst, broadcasting a length-1 src
// across dst.
func addBroadcast(dst, src []float64) {
	if len(src) == 1 {
		for i := range dst {
			dst[i] += src[0]
		}
		return
	}
	for i := range dst {
		dst[i] += src[i]
	}
}

// finish prunes all-zero terms and seals the accumulated polynomial.
func (a *accumulator) finish() *Polynomial {
	terms := a.terms[:0]
	for _, t := range a.terms {
		if !allZero(t.Coeffs) {
			terms = append(terms, t)
		}
	}
	return &Polynomial{dims: a.dims, size: a.size, terms: terms}
}
