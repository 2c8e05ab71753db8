package basis

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/polychaos/internal/indices"
	"github.com/san-kum/polychaos/internal/poly"
)

// ErrSingularNodes indicates abscissas whose interpolation matrix is
// singular: no polynomial of the chosen multi-index set separates them.
var ErrSingularNodes = errors.New("basis: abscissas produce a singular interpolation matrix")

// Lagrange builds the interpolating expansion for the given abscissa
// points: entry i evaluates to 1 at points[i] and to 0 at every other
// abscissa. Each point is one coordinate tuple; all points share a
// dimension count.
//
// The expansion spans the first len(points) monomials of the smallest
// total-degree simplex that can hold them, so the result is unique for
// abscissas in general position.
func Lagrange(points [][]float64) (poly.Expansion, error) {
	size := len(points)
	if size == 0 {
		return nil, fmt.Errorf("%w: no abscissas", ErrSingularNodes)
	}
	dims := len(points[0])
	if dims < 1 {
		return nil, fmt.Errorf("%w: got %d", indices.ErrInvalidDimension, dims)
	}
	for i, pt := range points {
		if len(pt) != dims {
			return nil, fmt.Errorf("%w: abscissa %d has %d coordinates, expected %d",
				poly.ErrDimensionMismatch, i, len(pt), dims)
		}
	}

	order := 0
	for simplexCount(order, dims) < size {
		order++
	}
	tuples, err := indices.Generate(0, order, dims, 1)
	if err != nil {
		return nil, err
	}
	tuples = tuples[:size]

	// Vandermonde-type collocation matrix over the monomial set.
	matrix := make([][]float64, size)
	for i, pt := range points {
		row := make([]float64, size)
		for j, exps := range tuples {
			w := 1.0
			for d, e := range exps {
				for n := 0; n < e; n++ {
					w *= pt[d]
				}
			}
			row[j] = w
		}
		matrix[i] = row
	}

	inv, err := invert(matrix)
	if err != nil {
		return nil, err
	}

	out := make(poly.Expansion, size)
	for i := 0; i < size; i++ {
		terms := make([]poly.Term, 0, size)
		for j := 0; j < size; j++ {
			// L_i coefficients solve M c = e_i, i.e. column i of M^-1.
			terms = append(terms, poly.Term{Exponents: tuples[j], Coeffs: []float64{inv[j][i]}})
		}
		p, err := poly.NewFromTerms(dims, terms)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

// Lagrange1D is the univariate convenience form of Lagrange.
func Lagrange1D(xs []float64) (poly.Expansion, error) {
	points := make([][]float64, len(xs))
	for i, x := range xs {
		points[i] = []float64{x}
	}
	return Lagrange(points)
}

func simplexCount(order, dims int) int {
	// C(order+dims, dims), built incrementally to stay in integers.
	count := 1
	for i := 1; i <= dims; i++ {
		count = count * (order + i) / i
	}
	return count
}

// invert performs Gauss-Jordan elimination with partial pivoting.
func invert(m [][]float64) ([][]float64, error) {
	n := len(m)
	a := make([][]float64, n)
	inv := make([][]float64, n)
	for i := range m {
		a[i] = append([]float64(nil), m[i]...)
		inv[i] = make([]float64, n)
		inv[i][i] = 1
	}

	for col := 0; col < n; col++ {
		pivot := col
		for row := col + 1; row < n; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(a[pivot][col]) < 1e-12 {
			return nil, fmt.Errorf("%w: pivot %g at column %d", ErrSingularNodes, a[pivot][col], col)
		}
		a[col], a[pivot] = a[pivot], a[col]
		inv[col], inv[pivot] = inv[pivot], inv[col]

		scale := a[col][col]
		for j := 0; j < n; j++ {
			a[col][j] /= scale
			inv[col][j] /= scale
		}
		for row := 0; row < n; row++ {
			if row == col {
				continue
			}
			factor := a[row][col]
			if factor == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				a[row][j] -= factor * a[col][j]
				inv[row][j] -= factor * inv[col][j]
			}
		}
	}
	return inv, nil
}
