package poly

import (
	"errors"
	"math"
	"testing"
)

func mustPoly(t *testing.T, dims int, terms []Term) *Polynomial {
	t.Helper()
	p, err := NewFromTerms(dims, terms)
	if err != nil {
		t.Fatalf("building polynomial: %v", err)
	}
	return p
}

func mustOp(t *testing.T, p *Polynomial, err error) *Polynomial {
	t.Helper()
	if err != nil {
		t.Fatalf("operation failed: %v", err)
	}
	return p
}

func TestAddCommutative(t *testing.T) {
	a := mustPoly(t, 2, []Term{
		{Exponents: []int{1, 0}, Coeffs: []float64{2}},
		{Exponents: []int{0, 1}, Coeffs: []float64{-1}},
	})
	b := mustPoly(t, 2, []Term{
		{Exponents: []int{1, 0}, Coeffs: []float64{1}},
		{Exponents: []int{1, 1}, Coeffs: []float64{4}},
	})

	abP, abErr := Add(a, b)
	ab := mustOp(t, abP, abErr)
	baP, baErr := Add(b, a)
	ba := mustOp(t, baP, baErr)
	if !ab.Equal(ba) {
		t.Errorf("add not commutative: %s vs %s", ab, ba)
	}
}

func TestMulAssociative(t *testing.T) {
	a := mustPoly(t, 1, []Term{
		{Exponents: []int{0}, Coeffs: []float64{1}},
		{Exponents: []int{1}, Coeffs: []float64{1}},
	})
	b := mustPoly(t, 1, []Term{
		{Exponents: []int{1}, Coeffs: []float64{2}},
		{Exponents: []int{2}, Coeffs: []float64{-1}},
	})
	c := mustPoly(t, 1, []Term{
		{Exponents: []int{0}, Coeffs: []float64{3}},
		{Exponents: []int{3}, Coeffs: []float64{0.5}},
	})

	abP, abErr := Mul(a, b)
	leftP, leftErr := Mul(mustOp(t, abP, abErr), c)
	left := mustOp(t, leftP, leftErr)
	bcP, bcErr := Mul(b, c)
	rightP, rightErr := Mul(a, mustOp(t, bcP, bcErr))
	right := mustOp(t, rightP, rightErr)
	if !left.EqualTol(right, 1e-12) {
		t.Errorf("mul not associative: %s vs %s", left, right)
	}
}

func TestMulAccumulatesOverlappingPairs(t *testing.T) {
	// (1 + x)^2 exercises two pairs landing on the x tuple.
	p := mustPoly(t, 1, []Term{
		{Exponents: []int{0}, Coeffs: []float64{1}},
		{Exponents: []int{1}, Coeffs: []float64{1}},
	})
	sqP, sqErr := Mul(p, p)
	sq := mustOp(t, sqP, sqErr)

	want := mustPoly(t, 1, []Term{
		{Exponents: []int{0}, Coeffs: []float64{1}},
		{Exponents: []int{1}, Coeffs: []float64{2}},
		{Exponents: []int{2}, Coeffs: []float64{1}},
	})
	if !sq.Equal(want) {
		t.Errorf("expected %s, got %s", want, sq)
	}
}

func TestAddEvalLinear(t *testing.T) {
	a := mustPoly(t, 1, []Term{
		{Exponents: []int{2}, Coeffs: []float64{3}},
		{Exponents: []int{0}, Coeffs: []float64{-1}},
	})
	b := mustPoly(t, 1, []Term{
		{Exponents: []int{1}, Coeffs: []float64{5}},
	})
	sumP, sumErr := Add(a, b)
	sum := mustOp(t, sumP, sumErr)

	for _, x := range []float64{-2, -0.5, 0, 1, 3.25} {
		va, err := a.Eval([]float64{x})
		if err != nil {
			t.Fatalf("eval a: %v", err)
		}
		vb, err := b.Eval([]float64{x})
		if err != nil {
			t.Fatalf("eval b: %v", err)
		}
		vs, err := sum.Eval([]float64{x})
		if err != nil {
			t.Fatalf("eval sum: %v", err)
		}
		if math.Abs(vs[0]-(va[0]+vb[0])) > 1e-12 {
			t.Errorf("x=%g: eval(a+b)=%g, eval(a)+eval(b)=%g", x, vs[0], va[0]+vb[0])
		}
	}
}

func TestDimensionMismatch(t *testing.T) {
	a := Constant(2, 1)
	b := Constant(3, 1)

	_, err := Add(a, b)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}

	var opErr *OpError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected OpError wrapper, got %T", err)
	}
	if opErr.Left != 2 || opErr.Right != 3 {
		t.Errorf("wrapper carries dims %d/%d", opErr.Left, opErr.Right)
	}
}

func TestDivByConstant(t *testing.T) {
	p := mustPoly(t, 1, []Term{
		{Exponents: []int{1}, Coeffs: []float64{4}},
		{Exponents: []int{0}, Coeffs: []float64{2}},
	})
	qP, qErr := Div(p, Constant(1, 2))
	q := mustOp(t, qP, qErr)

	want := mustPoly(t, 1, []Term{
		{Exponents: []int{1}, Coeffs: []float64{2}},
		{Exponents: []int{0}, Coeffs: []float64{1}},
	})
	if !q.Equal(want) {
		t.Errorf("expected %s, got %s", want, q)
	}
}

func TestDivByNonConstant(t *testing.T) {
	x, err := Variable(1, 0)
	if err != nil {
		t.Fatalf("variable: %v", err)
	}
	_, err = Div(Constant(1, 1), x)
	if !errors.Is(err, ErrUnsupportedOperation) {
		t.Errorf("expected ErrUnsupportedOperation, got %v", err)
	}

	_, err = Div(x, Constant(1, 0))
	if !errors.Is(err, ErrUnsupportedOperation) {
		t.Errorf("expected ErrUnsupportedOperation for zero divisor, got %v", err)
	}
}

func TestPow(t *testing.T) {
	x, err := Variable(1, 0)
	if err != nil {
		t.Fatalf("variable: %v", err)
	}
	shiftedP, shiftedErr := Add(x, Constant(1, 1))
	shifted := mustOp(t, shiftedP, shiftedErr)
	cubeP, cubeErr := Pow(shifted, 3)
	cube := mustOp(t, cubeP, cubeErr)

	want := mustPoly(t, 1, []Term{
		{Exponents: []int{0}, Coeffs: []float64{1}},
		{Exponents: []int{1}, Coeffs: []float64{3}},
		{Exponents: []int{2}, Coeffs: []float64{3}},
		{Exponents: []int{3}, Coeffs: []float64{1}},
	})
	if !cube.Equal(want) {
		t.Errorf("expected %s, got %s", want, cube)
	}

	if _, err := Pow(x, -1); !errors.Is(err, ErrUnsupportedOperation) {
		t.Errorf("expected ErrUnsupportedOperation for negative power, got %v", err)
	}
}

func TestArrayCoefficientAlgebra(t *testing.T) {
	a := mustPoly(t, 1, []Term{
		{Exponents: []int{1}, Coeffs: []float64{1, 2}},
	})
	b := mustPoly(t, 1, []Term{
		{Exponents: []int{1}, Coeffs: []float64{10}},
	})
	sumP, sumErr := Add(a, b)
	sum := mustOp(t, sumP, sumErr)

	got := sum.Coefficient([]int{1})
	want := []float64{11, 12}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("broadcast sum: expected %v, got %v", want, got)
			break
		}
	}
}
