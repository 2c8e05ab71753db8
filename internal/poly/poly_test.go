package poly

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewFromTermsMergesDuplicates(t *testing.T) {
	p, err := NewFromTerms(2, []Term{
		{Exponents: []int{1, 0}, Coeffs: []float64{2}},
		{Exponents: []int{1, 0}, Coeffs: []float64{3}},
		{Exponents: []int{0, 0}, Coeffs: []float64{1}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Term{
		{Exponents: []int{0, 0}, Coeffs: []float64{1}},
		{Exponents: []int{1, 0}, Coeffs: []float64{5}},
	}
	if diff := cmp.Diff(want, p.Terms()); diff != "" {
		t.Errorf("terms mismatch (-want +got):\n%s", diff)
	}
}

func TestNewFromTermsPrunesZero(t *testing.T) {
	p, err := NewFromTerms(1, []Term{
		{Exponents: []int{2}, Coeffs: []float64{1}},
		{Exponents: []int{2}, Coeffs: []float64{-1}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.IsZero() {
		t.Errorf("expected zero polynomial, got %s", p)
	}
	if p.Degree() != 0 {
		t.Errorf("zero polynomial degree should be 0, got %d", p.Degree())
	}
}

func TestNewFromTermsBroadcast(t *testing.T) {
	p, err := NewFromTerms(1, []Term{
		{Exponents: []int{0}, Coeffs: []float64{1, 2, 3}},
		{Exponents: []int{1}, Coeffs: []float64{5}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Size() != 3 {
		t.Fatalf("expected size 3, got %d", p.Size())
	}
	got := p.Coefficient([]int{1})
	want := []float64{5, 5, 5}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("broadcast coefficient mismatch (-want +got):\n%s", diff)
	}
}

func TestNewFromTermsRejectsMalformed(t *testing.T) {
	_, err := NewFromTerms(2, []Term{{Exponents: []int{1}, Coeffs: []float64{1}}})
	if !errors.Is(err, ErrInvalidTerm) {
		t.Errorf("expected ErrInvalidTerm for short tuple, got %v", err)
	}

	_, err = NewFromTerms(1, []Term{{Exponents: []int{-1}, Coeffs: []float64{1}}})
	if !errors.Is(err, ErrInvalidTerm) {
		t.Errorf("expected ErrInvalidTerm for negative exponent, got %v", err)
	}

	_, err = NewFromTerms(1, []Term{
		{Exponents: []int{0}, Coeffs: []float64{1, 2}},
		{Exponents: []int{1}, Coeffs: []float64{1, 2, 3}},
	})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch for array length conflict, got %v", err)
	}
}

func TestVariable(t *testing.T) {
	x, err := Variable(3, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if x.Degree() != 1 || x.Dims() != 3 {
		t.Errorf("unexpected variable polynomial %s", x)
	}
	if got := x.String(); got != "q1" {
		t.Errorf("expected q1, got %s", got)
	}

	if _, err := Variable(2, 5); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestDegree(t *testing.T) {
	p, err := NewFromTerms(2, []Term{
		{Exponents: []int{1, 2}, Coeffs: []float64{1}},
		{Exponents: []int{4, 0}, Coeffs: []float64{0.5}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Degree() != 4 {
		t.Errorf("expected degree 4, got %d", p.Degree())
	}
}

func TestString(t *testing.T) {
	p, err := NewFromTerms(2, []Term{
		{Exponents: []int{0, 0}, Coeffs: []float64{1}},
		{Exponents: []int{2, 1}, Coeffs: []float64{-3}},
		{Exponents: []int{1, 0}, Coeffs: []float64{1}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := p.String(); got != "1 + q0 + -3*q0^2*q1" {
		t.Errorf("unexpected rendering %q", got)
	}
	if got := Constant(2, 0).String(); got != "0" {
		t.Errorf("zero polynomial renders as %q", got)
	}
}

func TestEqualCanonical(t *testing.T) {
	a, err := NewFromTerms(1, []Term{
		{Exponents: []int{0}, Coeffs: []float64{1}},
		{Exponents: []int{2}, Coeffs: []float64{0}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := Constant(1, 1)
	if !a.Equal(b) {
		t.Errorf("explicit zero entry should not break equality: %s vs %s", a, b)
	}
}
