package indices

import (
	"fmt"
	"math"
	"sort"
)

// normTolerance absorbs float rounding in fractional-exponent norms so
// that tuples exactly on the Lp-ball boundary are kept.
const normTolerance = 1e-9

// Compare orders two exponent tuples of equal length canonically: by
// total degree ascending, ties broken by reverse-lexicographic
// comparison (the trailing dimension is most significant). Returns -1,
// 0 or +1.
func Compare(a, b []int) int {
	da, db := TotalDegree(a), TotalDegree(b)
	switch {
	case da < db:
		return -1
	case da > db:
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// TotalDegree returns the sum of the tuple's entries.
func TotalDegree(exps []int) int {
	total := 0
	for _, e := range exps {
		total += e
	}
	return total
}

// Norm computes the truncation norm sum(e_i^p)^(1/p) of a tuple.
// p=1 reduces to the total degree and p=+Inf to the maximum entry.
func Norm(exps []int, p float64) float64 {
	if math.IsInf(p, 1) {
		max := 0
		for _, e := range exps {
			if e > max {
				max = e
			}
		}
		return float64(max)
	}
	if p == 1 {
		return float64(TotalDegree(exps))
	}
	sum := 0.0
	for _, e := range exps {
		if e > 0 {
			sum += math.Pow(float64(e), p)
		}
	}
	return math.Pow(sum, 1/p)
}

// Generate enumerates every exponent tuple of the given dimension count
// whose truncation norm lies in [start, stop], in canonical order. The
// cross-truncation exponent ct shapes the norm ball; ct=1 is plain
// total-degree truncation.
func Generate(start, stop, dims int, ct float64) ([][]int, error) {
	if err := validate(start, stop, dims, ct); err != nil {
		return nil, err
	}
	lower := float64(start) - normTolerance
	return enumerate(stop, dims, ct, func(norm float64, _ []int) bool {
		return norm >= lower
	}), nil
}

// GenerateBounded is the per-dimension lower-bound form: a tuple is kept
// when its truncation norm is at most stop and at least one entry meets
// its dimension's lower bound. starts must have one entry per dimension.
func GenerateBounded(starts []int, stop, dims int, ct float64) ([][]int, error) {
	if dims < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDimension, dims)
	}
	if len(starts) != dims {
		return nil, fmt.Errorf("%w: %d lower bounds for %d dimensions", ErrInvalidRange, len(starts), dims)
	}
	maxStart := 0
	for _, s := range starts {
		if s > maxStart {
			maxStart = s
		}
	}
	if err := validate(maxStart, stop, dims, ct); err != nil {
		return nil, err
	}
	return enumerate(stop, dims, ct, func(_ float64, exps []int) bool {
		for i, e := range exps {
			if e >= starts[i] {
				return true
			}
		}
		return false
	}), nil
}

func validate(start, stop, dims int, ct float64) error {
	if dims < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidDimension, dims)
	}
	if start < 0 || stop < 0 || start > stop {
		return fmt.Errorf("%w: start=%d stop=%d", ErrInvalidRange, start, stop)
	}
	if ct <= 0 {
		return fmt.Errorf("%w: cross truncation %g must be positive", ErrInvalidRange, ct)
	}
	return nil
}

// enumerate walks the full [0,stop]^dims grid, keeps tuples inside the
// Lp ball that pass the lower-bound predicate, and sorts canonically.
// The per-entry cap is sound for any p > 0 since a single entry e
// already contributes norm >= e.
func enumerate(stop, dims int, ct float64, keep func(norm float64, exps []int) bool) [][]int {
	var out [][]int
	exps := make([]int, dims)
	upper := float64(stop) + normTolerance

	var walk func(dim int)
	walk = func(dim int) {
		if dim == dims {
			norm := Norm(exps, ct)
			if norm <= upper && keep(norm, exps) {
				tuple := make([]int, dims)
				copy(tuple, exps)
				out = append(out, tuple)
			}
			return
		}
		for e := 0; e <= stop; e++ {
			exps[dim] = e
			walk(dim + 1)
		}
		exps[dim] = 0
	}
	walk(0)

	sort.SliceStable(out, func(i, j int) bool {
		return Compare(out[i], out[j]) < 0
	})
	return out
}
