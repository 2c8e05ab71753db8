package dist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func floats(t *testing.T, p MomentProvider, dim, maxOrder int) []float64 {
	t.Helper()
	raw, err := p.Moments(dim, maxOrder)
	require.NoError(t, err)
	require.Len(t, raw, maxOrder+1)
	out := make([]float64, len(raw))
	for i, m := range raw {
		out[i], _ = m.Float64()
	}
	return out
}

func TestNormalMoments(t *testing.T) {
	got := floats(t, NewNormal(0, 1), 0, 6)
	want := []float64{1, 0, 1, 0, 3, 0, 15}
	for i := range want {
		require.InDelta(t, want[i], got[i], 1e-12, "moment %d", i)
	}
}

func TestNormalMomentsShifted(t *testing.T) {
	got := floats(t, NewNormal(2, 3), 0, 2)
	require.InDelta(t, 1.0, got[0], 1e-12)
	require.InDelta(t, 2.0, got[1], 1e-12)
	// E[X^2] = mu^2 + sigma^2
	require.InDelta(t, 13.0, got[2], 1e-12)
}

func TestUniformMoments(t *testing.T) {
	got := floats(t, NewUniform(-1, 1), 0, 4)
	want := []float64{1, 0, 1.0 / 3, 0, 1.0 / 5}
	for i := range want {
		require.InDelta(t, want[i], got[i], 1e-12, "moment %d", i)
	}
}

func TestExponentialMoments(t *testing.T) {
	got := floats(t, NewExponential(2), 0, 3)
	want := []float64{1, 0.5, 0.5, 0.75}
	for i := range want {
		require.InDelta(t, want[i], got[i], 1e-12, "moment %d", i)
	}
}

func TestGammaMoments(t *testing.T) {
	got := floats(t, NewGamma(2, 3), 0, 2)
	require.InDelta(t, 1.0, got[0], 1e-9)
	require.InDelta(t, 6.0, got[1], 1e-9)
	require.InDelta(t, 54.0, got[2], 1e-9)
}

func TestLognormalMoments(t *testing.T) {
	got := floats(t, NewLognormal(0, 1), 0, 2)
	require.InDelta(t, 1.0, got[0], 1e-9)
	require.InDelta(t, math.Exp(0.5), got[1], 1e-9)
	require.InDelta(t, math.Exp(2), got[2], 1e-9)
}

func TestBetaMoments(t *testing.T) {
	got := floats(t, NewBeta(2, 2), 0, 2)
	require.InDelta(t, 1.0, got[0], 1e-12)
	require.InDelta(t, 0.5, got[1], 1e-12)
	require.InDelta(t, 0.3, got[2], 1e-12)
}

func TestEmpiricalMoments(t *testing.T) {
	got := floats(t, NewEmpirical([]float64{1, 2, 3}), 0, 2)
	require.InDelta(t, 1.0, got[0], 1e-12)
	require.InDelta(t, 2.0, got[1], 1e-12)
	require.InDelta(t, 14.0/3, got[2], 1e-12)
}

func TestEmpiricalEmptySample(t *testing.T) {
	_, err := NewEmpirical(nil).Moments(0, 2)
	require.ErrorIs(t, err, ErrMomentUnavailable)

	var merr *MomentError
	require.ErrorAs(t, err, &merr)
	require.Equal(t, 0, merr.Dim)
}

func TestInvalidParameters(t *testing.T) {
	_, err := NewNormal(0, -1).Moments(0, 2)
	require.ErrorIs(t, err, ErrMomentUnavailable)

	_, err = NewUniform(1, 1).Moments(0, 2)
	require.ErrorIs(t, err, ErrMomentUnavailable)

	_, err = NewGamma(0, 1).Moments(0, 2)
	require.ErrorIs(t, err, ErrMomentUnavailable)
}

func TestUnivariateDimensionCheck(t *testing.T) {
	_, err := NewNormal(0, 1).Moments(1, 2)
	require.ErrorIs(t, err, ErrMomentUnavailable)
}

func TestJointDispatch(t *testing.T) {
	j := Join(NewNormal(0, 1), NewUniform(-1, 1))
	require.Equal(t, 2, j.Dims())

	normal := floats(t, j, 0, 4)
	require.InDelta(t, 3.0, normal[4], 1e-12)

	uniform := floats(t, j, 1, 4)
	require.InDelta(t, 1.0/5, uniform[4], 1e-12)

	_, err := j.Moments(2, 2)
	require.ErrorIs(t, err, ErrMomentUnavailable)
}

func TestJoinNested(t *testing.T) {
	inner := Join(NewUniform(0, 1), NewUniform(0, 2))
	j := Join(NewNormal(0, 1), inner)
	require.Equal(t, 3, j.Dims())

	m := floats(t, j, 2, 1)
	require.InDelta(t, 1.0, m[1], 1e-12) // mean of Uniform(0,2)
}
