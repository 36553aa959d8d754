package distribution_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/atlas-desktop/montecarlo/pkg/distribution"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drawN(t *testing.T, d distribution.Distribution, n int, seed int64) []float64 {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = d.Next(rng)
	}
	return out
}

func mean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func stddev(xs []float64, m float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += (x - m) * (x - m)
	}
	return math.Sqrt(sum / float64(len(xs)-1))
}

// S1: Normal(0,1), n=1e5.
func TestNormalSeedScenarioS1(t *testing.T) {
	d := distribution.Normal{Mu: 0, Sigma: 1}
	xs := drawN(t, d, 100000, 42)
	m := mean(xs)
	sd := stddev(xs, m)
	assert.Less(t, math.Abs(m), 0.02)
	assert.Less(t, math.Abs(sd-1), 0.02)
}

// S2: Weibull(k=2, lambda=1), n=1e5.
func TestWeibullSeedScenarioS2(t *testing.T) {
	d := distribution.Weibull{K: 2, Lambda: 1}
	xs := drawN(t, d, 100000, 7)
	for _, x := range xs {
		require.GreaterOrEqual(t, x, 0.0)
	}
	want := math.Sqrt(math.Pi) / 2
	got := mean(xs)
	assert.InDelta(t, want, got, 0.01)
}

func TestUniformDegenerate(t *testing.T) {
	d := distribution.Uniform{A: 3, B: 3}
	rng := rand.New(rand.NewSource(1))
	assert.Equal(t, 3.0, d.Next(rng))
}

func TestUniformBounds(t *testing.T) {
	d := distribution.Uniform{A: -2, B: 5}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		v := d.Next(rng)
		require.GreaterOrEqual(t, v, -2.0)
		require.Less(t, v, 5.0)
	}
}

func TestTriangularDegenerate(t *testing.T) {
	d := distribution.Triangular{Low: 2, Mode: 2, High: 2}
	rng := rand.New(rand.NewSource(1))
	assert.Equal(t, 2.0, d.Next(rng))
}

func TestTriangularBounds(t *testing.T) {
	d := distribution.Triangular{Low: 1, Mode: 4, High: 10}
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		v := d.Next(rng)
		require.GreaterOrEqual(t, v, 1.0)
		require.LessOrEqual(t, v, 10.0)
	}
}

func TestBetaBounds(t *testing.T) {
	d := distribution.Beta{Alpha: 2, Beta: 5}
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 1000; i++ {
		v := d.Next(rng)
		require.GreaterOrEqual(t, v, 0.0)
		require.LessOrEqual(t, v, 1.0)
	}
}

func TestBetaSmallAlpha(t *testing.T) {
	// exercises the alpha < 1 boosting path
	d := distribution.Beta{Alpha: 0.3, Beta: 0.4}
	rng := rand.New(rand.NewSource(12))
	for i := 0; i < 1000; i++ {
		v := d.Next(rng)
		require.GreaterOrEqual(t, v, 0.0)
		require.LessOrEqual(t, v, 1.0)
	}
}

func TestRayleighNonNegative(t *testing.T) {
	d := distribution.Rayleigh{Mean: 2}
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 1000; i++ {
		require.GreaterOrEqual(t, d.Next(rng), 0.0)
	}
}

func TestLogNormalPositive(t *testing.T) {
	d := distribution.LogNormal{Mu: 0, Sigma: 0.5}
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 1000; i++ {
		require.Greater(t, d.Next(rng), 0.0)
	}
}
