package correlated_test

import (
	"math/rand"
	"testing"

	"github.com/atlas-desktop/montecarlo/pkg/correlated"
	"github.com/atlas-desktop/montecarlo/pkg/matrix"
	"github.com/stretchr/testify/require"
)

func TestDimensionMismatch(t *testing.T) {
	corr, err := matrix.NewCorrelationMatrix([][]float64{{1, 0.5}, {0.5, 1}})
	require.NoError(t, err)
	_, err = correlated.New([]float64{0}, corr)
	require.Error(t, err)
}

func TestSampleDimension(t *testing.T) {
	corr, err := matrix.NewCorrelationMatrix([][]float64{
		{1, 0.6, 0.1},
		{0.6, 1, 0.2},
		{0.1, 0.2, 1},
	})
	require.NoError(t, err)
	n, err := correlated.New([]float64{0, 1, -1}, corr)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	x := n.Sample(rng)
	require.Len(t, x, 3)
}

func TestSampleMeanApproximatesTarget(t *testing.T) {
	corr, err := matrix.NewCorrelationMatrix([][]float64{{1, 0.5}, {0.5, 1}})
	require.NoError(t, err)
	n, err := correlated.New([]float64{2, -3}, corr)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(99))
	sum0, sum1 := 0.0, 0.0
	const draws = 50000
	for i := 0; i < draws; i++ {
		x := n.Sample(rng)
		sum0 += x[0]
		sum1 += x[1]
	}
	require.InDelta(t, 2.0, sum0/draws, 0.05)
	require.InDelta(t, -3.0, sum1/draws, 0.05)
}
