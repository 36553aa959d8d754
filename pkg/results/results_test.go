package results_test

import (
	"testing"

	"github.com/atlas-desktop/montecarlo/pkg/results"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResultsEmptyFails(t *testing.T) {
	_, err := results.New(nil)
	require.Error(t, err)
}

func TestProbabilityPartition(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	r, err := results.New(values)
	require.NoError(t, err)

	// Property 8: P(X > x) + P(X <= x) == 1 exactly.
	for x := -1.0; x < 11; x += 0.5 {
		above := r.ProbabilityAbove(x)
		below := r.ProbabilityBelow(x)
		assert.InDelta(t, 1.0, above+below, 1e-12)
	}
}

func TestProbabilityBetweenSwapsEndpoints(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	r, err := results.New(values)
	require.NoError(t, err)
	assert.Equal(t, r.ProbabilityBetween(2, 4), r.ProbabilityBetween(4, 2))
}

func TestHistogramCoversAllValues(t *testing.T) {
	values := make([]float64, 0, 500)
	for i := 0; i < 500; i++ {
		values = append(values, float64(i%37))
	}
	r, err := results.New(values)
	require.NoError(t, err)

	bins := r.Histogram()
	var total uint64
	for _, b := range bins {
		total += b.Count
	}
	assert.Equal(t, uint64(len(values)), total)
}

func TestHistogramDegenerate(t *testing.T) {
	values := []float64{5, 5, 5, 5}
	r, err := results.New(values)
	require.NoError(t, err)
	bins := r.Histogram()
	require.Len(t, bins, 1)
	assert.Equal(t, uint64(4), bins[0].Count)
}

func TestResultsInvariantValuesMatchStatistics(t *testing.T) {
	values := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	r, err := results.New(values)
	require.NoError(t, err)
	assert.Equal(t, r.Values, r.Statistics.Values)
}
