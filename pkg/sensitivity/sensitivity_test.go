package sensitivity_test

import (
	"testing"

	"github.com/atlas-desktop/montecarlo/pkg/sensitivity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func afterTaxProfitModel(v []float64) float64 {
	rev, costs, tax := v[0], v[1], v[2]
	return (rev - costs) * (1 - tax)
}

func TestTornadoChartSeedScenarioS7(t *testing.T) {
	a := &sensitivity.Analysis{
		InputNames: []string{"rev", "costs", "tax"},
		Base:       map[string]float64{"rev": 1000, "costs": 700, "tax": 0.3},
		Model:      afterTaxProfitModel,
		Iterations: 10,
	}

	bars, err := a.TornadoChart(0.9, 1.1)
	require.NoError(t, err)
	require.Len(t, bars, 3)

	rank := make(map[string]int, 3)
	for i, b := range bars {
		rank[b.InputName] = i
	}
	assert.Less(t, rank["rev"], rank["tax"])
	assert.Less(t, rank["costs"], rank["tax"])

	for i := 1; i < len(bars); i++ {
		assert.GreaterOrEqual(t, bars[i-1].Impact(), bars[i].Impact())
	}
}

func TestAnalyzeInputStepsBelowTwoFails(t *testing.T) {
	a := &sensitivity.Analysis{
		InputNames: []string{"rev"},
		Base:       map[string]float64{"rev": 1000},
		Model:      func(v []float64) float64 { return v[0] },
		Iterations: 10,
	}
	_, err := a.AnalyzeInput("rev", 0.9, 1.1, 1)
	require.Error(t, err)
}

func TestAnalyzeInputUnknownInput(t *testing.T) {
	a := &sensitivity.Analysis{
		InputNames: []string{"rev"},
		Base:       map[string]float64{"rev": 1000},
		Model:      func(v []float64) float64 { return v[0] },
		Iterations: 10,
	}
	_, err := a.AnalyzeInput("missing", 0.9, 1.1, 2)
	require.Error(t, err)
}

func TestAnalyzeInputEndpointsBracketBase(t *testing.T) {
	a := &sensitivity.Analysis{
		InputNames: []string{"rev"},
		Base:       map[string]float64{"rev": 1000},
		Model:      func(v []float64) float64 { return v[0] },
		Iterations: 5,
	}
	steps, err := a.AnalyzeInput("rev", 0.9, 1.1, 3)
	require.NoError(t, err)
	require.Len(t, steps, 3)
	assert.InDelta(t, 900, steps[0].Results.Statistics.Mean, 1e-9)
	assert.InDelta(t, 1000, steps[1].Results.Statistics.Mean, 1e-9)
	assert.InDelta(t, 1100, steps[2].Results.Statistics.Mean, 1e-9)
}

func TestElasticityLinearModelMatchesMultiplierSlope(t *testing.T) {
	a := &sensitivity.Analysis{
		InputNames: []string{"rev", "other"},
		Base:       map[string]float64{"rev": 1000, "other": 500},
		Model:      func(v []float64) float64 { return v[0] + v[1] },
		Iterations: 5,
	}
	e, err := a.Elasticity("rev", 0.8, 1.2, 5)
	require.NoError(t, err)
	assert.Greater(t, e, 0.0)
	// rev is 1000 of the 1500 baseline, so every point has slope 2/3.
	assert.InDelta(t, 2.0/3.0, e, 1e-9)
}

func TestIsRobustHighThresholdAlwaysTrue(t *testing.T) {
	a := &sensitivity.Analysis{
		InputNames: []string{"rev"},
		Base:       map[string]float64{"rev": 1000},
		Model:      func(v []float64) float64 { return v[0] },
		Iterations: 5,
	}
	robust, err := a.IsRobust("rev", 0.5, 1.5, 5, 100)
	require.NoError(t, err)
	assert.True(t, robust)
}
