package scenario_test

import (
	"testing"

	"github.com/atlas-desktop/montecarlo/pkg/distribution"
	"github.com/atlas-desktop/montecarlo/pkg/mcerrors"
	"github.com/atlas-desktop/montecarlo/pkg/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profitModel(v []float64) float64 { return v[0] - v[1] }

func TestScenarioRankingSeedScenarioS6(t *testing.T) {
	sa := &scenario.ScenarioAnalysis{
		InputNames: []string{"revenue", "costs"},
		Iterations: 10,
		Model:      profitModel,
		Scenarios: []scenario.Scenario{
			{Name: "A", Fixed: map[string]float64{"revenue": 1000, "costs": 700}},
			{Name: "B", Fixed: map[string]float64{"revenue": 1200, "costs": 600}},
			{Name: "C", Fixed: map[string]float64{"revenue": 800, "costs": 800}},
		},
	}

	resultsByName, err := sa.Run()
	require.NoError(t, err)
	require.Len(t, resultsByName, 3)

	cmp := scenario.NewScenarioComparison(resultsByName)

	best, err := cmp.BestBy(scenario.MetricMean)
	require.NoError(t, err)
	assert.Equal(t, "B", best)
	assert.InDelta(t, 600, resultsByName["B"].Statistics.Mean, 1e-9)

	worst, err := cmp.WorstBy(scenario.MetricMean)
	require.NoError(t, err)
	assert.Equal(t, "C", worst)
	assert.InDelta(t, 0, resultsByName["C"].Statistics.Mean, 1e-9)

	ranked, err := cmp.RankBy(scenario.MetricMean, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A", "B"}, ranked)
}

func TestScenarioMissingInputConfiguration(t *testing.T) {
	sa := &scenario.ScenarioAnalysis{
		InputNames: []string{"revenue", "costs"},
		Iterations: 10,
		Model:      profitModel,
		Scenarios: []scenario.Scenario{
			{Name: "A", Fixed: map[string]float64{"revenue": 1000}},
		},
	}
	_, err := sa.Run()
	require.Error(t, err)
	var target *mcerrors.MissingInputConfigurationError
	require.ErrorAs(t, err, &target)
}

func TestScenarioUnknownInput(t *testing.T) {
	sa := &scenario.ScenarioAnalysis{
		InputNames: []string{"revenue", "costs"},
		Iterations: 10,
		Model:      profitModel,
		Scenarios: []scenario.Scenario{
			{Name: "A", Fixed: map[string]float64{"revenue": 1000, "costs": 700, "tax": 0.3}},
		},
	}
	_, err := sa.Run()
	require.Error(t, err)
	var target *mcerrors.UnknownInputError
	require.ErrorAs(t, err, &target)
}

func TestScenarioNoScenarios(t *testing.T) {
	sa := &scenario.ScenarioAnalysis{
		InputNames: []string{"revenue"},
		Iterations: 10,
		Model:      profitModel,
	}
	_, err := sa.Run()
	require.Error(t, err)
	var target *mcerrors.NoScenariosError
	require.ErrorAs(t, err, &target)
}

func TestScenarioSupportsDistributions(t *testing.T) {
	sa := &scenario.ScenarioAnalysis{
		InputNames: []string{"revenue", "costs"},
		Iterations: 500,
		Model:      profitModel,
		Scenarios: []scenario.Scenario{
			{
				Name:          "volatile",
				Distributions: map[string]distribution.Distribution{"revenue": &distribution.Normal{Mu: 1000, Sigma: 50}},
				Fixed:         map[string]float64{"costs": 700},
			},
		},
	}
	resultsByName, err := sa.Run()
	require.NoError(t, err)
	assert.InDelta(t, 300, resultsByName["volatile"].Statistics.Mean, 15)
}

func TestSummaryTable(t *testing.T) {
	sa := &scenario.ScenarioAnalysis{
		InputNames: []string{"revenue", "costs"},
		Iterations: 10,
		Model:      profitModel,
		Scenarios: []scenario.Scenario{
			{Name: "A", Fixed: map[string]float64{"revenue": 1000, "costs": 700}},
		},
	}
	resultsByName, err := sa.Run()
	require.NoError(t, err)

	cmp := scenario.NewScenarioComparison(resultsByName)
	table, err := cmp.SummaryTable([]scenario.Metric{scenario.MetricMean, scenario.MetricMedian})
	require.NoError(t, err)
	assert.InDelta(t, 300, table["A"]["mean"], 1e-9)
	assert.InDelta(t, 300, table["A"]["median"], 1e-9)
}

func TestRobustnessScoreStableAcrossIdenticalScenarios(t *testing.T) {
	sa := &scenario.ScenarioAnalysis{
		InputNames: []string{"revenue", "costs"},
		Iterations: 10,
		Model:      profitModel,
		Scenarios: []scenario.Scenario{
			{Name: "A", Fixed: map[string]float64{"revenue": 1000, "costs": 700}},
			{Name: "B", Fixed: map[string]float64{"revenue": 1000, "costs": 700}},
		},
	}
	resultsByName, err := sa.Run()
	require.NoError(t, err)

	cmp := scenario.NewScenarioComparison(resultsByName)
	score, err := cmp.RobustnessScore(scenario.MetricMean)
	require.NoError(t, err)
	assert.InDelta(t, 0, score, 1e-9)
}
