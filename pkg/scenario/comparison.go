package scenario

import (
	"fmt"
	"math"
	"sort"

	"github.com/atlas-desktop/montecarlo/pkg/results"
	"github.com/atlas-desktop/montecarlo/pkg/risk"
)

// Metric names one of the fixed comparison metrics available across a
// ScenarioComparison.
type Metric string

const (
	MetricMean   Metric = "mean"
	MetricMedian Metric = "median"
	MetricStdDev Metric = "stddev"
	MetricP5     Metric = "p5"
	MetricP95    Metric = "p95"
	MetricVaR95  Metric = "var95"
	MetricCVaR95 Metric = "cvar95"
)

// ScenarioComparison ranks and tabulates a set of scenario Results over
// the fixed metric set above.
type ScenarioComparison struct {
	Results map[string]*results.Results
}

// NewScenarioComparison wraps the output of ScenarioAnalysis.Run.
func NewScenarioComparison(r map[string]*results.Results) *ScenarioComparison {
	return &ScenarioComparison{Results: r}
}

func (c *ScenarioComparison) metricValue(name string, m Metric) (float64, error) {
	r, ok := c.Results[name]
	if !ok {
		return 0, fmt.Errorf("scenario: unknown scenario %q", name)
	}
	switch m {
	case MetricMean:
		return r.Statistics.Mean, nil
	case MetricMedian:
		return r.Statistics.Median, nil
	case MetricStdDev:
		return r.Statistics.StdDev, nil
	case MetricP5:
		return r.Percentiles.P5, nil
	case MetricP95:
		return r.Percentiles.P95, nil
	case MetricVaR95:
		return risk.VaR(r, 0.95), nil
	case MetricCVaR95:
		return risk.CVaR(r, 0.95), nil
	default:
		return 0, fmt.Errorf("scenario: unknown metric %q", m)
	}
}

func (c *ScenarioComparison) sortedNames() []string {
	names := make([]string, 0, len(c.Results))
	for name := range c.Results {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RankBy orders scenario names by metric, ascending or descending. Ties
// are broken by scenario name, ascending, regardless of direction.
func (c *ScenarioComparison) RankBy(m Metric, ascending bool) ([]string, error) {
	names := c.sortedNames()
	values := make(map[string]float64, len(names))
	for _, name := range names {
		v, err := c.metricValue(name, m)
		if err != nil {
			return nil, err
		}
		values[name] = v
	}
	sort.SliceStable(names, func(i, j int) bool {
		if ascending {
			return values[names[i]] < values[names[j]]
		}
		return values[names[i]] > values[names[j]]
	})
	return names, nil
}

// BestBy returns the scenario with the highest metric value.
func (c *ScenarioComparison) BestBy(m Metric) (string, error) {
	ranked, err := c.RankBy(m, false)
	if err != nil {
		return "", err
	}
	return ranked[0], nil
}

// WorstBy returns the scenario with the lowest metric value.
func (c *ScenarioComparison) WorstBy(m Metric) (string, error) {
	ranked, err := c.RankBy(m, true)
	if err != nil {
		return "", err
	}
	return ranked[0], nil
}

// SummaryTable returns, for every scenario, the requested metrics keyed
// by their string name.
func (c *ScenarioComparison) SummaryTable(metrics []Metric) (map[string]map[string]float64, error) {
	out := make(map[string]map[string]float64, len(c.Results))
	for name := range c.Results {
		row := make(map[string]float64, len(metrics))
		for _, m := range metrics {
			v, err := c.metricValue(name, m)
			if err != nil {
				return nil, err
			}
			row[string(m)] = v
		}
		out[name] = row
	}
	return out, nil
}

// RobustnessScore measures how tightly scenarios cluster on metric m: the
// coefficient of variation (stddev / |mean|) of that metric's value
// across all registered scenarios. A low score means the outcome under m
// is stable regardless of which scenario plays out; a high score means
// the scenarios disagree sharply.
func (c *ScenarioComparison) RobustnessScore(m Metric) (float64, error) {
	names := c.sortedNames()
	if len(names) == 0 {
		return 0, nil
	}
	values := make([]float64, len(names))
	for i, name := range names {
		v, err := c.metricValue(name, m)
		if err != nil {
			return 0, err
		}
		values[i] = v
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var sqSum float64
	for _, v := range values {
		d := v - mean
		sqSum += d * d
	}
	if len(values) < 2 || mean == 0 {
		return 0, nil
	}
	stddev := math.Sqrt(sqSum / float64(len(values)-1))
	return stddev / math.Abs(mean), nil
}
