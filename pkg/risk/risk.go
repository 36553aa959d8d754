// Package risk computes VaR and CVaR (expected shortfall) over simulation
// results.
package risk

import (
	"github.com/atlas-desktop/montecarlo/pkg/results"
	"github.com/atlas-desktop/montecarlo/pkg/stats"
)

// VaR returns the Value-at-Risk at confidence level c in (0,1): the
// R-7 alpha-percentile of values where alpha = 1 - c. Losses are negative
// by convention; VaR on a loss distribution is typically negative.
func VaR(r *results.Results, c float64) float64 {
	alpha := 1 - c
	return stats.Quantile(r.Percentiles.Sorted, alpha)
}

// CVaR returns the Conditional VaR (expected shortfall) at confidence
// level c: the mean of the tail {x in values : x <= VaR(c)}. If the tail
// set is empty, CVaR returns VaR(c).
func CVaR(r *results.Results, c float64) float64 {
	v := VaR(r, c)
	sum := 0.0
	count := 0
	for _, x := range r.Values {
		if x <= v {
			sum += x
			count++
		}
	}
	if count == 0 {
		return v
	}
	return sum / float64(count)
}

// Summary bundles VaR and CVaR at a single confidence level.
type Summary struct {
	ConfidenceLevel float64
	VaR             float64
	CVaR            float64
}

// NewSummary computes both VaR and CVaR at level c.
func NewSummary(r *results.Results, c float64) Summary {
	return Summary{
		ConfidenceLevel: c,
		VaR:             VaR(r, c),
		CVaR:            CVaR(r, c),
	}
}
