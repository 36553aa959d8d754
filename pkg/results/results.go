// Package results provides the simulation outcome container and its
// empirical CDF utilities.
package results

import (
	"github.com/atlas-desktop/montecarlo/pkg/mcerrors"
	"github.com/atlas-desktop/montecarlo/pkg/stats"
	"github.com/google/uuid"
)

// Results stores the raw outcomes of a simulation run in iteration order,
// plus statistics and percentiles computed from a sorted copy. The
// invariant Statistics.Values == Values always holds.
type Results struct {
	RunID       string
	Values      []float64
	Statistics  *stats.Statistics
	Percentiles *stats.Percentiles
}

// New constructs Results from a value vector produced by a simulation
// driver. Fails with InsufficientDataError on an empty slice.
func New(values []float64) (*Results, error) {
	if len(values) == 0 {
		return nil, &mcerrors.InsufficientDataError{}
	}
	st, err := stats.NewStatistics(values)
	if err != nil {
		return nil, err
	}
	pc, err := stats.NewPercentiles(values)
	if err != nil {
		return nil, err
	}
	return &Results{
		RunID:       uuid.New().String(),
		Values:      values,
		Statistics:  st,
		Percentiles: pc,
	}, nil
}

// ProbabilityAbove returns P(X > x). On an empty value set it returns 0.
func (r *Results) ProbabilityAbove(x float64) float64 {
	if len(r.Values) == 0 {
		return 0
	}
	count := 0
	for _, v := range r.Values {
		if v > x {
			count++
		}
	}
	return float64(count) / float64(len(r.Values))
}

// ProbabilityBelow returns P(X <= x): the strict-inequality-on-the-
// complement semantics, equivalently |{d <= x}| / |data|. This is
// deliberately not computed as CDF minus exact-match mass, which produces
// a subtly different (and inconsistent) number at repeated values.
func (r *Results) ProbabilityBelow(x float64) float64 {
	if len(r.Values) == 0 {
		return 0
	}
	count := 0
	for _, v := range r.Values {
		if v <= x {
			count++
		}
	}
	return float64(count) / float64(len(r.Values))
}

// ProbabilityBetween returns P(a < X < b), swapping endpoints when a > b.
func (r *Results) ProbabilityBetween(a, b float64) float64 {
	if a > b {
		a, b = b, a
	}
	if len(r.Values) == 0 {
		return 0
	}
	count := 0
	for _, v := range r.Values {
		if v > a && v < b {
			count++
		}
	}
	return float64(count) / float64(len(r.Values))
}
