// Package stats provides R-7 percentile interpolation and sample
// statistics for the simulation core.
package stats

import (
	"math"
	"sort"

	"github.com/atlas-desktop/montecarlo/pkg/mcerrors"
)

// Percentiles is an immutable snapshot of a sorted sample's percentiles.
type Percentiles struct {
	Sorted []float64
	Min    float64
	Max    float64
	P025   float64
	P5     float64
	P10    float64
	P25    float64
	P50    float64
	P75    float64
	P90    float64
	P95    float64
	P975   float64
	P99    float64
	IQR    float64
}

// NewPercentiles sorts a copy of values and computes the snapshot. It
// fails with InsufficientDataError on an empty slice and NonFiniteError
// if any value is NaN or +/-Inf.
func NewPercentiles(values []float64) (*Percentiles, error) {
	if len(values) == 0 {
		return nil, &mcerrors.InsufficientDataError{}
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &mcerrors.NonFiniteError{Index: i, Value: v}
		}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	p := &Percentiles{
		Sorted: sorted,
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		P025:   Quantile(sorted, 0.025),
		P5:     Quantile(sorted, 0.05),
		P10:    Quantile(sorted, 0.10),
		P25:    Quantile(sorted, 0.25),
		P50:    Quantile(sorted, 0.50),
		P75:    Quantile(sorted, 0.75),
		P90:    Quantile(sorted, 0.90),
		P95:    Quantile(sorted, 0.95),
		P975:   Quantile(sorted, 0.975),
		P99:    Quantile(sorted, 0.99),
	}
	p.IQR = p.P75 - p.P25
	return p, nil
}

// Quantile computes the R-7 (linear interpolation) quantile of an
// already-sorted slice s at probability p. Indices are
// clamped to [0, n-1]; p <= 0 returns s[0], p >= 1 returns s[n-1].
func Quantile(s []float64, p float64) float64 {
	n := len(s)
	if n == 1 {
		return s[0]
	}
	if p <= 0 {
		return s[0]
	}
	if p >= 1 {
		return s[n-1]
	}
	pos := float64(n-1) * p
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo < 0 {
		lo = 0
	}
	if hi > n-1 {
		hi = n - 1
	}
	w := pos - float64(lo)
	return s[lo] + w*(s[hi]-s[lo])
}
