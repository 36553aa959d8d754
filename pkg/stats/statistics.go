package stats

import (
	"math"
	"strconv"

	"github.com/atlas-desktop/montecarlo/pkg/mcerrors"
	gonumstat "gonum.org/v1/gonum/stat"
)

// Statistics holds sample descriptive statistics over a value vector.
// Variance uses the n-1 (Bessel-corrected) denominator; skewness is the
// bias-corrected Fisher-Pearson estimator. Both are zero for n <= 2
// (skewness additionally requires sigma > 0).
type Statistics struct {
	Values   []float64
	Mean     float64
	Median   float64
	StdDev   float64
	Variance float64
	Min      float64
	Max      float64
	Skewness float64
}

// NewStatistics computes Statistics over values. It fails with
// InsufficientDataError on an empty slice and NonFiniteError if any value
// is NaN or +/-Inf.
func NewStatistics(values []float64) (*Statistics, error) {
	if len(values) == 0 {
		return nil, &mcerrors.InsufficientDataError{}
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &mcerrors.NonFiniteError{Index: i, Value: v}
		}
	}

	n := len(values)
	mean := gonumstat.Mean(values, nil)

	minV, maxV := values[0], values[0]
	for _, v := range values {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	p, err := NewPercentiles(values)
	if err != nil {
		return nil, err
	}

	s := &Statistics{
		Values: values,
		Mean:   mean,
		Median: p.P50,
		Min:    minV,
		Max:    maxV,
	}

	if n > 2 {
		s.Variance = gonumstat.Variance(values, nil)
		s.StdDev = math.Sqrt(s.Variance)
	}

	if n > 2 && s.StdDev > 0 {
		sum := 0.0
		for _, v := range values {
			z := (v - mean) / s.StdDev
			sum += z * z * z
		}
		fn := float64(n)
		s.Skewness = (fn / ((fn - 1) * (fn - 2))) * sum
	}

	return s, nil
}

// Interval is a two-sided confidence interval [Low, High].
type Interval struct {
	Low  float64
	High float64
}

// ConfidenceInterval computes a level-c (c in (0,1)) two-sided confidence
// interval for Statistics' underlying distribution via Phi^-1((1-c)/2) and
// Phi^-1((1+c)/2).
func (s *Statistics) ConfidenceInterval(level float64) Interval {
	lowP := (1 - level) / 2
	highP := (1 + level) / 2
	return Interval{
		Low:  InverseNormalCDF(lowP, s.Mean, s.StdDev),
		High: InverseNormalCDF(highP, s.Mean, s.StdDev),
	}
}

// NamedLevels returns a {"95%_lower": ..., "95%_upper": ...} style table
// for a set of confidence levels expressed as e.g. 0.95 for "95%".
func (s *Statistics) NamedLevels(levels ...float64) map[string]float64 {
	out := make(map[string]float64, len(levels)*2)
	for _, lvl := range levels {
		iv := s.ConfidenceInterval(lvl)
		name := formatPercent(lvl)
		out[name+"_lower"] = iv.Low
		out[name+"_upper"] = iv.High
	}
	return out
}

func formatPercent(level float64) string {
	pct := level * 100
	return strconv.FormatFloat(pct, 'g', -1, 64) + "%"
}
