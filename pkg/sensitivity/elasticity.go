package sensitivity

import "math"

// Elasticity returns the average percentage change in the model's mean
// outcome per percentage change in the named input's value, swept across
// steps points in [lo, hi] multiplier space and compared against the
// unperturbed baseline (every input at its base value). Points where the
// input multiplier equals 1 (no change) or the baseline mean is zero are
// skipped, since both produce an undefined ratio.
func (a *Analysis) Elasticity(name string, lo, hi float64, steps int) (float64, error) {
	base, err := a.baseline()
	if err != nil {
		return 0, err
	}
	baseMean := base.Statistics.Mean

	sweep, err := a.AnalyzeInput(name, lo, hi, steps)
	if err != nil {
		return 0, err
	}

	var sum float64
	var count int
	for _, step := range sweep {
		paramPct := step.Multiplier - 1
		if paramPct == 0 || baseMean == 0 {
			continue
		}
		resultPct := (step.Results.Statistics.Mean - baseMean) / baseMean
		sum += resultPct / paramPct
		count++
	}
	if count == 0 {
		return 0, nil
	}
	return sum / float64(count), nil
}

// IsRobust reports whether the named input's elasticity over [lo, hi]
// stays under threshold in absolute value, i.e. the outcome doesn't swing
// disproportionately when that input moves.
func (a *Analysis) IsRobust(name string, lo, hi float64, steps int, threshold float64) (bool, error) {
	e, err := a.Elasticity(name, lo, hi, steps)
	if err != nil {
		return false, err
	}
	return math.Abs(e) < threshold, nil
}
