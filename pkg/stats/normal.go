package stats

import "math"

// StandardNormalCDF returns Phi(x) = 1/2 * (1 + erf(x / sqrt(2))), the
// standard normal CDF.
func StandardNormalCDF(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}

// tableInverseNormalCDF holds exact z-scores for the confidence levels
// used most often in practice, avoiding bisection overhead on the hot
// path of repeated confidence-interval computation.
var tableInverseNormalCDF = map[float64]float64{
	0.95:   1.6448536269514722,  // Phi^-1(0.95)
	0.975:  1.959963984540054,   // Phi^-1(0.975)
	0.995:  2.5758293035489004,  // Phi^-1(0.995)
	0.9995: 3.290526731491832,   // Phi^-1(0.9995)
	0.05:   -1.6448536269514722, // Phi^-1(0.05)
	0.025:  -1.959963984540054,  // Phi^-1(0.025)
	0.005:  -2.5758293035489004, // Phi^-1(0.005)
	0.0005: -3.290526731491832,  // Phi^-1(0.0005)
}

// standardInverseNormalCDF computes Phi^-1(p) for the standard normal via
// bisection against math.Erf, tolerance 1e-4. Table lookup is used for
// the two-sided confidence levels 0.90, 0.95, 0.99, 0.999 (i.e. their
// (1+-c)/2 endpoints), matched within 1e-12 so that endpoints computed in
// floating point still hit the table.
func standardInverseNormalCDF(p float64) float64 {
	for q, v := range tableInverseNormalCDF {
		if math.Abs(p-q) < 1e-12 {
			return v
		}
	}
	if p <= 0 {
		return math.Inf(-1)
	}
	if p >= 1 {
		return math.Inf(1)
	}

	lo, hi := -10.0, 10.0
	for i := 0; i < 200; i++ {
		mid := (lo + hi) / 2
		if StandardNormalCDF(mid) < p {
			lo = mid
		} else {
			hi = mid
		}
		if hi-lo < 1e-4 {
			break
		}
	}
	return (lo + hi) / 2
}

// InverseNormalCDF computes Phi^-1(p; mu, sigma) for a Normal(mu, sigma)
// distribution.
func InverseNormalCDF(p, mu, sigma float64) float64 {
	return mu + sigma*standardInverseNormalCDF(p)
}
