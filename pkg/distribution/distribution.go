// Package distribution provides the scalar sampling primitives of the
// simulation core: Normal, Uniform, Triangular, Beta, Weibull, Rayleigh
// and LogNormal, each behind a uniform Distribution interface. The set is
// closed: callers needing a custom sampler use simulation.NewCustomInput
// instead of extending this set.
package distribution

import (
	"math"
	"math/rand"
)

// Distribution draws a single scalar from a parameterized probability
// distribution using the supplied random source. Implementations must be
// safe to call from any goroutine that owns its own *rand.Rand.
type Distribution interface {
	Next(rng *rand.Rand) float64
}

// Normal is a Normal(mu, sigma) distribution. Sigma must be > 0.
type Normal struct {
	Mu    float64
	Sigma float64
}

// Next draws a standard normal variate via the Box-Muller transform and
// scales it by Mu/Sigma.
func (d Normal) Next(rng *rand.Rand) float64 {
	u1 := rng.Float64()
	u2 := rng.Float64()
	for u1 <= 0 {
		u1 = rng.Float64()
	}
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return d.Mu + d.Sigma*z
}

// Uniform is a Uniform(a, b) distribution. a == b degenerates to the
// constant a.
type Uniform struct {
	A float64
	B float64
}

// Next draws a value uniformly on [A, B].
func (d Uniform) Next(rng *rand.Rand) float64 {
	if d.A == d.B {
		return d.A
	}
	return d.A + rng.Float64()*(d.B-d.A)
}

// Triangular is a Triangular(low, mode, high) distribution with
// low <= mode <= high.
type Triangular struct {
	Low  float64
	Mode float64
	High float64
}

// Next draws via inverse-CDF sampling of the triangular distribution.
func (d Triangular) Next(rng *rand.Rand) float64 {
	if d.Low == d.High {
		return d.Low
	}
	u := rng.Float64()
	fMode := (d.Mode - d.Low) / (d.High - d.Low)
	if u < fMode {
		return d.Low + math.Sqrt(u*(d.High-d.Low)*(d.Mode-d.Low))
	}
	return d.High - math.Sqrt((1-u)*(d.High-d.Low)*(d.High-d.Mode))
}

// Beta is a Beta(alpha, beta) distribution. Alpha and Beta must be > 0.
type Beta struct {
	Alpha float64
	Beta  float64
}

// Next draws via the Gamma ratio X/(X+Y) with X ~ Gamma(Alpha, 1),
// Y ~ Gamma(Beta, 1).
func (d Beta) Next(rng *rand.Rand) float64 {
	x := sampleGamma(rng, d.Alpha)
	y := sampleGamma(rng, d.Beta)
	sum := x + y
	if sum == 0 {
		return 0.5
	}
	return x / sum
}

// sampleGamma draws from Gamma(shape, 1) using Marsaglia-Tsang for
// shape >= 1, falling back to the Gamma(shape+1)*U^(1/shape) boosting
// trick for shape < 1.
func sampleGamma(rng *rand.Rand, shape float64) float64 {
	if shape < 1 {
		u := rng.Float64()
		for u <= 0 {
			u = rng.Float64()
		}
		return sampleGamma(rng, shape+1) * math.Pow(u, 1/shape)
	}
	d := shape - 1.0/3.0
	c := 1.0 / math.Sqrt(9*d)
	for {
		var x, v float64
		for {
			x = normal01(rng)
			v = 1 + c*x
			if v > 0 {
				break
			}
		}
		v = v * v * v
		u := rng.Float64()
		if u < 1-0.0331*x*x*x*x {
			return d * v
		}
		if math.Log(u) < 0.5*x*x+d*(1-v+math.Log(v)) {
			return d * v
		}
	}
}

func normal01(rng *rand.Rand) float64 {
	u1 := rng.Float64()
	u2 := rng.Float64()
	for u1 <= 0 {
		u1 = rng.Float64()
	}
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// Weibull is a Weibull(k, lambda) distribution. K and Lambda must be > 0.
type Weibull struct {
	K      float64
	Lambda float64
}

// Next draws via the closed-form inverse CDF
// lambda * (-ln(1-U))^(1/k).
func (d Weibull) Next(rng *rand.Rand) float64 {
	u := rng.Float64()
	for u >= 1 {
		u = rng.Float64()
	}
	return d.Lambda * math.Pow(-math.Log(1-u), 1/d.K)
}

// Rayleigh is a Rayleigh(mean) distribution. Mean must be > 0.
type Rayleigh struct {
	Mean float64
}

// Next draws via the closed-form inverse CDF of the Rayleigh distribution.
// The Rayleigh scale parameter sigma relates to the mean by
// mean = sigma * sqrt(pi/2).
func (d Rayleigh) Next(rng *rand.Rand) float64 {
	sigma := d.Mean / math.Sqrt(math.Pi/2)
	u := rng.Float64()
	for u >= 1 {
		u = rng.Float64()
	}
	return sigma * math.Sqrt(-2*math.Log(1-u))
}

// LogNormal is a LogNormal(mu, sigma) distribution: exp(Normal(mu, sigma)).
type LogNormal struct {
	Mu    float64
	Sigma float64
}

// Next draws a Normal(Mu, Sigma) variate and exponentiates it.
func (d LogNormal) Next(rng *rand.Rand) float64 {
	n := Normal{Mu: d.Mu, Sigma: d.Sigma}
	return math.Exp(n.Next(rng))
}
