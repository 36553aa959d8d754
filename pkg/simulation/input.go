// Package simulation provides named simulation inputs and the simulation
// driver that runs a model over them: independent runs and Iman-Conover
// correlated runs, executed by a worker pool over a jobs channel.
package simulation

import (
	"math/rand"

	"github.com/atlas-desktop/montecarlo/pkg/distribution"
)

// Sampler draws a single scalar from a random source.
type Sampler func(rng *rand.Rand) float64

// Input is a named, type-erased uncertain variable: a name plus a
// sample() -> f64 function, optionally backed by a distribution for later
// introspection.
type Input struct {
	Name     string
	Metadata map[string]string

	sampler              Sampler
	originalDistribution distribution.Distribution
}

// NewDistributionInput constructs an Input backed by d, retaining d for
// later introspection through Distribution.
func NewDistributionInput(name string, d distribution.Distribution) *Input {
	return &Input{
		Name:                 name,
		Metadata:             map[string]string{},
		sampler:              d.Next,
		originalDistribution: d,
	}
}

// NewCustomInput constructs an Input backed by an arbitrary closure, with
// no distribution available for introspection.
func NewCustomInput(name string, sampler Sampler) *Input {
	return &Input{
		Name:     name,
		Metadata: map[string]string{},
		sampler:  sampler,
	}
}

// NewConstantInput constructs an Input that always samples the same
// value, used by the scenario framework's "fixed" configuration.
func NewConstantInput(name string, value float64) *Input {
	return &Input{
		Name:     name,
		Metadata: map[string]string{},
		sampler:  func(*rand.Rand) float64 { return value },
	}
}

// Sample delegates to the underlying sampler. Side-effect-free w.r.t.
// program state except for rng's internal state.
func (in *Input) Sample(rng *rand.Rand) float64 {
	return in.sampler(rng)
}

// Distribution returns the backing distribution and true if this Input
// was constructed from one.
func (in *Input) Distribution() (distribution.Distribution, bool) {
	if in.originalDistribution == nil {
		return nil, false
	}
	return in.originalDistribution, true
}
