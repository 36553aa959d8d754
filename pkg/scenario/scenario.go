// Package scenario runs a model under named what-if configurations and
// compares the resulting distributions.
package scenario

import (
	"github.com/atlas-desktop/montecarlo/pkg/distribution"
	"github.com/atlas-desktop/montecarlo/pkg/mcerrors"
	"github.com/atlas-desktop/montecarlo/pkg/results"
	"github.com/atlas-desktop/montecarlo/pkg/simulation"
)

// Scenario names a configuration for every input in a ScenarioAnalysis's
// schema: each input must be configured as either a fixed value or a
// distribution, never both and never neither.
type Scenario struct {
	Name          string
	Fixed         map[string]float64
	Distributions map[string]distribution.Distribution
}

// ScenarioAnalysis runs model over iterations once per registered
// scenario, resolving each scenario's inputs against InputNames.
type ScenarioAnalysis struct {
	InputNames []string
	Iterations int
	Model      simulation.Model
	Scenarios  []Scenario
}

// Run executes every registered scenario and returns its Results keyed by
// scenario name. Fails with NoScenariosError if no scenarios are
// registered, or with MissingInputConfigurationError/UnknownInputError if
// a scenario's Fixed/Distributions maps don't exactly cover InputNames.
func (sa *ScenarioAnalysis) Run() (map[string]*results.Results, error) {
	if len(sa.Scenarios) == 0 {
		return nil, &mcerrors.NoScenariosError{}
	}

	out := make(map[string]*results.Results, len(sa.Scenarios))
	for _, sc := range sa.Scenarios {
		inputs, err := sc.resolve(sa.InputNames)
		if err != nil {
			return nil, err
		}
		driver, err := simulation.NewDriver(inputs, sa.Model, sa.Iterations)
		if err != nil {
			return nil, err
		}
		res, err := driver.Run()
		if err != nil {
			return nil, err
		}
		out[sc.Name] = res
	}
	return out, nil
}

// resolve builds one simulation.Input per name in inputNames, in order.
// A name configured in neither Fixed nor Distributions fails with
// MissingInputConfigurationError. A name present in Fixed or
// Distributions but absent from inputNames fails with UnknownInputError.
// A name configured in both maps resolves to its Fixed value.
func (sc *Scenario) resolve(inputNames []string) ([]*simulation.Input, error) {
	known := make(map[string]bool, len(inputNames))
	for _, name := range inputNames {
		known[name] = true
	}
	for name := range sc.Fixed {
		if !known[name] {
			return nil, &mcerrors.UnknownInputError{Scenario: sc.Name, Name: name}
		}
	}
	for name := range sc.Distributions {
		if !known[name] {
			return nil, &mcerrors.UnknownInputError{Scenario: sc.Name, Name: name}
		}
	}

	inputs := make([]*simulation.Input, len(inputNames))
	for i, name := range inputNames {
		fixedVal, inFixed := sc.Fixed[name]
		dist, inDist := sc.Distributions[name]
		switch {
		case inFixed:
			inputs[i] = simulation.NewConstantInput(name, fixedVal)
		case inDist:
			inputs[i] = simulation.NewDistributionInput(name, dist)
		default:
			return nil, &mcerrors.MissingInputConfigurationError{Scenario: sc.Name, Missing: name}
		}
	}
	return inputs, nil
}
