// Package sensitivity sweeps a model's inputs one at a time around a
// base case to measure how much each input drives the outcome.
package sensitivity

import (
	"fmt"
	"sort"

	"github.com/atlas-desktop/montecarlo/pkg/mcerrors"
	"github.com/atlas-desktop/montecarlo/pkg/results"
	"github.com/atlas-desktop/montecarlo/pkg/simulation"
)

// Analysis runs Model over Iterations iterations for a base input vector,
// varying one input at a time.
type Analysis struct {
	InputNames []string
	Base       map[string]float64
	Model      simulation.Model
	Iterations int
}

// StepResult is one point of a sweep: the multiplier applied to the swept
// input's base value, and the Results it produced.
type StepResult struct {
	Multiplier float64
	Results    *results.Results
}

func (a *Analysis) constantInputs(overrideName string, overrideValue float64) []*simulation.Input {
	inputs := make([]*simulation.Input, len(a.InputNames))
	for i, name := range a.InputNames {
		v := a.Base[name]
		if name == overrideName {
			v = overrideValue
		}
		inputs[i] = simulation.NewConstantInput(name, v)
	}
	return inputs
}

// AnalyzeInput holds every input but name at its base value and sweeps
// name's value across steps evenly spaced multipliers in [lo, hi],
// running the driver at each point.
func (a *Analysis) AnalyzeInput(name string, lo, hi float64, steps int) ([]StepResult, error) {
	if steps < 2 {
		return nil, fmt.Errorf("sensitivity: steps must be >= 2, got %d", steps)
	}
	base, ok := a.Base[name]
	if !ok {
		return nil, &mcerrors.UnknownInputError{Scenario: "sensitivity", Name: name}
	}

	out := make([]StepResult, steps)
	for i := 0; i < steps; i++ {
		multiplier := lo + float64(i)*(hi-lo)/float64(steps-1)
		inputs := a.constantInputs(name, base*multiplier)
		driver, err := simulation.NewDriver(inputs, a.Model, a.Iterations)
		if err != nil {
			return nil, err
		}
		res, err := driver.Run()
		if err != nil {
			return nil, err
		}
		out[i] = StepResult{Multiplier: multiplier, Results: res}
	}
	return out, nil
}

func (a *Analysis) baseline() (*results.Results, error) {
	inputs := a.constantInputs("", 0)
	driver, err := simulation.NewDriver(inputs, a.Model, a.Iterations)
	if err != nil {
		return nil, err
	}
	return driver.Run()
}

// TornadoBar is one bar of a tornado chart: the output mean's range as
// the named input sweeps from lo to hi.
type TornadoBar struct {
	InputName string
	Low       float64
	High      float64
}

// Impact is the bar's width, High - Low.
func (b TornadoBar) Impact() float64 { return b.High - b.Low }

// TornadoChart runs a two-point AnalyzeInput sweep (the endpoints of
// [lo, hi]) for every input and returns one bar per input, sorted
// descending by Impact.
func (a *Analysis) TornadoChart(lo, hi float64) ([]TornadoBar, error) {
	bars := make([]TornadoBar, len(a.InputNames))
	for i, name := range a.InputNames {
		steps, err := a.AnalyzeInput(name, lo, hi, 2)
		if err != nil {
			return nil, err
		}
		meanLo := steps[0].Results.Statistics.Mean
		meanHi := steps[1].Results.Statistics.Mean
		low, high := meanLo, meanHi
		if low > high {
			low, high = high, low
		}
		bars[i] = TornadoBar{InputName: name, Low: low, High: high}
	}
	sort.SliceStable(bars, func(i, j int) bool { return bars[i].Impact() > bars[j].Impact() })
	return bars, nil
}
