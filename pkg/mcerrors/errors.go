// Package mcerrors defines the structured error taxonomy used across the
// simulation core. Failures are never swallowed or converted to sentinel
// numeric values; every error carries enough context for the caller to act.
package mcerrors

import "fmt"

// InsufficientIterationsError reports that a driver was asked to run zero
// iterations.
type InsufficientIterationsError struct {
	Requested int
}

func (e *InsufficientIterationsError) Error() string {
	return fmt.Sprintf("mcerrors: insufficient iterations: requested %d, need >= 1", e.Requested)
}

// NoInputsError reports that a driver was invoked with no SimulationInputs.
type NoInputsError struct{}

func (e *NoInputsError) Error() string {
	return "mcerrors: no inputs registered with driver"
}

// InvalidModelError reports that the user model produced a non-finite
// value (NaN or +/-Inf) on a given iteration.
type InvalidModelError struct {
	Iteration int
	Reason    string
}

func (e *InvalidModelError) Error() string {
	return fmt.Sprintf("mcerrors: model produced invalid output at iteration %d: %s", e.Iteration, e.Reason)
}

// DimensionMismatchError reports that two vector/matrix dimensions that
// must agree did not.
type DimensionMismatchError struct {
	Context  string
	Expected int
	Actual   int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("mcerrors: dimension mismatch in %s: expected %d, got %d", e.Context, e.Expected, e.Actual)
}

// CorrelationMatrixCause distinguishes which invariant a correlation
// matrix failed.
type CorrelationMatrixCause int

const (
	// CauseNonSquare means the matrix is not n x n.
	CauseNonSquare CorrelationMatrixCause = iota
	// CauseAsymmetric means M[i][j] != M[j][i] beyond tolerance.
	CauseAsymmetric
	// CauseNonUnitDiagonal means a diagonal entry is not within tolerance of 1.
	CauseNonUnitDiagonal
	// CauseOutOfBounds means an off-diagonal entry falls outside [-1, 1].
	CauseOutOfBounds
	// CauseNotPositiveSemiDefinite means Cholesky factorization failed.
	CauseNotPositiveSemiDefinite
)

func (c CorrelationMatrixCause) String() string {
	switch c {
	case CauseNonSquare:
		return "non-square"
	case CauseAsymmetric:
		return "asymmetric"
	case CauseNonUnitDiagonal:
		return "non-unit-diagonal"
	case CauseOutOfBounds:
		return "out-of-bounds"
	case CauseNotPositiveSemiDefinite:
		return "not-positive-semi-definite"
	default:
		return "unknown"
	}
}

// InvalidCorrelationMatrixError reports which invariant a correlation
// matrix violated.
type InvalidCorrelationMatrixError struct {
	Cause CorrelationMatrixCause
	Detail string
}

func (e *InvalidCorrelationMatrixError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("mcerrors: invalid correlation matrix: %s", e.Cause)
	}
	return fmt.Sprintf("mcerrors: invalid correlation matrix: %s (%s)", e.Cause, e.Detail)
}

// NonFiniteError reports that a statistics/percentile computation was
// given a vector containing NaN or +/-Inf.
type NonFiniteError struct {
	Index int
	Value float64
}

func (e *NonFiniteError) Error() string {
	return fmt.Sprintf("mcerrors: non-finite value %v at index %d", e.Value, e.Index)
}

// InsufficientDataError reports that a computation requiring at least one
// observation was given an empty slice.
type InsufficientDataError struct{}

func (e *InsufficientDataError) Error() string {
	return "mcerrors: insufficient data: need at least 1 value"
}

// MissingInputConfigurationError reports that a scenario left a named
// input unconfigured (neither fixed nor distribution-backed).
type MissingInputConfigurationError struct {
	Scenario string
	Missing  string
}

func (e *MissingInputConfigurationError) Error() string {
	return fmt.Sprintf("mcerrors: scenario %q missing configuration for input %q", e.Scenario, e.Missing)
}

// UnknownInputError reports that a scenario configured an input not
// present in the schema's input_names.
type UnknownInputError struct {
	Scenario string
	Name     string
}

func (e *UnknownInputError) Error() string {
	return fmt.Sprintf("mcerrors: scenario %q references unknown input %q", e.Scenario, e.Name)
}

// NoScenariosError reports that a ScenarioAnalysis was run with zero
// registered scenarios.
type NoScenariosError struct{}

func (e *NoScenariosError) Error() string {
	return "mcerrors: no scenarios registered"
}
