// Package report formats simulation results into presentation structs
// backed by decimal.Decimal, for anything meant to be displayed or
// compared exactly. Simulation math itself stays in float64 throughout
// pkg/; this package exists solely at the reporting edge.
package report

import (
	"github.com/atlas-desktop/montecarlo/pkg/results"
	"github.com/atlas-desktop/montecarlo/pkg/risk"
	"github.com/shopspring/decimal"
)

// RiskSummary presents VaR/CVaR and key percentiles as decimal amounts
// suitable for a ledger or a UI, rounded to the given number of decimal
// places.
type RiskSummary struct {
	ConfidenceLevel decimal.Decimal
	VaR             decimal.Decimal
	CVaR            decimal.Decimal
	Median          decimal.Decimal
	Mean            decimal.Decimal
}

// NewRiskSummary builds a RiskSummary from Results at confidence level c,
// rounding every field to places decimal digits.
func NewRiskSummary(r *results.Results, c float64, places int32) RiskSummary {
	s := risk.NewSummary(r, c)
	return RiskSummary{
		ConfidenceLevel: decimal.NewFromFloat(c).Round(places),
		VaR:             decimal.NewFromFloat(s.VaR).Round(places),
		CVaR:            decimal.NewFromFloat(s.CVaR).Round(places),
		Median:          decimal.NewFromFloat(r.Statistics.Median).Round(places),
		Mean:            decimal.NewFromFloat(r.Statistics.Mean).Round(places),
	}
}
