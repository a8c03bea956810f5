package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Report gathers everything an output formatter may render for one request
type Report struct {
	GeneratedAt time.Time `json:"generated_at"`
	Input       SIPInput  `json:"input"`
	Result      SIPResult `json:"result"`

	// Contribution schedule; zero when the report was built without the engine
	FirstContribution time.Time `json:"first_contribution"`
	MaturityDate      time.Time `json:"maturity_date"`

	// Present when an inflation rate was supplied
	InflationRatePercent *decimal.Decimal `json:"inflation_rate_percent,omitempty"`
	RealMaturityValue    *decimal.Decimal `json:"real_maturity_value,omitempty"`

	Recommendation *Recommendation  `json:"recommendation,omitempty"`
	Plans          []PlanProjection `json:"plans,omitempty"`
	Assumptions    []string         `json:"assumptions"`
}
