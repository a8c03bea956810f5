package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SIPInput describes a systematic investment plan: a fixed monthly contribution
// compounding at a nominal annual rate over a whole number of years.
type SIPInput struct {
	MonthlyContribution     decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	AnnualReturnRatePercent decimal.Decimal `yaml:"annual_return_rate_percent" json:"annual_return_rate_percent"` // 12 means 12%
	DurationYears           int             `yaml:"duration_years" json:"duration_years"`
}

// TotalMonths returns the number of monthly contributions in the plan
func (in SIPInput) TotalMonths() int {
	return in.DurationYears * 12
}

// YearPoint is a single year-end observation of an SIP projection
type YearPoint struct {
	Year               int             `json:"year"`
	Label              string          `json:"label"`
	CumulativeInvested decimal.Decimal `json:"cumulative_invested"`
	CumulativeValue    decimal.Decimal `json:"cumulative_value"`
}

// Gain returns the growth accumulated up to this year
func (p YearPoint) Gain() decimal.Decimal {
	return p.CumulativeValue.Sub(p.CumulativeInvested)
}

// YearLabel formats the chart label for a projection year
func YearLabel(year int) string {
	return fmt.Sprintf("Year %d", year)
}

// SIPResult holds the outcome of a projection. Values keep full precision;
// rounding is a presentation concern.
type SIPResult struct {
	MaturityValue decimal.Decimal `json:"maturity_value"`
	TotalInvested decimal.Decimal `json:"total_invested"`
	TotalReturns  decimal.Decimal `json:"total_returns"`
	Series        []YearPoint     `json:"series"`
}

// FinalYear returns the last point of the series, or false when the series is empty
func (r *SIPResult) FinalYear() (YearPoint, bool) {
	if len(r.Series) == 0 {
		return YearPoint{}, false
	}
	return r.Series[len(r.Series)-1], true
}
