package calculation

import (
	"fmt"

	"github.com/investease/sip-planner/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	decimalOne     = decimal.NewFromInt(1)
	decimalTwelve  = decimal.NewFromInt(12)
	decimalHundred = decimal.NewFromInt(100)
)

// Input field names reported by InvalidInputError
const (
	FieldMonthlyContribution = "monthly_contribution"
	FieldAnnualReturnRate    = "annual_return_rate_percent"
	FieldDurationYears       = "duration_years"
	FieldInflationRate       = "inflation_rate_percent"
	FieldPrincipal           = "principal"
)

// InvalidInputError reports a projection input that failed validation.
// The caller is expected to re-prompt for Field.
type InvalidInputError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s %s: %s", e.Field, e.Value, e.Reason)
}

func invalid(field string, value any, reason string) *InvalidInputError {
	return &InvalidInputError{Field: field, Value: fmt.Sprint(value), Reason: reason}
}

// MaxDurationYears is the longest horizon the engine projects
const MaxDurationYears = 100

// workingPlaces bounds intermediate precision so long horizons stay linear in cost
const workingPlaces int32 = 24

// ValidateInput checks the projection invariants: a positive contribution,
// a non-negative rate and between 1 and MaxDurationYears whole years.
func ValidateInput(in domain.SIPInput) error {
	if !in.MonthlyContribution.IsPositive() {
		return invalid(FieldMonthlyContribution, in.MonthlyContribution, "must be positive")
	}
	if in.AnnualReturnRatePercent.IsNegative() {
		return invalid(FieldAnnualReturnRate, in.AnnualReturnRatePercent, "cannot be negative")
	}
	if in.DurationYears < 1 {
		return invalid(FieldDurationYears, in.DurationYears, "must be at least 1 year")
	}
	if in.DurationYears > MaxDurationYears {
		return invalid(FieldDurationYears, in.DurationYears, fmt.Sprintf("cannot exceed %d years", MaxDurationYears))
	}
	return nil
}

// MonthlyRate converts a nominal annual percentage to a monthly fraction
func MonthlyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return annualRatePercent.Div(decimalTwelve).Div(decimalHundred)
}

// ComputeMaturityValue returns the future value of totalMonths equal contributions
// made at the start of each month (annuity due):
//
//	FV = c * (((1+r)^n - 1) / r) * (1+r),  r = annualRatePercent/12/100
//
// A zero rate yields c*n. A non-positive contribution or month count yields zero;
// use ValidateInput to reject such input instead.
func ComputeMaturityValue(contribution, annualRatePercent decimal.Decimal, totalMonths int) decimal.Decimal {
	if totalMonths <= 0 || !contribution.IsPositive() {
		return decimal.Zero
	}
	r := MonthlyRate(annualRatePercent)
	if r.IsZero() {
		return contribution.Mul(decimal.NewFromInt(int64(totalMonths)))
	}
	return contribution.Mul(annuityDueFactor(r, compound(decimalOne.Add(r), totalMonths)))
}

// annuityDueFactor is ((1+r)^n - 1) / r * (1+r) given growthN = (1+r)^n
func annuityDueFactor(r, growthN decimal.Decimal) decimal.Decimal {
	return growthN.Sub(decimalOne).DivRound(r, workingPlaces).Mul(decimalOne.Add(r)).Round(workingPlaces)
}

// compound raises growth to the n-th power by squaring, rounding each product
// to workingPlaces.
func compound(growth decimal.Decimal, n int) decimal.Decimal {
	result := decimalOne
	base := growth
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base).Round(workingPlaces)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base).Round(workingPlaces)
		}
	}
	return result
}

// ProjectSeries returns one year-end point per year from 1 to DurationYears
func ProjectSeries(in domain.SIPInput) ([]domain.YearPoint, error) {
	if err := ValidateInput(in); err != nil {
		return nil, err
	}
	return projectSeries(in), nil
}

// projectSeries carries the value forward a year at a time:
// V(k) = V(k-1) * (1+r)^12 + c * annuityDueFactor(12).
func projectSeries(in domain.SIPInput) []domain.YearPoint {
	c := in.MonthlyContribution
	r := MonthlyRate(in.AnnualReturnRatePercent)
	yearlyInvested := c.Mul(decimalTwelve)

	yearGrowth := decimalOne
	yearContribution := yearlyInvested
	if !r.IsZero() {
		yearGrowth = compound(decimalOne.Add(r), 12)
		yearContribution = c.Mul(annuityDueFactor(r, yearGrowth))
	}

	series := make([]domain.YearPoint, 0, in.DurationYears)
	value := decimal.Zero
	invested := decimal.Zero
	for year := 1; year <= in.DurationYears; year++ {
		value = value.Mul(yearGrowth).Add(yearContribution).Round(workingPlaces)
		invested = invested.Add(yearlyInvested)
		series = append(series, domain.YearPoint{
			Year:               year,
			Label:              domain.YearLabel(year),
			CumulativeInvested: invested,
			CumulativeValue:    value,
		})
	}
	return series
}

// Summarize computes maturity value, totals and the yearly series for an SIP.
// The maturity value and total invested are taken from the last series point.
func Summarize(in domain.SIPInput) (domain.SIPResult, error) {
	if err := ValidateInput(in); err != nil {
		return domain.SIPResult{}, err
	}
	series := projectSeries(in)
	last := series[len(series)-1]
	return domain.SIPResult{
		MaturityValue: last.CumulativeValue,
		TotalInvested: last.CumulativeInvested,
		TotalReturns:  last.CumulativeValue.Sub(last.CumulativeInvested),
		Series:        series,
	}, nil
}
