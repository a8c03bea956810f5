package calculation

import (
	"github.com/shopspring/decimal"
)

// InflationAdjustedValue discounts a future amount to today's money:
// amount / (1 + inflation/100)^years
func InflationAdjustedValue(amount, inflationRatePercent decimal.Decimal, years int) (decimal.Decimal, error) {
	if inflationRatePercent.IsNegative() {
		return decimal.Zero, invalid(FieldInflationRate, inflationRatePercent, "cannot be negative")
	}
	if years < 0 {
		return decimal.Zero, invalid(FieldDurationYears, years, "cannot be negative")
	}
	if inflationRatePercent.IsZero() || years == 0 {
		return amount, nil
	}
	factor := compound(decimalOne.Add(inflationRatePercent.Div(decimalHundred)), years)
	return amount.Div(factor), nil
}

// LumpSumFutureValue compounds a one-off principal monthly at a nominal annual rate:
// P * (1 + r/12)^(12*years)
func LumpSumFutureValue(principal, annualRatePercent decimal.Decimal, years int) (decimal.Decimal, error) {
	if principal.IsNegative() {
		return decimal.Zero, invalid(FieldPrincipal, principal, "cannot be negative")
	}
	if annualRatePercent.IsNegative() {
		return decimal.Zero, invalid(FieldAnnualReturnRate, annualRatePercent, "cannot be negative")
	}
	if years < 0 {
		return decimal.Zero, invalid(FieldDurationYears, years, "cannot be negative")
	}
	growth := decimalOne.Add(MonthlyRate(annualRatePercent))
	return principal.Mul(compound(growth, years*12)), nil
}
