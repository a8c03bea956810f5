package output

import (
	"strconv"

	money "github.com/investease/sip-planner/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as whole rupees with thousands grouping, e.g. ₹1,161,695.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatCurrencyExact formats a decimal as rupees and paise, e.g. ₹1,161,695.38.
func FormatCurrencyExact(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).FormatExact()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatRate formats a return rate without trailing zeros, e.g. 12% or 13.5%.
func FormatRate(rate decimal.Decimal) string { return rate.Round(2).String() + "%" }

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
