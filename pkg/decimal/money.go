package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencySymbol prefixes every formatted amount
const CurrencySymbol = "₹"

var hundred = decimal.NewFromInt(100)

// grouping printer; message.Printer is safe for concurrent use
var printer = message.NewPrinter(language.English)

// Money represents a rupee amount at full precision. Rounding happens only on display.
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Share returns pct percent of the amount
func (m Money) Share(pct decimal.Decimal) Money {
	return Money{m.Decimal.Mul(pct).Div(hundred)}
}

func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Sum adds up amounts; an empty list is zero
func Sum(amounts ...Money) Money {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a.Decimal)
	}
	return Money{total}
}

// String returns the amount with two decimals and no symbol
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders whole rupees with thousands grouping, e.g. ₹1,161,695
func (m Money) Format() string {
	units := m.Decimal.Round(0)
	return sign(units) + CurrencySymbol + printer.Sprintf("%d", units.Abs().IntPart())
}

// FormatExact renders rupees and paise, e.g. ₹1,161,695.38
func (m Money) FormatExact() string {
	fixed := m.Decimal.Round(2)
	whole := fixed.Abs().Truncate(0)
	frac := fixed.Abs().StringFixed(2)
	frac = frac[strings.IndexByte(frac, '.'):]
	return sign(fixed) + CurrencySymbol + printer.Sprintf("%d", whole.IntPart()) + frac
}

func sign(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-"
	}
	return ""
}
