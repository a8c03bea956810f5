package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RiskTier is the coarse risk preference selected by the investor
type RiskTier int

const (
	RiskUnknown RiskTier = iota
	RiskLow
	RiskMedium
	RiskHigh
)

// AllRiskTiers lists every selectable tier in display order
var AllRiskTiers = []RiskTier{RiskLow, RiskMedium, RiskHigh}

func (t RiskTier) String() string {
	switch t {
	case RiskLow:
		return "Low"
	case RiskMedium:
		return "Medium"
	case RiskHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// Valid reports whether t is one of the selectable tiers
func (t RiskTier) Valid() bool {
	return t >= RiskLow && t <= RiskHigh
}

// ParseRiskTier parses "Low", "Medium" or "High" (case-insensitive)
func ParseRiskTier(s string) (RiskTier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return RiskLow, nil
	case "medium":
		return RiskMedium, nil
	case "high":
		return RiskHigh, nil
	}
	return RiskUnknown, fmt.Errorf("invalid risk preference %q: must be Low, Medium or High", s)
}

// MarshalText implements encoding.TextMarshaler (used by both JSON and YAML)
func (t RiskTier) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return []byte(""), nil
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *RiskTier) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*t = RiskUnknown
		return nil
	}
	parsed, err := ParseRiskTier(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ReturnBand is an expected annual return range in percent, e.g. 8-10%
type ReturnBand struct {
	Min decimal.Decimal `yaml:"min" json:"min"`
	Max decimal.Decimal `yaml:"max" json:"max"`
}

// Midpoint returns the centre of the band, used as the projection rate
func (b ReturnBand) Midpoint() decimal.Decimal {
	return b.Min.Add(b.Max).Div(decimal.NewFromInt(2))
}

func (b ReturnBand) String() string {
	return b.Min.String() + "-" + b.Max.String() + "%"
}

// AllocationWeight is a single asset class share of a portfolio, in percent
type AllocationWeight struct {
	AssetClass string          `yaml:"asset_class" json:"asset_class"`
	Percentage decimal.Decimal `yaml:"percentage" json:"percentage"`
}

// AssetAllocation is an allocation weight resolved against an investment amount
type AssetAllocation struct {
	AssetClass string          `json:"asset_class"`
	Percentage decimal.Decimal `json:"percentage"`
	Amount     decimal.Decimal `json:"amount"`
}

// RiskProfile is the pre-authored recommendation template for a tier
type RiskProfile struct {
	Tier           RiskTier           `yaml:"tier" json:"tier"`
	ExpectedReturn ReturnBand         `yaml:"expected_return" json:"expected_return"`
	Allocation     []AllocationWeight `yaml:"allocation" json:"allocation"`
	Features       []string           `yaml:"features" json:"features"`
	Explanation    string             `yaml:"explanation" json:"explanation"`
}

// Recommendation is the personalised plan presented after the details steps
type Recommendation struct {
	Tier             RiskTier          `json:"tier"`
	ExpectedReturn   ReturnBand        `json:"expected_return"`
	InvestmentAmount decimal.Decimal   `json:"investment_amount"`
	Allocation       []AssetAllocation `json:"allocation"`
	Features         []string          `json:"features"`
	Explanation      string            `json:"explanation"`
	Projection       SIPResult         `json:"projection"`
}

// InvestmentPlan is one of the static plans offered on the comparison page
type InvestmentPlan struct {
	Name           string          `yaml:"name" json:"name"`
	Risk           RiskTier        `yaml:"risk" json:"risk"`
	ExpectedReturn ReturnBand      `yaml:"expected_return" json:"expected_return"`
	MinInvestment  decimal.Decimal `yaml:"min_investment" json:"min_investment"`
	LockIn         string          `yaml:"lock_in" json:"lock_in"`
	TaxBenefit     bool            `yaml:"tax_benefit" json:"tax_benefit"`
	Features       []string        `yaml:"features" json:"features"`
	Recommended    bool            `yaml:"recommended" json:"recommended"`
}

// PlanProjection pairs a plan with its SIP projection at the band midpoint
type PlanProjection struct {
	Plan       InvestmentPlan  `json:"plan"`
	RatePct    decimal.Decimal `json:"rate_pct"`
	Projection SIPResult       `json:"projection"`
}
