package output

import (
	"github.com/investease/sip-planner/internal/domain"
	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// PlanHighlight summarises the plan comparison for the summary views.
type PlanHighlight struct {
	HighestPlan      string
	HighestMaturity  decimal.Decimal
	RecommendedPlan  string
	SpreadToHighest  decimal.Decimal // highest maturity minus the recommended plan's
	GainPercentage   decimal.Decimal // highest plan's returns as a share of invested
	RecommendedFound bool
}

// AnalyzePlans finds the plan with the largest maturity value and compares it with the
// plan flagged as recommended. Ties keep catalog order.
func AnalyzePlans(plans []domain.PlanProjection) PlanHighlight {
	if len(plans) == 0 {
		return PlanHighlight{}
	}
	best := plans[0]
	for _, p := range plans[1:] {
		if p.Projection.MaturityValue.GreaterThan(best.Projection.MaturityValue) {
			best = p
		}
	}

	h := PlanHighlight{
		HighestPlan:     best.Plan.Name,
		HighestMaturity: best.Projection.MaturityValue,
	}
	if invested := best.Projection.TotalInvested; !invested.IsZero() {
		h.GainPercentage = best.Projection.TotalReturns.Div(invested).Mul(decimalHundred)
	}
	for _, p := range plans {
		if p.Plan.Recommended {
			h.RecommendedPlan = p.Plan.Name
			h.SpreadToHighest = best.Projection.MaturityValue.Sub(p.Projection.MaturityValue)
			h.RecommendedFound = true
			break
		}
	}
	return h
}
