package output

import (
	"fmt"

	"github.com/investease/sip-planner/internal/domain"
)

// DefaultAssumptions lists the modelling assumptions rendered in detailed outputs
// when a report carries none of its own.
var DefaultAssumptions = []string{
	"Contributions are made at the start of every month (annuity due)",
	"Returns compound monthly at one twelfth of the annual rate",
	"The annual return rate stays constant for the whole horizon",
	"Plan comparisons use the midpoint of each expected return band",
	"Projections are illustrative; market-linked returns are not guaranteed",
}

// GenerateAssumptions creates the assumptions list from the report's actual inputs
func GenerateAssumptions(report *domain.Report) []string {
	out := []string{
		"Contributions are made at the start of every month (annuity due)",
		fmt.Sprintf("Returns compound monthly at %s / 12 for %d months",
			FormatRate(report.Input.AnnualReturnRatePercent), report.Input.TotalMonths()),
		fmt.Sprintf("A constant %s annual return over %d years", FormatRate(report.Input.AnnualReturnRatePercent), report.Input.DurationYears),
	}
	if report.InflationRatePercent != nil {
		out = append(out, fmt.Sprintf("Real value discounts maturity by %s inflation a year", FormatRate(*report.InflationRatePercent)))
	}
	if len(report.Plans) > 0 {
		out = append(out, "Plan comparisons use the midpoint of each expected return band")
	}
	out = append(out, "Projections are illustrative; market-linked returns are not guaranteed")
	return out
}

func assumptionsFor(report *domain.Report) []string {
	if len(report.Assumptions) > 0 {
		return report.Assumptions
	}
	return DefaultAssumptions
}
