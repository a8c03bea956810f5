package output

import (
	"bytes"
	"fmt"

	"github.com/investease/sip-planner/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	in := report.Input
	res := report.Result
	fmt.Fprintln(&buf, "SIP PROJECTION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "%s/month at %s for %d years\n", FormatCurrency(in.MonthlyContribution), FormatRate(in.AnnualReturnRatePercent), in.DurationYears)
	fmt.Fprintf(&buf, "Invested=%s Returns=%s Maturity=%s\n",
		FormatCurrency(res.TotalInvested),
		FormatCurrency(res.TotalReturns),
		FormatCurrency(res.MaturityValue),
	)
	if report.RealMaturityValue != nil {
		fmt.Fprintf(&buf, "Real maturity value: %s\n", FormatCurrency(*report.RealMaturityValue))
	}
	if rec := report.Recommendation; rec != nil {
		fmt.Fprintf(&buf, "Recommended: %s risk portfolio (%s expected)\n", rec.Tier, rec.ExpectedReturn)
	}
	if h := AnalyzePlans(report.Plans); h.HighestPlan != "" {
		fmt.Fprintf(&buf, "Highest projected plan: %s (%s)\n", h.HighestPlan, FormatCurrency(h.HighestMaturity))
	}
	return buf.Bytes(), nil
}
