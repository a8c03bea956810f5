package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/investease/sip-planner/internal/domain"
	"github.com/investease/sip-planner/pkg/dateutil"
)

// ConsoleVerboseFormatter renders the full projection report: summary, yearly
// growth table, recommendation and plan comparison.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	rule := strings.Repeat("=", 72)

	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf, "SIP INVESTMENT PROJECTION")
	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range assumptionsFor(report) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	in := report.Input
	res := report.Result
	fmt.Fprintln(&buf, "INVESTMENT SUMMARY")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	fmt.Fprintf(&buf, "Monthly Investment:     %s\n", FormatCurrency(in.MonthlyContribution))
	fmt.Fprintf(&buf, "Expected Return:        %s per year\n", FormatRate(in.AnnualReturnRatePercent))
	fmt.Fprintf(&buf, "Time Period:            %d years\n", in.DurationYears)
	if !report.MaturityDate.IsZero() {
		fmt.Fprintf(&buf, "Contributions:          %s to %s\n",
			report.FirstContribution.Format("Jan 2006"), dateutil.AddMonths(report.MaturityDate, -1).Format("Jan 2006"))
		fmt.Fprintf(&buf, "Maturity Date:          %s\n", report.MaturityDate.Format("02 Jan 2006"))
	}
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Total Investment:       %s\n", FormatCurrency(res.TotalInvested))
	fmt.Fprintf(&buf, "Expected Returns:       %s\n", FormatCurrency(res.TotalReturns))
	fmt.Fprintf(&buf, "Maturity Value:         %s\n", FormatCurrency(res.MaturityValue))
	if report.RealMaturityValue != nil && report.InflationRatePercent != nil {
		fmt.Fprintf(&buf, "In Today's Money:       %s (at %s inflation)\n",
			FormatCurrency(*report.RealMaturityValue), FormatRate(*report.InflationRatePercent))
	}
	fmt.Fprintln(&buf)

	writeGrowthTable(&buf, res.Series)

	if report.Recommendation != nil {
		writeRecommendation(&buf, report.Recommendation)
	}
	if len(report.Plans) > 0 {
		writePlanComparison(&buf, report.Plans)
	}
	return buf.Bytes(), nil
}

func writeGrowthTable(buf *bytes.Buffer, series []domain.YearPoint) {
	fmt.Fprintln(buf, "INVESTMENT GROWTH")
	fmt.Fprintln(buf, strings.Repeat("-", 64))
	fmt.Fprintf(buf, "%-10s %18s %18s %14s\n", "Year", "Invested", "Value", "Gain")
	for _, p := range series {
		fmt.Fprintf(buf, "%-10s %18s %18s %14s\n",
			p.Label,
			FormatCurrency(p.CumulativeInvested),
			FormatCurrency(p.CumulativeValue),
			FormatCurrency(p.Gain()),
		)
	}
	fmt.Fprintln(buf)
}

func writeRecommendation(buf *bytes.Buffer, rec *domain.Recommendation) {
	fmt.Fprintf(buf, "RECOMMENDED PORTFOLIO: %s RISK\n", strings.ToUpper(rec.Tier.String()))
	fmt.Fprintln(buf, strings.Repeat("-", 40))
	fmt.Fprintf(buf, "Monthly Investment:     %s\n", FormatCurrency(rec.InvestmentAmount))
	fmt.Fprintf(buf, "Expected Returns:       %s annually\n", rec.ExpectedReturn)
	fmt.Fprintln(buf, "Asset Allocation:")
	for _, a := range rec.Allocation {
		fmt.Fprintf(buf, "  %-22s %6s  %s\n", a.AssetClass, FormatRate(a.Percentage), FormatCurrency(a.Amount))
	}
	fmt.Fprintln(buf, "Key Features:")
	for _, f := range rec.Features {
		fmt.Fprintf(buf, "  ✓ %s\n", f)
	}
	if final, ok := rec.Projection.FinalYear(); ok {
		fmt.Fprintf(buf, "Projected value after %d years: %s\n", final.Year, FormatCurrency(final.CumulativeValue))
	}
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, rec.Explanation)
	fmt.Fprintln(buf)
}

func writePlanComparison(buf *bytes.Buffer, plans []domain.PlanProjection) {
	fmt.Fprintln(buf, "PLAN COMPARISON")
	fmt.Fprintln(buf, strings.Repeat("-", 72))
	fmt.Fprintf(buf, "%-24s %-8s %-8s %-9s %18s\n", "Plan", "Risk", "Return", "Lock-in", "Maturity")
	for _, p := range plans {
		name := p.Plan.Name
		if p.Plan.Recommended {
			name += " *"
		}
		fmt.Fprintf(buf, "%-24s %-8s %-8s %-9s %18s\n",
			name,
			p.Plan.Risk,
			p.Plan.ExpectedReturn,
			p.Plan.LockIn,
			FormatCurrency(p.Projection.MaturityValue),
		)
	}
	h := AnalyzePlans(plans)
	switch {
	case h.RecommendedFound && h.HighestPlan != h.RecommendedPlan:
		fmt.Fprintf(buf, "* Recommended. %s projects %s more than %s.\n",
			h.HighestPlan, FormatCurrency(h.SpreadToHighest), h.RecommendedPlan)
	case h.RecommendedFound:
		fmt.Fprintln(buf, "* Recommended.")
	}
	fmt.Fprintln(buf)
}
