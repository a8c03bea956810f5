package output

import (
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/investease/sip-planner/internal/domain"
)

// CSVPlansExporter writes the plan comparison table (one row per plan, catalog order).
type CSVPlansExporter struct{}

func (c CSVPlansExporter) Name() string { return "plans-csv" }

func (c CSVPlansExporter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Plan", "Risk", "ExpectedReturn", "ProjectedRate", "MinInvestment", "LockIn", "TaxBenefit", "Recommended", "TotalInvested", "MaturityValue", "TotalReturns", "Features"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, p := range report.Plans {
		row := []string{
			p.Plan.Name,
			p.Plan.Risk.String(),
			p.Plan.ExpectedReturn.String(),
			p.RatePct.String(),
			p.Plan.MinInvestment.StringFixed(2),
			p.Plan.LockIn,
			boolToString(p.Plan.TaxBenefit),
			boolToString(p.Plan.Recommended),
			p.Projection.TotalInvested.StringFixed(2),
			p.Projection.MaturityValue.StringFixed(2),
			p.Projection.TotalReturns.StringFixed(2),
			strings.Join(p.Plan.Features, "; "),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
