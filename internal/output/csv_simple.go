package output

import (
	"bytes"
	"encoding/csv"

	"github.com/investease/sip-planner/internal/domain"
)

// CSVSeriesExporter writes the year-by-year projection (one row per year).
type CSVSeriesExporter struct{}

func (c CSVSeriesExporter) Name() string { return "csv" }

func (c CSVSeriesExporter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "Label", "CumulativeInvested", "CumulativeValue", "Gain"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, p := range report.Result.Series {
		row := []string{
			intToString(p.Year),
			p.Label,
			p.CumulativeInvested.StringFixed(2),
			p.CumulativeValue.StringFixed(2),
			p.Gain().StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
