package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/investease/sip-planner/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with an embedded chart data block.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"exact": FormatCurrencyExact,
	"pct":   FormatPercentage,
	"rate":  FormatRate,
	"inc":   func(i int) int { return i + 1 },
	"json":  func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.Report
		Assumptions []string
		Chart       ChartData
		Allocation  []AllocationSlice
		Highlight   PlanHighlight
	}{
		Report:      report,
		Assumptions: assumptionsFor(report),
		Chart:       BuildChartData(report.Result.Series),
		Allocation:  BuildAllocationChart(report.Recommendation),
		Highlight:   AnalyzePlans(report.Plans),
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
