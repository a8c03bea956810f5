package output

import (
	"github.com/investease/sip-planner/internal/domain"
)

// ChartData is the line chart payload: one label per year with the invested and
// projected value series, rounded to whole rupees.
type ChartData struct {
	Labels   []string `json:"labels"`
	Invested []int64  `json:"invested"`
	Value    []int64  `json:"value"`
}

// BuildChartData converts a projection series into chart arrays of equal length.
func BuildChartData(series []domain.YearPoint) ChartData {
	cd := ChartData{
		Labels:   make([]string, 0, len(series)),
		Invested: make([]int64, 0, len(series)),
		Value:    make([]int64, 0, len(series)),
	}
	for _, p := range series {
		cd.Labels = append(cd.Labels, p.Label)
		cd.Invested = append(cd.Invested, p.CumulativeInvested.Round(0).IntPart())
		cd.Value = append(cd.Value, p.CumulativeValue.Round(0).IntPart())
	}
	return cd
}

// AllocationSlice is one segment of the allocation donut chart.
type AllocationSlice struct {
	Label      string  `json:"label"`
	Percentage float64 `json:"percentage"`
	Amount     int64   `json:"amount"`
}

// BuildAllocationChart converts a recommendation's allocation into donut segments.
func BuildAllocationChart(rec *domain.Recommendation) []AllocationSlice {
	if rec == nil {
		return nil
	}
	out := make([]AllocationSlice, 0, len(rec.Allocation))
	for _, a := range rec.Allocation {
		out = append(out, AllocationSlice{
			Label:      a.AssetClass,
			Percentage: a.Percentage.InexactFloat64(),
			Amount:     a.Amount.Round(0).IntPart(),
		})
	}
	return out
}
