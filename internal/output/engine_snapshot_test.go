package output

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/investease/sip-planner/internal/calculation"
	"github.com/investease/sip-planner/internal/config"
)

// TestEngineSnapshot produces a deterministic snapshot of core projection metrics.
func TestEngineSnapshot(t *testing.T) {
	calculation.SetNowFunc(func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) })
	t.Cleanup(func() { calculation.SetNowFunc(time.Now) })

	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile("../../example_config.yaml")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	eng := calculation.NewCalculationEngine()
	inflation := cfg.Defaults.InflationRatePercent
	report, err := eng.RunCalculation(context.Background(), calculation.CalculationRequest{
		Input:                cfg.Defaults.Input(),
		InflationRatePercent: &inflation,
	})
	if err != nil {
		t.Fatalf("run calculation: %v", err)
	}
	plans, err := eng.RunPlanComparison(context.Background(), "", cfg.Defaults.Input())
	if err != nil {
		t.Fatalf("run plan comparison: %v", err)
	}

	// Trim to stable summary fields only
	type plan struct {
		Name     string `json:"name"`
		Rate     string `json:"rate"`
		Maturity string `json:"maturity_value"`
	}
	var out struct {
		Maturity  string   `json:"maturity_value"`
		Invested  string   `json:"total_invested"`
		Returns   string   `json:"total_returns"`
		RealValue string   `json:"real_maturity_value"`
		Series    []string `json:"series"`
		Plans     []plan   `json:"plans"`
	}
	out.Maturity = report.Result.MaturityValue.StringFixed(2)
	out.Invested = report.Result.TotalInvested.StringFixed(2)
	out.Returns = report.Result.TotalReturns.StringFixed(2)
	out.RealValue = report.RealMaturityValue.StringFixed(2)
	for _, p := range report.Result.Series {
		out.Series = append(out.Series, p.CumulativeValue.StringFixed(2))
	}
	for _, p := range plans {
		out.Plans = append(out.Plans, plan{
			Name:     p.Plan.Name,
			Rate:     p.RatePct.String(),
			Maturity: p.Projection.MaturityValue.StringFixed(2),
		})
	}
	data, _ := json.MarshalIndent(out, "", "  ")

	goldenPath := filepath.Join("testdata", "engine_snapshot.golden.json")
	update := os.Getenv("UPDATE_GOLDEN") == "1"
	if update {
		if err := os.WriteFile(goldenPath, data, 0644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
	}
	golden, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	if string(golden) != string(data) {
		t.Fatalf("snapshot mismatch. Run with UPDATE_GOLDEN=1 to update.\nGot:\n%s\nWant:\n%s", string(data), string(golden))
	}
}
