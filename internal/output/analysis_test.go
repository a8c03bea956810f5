package output

import (
	"testing"

	"github.com/investease/sip-planner/internal/domain"
	"github.com/shopspring/decimal"
)

func makePlan(name string, recommended bool, invested, maturity int64) domain.PlanProjection {
	return domain.PlanProjection{
		Plan: domain.InvestmentPlan{Name: name, Recommended: recommended},
		Projection: domain.SIPResult{
			TotalInvested: decimal.NewFromInt(invested),
			MaturityValue: decimal.NewFromInt(maturity),
			TotalReturns:  decimal.NewFromInt(maturity - invested),
		},
	}
}

func TestAnalyzePlans_SelectsHighestMaturity(t *testing.T) {
	plans := []domain.PlanProjection{
		makePlan("Safe", false, 100000, 150000),
		makePlan("Balanced", true, 100000, 180000),
		makePlan("Aggressive", false, 100000, 250000),
	}
	h := AnalyzePlans(plans)
	if h.HighestPlan != "Aggressive" {
		t.Fatalf("expected Aggressive, got %s", h.HighestPlan)
	}
	if !h.HighestMaturity.Equal(decimal.NewFromInt(250000)) {
		t.Fatalf("unexpected highest maturity %s", h.HighestMaturity)
	}
	if !h.RecommendedFound || h.RecommendedPlan != "Balanced" {
		t.Fatalf("expected Balanced as recommended, got %+v", h)
	}
	if !h.SpreadToHighest.Equal(decimal.NewFromInt(70000)) {
		t.Fatalf("expected spread 70000, got %s", h.SpreadToHighest)
	}
	if !h.GainPercentage.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("expected 150%% gain, got %s", h.GainPercentage)
	}
}

func TestAnalyzePlans_TiesKeepCatalogOrder(t *testing.T) {
	h := AnalyzePlans([]domain.PlanProjection{
		makePlan("First", false, 1000, 2000),
		makePlan("Second", false, 1000, 2000),
	})
	if h.HighestPlan != "First" {
		t.Fatalf("expected first plan to win a tie, got %s", h.HighestPlan)
	}
	if h.RecommendedFound {
		t.Fatalf("no plan is flagged recommended")
	}
}

func TestAnalyzePlans_Empty(t *testing.T) {
	h := AnalyzePlans(nil)
	if h.HighestPlan != "" || h.RecommendedFound {
		t.Fatalf("expected zero highlight, got %+v", h)
	}
}

func TestAnalyzePlans_DefaultCatalogFigures(t *testing.T) {
	h := AnalyzePlans(buildTestReport(t).Plans)
	if got := FormatCurrency(h.SpreadToHighest); got != "₹176,299" {
		t.Fatalf("spread = %s", got)
	}
	if got := FormatPercentage(h.GainPercentage); got != "111.87%" {
		t.Fatalf("gain = %s", got)
	}
}
