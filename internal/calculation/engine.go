package calculation

import (
	"context"
	"fmt"

	"github.com/investease/sip-planner/internal/domain"
	"github.com/investease/sip-planner/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// Calculation kinds passed to a Recorder
const (
	KindSIPCalculation = "sip_calculation"
	KindRecommendation = "recommendation"
	KindPlanComparison = "plan_comparison"
)

// Recorder receives completed calculations for the history log.
// Implementations must not block and must swallow their own failures.
type Recorder interface {
	Record(ctx context.Context, kind, sessionID string, input, result any)
}

// NopRecorder discards every record.
type NopRecorder struct{}

func (NopRecorder) Record(context.Context, string, string, any, any) {}

// CalculationRequest is a single calculator submission
type CalculationRequest struct {
	SessionID            string
	Input                domain.SIPInput
	InflationRatePercent *decimal.Decimal
}

// CalculationEngine orchestrates projections, recommendations and plan comparison
type CalculationEngine struct {
	Catalog  *Catalog
	Recorder Recorder
	Debug    bool // Log the full series at debug level
	Logger   Logger
}

// NewCalculationEngine creates an engine over the built-in catalog
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithCatalog(DefaultCatalog())
}

// NewCalculationEngineWithCatalog creates an engine over a custom catalog
func NewCalculationEngineWithCatalog(catalog *Catalog) *CalculationEngine {
	return &CalculationEngine{
		Catalog:  catalog,
		Recorder: NopRecorder{},
		Logger:   NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// SetRecorder sets the history recorder. If nil is provided, records are discarded.
func (ce *CalculationEngine) SetRecorder(r Recorder) {
	if r == nil {
		ce.Recorder = NopRecorder{}
		return
	}
	ce.Recorder = r
}

// RunCalculation projects a calculator submission and hands the result to the recorder
func (ce *CalculationEngine) RunCalculation(ctx context.Context, req CalculationRequest) (*domain.Report, error) {
	result, err := Summarize(req.Input)
	if err != nil {
		ce.Logger.Warnf("Rejected SIP input: %v", err)
		return nil, err
	}

	now := nowFunc()
	first := dateutil.FirstContributionDate(now)
	report := &domain.Report{
		GeneratedAt:       now,
		Input:             req.Input,
		Result:            result,
		FirstContribution: first,
		MaturityDate:      dateutil.MaturityDate(first, req.Input.TotalMonths()),
	}

	if req.InflationRatePercent != nil {
		realValue, err := InflationAdjustedValue(result.MaturityValue, *req.InflationRatePercent, req.Input.DurationYears)
		if err != nil {
			return nil, err
		}
		rate := *req.InflationRatePercent
		report.InflationRatePercent = &rate
		report.RealMaturityValue = &realValue
	}

	ce.Logger.Infof("SIP projection: monthly=%s rate=%s%% years=%d maturity=%s invested=%s",
		req.Input.MonthlyContribution, req.Input.AnnualReturnRatePercent, req.Input.DurationYears,
		result.MaturityValue.StringFixed(2), result.TotalInvested.StringFixed(2))
	if ce.Debug {
		for _, p := range result.Series {
			ce.Logger.Debugf("%-8s invested=%s value=%s", p.Label, p.CumulativeInvested.StringFixed(2), p.CumulativeValue.StringFixed(2))
		}
	}

	ce.Recorder.Record(ctx, KindSIPCalculation, req.SessionID, req.Input, summaryOf(result))
	return report, nil
}

// RunRecommendation builds the recommendation for a completed set of mandatory details
func (ce *CalculationEngine) RunRecommendation(ctx context.Context, sessionID string, details domain.MandatoryDetails) (*domain.Recommendation, error) {
	rec, err := ce.Catalog.Recommend(details)
	if err != nil {
		return nil, err
	}
	ce.Logger.Infof("Recommendation: risk=%s amount=%s band=%s", rec.Tier, rec.InvestmentAmount, rec.ExpectedReturn)
	ce.Recorder.Record(ctx, KindRecommendation, sessionID, details, rec)
	return rec, nil
}

// RunPlanComparison projects every catalog plan for the given contribution and horizon
func (ce *CalculationEngine) RunPlanComparison(ctx context.Context, sessionID string, base domain.SIPInput) ([]domain.PlanProjection, error) {
	if err := ValidateInput(base); err != nil {
		return nil, err
	}
	plans, err := ce.Catalog.ComparePlans(ctx, base)
	if err != nil {
		return nil, fmt.Errorf("compare plans: %w", err)
	}
	ce.Logger.Infof("Compared %d plans over %d years", len(plans), base.DurationYears)
	ce.Recorder.Record(ctx, KindPlanComparison, sessionID, base, plans)
	return plans, nil
}

// resultSummary is the compact form of an SIPResult stored in history
type resultSummary struct {
	MaturityValue decimal.Decimal `json:"maturity_value"`
	TotalInvested decimal.Decimal `json:"total_invested"`
	TotalReturns  decimal.Decimal `json:"total_returns"`
}

func summaryOf(r domain.SIPResult) resultSummary {
	return resultSummary{
		MaturityValue: r.MaturityValue.Round(2),
		TotalInvested: r.TotalInvested.Round(2),
		TotalReturns:  r.TotalReturns.Round(2),
	}
}
