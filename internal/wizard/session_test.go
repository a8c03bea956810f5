package wizard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/investease/sip-planner/internal/calculation"
	"github.com/investease/sip-planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMandatory() domain.MandatoryDetails {
	return domain.MandatoryDetails{
		Age:              35,
		InvestmentAmount: decimal.NewFromInt(10000),
		RiskPreference:   domain.RiskMedium,
	}
}

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestNewSession(t *testing.T) {
	now := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
	nowFunc = func() time.Time { return now }
	defer func() { nowFunc = time.Now }()

	s := NewSession()
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, StepMandatory, s.Step)
	assert.Nil(t, s.Mandatory)
	assert.Equal(t, now, s.CreatedAt)
	assert.NotEqual(t, s.ID, NewSession().ID)
}

func TestSubmitMandatory(t *testing.T) {
	s := NewSession()
	next, err := SubmitMandatory(s, validMandatory())
	require.NoError(t, err)

	assert.Equal(t, StepOptional, next.Step)
	require.NotNil(t, next.Mandatory)
	assert.Equal(t, 35, next.Mandatory.Age)
	assert.Nil(t, s.Mandatory, "input session is not modified")
}

func TestValidateMandatory(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.MandatoryDetails)
		fields []string
	}{
		{"valid", func(*domain.MandatoryDetails) {}, nil},
		{"age 18 accepted", func(d *domain.MandatoryDetails) { d.Age = 18 }, nil},
		{"age 100 accepted", func(d *domain.MandatoryDetails) { d.Age = 100 }, nil},
		{"amount exactly 1000 accepted", func(d *domain.MandatoryDetails) { d.InvestmentAmount = decimal.NewFromInt(1000) }, nil},
		{"too young", func(d *domain.MandatoryDetails) { d.Age = 17 }, []string{FieldAge}},
		{"too old", func(d *domain.MandatoryDetails) { d.Age = 101 }, []string{FieldAge}},
		{"amount below minimum", func(d *domain.MandatoryDetails) { d.InvestmentAmount = decimal.NewFromInt(999) }, []string{FieldInvestmentAmount}},
		{"risk missing", func(d *domain.MandatoryDetails) { d.RiskPreference = domain.RiskUnknown }, []string{FieldRiskPreference}},
		{
			name:   "everything missing",
			mutate: func(d *domain.MandatoryDetails) { *d = domain.MandatoryDetails{} },
			fields: []string{FieldAge, FieldInvestmentAmount, FieldRiskPreference},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validMandatory()
			tt.mutate(&d)
			errs := ValidateMandatory(d)
			if tt.fields == nil {
				assert.Nil(t, errs)
				return
			}
			require.NotNil(t, errs)
			assert.Len(t, errs, len(tt.fields))
			for _, f := range tt.fields {
				assert.Contains(t, errs, f)
			}
		})
	}
}

func TestSubmitMandatory_InvalidKeepsSession(t *testing.T) {
	s := NewSession()
	next, err := SubmitMandatory(s, domain.MandatoryDetails{Age: 12})

	var fe FieldErrors
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "Please enter a valid age between 18 and 100", fe[FieldAge])
	assert.Equal(t, "Minimum investment amount is ₹1,000", fe[FieldInvestmentAmount])
	assert.Equal(t, s, next)
	assert.Equal(t, "invalid details: age: Please enter a valid age between 18 and 100; "+
		"investment_amount: Minimum investment amount is ₹1,000; "+
		"risk_preference: Please select your risk preference", err.Error())
}

func TestSubmitOptional(t *testing.T) {
	s, err := SubmitMandatory(NewSession(), validMandatory())
	require.NoError(t, err)

	opt := domain.OptionalDetails{
		MonthlyIncome:        dec(80000),
		MonthlyExpenses:      dec(50000),
		TimeHorizon:          "5-10 years",
		InvestmentExperience: "Beginner",
		FinancialGoal:        "Wealth Creation",
	}
	next, err := SubmitOptional(s, opt)
	require.NoError(t, err)
	assert.Equal(t, StepRecommendation, next.Step)
	require.NotNil(t, next.Optional)
	surplus, ok := next.Optional.MonthlySurplus()
	require.True(t, ok)
	assert.True(t, surplus.Equal(decimal.NewFromInt(30000)))
}

func TestSubmitOptional_EmptyIsSkip(t *testing.T) {
	s, _ := SubmitMandatory(NewSession(), validMandatory())
	next, err := SubmitOptional(s, domain.OptionalDetails{})
	require.NoError(t, err)
	assert.Nil(t, next.Optional)
	assert.Equal(t, StepRecommendation, next.Step)
}

func TestValidateOptional(t *testing.T) {
	errs := ValidateOptional(domain.OptionalDetails{
		Savings:              dec(-1),
		TimeHorizon:          "20 years",
		InvestmentExperience: "Expert",
		FinancialGoal:        "Tax Saving",
	})
	require.NotNil(t, errs)
	assert.Contains(t, errs, FieldSavings)
	assert.Contains(t, errs, FieldTimeHorizon)
	assert.Contains(t, errs, FieldInvestmentExperience)
	assert.NotContains(t, errs, FieldFinancialGoal)

	assert.Nil(t, ValidateOptional(domain.OptionalDetails{Savings: dec(0)}))
}

func TestStepsRequireMandatory(t *testing.T) {
	s := NewSession()

	_, err := SubmitOptional(s, domain.OptionalDetails{})
	assert.ErrorIs(t, err, ErrMandatoryMissing)

	_, err = SkipOptional(s)
	assert.ErrorIs(t, err, ErrMandatoryMissing)

	_, err = Advance(s)
	assert.ErrorIs(t, err, ErrMandatoryMissing)

	_, err = Recommendation(context.Background(), calculation.NewCalculationEngine(), s)
	assert.ErrorIs(t, err, ErrMandatoryMissing)
}

func TestFullFlow(t *testing.T) {
	s := NewSession()
	s, err := SubmitMandatory(s, validMandatory())
	require.NoError(t, err)
	s, err = SkipOptional(s)
	require.NoError(t, err)
	assert.Equal(t, StepRecommendation, s.Step)

	rec, err := Recommendation(context.Background(), calculation.NewCalculationEngine(), s)
	require.NoError(t, err)
	assert.Equal(t, domain.RiskMedium, rec.Tier)

	s, err = Advance(s)
	require.NoError(t, err)
	assert.Equal(t, StepCompare, s.Step)

	_, err = Advance(s)
	assert.ErrorIs(t, err, ErrNoNextStep)

	s = Back(s)
	assert.Equal(t, StepRecommendation, s.Step)
	s = Back(Back(Back(s)))
	assert.Equal(t, StepMandatory, s.Step)
	assert.NotNil(t, s.Mandatory, "answers survive going back")
}

func TestAdvance_UnknownStep(t *testing.T) {
	_, err := Advance(Session{Step: "bogus"})
	assert.Error(t, err)
}
