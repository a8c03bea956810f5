package wizard

import (
	"slices"
	"sort"
	"strings"

	"github.com/investease/sip-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// Limits applied to the mandatory details
const (
	MinAge = 18
	MaxAge = 100
)

// MinInvestmentAmount is the smallest accepted investment amount
var MinInvestmentAmount = decimal.NewFromInt(1000)

// Field names reported in FieldErrors
const (
	FieldAge                  = "age"
	FieldInvestmentAmount     = "investment_amount"
	FieldRiskPreference       = "risk_preference"
	FieldMonthlyIncome        = "monthly_income"
	FieldSavings              = "savings"
	FieldMonthlyExpenses      = "monthly_expenses"
	FieldTimeHorizon          = "time_horizon"
	FieldInvestmentExperience = "investment_experience"
	FieldFinancialGoal        = "financial_goal"
)

// FieldErrors maps a form field to the message shown next to it
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return "invalid details: " + strings.Join(parts, "; ")
}

// ValidateMandatory reports every failing field at once; nil means valid
func ValidateMandatory(d domain.MandatoryDetails) FieldErrors {
	errs := FieldErrors{}
	if d.Age < MinAge || d.Age > MaxAge {
		errs[FieldAge] = "Please enter a valid age between 18 and 100"
	}
	if d.InvestmentAmount.LessThan(MinInvestmentAmount) {
		errs[FieldInvestmentAmount] = "Minimum investment amount is ₹1,000"
	}
	if !d.RiskPreference.Valid() {
		errs[FieldRiskPreference] = "Please select your risk preference"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateOptional checks amounts are not negative and choices come from the offered lists
func ValidateOptional(o domain.OptionalDetails) FieldErrors {
	errs := FieldErrors{}
	amounts := []struct {
		field string
		value *decimal.Decimal
	}{
		{FieldMonthlyIncome, o.MonthlyIncome},
		{FieldSavings, o.Savings},
		{FieldMonthlyExpenses, o.MonthlyExpenses},
	}
	for _, a := range amounts {
		if a.value != nil && a.value.IsNegative() {
			errs[a.field] = "Amount cannot be negative"
		}
	}

	choices := []struct {
		field   string
		value   string
		options []string
	}{
		{FieldTimeHorizon, o.TimeHorizon, domain.TimeHorizonOptions},
		{FieldInvestmentExperience, o.InvestmentExperience, domain.InvestmentExperienceOptions},
		{FieldFinancialGoal, o.FinancialGoal, domain.FinancialGoalOptions},
	}
	for _, c := range choices {
		if c.value != "" && !slices.Contains(c.options, c.value) {
			errs[c.field] = "Please choose one of: " + strings.Join(c.options, ", ")
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
