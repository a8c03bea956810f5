package domain

import (
	"github.com/shopspring/decimal"
)

// MandatoryDetails are the answers required before a recommendation can be made
type MandatoryDetails struct {
	Age              int             `yaml:"age" json:"age"`
	InvestmentAmount decimal.Decimal `yaml:"investment_amount" json:"investment_amount"`
	RiskPreference   RiskTier        `yaml:"risk_preference" json:"risk_preference"`
}

// OptionalDetails refine the investor profile; every field may be left empty
type OptionalDetails struct {
	MonthlyIncome        *decimal.Decimal `yaml:"monthly_income,omitempty" json:"monthly_income,omitempty"`
	Savings              *decimal.Decimal `yaml:"savings,omitempty" json:"savings,omitempty"`
	MonthlyExpenses      *decimal.Decimal `yaml:"monthly_expenses,omitempty" json:"monthly_expenses,omitempty"`
	TimeHorizon          string           `yaml:"time_horizon,omitempty" json:"time_horizon,omitempty"`
	InvestmentExperience string           `yaml:"investment_experience,omitempty" json:"investment_experience,omitempty"`
	FinancialGoal        string           `yaml:"financial_goal,omitempty" json:"financial_goal,omitempty"`
}

// IsEmpty reports whether no optional answer was given
func (o *OptionalDetails) IsEmpty() bool {
	if o == nil {
		return true
	}
	return o.MonthlyIncome == nil && o.Savings == nil && o.MonthlyExpenses == nil &&
		o.TimeHorizon == "" && o.InvestmentExperience == "" && o.FinancialGoal == ""
}

// MonthlySurplus returns income minus expenses when both are known
func (o *OptionalDetails) MonthlySurplus() (decimal.Decimal, bool) {
	if o == nil || o.MonthlyIncome == nil || o.MonthlyExpenses == nil {
		return decimal.Zero, false
	}
	return o.MonthlyIncome.Sub(*o.MonthlyExpenses), true
}

// Option lists offered by the optional details step
var (
	TimeHorizonOptions          = []string{"1-3 years", "3-5 years", "5-10 years", "10+ years"}
	InvestmentExperienceOptions = []string{"Beginner", "Intermediate", "Advanced"}
	FinancialGoalOptions        = []string{
		"Retirement Planning",
		"Wealth Creation",
		"Child Education",
		"Home Purchase",
		"Emergency Fund",
		"Tax Saving",
	}
)
