package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Configuration is the top-level YAML configuration of the planner
type Configuration struct {
	Defaults CalculatorDefaults `yaml:"defaults" json:"defaults"`
	Limits   InputLimits        `yaml:"limits" json:"limits"`
	Storage  StorageConfig      `yaml:"storage" json:"storage"`
	Logging  LoggingConfig      `yaml:"logging" json:"logging"`
}

// CalculatorDefaults pre-fill the calculator form
type CalculatorDefaults struct {
	MonthlyContribution     decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	AnnualReturnRatePercent decimal.Decimal `yaml:"annual_return_rate_percent" json:"annual_return_rate_percent"`
	DurationYears           int             `yaml:"duration_years" json:"duration_years"`
	InflationRatePercent    decimal.Decimal `yaml:"inflation_rate_percent" json:"inflation_rate_percent"`
}

// Input returns the defaults as an SIPInput
func (d CalculatorDefaults) Input() SIPInput {
	return SIPInput{
		MonthlyContribution:     d.MonthlyContribution,
		AnnualReturnRatePercent: d.AnnualReturnRatePercent,
		DurationYears:           d.DurationYears,
	}
}

// InputLimits are the presentation-level bounds applied by the calculator form.
// The engine itself only requires positive inputs.
type InputLimits struct {
	MinMonthlyContribution decimal.Decimal `yaml:"min_monthly_contribution" json:"min_monthly_contribution"`
	MaxAnnualReturnPercent decimal.Decimal `yaml:"max_annual_return_percent" json:"max_annual_return_percent"`
	MaxDurationYears       int             `yaml:"max_duration_years" json:"max_duration_years"`
}

// StorageConfig locates the external collaborators
type StorageConfig struct {
	HistoryDBPath string        `yaml:"history_db_path" json:"history_db_path"`
	RedisAddr     string        `yaml:"redis_addr,omitempty" json:"redis_addr,omitempty"`
	SessionTTL    time.Duration `yaml:"session_ttl" json:"session_ttl"`
}

// LoggingConfig controls the CLI logger
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
}

// Check reports the first field of in that falls outside the limits
func (l InputLimits) Check(in SIPInput) error {
	if in.MonthlyContribution.LessThan(l.MinMonthlyContribution) {
		return fmt.Errorf("monthly contribution %s is below the minimum %s", in.MonthlyContribution, l.MinMonthlyContribution)
	}
	if in.AnnualReturnRatePercent.IsNegative() || in.AnnualReturnRatePercent.GreaterThan(l.MaxAnnualReturnPercent) {
		return fmt.Errorf("annual return rate %s%% must be between 0 and %s%%", in.AnnualReturnRatePercent, l.MaxAnnualReturnPercent)
	}
	if in.DurationYears < 1 || in.DurationYears > l.MaxDurationYears {
		return fmt.Errorf("duration %d must be between 1 and %d years", in.DurationYears, l.MaxDurationYears)
	}
	return nil
}
