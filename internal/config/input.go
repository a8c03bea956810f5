package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/investease/sip-planner/internal/calculation"
	"github.com/investease/sip-planner/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the file configuration
const (
	EnvHistoryDB  = "SIP_HISTORY_DB"
	EnvRedisAddr  = "SIP_REDIS_ADDR"
	EnvLogLevel   = "SIP_LOG_LEVEL"
	EnvSessionTTL = "SIP_SESSION_TTL"
)

// Hard bounds for the presentation limits
var (
	minMonthlyContributionFloor = decimal.NewFromInt(1)
	maxAnnualReturnCeiling      = decimal.NewFromInt(100)
	maxDurationCeiling          = calculation.MaxDurationYears
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file. Keys missing from the file
// keep the values of CreateExampleConfiguration.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	config := ip.CreateExampleConfiguration()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateLimits(&config.Limits); err != nil {
		return fmt.Errorf("limits validation failed: %w", err)
	}
	if err := ip.validateDefaults(&config.Defaults, &config.Limits); err != nil {
		return fmt.Errorf("defaults validation failed: %w", err)
	}
	if err := ip.validateStorage(&config.Storage); err != nil {
		return fmt.Errorf("storage validation failed: %w", err)
	}
	if !slices.Contains(validLogLevels, strings.ToLower(config.Logging.Level)) {
		return fmt.Errorf("invalid log level %q: must be one of %v", config.Logging.Level, validLogLevels)
	}
	return nil
}

func (ip *InputParser) validateLimits(limits *domain.InputLimits) error {
	if limits.MinMonthlyContribution.LessThan(minMonthlyContributionFloor) {
		return fmt.Errorf("minimum monthly contribution must be at least %s", minMonthlyContributionFloor)
	}
	if !limits.MaxAnnualReturnPercent.IsPositive() || limits.MaxAnnualReturnPercent.GreaterThan(maxAnnualReturnCeiling) {
		return fmt.Errorf("maximum annual return must be between 0 and %s percent", maxAnnualReturnCeiling)
	}
	if limits.MaxDurationYears < 1 || limits.MaxDurationYears > maxDurationCeiling {
		return fmt.Errorf("maximum duration must be between 1 and %d years", maxDurationCeiling)
	}
	return nil
}

func (ip *InputParser) validateDefaults(defaults *domain.CalculatorDefaults, limits *domain.InputLimits) error {
	if err := limits.Check(defaults.Input()); err != nil {
		return err
	}
	if defaults.InflationRatePercent.IsNegative() {
		return fmt.Errorf("inflation rate cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateStorage(storage *domain.StorageConfig) error {
	if strings.TrimSpace(storage.HistoryDBPath) == "" {
		return fmt.Errorf("history database path is required")
	}
	if storage.SessionTTL <= 0 {
		return fmt.Errorf("session TTL must be positive")
	}
	return nil
}

// ApplyEnvironment overrides storage and logging settings from SIP_* variables
// and re-validates the result. Unset variables leave the file values alone.
func (ip *InputParser) ApplyEnvironment(config *domain.Configuration) error {
	if v := os.Getenv(EnvHistoryDB); v != "" {
		config.Storage.HistoryDBPath = v
	}
	if v := os.Getenv(EnvRedisAddr); v != "" {
		config.Storage.RedisAddr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		config.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv(EnvSessionTTL); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvSessionTTL, v, err)
		}
		config.Storage.SessionTTL = ttl
	}
	return ip.ValidateConfiguration(config)
}

// CreateExampleConfiguration returns the built-in configuration: 5000 a month
// at 12% for 10 years, with the calculator form's usual limits.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Defaults: domain.CalculatorDefaults{
			MonthlyContribution:     decimal.NewFromInt(5000),
			AnnualReturnRatePercent: decimal.NewFromInt(12),
			DurationYears:           10,
			InflationRatePercent:    decimal.NewFromInt(6),
		},
		Limits: domain.InputLimits{
			MinMonthlyContribution: decimal.NewFromInt(500),
			MaxAnnualReturnPercent: decimal.NewFromInt(30),
			MaxDurationYears:       50,
		},
		Storage: domain.StorageConfig{
			HistoryDBPath: "./data/history.db",
			SessionTTL:    24 * time.Hour,
		},
		Logging: domain.LoggingConfig{
			Level: "info",
		},
	}
}
