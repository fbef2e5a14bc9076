package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/wellcalc/investment-calculator/internal/calculation"
	"github.com/wellcalc/investment-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

var hundred = decimal.NewFromInt(100)

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// SaveConfiguration writes config as YAML to filename
func (ip *InputParser) SaveConfiguration(config *domain.Configuration, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// ValidateConfiguration validates the loaded configuration.
// A zero days_per_month is accepted and left for the engine to default.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.DaysPerMonth.IsNegative() {
		return fmt.Errorf("days per month cannot be negative")
	}
	if config.DaysPerMonth.GreaterThan(decimal.NewFromInt(31)) {
		return fmt.Errorf("days per month cannot exceed 31")
	}

	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		if err := ip.validateScenario(&scenario); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("scenario %d validation failed: duplicate scenario name %q", i, scenario.Name)
		}
		seen[scenario.Name] = true
	}

	return nil
}

// validateScenario validates a single scenario
func (ip *InputParser) validateScenario(scenario *domain.Scenario) error {
	if scenario.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if scenario.TermYears <= 0 || scenario.TermYears > calculation.MaxTermYears {
		return fmt.Errorf("term years must be between 1 and %d", calculation.MaxTermYears)
	}

	if scenario.TaxShield.Investment.IsNegative() {
		return fmt.Errorf("tax shield investment cannot be negative")
	}
	if !isPercent(scenario.TaxShield.TaxRatePercent) {
		return fmt.Errorf("tax rate percent must be between 0 and 100")
	}

	if err := ip.validateWell(&scenario.Oil); err != nil {
		return fmt.Errorf("oil well validation failed: %w", err)
	}
	if err := ip.validateWell(&scenario.Gas); err != nil {
		return fmt.Errorf("gas well validation failed: %w", err)
	}

	if scenario.Growth != nil {
		if err := ip.validateGrowth(scenario.Growth); err != nil {
			return fmt.Errorf("growth validation failed: %w", err)
		}
	}

	return nil
}

// validateWell validates one well's production inputs
func (ip *InputParser) validateWell(well *domain.WellRevenueInput) error {
	if !isPercent(well.WorkingInterestPercent) {
		return fmt.Errorf("working interest percent must be between 0 and 100")
	}
	if well.DailyRate.IsNegative() {
		return fmt.Errorf("daily rate cannot be negative")
	}
	if well.UnitPrice.IsNegative() {
		return fmt.Errorf("unit price cannot be negative")
	}
	if well.MonthlyOpexPerWell.IsNegative() {
		return fmt.Errorf("monthly opex per well cannot be negative")
	}
	if !isPercent(well.SeveranceTaxPercent) {
		return fmt.Errorf("severance tax percent must be between 0 and 100")
	}
	return nil
}

// validateGrowth checks the note terms against the offered rates and terms.
// Principal is not checked; the engine clamps it.
func (ip *InputParser) validateGrowth(growth *domain.GrowthInput) error {
	if !calculation.IsAllowedRate(growth.AnnualRatePercent) {
		return fmt.Errorf("annual rate percent %s is not offered (allowed: %v)",
			growth.AnnualRatePercent.String(), calculation.AllowedRatePercents)
	}
	if !calculation.IsAllowedTerm(growth.TermYears) {
		return fmt.Errorf("term years %d is not offered (allowed: %v)",
			growth.TermYears, calculation.AllowedTermYears)
	}
	return nil
}

func isPercent(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(hundred)
}

// CreateExampleConfiguration creates an example configuration: the calculator
// page defaults plus a higher price deck held for ten years
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	base := domain.Scenario{
		Name:      "base",
		TermYears: 5,
		TaxShield: domain.TaxShieldInput{
			Investment:     decimal.NewFromInt(100000),
			TaxRatePercent: decimal.NewFromInt(37),
		},
		Oil: domain.WellRevenueInput{
			WorkingInterestPercent: decimal.NewFromInt(1),
			DailyRate:              decimal.NewFromInt(50),
			UnitPrice:              decimal.NewFromInt(80),
			MonthlyOpexPerWell:     decimal.NewFromInt(8000),
			SeveranceTaxPercent:    decimal.RequireFromString("4.6"),
		},
		Gas: domain.WellRevenueInput{
			WorkingInterestPercent: decimal.NewFromInt(1),
			DailyRate:              decimal.NewFromInt(300),
			UnitPrice:              decimal.RequireFromString("3.5"),
			MonthlyOpexPerWell:     decimal.NewFromInt(8000),
			SeveranceTaxPercent:    decimal.RequireFromString("4.6"),
		},
		Growth: &domain.GrowthInput{
			Principal:         decimal.NewFromInt(25000),
			AnnualRatePercent: decimal.NewFromInt(15),
			TermYears:         20,
			Reinvest:          true,
		},
	}

	highPrice := base
	highPrice.Name = "high-price"
	highPrice.TermYears = 10
	highPrice.Oil.UnitPrice = decimal.NewFromInt(95)
	highPrice.Gas.UnitPrice = decimal.RequireFromString("4.25")
	highPrice.Growth = &domain.GrowthInput{
		Principal:         decimal.NewFromInt(100000),
		AnnualRatePercent: decimal.NewFromInt(12),
		TermYears:         10,
		Reinvest:          false,
	}

	return &domain.Configuration{
		DaysPerMonth: calculation.DaysPerMonthFlat,
		Scenarios:    []domain.Scenario{base, highPrice},
	}
}
