package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Configuration is the top-level scenario file
type Configuration struct {
	// DaysPerMonth is the production day-count convention (30 or 30.4).
	// Zero means unset; the engine then applies 30 and warns.
	DaysPerMonth decimal.Decimal `yaml:"days_per_month" json:"days_per_month"`
	Scenarios    []Scenario      `yaml:"scenarios" json:"scenarios"`
}

// Scenario is one full calculator configuration: tax shield, oil well, gas well and hold period
type Scenario struct {
	Name      string           `yaml:"name" json:"name"`
	TermYears int              `yaml:"term_years" json:"term_years"`
	TaxShield TaxShieldInput   `yaml:"tax_shield" json:"tax_shield"`
	Oil       WellRevenueInput `yaml:"oil" json:"oil"`
	Gas       WellRevenueInput `yaml:"gas" json:"gas"`

	// Growth is the optional fixed-rate note projection shown alongside the well economics
	Growth *GrowthInput `yaml:"growth,omitempty" json:"growth,omitempty"`
}

// FindScenario returns the scenario with the given name
func (c *Configuration) FindScenario(name string) (*Scenario, bool) {
	for i := range c.Scenarios {
		if c.Scenarios[i].Name == name {
			return &c.Scenarios[i], true
		}
	}
	return nil, false
}

// ScenarioReport holds every calculator result for one scenario
type ScenarioReport struct {
	Name            string                 `json:"name"`
	TaxShield       TaxShieldResult        `json:"tax_shield"`
	Oil             WellRevenueResult      `json:"oil"`
	Gas             WellRevenueResult      `json:"gas"`
	MonthlyCashFlow decimal.Decimal        `json:"monthly_cash_flow"`
	Returns         ReturnProjectionResult `json:"returns"`
	Growth          *GrowthResult          `json:"growth,omitempty"`
}

// Recommendation names the scenario with the best annualized return
type Recommendation struct {
	ScenarioName            string           `json:"scenario_name"`
	AnnualizedReturnPercent decimal.Decimal  `json:"annualized_return_percent"`
	PaybackMonths           *decimal.Decimal `json:"payback_months"`
	TotalProfit             decimal.Decimal  `json:"total_profit"`
}

// ScenarioComparison is the result of running every scenario in a configuration
type ScenarioComparison struct {
	GeneratedAt    time.Time        `json:"generated_at"`
	DaysPerMonth   decimal.Decimal  `json:"days_per_month"`
	Scenarios      []ScenarioReport `json:"scenarios"`
	Recommendation Recommendation   `json:"recommendation"`
	Assumptions    []string         `json:"assumptions"`
}

// SweepParameter selects the input to vary in a sensitivity sweep
type SweepParameter struct {
	Name     string          `yaml:"name" json:"name"`
	MinValue decimal.Decimal `yaml:"min_value" json:"min_value"`
	MaxValue decimal.Decimal `yaml:"max_value" json:"max_value"`
	Steps    int             `yaml:"steps" json:"steps"`
}

// SweepPoint is the return projection for one parameter value
type SweepPoint struct {
	Value                   decimal.Decimal  `json:"value"`
	MonthlyCashFlow         decimal.Decimal  `json:"monthly_cash_flow"`
	TotalProfit             decimal.Decimal  `json:"total_profit"`
	AnnualizedReturnPercent decimal.Decimal  `json:"annualized_return_percent"`
	PaybackMonths           *decimal.Decimal `json:"payback_months"`
}

// SensitivitySweep is a one-dimensional sweep over a scenario input
type SensitivitySweep struct {
	ScenarioName string         `json:"scenario_name"`
	Parameter    SweepParameter `json:"parameter"`
	Points       []SweepPoint   `json:"points"`
}
