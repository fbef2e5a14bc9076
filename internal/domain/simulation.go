package domain

import (
	"github.com/shopspring/decimal"
)

// PriceSimulationConfig controls a Monte Carlo run over commodity prices.
// Each simulated year draws a price shock for oil and gas and applies it to the
// scenario's unit prices.
type PriceSimulationConfig struct {
	NumSimulations int   `yaml:"num_simulations" json:"num_simulations"`
	Seed           int64 `yaml:"seed" json:"seed"` // zero picks a fresh seed

	// Standard deviation of the yearly price shock, in percent of the base price
	OilPriceVolatilityPercent decimal.Decimal `yaml:"oil_price_volatility_percent" json:"oil_price_volatility_percent"`
	GasPriceVolatilityPercent decimal.Decimal `yaml:"gas_price_volatility_percent" json:"gas_price_volatility_percent"`

	// UseHistorical samples year-over-year price changes from a loaded price history
	// instead of the volatility distributions
	UseHistorical bool `yaml:"use_historical" json:"use_historical"`
}

// SimulationOutcome is the result of one simulated hold period
type SimulationOutcome struct {
	TotalCashFlow           decimal.Decimal `json:"total_cash_flow"`
	TotalProfit             decimal.Decimal `json:"total_profit"`
	AnnualizedReturnPercent decimal.Decimal `json:"annualized_return_percent"`
	PaidBack                bool            `json:"paid_back"`
}

// PercentileRanges summarizes a distribution
type PercentileRanges struct {
	P10 decimal.Decimal `json:"p10"`
	P25 decimal.Decimal `json:"p25"`
	P50 decimal.Decimal `json:"p50"`
	P75 decimal.Decimal `json:"p75"`
	P90 decimal.Decimal `json:"p90"`
}

// PriceSimulationResult aggregates every simulated outcome for one scenario
type PriceSimulationResult struct {
	ScenarioName              string                `json:"scenario_name"`
	Config                    PriceSimulationConfig `json:"config"`
	NetInvestment             decimal.Decimal       `json:"net_investment"`
	PaybackProbabilityPercent decimal.Decimal       `json:"payback_probability_percent"`
	MeanProfit                decimal.Decimal       `json:"mean_profit"`
	ProfitPercentiles         PercentileRanges      `json:"profit_percentiles"`
	ReturnPercentiles         PercentileRanges      `json:"annualized_return_percentiles"`
	Outcomes                  []SimulationOutcome   `json:"-"`
}
