package calculation

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/wellcalc/investment-calculator/internal/domain"
)

// MaxSimulations bounds a single price simulation run
const MaxSimulations = 100000

// maxConcurrentSimulations limits the simulation workers
const maxConcurrentSimulations = 10

// ErrInvalidSimulation is returned for simulation settings the engine cannot run
var ErrInvalidSimulation = errors.New("invalid price simulation")

// SimulatePrices runs a Monte Carlo simulation of a scenario's hold period under
// uncertain commodity prices. Year one uses the scenario's unit prices; each later
// year's price is the previous year's times a shock drawn either from a normal
// distribution with the configured volatility or, with UseHistorical, from the
// year-over-year changes in history. Simulation i uses seed Seed+i, so results do
// not depend on scheduling.
func (ce *CalculationEngine) SimulatePrices(ctx context.Context, daysPerMonth decimal.Decimal, scenario *domain.Scenario, cfg domain.PriceSimulationConfig, history *PriceHistory) (*domain.PriceSimulationResult, error) {
	if cfg.NumSimulations < 1 || cfg.NumSimulations > MaxSimulations {
		return nil, fmt.Errorf("%w: simulations must be between 1 and %d, got %d", ErrInvalidSimulation, MaxSimulations, cfg.NumSimulations)
	}
	if cfg.OilPriceVolatilityPercent.IsNegative() || cfg.GasPriceVolatilityPercent.IsNegative() {
		return nil, fmt.Errorf("%w: volatility cannot be negative", ErrInvalidSimulation)
	}
	var changes []PriceChange
	if cfg.UseHistorical {
		if history != nil {
			changes = history.Changes()
		}
		if len(changes) == 0 {
			return nil, fmt.Errorf("%w: historical sampling needs a price history with consecutive years", ErrInvalidSimulation)
		}
	}
	if cfg.Seed == 0 {
		cfg.Seed = seedFunc()
	}

	netInvestment := ProjectTaxShield(scenario.TaxShield).NetInvestment
	outcomes := make([]domain.SimulationOutcome, cfg.NumSimulations)

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, maxConcurrentSimulations)
	for i := 0; i < cfg.NumSimulations; i++ {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, fmt.Errorf("price simulation %s: %w", scenario.Name, err)
		}
		semaphore <- struct{}{}
		wg.Add(1)
		go func(simIndex int) {
			defer wg.Done()
			defer func() { <-semaphore }()

			rng := rand.New(rand.NewSource(cfg.Seed + int64(simIndex)))
			var shock priceShock
			if cfg.UseHistorical {
				shock = historicalShock(rng, changes)
			} else {
				shock = normalShock(rng, cfg)
			}
			outcomes[simIndex] = simulateHoldPeriod(daysPerMonth, scenario, netInvestment, shock)
		}(i)
	}
	wg.Wait()

	result := &domain.PriceSimulationResult{
		ScenarioName:              scenario.Name,
		Config:                    cfg,
		NetInvestment:             netInvestment,
		PaybackProbabilityPercent: paybackProbability(outcomes),
		MeanProfit:                meanProfit(outcomes),
		ProfitPercentiles: percentileRanges(outcomes, func(o domain.SimulationOutcome) decimal.Decimal {
			return o.TotalProfit
		}),
		ReturnPercentiles: percentileRanges(outcomes, func(o domain.SimulationOutcome) decimal.Decimal {
			return o.AnnualizedReturnPercent
		}),
		Outcomes: outcomes,
	}
	ce.Logger.Debugf("simulated %d price paths for scenario %s (seed %d, historical %t)",
		cfg.NumSimulations, scenario.Name, cfg.Seed, cfg.UseHistorical)
	return result, nil
}

// priceShock returns the oil and gas multipliers for the next simulated year
type priceShock func() (oil, gas decimal.Decimal)

func normalShock(rng *rand.Rand, cfg domain.PriceSimulationConfig) priceShock {
	oilVol := cfg.OilPriceVolatilityPercent.Div(decimalHundred)
	gasVol := cfg.GasPriceVolatilityPercent.Div(decimalHundred)
	return func() (decimal.Decimal, decimal.Decimal) {
		oil := decimal.NewFromInt(1).Add(decimal.NewFromFloat(rng.NormFloat64()).Mul(oilVol))
		gas := decimal.NewFromInt(1).Add(decimal.NewFromFloat(rng.NormFloat64()).Mul(gasVol))
		return decimal.Max(oil, decimal.Zero), decimal.Max(gas, decimal.Zero)
	}
}

// historicalShock samples a whole historical year so oil and gas move together
func historicalShock(rng *rand.Rand, changes []PriceChange) priceShock {
	return func() (decimal.Decimal, decimal.Decimal) {
		c := changes[rng.Intn(len(changes))]
		return c.Oil, c.Gas
	}
}

// simulateHoldPeriod walks prices year by year and projects the return on the
// accumulated cash flow
func simulateHoldPeriod(daysPerMonth decimal.Decimal, scenario *domain.Scenario, netInvestment decimal.Decimal, shock priceShock) domain.SimulationOutcome {
	oil, gas := scenario.Oil, scenario.Gas
	total := decimal.Zero
	for year := 1; year <= scenario.TermYears; year++ {
		if year > 1 {
			oilShock, gasShock := shock()
			oil.UnitPrice = oil.UnitPrice.Mul(oilShock)
			gas.UnitPrice = gas.UnitPrice.Mul(gasShock)
		}
		monthly := ProjectWellRevenue(oil, daysPerMonth).NetMonthlyRevenue.
			Add(ProjectWellRevenue(gas, daysPerMonth).NetMonthlyRevenue)
		total = total.Add(monthly.Mul(decimalTwelve))
	}

	average := decimal.Zero
	if months := scenario.TermYears * 12; months > 0 {
		average = total.Div(decimal.NewFromInt(int64(months)))
	}
	projection := ProjectReturn(netInvestment, average, scenario.TermYears)
	profit := total.Sub(netInvestment)

	return domain.SimulationOutcome{
		TotalCashFlow:           total,
		TotalProfit:             profit,
		AnnualizedReturnPercent: projection.AnnualizedReturnPercent,
		PaidBack:                total.IsPositive() && !profit.IsNegative(),
	}
}

func paybackProbability(outcomes []domain.SimulationOutcome) decimal.Decimal {
	paid := 0
	for _, o := range outcomes {
		if o.PaidBack {
			paid++
		}
	}
	return decimal.NewFromInt(int64(paid)).Div(decimal.NewFromInt(int64(len(outcomes)))).Mul(decimalHundred)
}

func meanProfit(outcomes []domain.SimulationOutcome) decimal.Decimal {
	sum := decimal.Zero
	for _, o := range outcomes {
		sum = sum.Add(o.TotalProfit)
	}
	return sum.Div(decimal.NewFromInt(int64(len(outcomes))))
}

func percentileRanges(outcomes []domain.SimulationOutcome, value func(domain.SimulationOutcome) decimal.Decimal) domain.PercentileRanges {
	values := make([]decimal.Decimal, len(outcomes))
	for i, o := range outcomes {
		values[i] = value(o)
	}
	sort.Slice(values, func(i, j int) bool { return values[i].LessThan(values[j]) })

	n := len(values)
	return domain.PercentileRanges{
		P10: values[n/10],
		P25: values[n/4],
		P50: values[n/2],
		P75: values[3*n/4],
		P90: values[9*n/10],
	}
}
