package calculation

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/wellcalc/investment-calculator/internal/domain"
)

// ErrUnknownParameter is returned for sweep parameters the engine cannot vary
var ErrUnknownParameter = errors.New("unknown sweep parameter")

// sweepSetters apply a parameter value to a copy of a scenario
var sweepSetters = map[string]func(*domain.Scenario, decimal.Decimal){
	"oil_price":      func(s *domain.Scenario, v decimal.Decimal) { s.Oil.UnitPrice = v },
	"gas_price":      func(s *domain.Scenario, v decimal.Decimal) { s.Gas.UnitPrice = v },
	"oil_daily_rate": func(s *domain.Scenario, v decimal.Decimal) { s.Oil.DailyRate = v },
	"gas_daily_rate": func(s *domain.Scenario, v decimal.Decimal) { s.Gas.DailyRate = v },
	"tax_rate":       func(s *domain.Scenario, v decimal.Decimal) { s.TaxShield.TaxRatePercent = v },
	"investment":     func(s *domain.Scenario, v decimal.Decimal) { s.TaxShield.Investment = v },
	"term_years":     func(s *domain.Scenario, v decimal.Decimal) { s.TermYears = int(v.IntPart()) },
}

// SweepParameterNames returns the parameters Sweep accepts
func SweepParameterNames() []string {
	names := make([]string, 0, len(sweepSetters))
	for n := range sweepSetters {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Sweep re-runs a scenario across evenly spaced values of one input and records the
// return projection at each step. The scenario itself is not modified.
func (ce *CalculationEngine) Sweep(ctx context.Context, daysPerMonth decimal.Decimal, scenario *domain.Scenario, param domain.SweepParameter) (*domain.SensitivitySweep, error) {
	set, ok := sweepSetters[param.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParameter, param.Name)
	}
	if param.Steps < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 steps, got %d", param.Steps)
	}
	if param.MinValue.GreaterThan(param.MaxValue) {
		return nil, fmt.Errorf("sweep min %s is greater than max %s", param.MinValue, param.MaxValue)
	}

	if param.Name == "term_years" && (param.MinValue.IsNegative() || param.MaxValue.GreaterThan(decimal.NewFromInt(MaxTermYears))) {
		return nil, fmt.Errorf("term_years sweep must stay within 0 and %d, got %s to %s", MaxTermYears, param.MinValue, param.MaxValue)
	}

	step := param.MaxValue.Sub(param.MinValue).Div(decimal.NewFromInt(int64(param.Steps - 1)))
	sweep := &domain.SensitivitySweep{
		ScenarioName: scenario.Name,
		Parameter:    param,
		Points:       make([]domain.SweepPoint, 0, param.Steps),
	}
	for i := 0; i < param.Steps; i++ {
		value := param.MinValue.Add(step.Mul(decimal.NewFromInt(int64(i))))
		if i == param.Steps-1 {
			value = param.MaxValue
		}

		variant := *scenario
		variant.Growth = nil
		set(&variant, value)

		report, err := ce.RunScenario(ctx, daysPerMonth, &variant)
		if err != nil {
			return nil, fmt.Errorf("sweep %s step %d: %w", param.Name, i, err)
		}
		sweep.Points = append(sweep.Points, domain.SweepPoint{
			Value:                   value,
			MonthlyCashFlow:         report.MonthlyCashFlow,
			TotalProfit:             report.Returns.TotalProfit,
			AnnualizedReturnPercent: report.Returns.AnnualizedReturnPercent,
			PaybackMonths:           report.Returns.PaybackMonths,
		})
	}
	ce.Logger.Debugf("swept %s over %d steps for scenario %s", param.Name, param.Steps, scenario.Name)
	return sweep, nil
}
