package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wellcalc/investment-calculator/internal/domain"
)

// Logger is the logging surface the engine needs; *zap.SugaredLogger satisfies it.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

// Clock and seed hooks; tests swap them for fixed values.
var (
	nowFunc  = time.Now
	seedFunc = func() int64 { return time.Now().UnixNano() }
)

// SetNowFunc replaces the clock that stamps scenario comparisons.
func SetNowFunc(f func() time.Time) { nowFunc = f }

// SetSeedFunc replaces the seed source for price simulations run without a seed.
func SetSeedFunc(f func() int64) { seedFunc = f }

// CalculationEngine runs full calculator scenarios on top of the projection functions
type CalculationEngine struct {
	Debug  bool // log per-calculator results
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// ResolveDaysPerMonth returns the configured day count, falling back to
// DaysPerMonthFlat when it is unset.
func (ce *CalculationEngine) ResolveDaysPerMonth(days decimal.Decimal) decimal.Decimal {
	if days.IsPositive() {
		if !days.Equal(DaysPerMonthFlat) && !days.Equal(DaysPerMonthAverage) {
			ce.Logger.Debugf("using non-standard days per month %s", days.String())
		}
		return days
	}
	ce.Logger.Warnf("days_per_month not set; defaulting to %s (calculators disagree between %s and %s)",
		DaysPerMonthFlat.String(), DaysPerMonthFlat.String(), DaysPerMonthAverage.String())
	return DaysPerMonthFlat
}

// RunScenario runs the tax shield, both wells, the return projection and, when
// configured, the growth note for one scenario.
func (ce *CalculationEngine) RunScenario(ctx context.Context, daysPerMonth decimal.Decimal, scenario *domain.Scenario) (*domain.ScenarioReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	shield := ProjectTaxShield(scenario.TaxShield)
	oil := ProjectWellRevenue(scenario.Oil, daysPerMonth)
	gas := ProjectWellRevenue(scenario.Gas, daysPerMonth)
	monthly := oil.NetMonthlyRevenue.Add(gas.NetMonthlyRevenue)
	returns := ProjectReturn(shield.NetInvestment, monthly, scenario.TermYears)

	report := &domain.ScenarioReport{
		Name:            scenario.Name,
		TaxShield:       shield,
		Oil:             oil,
		Gas:             gas,
		MonthlyCashFlow: monthly,
		Returns:         returns,
	}
	if scenario.Growth != nil {
		growth := ProjectGrowth(*scenario.Growth)
		report.Growth = &growth
	}

	if ce.Debug {
		ce.Logger.Debugf("scenario %s: net investment=%s oil net=%s gas net=%s monthly=%s",
			scenario.Name, shield.NetInvestment.StringFixed(2), oil.NetMonthlyRevenue.StringFixed(2),
			gas.NetMonthlyRevenue.StringFixed(2), monthly.StringFixed(2))
	}
	if !returns.PaybackReached() {
		ce.Logger.Infof("scenario %s: monthly cash flow %s never pays back the investment", scenario.Name, monthly.StringFixed(2))
	}
	return report, nil
}

// RunScenarios runs every scenario in config and recommends the best one
func (ce *CalculationEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.ScenarioComparison, error) {
	days := ce.ResolveDaysPerMonth(config.DaysPerMonth)

	reports := make([]domain.ScenarioReport, 0, len(config.Scenarios))
	for i := range config.Scenarios {
		report, err := ce.RunScenario(ctx, days, &config.Scenarios[i])
		if err != nil {
			return nil, fmt.Errorf("failed to run scenario %d: %w", i, err)
		}
		reports = append(reports, *report)
	}

	return &domain.ScenarioComparison{
		GeneratedAt:    nowFunc(),
		DaysPerMonth:   days,
		Scenarios:      reports,
		Recommendation: RecommendScenario(reports),
		Assumptions:    GenerateAssumptions(days, config.Scenarios),
	}, nil
}
