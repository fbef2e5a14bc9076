package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/wellcalc/investment-calculator/internal/domain"
)

// FindBreakEven finds the first point at which cumulative profit reaches zero.
// The crossing is interpolated linearly between the last negative month and the
// first non-negative one. Returns nil when the series never reaches zero.
func FindBreakEven(series []domain.MonthlyProfit) *domain.BreakEvenPoint {
	if len(series) == 0 {
		return nil
	}
	if !series[0].CumulativeProfit.IsNegative() {
		return &domain.BreakEvenPoint{
			Month:      series[0].Month,
			Fraction:   decimal.Zero,
			ExactMonth: decimal.NewFromInt(int64(series[0].Month)),
		}
	}

	for i := 1; i < len(series); i++ {
		prev := series[i-1].CumulativeProfit
		curr := series[i].CumulativeProfit
		if curr.IsNegative() {
			continue
		}
		// prev < 0 <= curr, so the denominator is positive
		fraction := prev.Neg().Div(curr.Sub(prev))
		start := decimal.NewFromInt(int64(series[i-1].Month))
		span := decimal.NewFromInt(int64(series[i].Month - series[i-1].Month))
		return &domain.BreakEvenPoint{
			Month:      series[i].Month,
			Fraction:   fraction,
			ExactMonth: start.Add(fraction.Mul(span)),
		}
	}
	return nil
}
