package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/wellcalc/investment-calculator/internal/domain"
)

// Day-count conventions for a production month. Both appear in published
// calculators; callers pick one explicitly.
var (
	DaysPerMonthFlat    = decimal.NewFromInt(30)
	DaysPerMonthAverage = decimal.NewFromFloat(30.4)
)

// ProjectWellRevenue computes an investor's monthly revenue from one well.
//
//	gross     = wi * dailyRate * daysPerMonth * unitPrice
//	severance = gross * severance%
//	opex      = monthlyOpexPerWell * wi
//	net       = gross - severance - opex
//
// where wi is the working interest as a fraction.
func ProjectWellRevenue(in domain.WellRevenueInput, daysPerMonth decimal.Decimal) domain.WellRevenueResult {
	wi := in.WorkingInterestPercent.Div(decimalHundred)
	gross := wi.Mul(in.DailyRate).Mul(daysPerMonth).Mul(in.UnitPrice)
	severance := gross.Mul(in.SeveranceTaxPercent.Div(decimalHundred))
	opex := in.MonthlyOpexPerWell.Mul(wi)

	return domain.WellRevenueResult{
		DaysPerMonth:        daysPerMonth,
		GrossMonthlyRevenue: gross,
		SeveranceTax:        severance,
		OpexShare:           opex,
		NetMonthlyRevenue:   gross.Sub(severance).Sub(opex),
	}
}
