package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/wellcalc/investment-calculator/internal/domain"
)

// MaxTermYears is the longest hold period any projection accepts
const MaxTermYears = 50

// TotalLossReturnPercent is the annualized return reported when the wells never
// produce a positive monthly cash flow.
var TotalLossReturnPercent = decimal.NewFromInt(-100)

// ProjectReturn projects total cash flow, profit, annualized return and payback for
// a net investment repaid by a constant monthly cash flow over termYears.
//
// A non-positive cash flow never pays back: profit is -netInvestment, the annualized
// return is TotalLossReturnPercent, PaybackMonths is nil and the series holds only
// month 0. With positive cash flow the annualized return is zero when either the
// term or the net investment is non-positive.
func ProjectReturn(netInvestment, monthlyCashFlow decimal.Decimal, termYears int) domain.ReturnProjectionResult {
	result := domain.ReturnProjectionResult{
		NetInvestment:           netInvestment,
		MonthlyCashFlow:         monthlyCashFlow,
		TermYears:               termYears,
		TotalCashFlow:           decimal.Zero,
		TotalProfit:             netInvestment.Neg(),
		AnnualizedReturnPercent: TotalLossReturnPercent,
		CumulativeProfitByMonth: []domain.MonthlyProfit{{Month: 0, CumulativeProfit: netInvestment.Neg()}},
	}
	if !monthlyCashFlow.IsPositive() {
		return result
	}

	totalMonths := 0
	if termYears > 0 {
		totalMonths = termYears * 12
	}
	result.TotalCashFlow = monthlyCashFlow.Mul(decimal.NewFromInt(int64(totalMonths)))
	result.TotalProfit = result.TotalCashFlow.Sub(netInvestment)

	result.AnnualizedReturnPercent = decimal.Zero
	if termYears > 0 && netInvestment.IsPositive() {
		result.AnnualizedReturnPercent = result.TotalProfit.
			Div(netInvestment).
			Div(decimal.NewFromInt(int64(termYears))).
			Mul(decimalHundred)
	}

	payback := netInvestment.Div(monthlyCashFlow)
	result.PaybackMonths = &payback

	for m := 1; m <= totalMonths; m++ {
		result.CumulativeProfitByMonth = append(result.CumulativeProfitByMonth, domain.MonthlyProfit{
			Month:            m,
			CumulativeProfit: netInvestment.Neg().Add(monthlyCashFlow.Mul(decimal.NewFromInt(int64(m)))),
		})
	}
	result.BreakEven = FindBreakEven(result.CumulativeProfitByMonth)

	return result
}
