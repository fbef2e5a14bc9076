package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/wellcalc/investment-calculator/internal/domain"
)

// Year-one deduction shares of the committed capital
var (
	IDCShare       = decimal.NewFromFloat(0.70)
	DepletionShare = decimal.NewFromFloat(0.15)
)

// ProjectTaxShield computes the intangible drilling cost and depletion deductions on an
// investment and the capital left at risk after the resulting tax saving.
func ProjectTaxShield(in domain.TaxShieldInput) domain.TaxShieldResult {
	idc := in.Investment.Mul(IDCShare)
	depletion := in.Investment.Mul(DepletionShare)
	total := idc.Add(depletion)
	saved := total.Mul(in.TaxRatePercent.Div(decimalHundred))

	return domain.TaxShieldResult{
		IntangibleDrillingCostDeduction: idc,
		DepletionDeduction:              depletion,
		TotalDeduction:                  total,
		TaxSaved:                        saved,
		NetInvestment:                   in.Investment.Sub(saved),
	}
}
