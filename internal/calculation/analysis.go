package calculation

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/wellcalc/investment-calculator/internal/domain"
)

// RecommendScenario picks the scenario with the highest annualized return.
// Ties go to the shorter payback (unreachable last), then to the name.
func RecommendScenario(reports []domain.ScenarioReport) domain.Recommendation {
	if len(reports) == 0 {
		return domain.Recommendation{}
	}
	ranked := append([]domain.ScenarioReport(nil), reports...)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i].Returns, ranked[j].Returns
		if !a.AnnualizedReturnPercent.Equal(b.AnnualizedReturnPercent) {
			return a.AnnualizedReturnPercent.GreaterThan(b.AnnualizedReturnPercent)
		}
		if a.PaybackReached() != b.PaybackReached() {
			return a.PaybackReached()
		}
		if a.PaybackReached() && !a.PaybackMonths.Equal(*b.PaybackMonths) {
			return a.PaybackMonths.LessThan(*b.PaybackMonths)
		}
		return ranked[i].Name < ranked[j].Name
	})

	best := ranked[0]
	return domain.Recommendation{
		ScenarioName:            best.Name,
		AnnualizedReturnPercent: best.Returns.AnnualizedReturnPercent,
		PaybackMonths:           best.Returns.PaybackMonths,
		TotalProfit:             best.Returns.TotalProfit,
	}
}

// GenerateAssumptions lists the modeling assumptions behind a comparison
func GenerateAssumptions(daysPerMonth decimal.Decimal, scenarios []domain.Scenario) []string {
	assumptions := []string{
		fmt.Sprintf("Production month: %s days", daysPerMonth.String()),
		fmt.Sprintf("Year-one deductions: IDC %s%% and depletion %s%% of the investment",
			IDCShare.Mul(decimalHundred).String(), DepletionShare.Mul(decimalHundred).String()),
		"Monthly cash flow held constant over the term (no decline curve, no price escalation)",
		"Annualized return is simple: total profit / net investment / years",
	}
	for _, sc := range scenarios {
		if sc.Growth != nil && !sc.Growth.Reinvest {
			assumptions = append(assumptions, "Simple-interest growth pays every year on the original principal")
			break
		}
	}
	return assumptions
}
