package output

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/wellcalc/investment-calculator/internal/domain"
)

// Recommendation encapsulates the selection result of the best scenario and its
// margin over the next best one.
type Recommendation struct {
	ScenarioName            string
	AnnualizedReturnPercent decimal.Decimal
	PaybackMonths           *decimal.Decimal
	TotalProfit             decimal.Decimal
	RunnerUp                string
	ReturnAdvantage         decimal.Decimal // percentage points over RunnerUp
}

// AnalyzeScenarios reports the engine's recommended scenario and how far its
// annualized return leads the best of the others.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	best := results.Recommendation
	if best.ScenarioName == "" {
		return Recommendation{}
	}
	rec := Recommendation{
		ScenarioName:            best.ScenarioName,
		AnnualizedReturnPercent: best.AnnualizedReturnPercent,
		PaybackMonths:           best.PaybackMonths,
		TotalProfit:             best.TotalProfit,
	}

	others := make([]domain.ScenarioReport, 0, len(results.Scenarios))
	for _, sc := range results.Scenarios {
		if sc.Name != best.ScenarioName {
			others = append(others, sc)
		}
	}
	if len(others) == 0 {
		return rec
	}
	sort.SliceStable(others, func(i, j int) bool {
		return others[i].Returns.AnnualizedReturnPercent.GreaterThan(others[j].Returns.AnnualizedReturnPercent)
	})
	rec.RunnerUp = others[0].Name
	rec.ReturnAdvantage = best.AnnualizedReturnPercent.Sub(others[0].Returns.AnnualizedReturnPercent)
	return rec
}

// sortedScenarios returns the reports ordered by name for deterministic tables
func sortedScenarios(results *domain.ScenarioComparison) []domain.ScenarioReport {
	scenarios := append([]domain.ScenarioReport(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	return scenarios
}
