package output

import (
	"bytes"
	"encoding/csv"

	"github.com/wellcalc/investment-calculator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "TermYears", "TaxSaved", "NetInvestment", "OilNetMonthly", "GasNetMonthly", "MonthlyCashFlow", "TotalCashFlow", "TotalProfit", "AnnualizedReturnPercent", "PaybackMonths", "BreakEvenMonth", "Recommended"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range sortedScenarios(results) {
		breakEven := ""
		if sc.Returns.BreakEven != nil {
			breakEven = intToString(sc.Returns.BreakEven.Month)
		}
		row := []string{
			sc.Name,
			intToString(sc.Returns.TermYears),
			sc.TaxShield.TaxSaved.StringFixed(2),
			sc.Returns.NetInvestment.StringFixed(2),
			sc.Oil.NetMonthlyRevenue.StringFixed(2),
			sc.Gas.NetMonthlyRevenue.StringFixed(2),
			sc.MonthlyCashFlow.StringFixed(2),
			sc.Returns.TotalCashFlow.StringFixed(2),
			sc.Returns.TotalProfit.StringFixed(2),
			sc.Returns.AnnualizedReturnPercent.StringFixed(2),
			paybackValue(sc.Returns.PaybackMonths),
			breakEven,
			boolToString(sc.Name == results.Recommendation.ScenarioName),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
