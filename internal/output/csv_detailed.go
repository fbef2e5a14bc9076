package output

import (
	"bytes"
	"encoding/csv"

	"github.com/wellcalc/investment-calculator/internal/domain"
)

// Series identifiers in the detailed CSV
const (
	SeriesCumulativeProfit = "cumulative_profit"
	SeriesGrowth           = "growth"
)

// CSVDetailedExporter provides the month-by-month cumulative profit series and the
// yearly growth breakdown per scenario.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Series", "Period", "Amount", "Cumulative", "EndingValue"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range sortedScenarios(results) {
		for _, mp := range sc.Returns.CumulativeProfitByMonth {
			amount := sc.Returns.MonthlyCashFlow
			if mp.Month == 0 {
				amount = sc.Returns.NetInvestment.Neg()
			}
			row := []string{
				sc.Name,
				SeriesCumulativeProfit,
				intToString(mp.Month),
				amount.StringFixed(2),
				mp.CumulativeProfit.StringFixed(2),
				"",
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
		if sc.Growth == nil {
			continue
		}
		for _, yr := range sc.Growth.YearlyBreakdown {
			row := []string{
				sc.Name,
				SeriesGrowth,
				intToString(yr.Year),
				yr.InterestThisYear.StringFixed(2),
				yr.CumulativeInterest.StringFixed(2),
				yr.EndingValue.StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
