package output

import (
	"bytes"
	"fmt"

	"github.com/wellcalc/investment-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "WELL INVESTMENT SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Days per month: %s\n", results.DaysPerMonth.String())
	fmt.Fprintln(&buf)
	for _, sc := range sortedScenarios(results) {
		fmt.Fprintf(&buf, "%s: NetInvestment=%s Monthly=%s Profit=%s Return=%s Payback=%s\n",
			sc.Name,
			FormatCurrency(sc.Returns.NetInvestment, WholeDollars),
			FormatCurrency(sc.MonthlyCashFlow, WholeDollars),
			FormatCurrency(sc.Returns.TotalProfit, WholeDollars),
			FormatPercentage(sc.Returns.AnnualizedReturnPercent, 2),
			FormatPayback(sc.Returns.PaybackMonths),
		)
	}
	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (%s annualized)\n", rec.ScenarioName, FormatPercentage(rec.AnnualizedReturnPercent, 2))
	}
	return buf.Bytes(), nil
}
