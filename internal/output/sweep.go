package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/wellcalc/investment-calculator/internal/domain"
	money "github.com/wellcalc/investment-calculator/pkg/decimal"
)

// FormatSweepCSV exports one row per sweep point
func FormatSweepCSV(sweep *domain.SensitivitySweep) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"Scenario", "Parameter", "Value", "MonthlyCashFlow", "TotalProfit", "AnnualizedReturnPercent", "PaybackMonths"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	for _, p := range sweep.Points {
		row := []string{
			sweep.ScenarioName,
			sweep.Parameter.Name,
			p.Value.String(),
			p.MonthlyCashFlow.StringFixed(2),
			p.TotalProfit.StringFixed(2),
			p.AnnualizedReturnPercent.StringFixed(2),
			paybackValue(p.PaybackMonths),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write sweep row: %w", err)
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// FormatSweepTable renders a sweep as an aligned console table
func FormatSweepTable(sweep *domain.SensitivitySweep) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "SENSITIVITY: %s over %s (%s to %s, %d steps)\n",
		sweep.ScenarioName, sweep.Parameter.Name,
		sweep.Parameter.MinValue.String(), sweep.Parameter.MaxValue.String(), sweep.Parameter.Steps)
	fmt.Fprintln(&buf, strings.Repeat("=", 78))
	fmt.Fprintf(&buf, "%12s %16s %16s %12s %16s\n", "Value", "Monthly", "Total Profit", "Return", "Payback")
	for _, p := range sweep.Points {
		fmt.Fprintf(&buf, "%12s %16s %16s %12s %16s\n",
			money.FormatNumber(p.Value, 2),
			FormatCurrency(p.MonthlyCashFlow, Cents),
			FormatCurrency(p.TotalProfit, WholeDollars),
			FormatPercentage(p.AnnualizedReturnPercent, 2),
			FormatPayback(p.PaybackMonths))
	}
	return buf.Bytes()
}
