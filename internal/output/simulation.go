package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/wellcalc/investment-calculator/internal/domain"
	money "github.com/wellcalc/investment-calculator/pkg/decimal"
)

// FormatSimulationTable renders a price simulation summary for the console
func FormatSimulationTable(result *domain.PriceSimulationResult) []byte {
	var buf bytes.Buffer
	cfg := result.Config

	sampling := "normal"
	if cfg.UseHistorical {
		sampling = "historical"
	}

	fmt.Fprintf(&buf, "PRICE SIMULATION: %s (%s runs, seed %d)\n",
		result.ScenarioName, money.FormatNumber(decimal.NewFromInt(int64(cfg.NumSimulations)), 0), cfg.Seed)
	fmt.Fprintln(&buf, strings.Repeat("=", 78))
	fmt.Fprintf(&buf, "Net investment:       %s\n", FormatCurrency(result.NetInvestment, WholeDollars))
	fmt.Fprintf(&buf, "Price sampling:       %s\n", sampling)
	if !cfg.UseHistorical {
		fmt.Fprintf(&buf, "Oil volatility:       %s\n", FormatPercentage(cfg.OilPriceVolatilityPercent, 2))
		fmt.Fprintf(&buf, "Gas volatility:       %s\n", FormatPercentage(cfg.GasPriceVolatilityPercent, 2))
	}
	fmt.Fprintf(&buf, "Payback probability:  %s\n", FormatPercentage(result.PaybackProbabilityPercent, 2))
	fmt.Fprintf(&buf, "Mean profit:          %s\n", FormatCurrency(result.MeanProfit, WholeDollars))
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "%-18s %11s %11s %11s %11s %11s\n", "", "P10", "P25", "P50", "P75", "P90")
	p := result.ProfitPercentiles
	fmt.Fprintf(&buf, "%-18s %11s %11s %11s %11s %11s\n", "Total profit",
		FormatCurrency(p.P10, WholeDollars), FormatCurrency(p.P25, WholeDollars), FormatCurrency(p.P50, WholeDollars),
		FormatCurrency(p.P75, WholeDollars), FormatCurrency(p.P90, WholeDollars))
	r := result.ReturnPercentiles
	fmt.Fprintf(&buf, "%-18s %11s %11s %11s %11s %11s\n", "Annualized return",
		FormatPercentage(r.P10, 2), FormatPercentage(r.P25, 2), FormatPercentage(r.P50, 2),
		FormatPercentage(r.P75, 2), FormatPercentage(r.P90, 2))
	return buf.Bytes()
}
