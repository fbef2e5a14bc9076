package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/wellcalc/investment-calculator/internal/domain"
	money "github.com/wellcalc/investment-calculator/pkg/decimal"
)

// ConsoleVerboseFormatter renders the full per-scenario breakdown via the pluggable interface.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 81))
	fmt.Fprintln(&buf, "OIL & GAS INVESTMENT PROJECTION")
	fmt.Fprintln(&buf, strings.Repeat("=", 81))
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range assumptionsFor(results.Assumptions) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	for i, sc := range results.Scenarios {
		fmt.Fprintf(&buf, "SCENARIO %d: %s\n", i+1, sc.Name)
		fmt.Fprintln(&buf, strings.Repeat("=", 50))
		writeTaxShield(&buf, sc.TaxShield)
		writeWells(&buf, sc)
		writeReturns(&buf, sc.Returns)
		if sc.Growth != nil {
			writeGrowth(&buf, *sc.Growth)
		}
		fmt.Fprintln(&buf)
	}

	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf, "RECOMMENDATION")
		fmt.Fprintln(&buf, strings.Repeat("=", 50))
		fmt.Fprintf(&buf, "Best annualized return: %s (%s, payback %s)\n",
			rec.ScenarioName, FormatPercentage(rec.AnnualizedReturnPercent, 2), FormatPayback(rec.PaybackMonths))
		if rec.RunnerUp != "" {
			fmt.Fprintf(&buf, "Leads %s by %s points\n", rec.RunnerUp, money.FormatNumber(rec.ReturnAdvantage, 2))
		}
	}
	return buf.Bytes(), nil
}

func writeTaxShield(w io.Writer, ts domain.TaxShieldResult) {
	fmt.Fprintln(w, "TAX SHIELD (year one):")
	fmt.Fprintf(w, "  Investment:            %s\n", FormatCurrency(ts.NetInvestment.Add(ts.TaxSaved), Cents))
	fmt.Fprintf(w, "  IDC Deduction:         %s\n", FormatCurrency(ts.IntangibleDrillingCostDeduction, Cents))
	fmt.Fprintf(w, "  Depletion Deduction:   %s\n", FormatCurrency(ts.DepletionDeduction, Cents))
	fmt.Fprintf(w, "  Total Deduction:       %s\n", FormatCurrency(ts.TotalDeduction, Cents))
	fmt.Fprintf(w, "  Tax Saved:             %s\n", FormatCurrency(ts.TaxSaved, Cents))
	fmt.Fprintf(w, "  Net Investment:        %s\n", FormatCurrency(ts.NetInvestment, Cents))
	fmt.Fprintln(w)
}

func writeWells(w io.Writer, sc domain.ScenarioReport) {
	fmt.Fprintf(w, "MONTHLY WELL REVENUE (%s-day month):\n", sc.Oil.DaysPerMonth.String())
	fmt.Fprintf(w, "  %-20s %14s %14s\n", "", "Oil", "Gas")
	row := func(label string, oil, gas string) {
		fmt.Fprintf(w, "  %-20s %14s %14s\n", label, oil, gas)
	}
	row("Gross Revenue:", FormatCurrency(sc.Oil.GrossMonthlyRevenue, Cents), FormatCurrency(sc.Gas.GrossMonthlyRevenue, Cents))
	row("Severance Tax:", FormatCurrency(sc.Oil.SeveranceTax, Cents), FormatCurrency(sc.Gas.SeveranceTax, Cents))
	row("Opex Share:", FormatCurrency(sc.Oil.OpexShare, Cents), FormatCurrency(sc.Gas.OpexShare, Cents))
	row("Net Revenue:", FormatCurrency(sc.Oil.NetMonthlyRevenue, Cents), FormatCurrency(sc.Gas.NetMonthlyRevenue, Cents))
	fmt.Fprintf(w, "  Combined Monthly Cash Flow: %s\n", FormatCurrency(sc.MonthlyCashFlow, Cents))
	fmt.Fprintln(w)
}

func writeReturns(w io.Writer, r domain.ReturnProjectionResult) {
	fmt.Fprintf(w, "RETURN PROJECTION (%d years):\n", r.TermYears)
	fmt.Fprintf(w, "  Total Cash Flow:       %s\n", FormatCurrency(r.TotalCashFlow, Cents))
	fmt.Fprintf(w, "  Total Profit:          %s\n", FormatCurrency(r.TotalProfit, Cents))
	fmt.Fprintf(w, "  Annualized Return:     %s\n", FormatPercentage(r.AnnualizedReturnPercent, 2))
	fmt.Fprintf(w, "  Payback Period:        %s\n", FormatPayback(r.PaybackMonths))
	if r.BreakEven != nil {
		fmt.Fprintf(w, "  Break-even:            month %d (%s)\n", r.BreakEven.Month, money.FormatNumber(r.BreakEven.ExactMonth, 2))
	} else {
		fmt.Fprintf(w, "  Break-even:            not within term\n")
	}
	fmt.Fprintln(w)
}

func writeGrowth(w io.Writer, g domain.GrowthResult) {
	fmt.Fprintln(w, "GROWTH NOTE:")
	fmt.Fprintf(w, "  Principal:             %s\n", FormatCurrency(g.Principal, WholeDollars))
	fmt.Fprintf(w, "  Monthly Interest (Y1): %s\n", FormatCurrency(g.MonthlyInterestYear1, WholeDollars))
	fmt.Fprintf(w, "  Total Interest:        %s\n", FormatCurrency(g.TotalInterest, WholeDollars))
	fmt.Fprintf(w, "  Total Return:          %s\n", FormatCurrency(g.TotalReturn, WholeDollars))
	fmt.Fprintf(w, "  ROI:                   %s\n", FormatPercentage(g.ROIPercent, 1))
	if len(g.YearlyBreakdown) > 0 {
		fmt.Fprintf(w, "  %-6s %16s %16s %16s\n", "Year", "Interest", "Cumulative", "Ending Value")
		for _, y := range g.YearlyBreakdown {
			fmt.Fprintf(w, "  %-6d %16s %16s %16s\n", y.Year,
				FormatCurrency(y.InterestThisYear, WholeDollars),
				FormatCurrency(y.CumulativeInterest, WholeDollars),
				FormatCurrency(y.EndingValue, WholeDollars))
		}
	}
}
