package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/wellcalc/investment-calculator/internal/domain"
	money "github.com/wellcalc/investment-calculator/pkg/decimal"
)

// MarkdownFormatter renders the comparison as a GitHub-flavored Markdown report.
// The HTML formatter renders this same document.
type MarkdownFormatter struct{}

func (m MarkdownFormatter) Name() string { return "markdown" }

func (m MarkdownFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "# Oil & Gas Investment Projection")
	fmt.Fprintln(&buf)
	if !results.GeneratedAt.IsZero() {
		fmt.Fprintf(&buf, "_Generated %s, %s-day production month_\n\n",
			results.GeneratedAt.UTC().Format("2006-01-02 15:04 MST"), results.DaysPerMonth.String())
	}

	fmt.Fprintln(&buf, "## Key Assumptions")
	fmt.Fprintln(&buf)
	for _, a := range assumptionsFor(results.Assumptions) {
		fmt.Fprintf(&buf, "- %s\n", a)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "## Scenario Summary")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "| Scenario | Net Investment | Monthly Cash Flow | Total Profit | Annualized Return | Payback |")
	fmt.Fprintln(&buf, "|---|---:|---:|---:|---:|---:|")
	for _, sc := range results.Scenarios {
		fmt.Fprintf(&buf, "| %s | %s | %s | %s | %s | %s |\n",
			mdEscape(sc.Name),
			FormatCurrency(sc.Returns.NetInvestment, WholeDollars),
			FormatCurrency(sc.MonthlyCashFlow, Cents),
			FormatCurrency(sc.Returns.TotalProfit, WholeDollars),
			FormatPercentage(sc.Returns.AnnualizedReturnPercent, 2),
			FormatPayback(sc.Returns.PaybackMonths))
	}
	fmt.Fprintln(&buf)

	if rec := AnalyzeScenarios(results); rec.ScenarioName != "" {
		fmt.Fprintln(&buf, "## Recommendation")
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "**%s** has the best annualized return at %s with payback in %s",
			mdEscape(rec.ScenarioName), FormatPercentage(rec.AnnualizedReturnPercent, 2), FormatPayback(rec.PaybackMonths))
		if rec.RunnerUp != "" {
			fmt.Fprintf(&buf, ", %s points ahead of %s", money.FormatNumber(rec.ReturnAdvantage, 2), mdEscape(rec.RunnerUp))
		}
		fmt.Fprintln(&buf, ".")
		fmt.Fprintln(&buf)
	}

	for _, sc := range results.Scenarios {
		writeMarkdownScenario(&buf, sc)
	}
	return buf.Bytes(), nil
}

func writeMarkdownScenario(w io.Writer, sc domain.ScenarioReport) {
	fmt.Fprintf(w, "## Scenario: %s\n\n", mdEscape(sc.Name))

	fmt.Fprintln(w, "### Tax Shield")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Item | Amount |")
	fmt.Fprintln(w, "|---|---:|")
	fmt.Fprintf(w, "| IDC deduction | %s |\n", FormatCurrency(sc.TaxShield.IntangibleDrillingCostDeduction, WholeDollars))
	fmt.Fprintf(w, "| Depletion deduction | %s |\n", FormatCurrency(sc.TaxShield.DepletionDeduction, WholeDollars))
	fmt.Fprintf(w, "| Total deduction | %s |\n", FormatCurrency(sc.TaxShield.TotalDeduction, WholeDollars))
	fmt.Fprintf(w, "| Tax saved | %s |\n", FormatCurrency(sc.TaxShield.TaxSaved, WholeDollars))
	fmt.Fprintf(w, "| Net investment | %s |\n", FormatCurrency(sc.TaxShield.NetInvestment, WholeDollars))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "### Monthly Well Revenue")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| | Oil | Gas |")
	fmt.Fprintln(w, "|---|---:|---:|")
	fmt.Fprintf(w, "| Gross revenue | %s | %s |\n", FormatCurrency(sc.Oil.GrossMonthlyRevenue, Cents), FormatCurrency(sc.Gas.GrossMonthlyRevenue, Cents))
	fmt.Fprintf(w, "| Severance tax | %s | %s |\n", FormatCurrency(sc.Oil.SeveranceTax, Cents), FormatCurrency(sc.Gas.SeveranceTax, Cents))
	fmt.Fprintf(w, "| Opex share | %s | %s |\n", FormatCurrency(sc.Oil.OpexShare, Cents), FormatCurrency(sc.Gas.OpexShare, Cents))
	fmt.Fprintf(w, "| Net revenue | %s | %s |\n", FormatCurrency(sc.Oil.NetMonthlyRevenue, Cents), FormatCurrency(sc.Gas.NetMonthlyRevenue, Cents))
	fmt.Fprintln(w)

	r := sc.Returns
	fmt.Fprintf(w, "### Return Projection (%d years)\n\n", r.TermYears)
	fmt.Fprintf(w, "- Total cash flow: %s\n", FormatCurrency(r.TotalCashFlow, Cents))
	fmt.Fprintf(w, "- Total profit: %s\n", FormatCurrency(r.TotalProfit, Cents))
	fmt.Fprintf(w, "- Annualized return: %s\n", FormatPercentage(r.AnnualizedReturnPercent, 2))
	fmt.Fprintf(w, "- Payback: %s\n", FormatPayback(r.PaybackMonths))
	if r.BreakEven != nil {
		fmt.Fprintf(w, "- Break-even: month %d\n", r.BreakEven.Month)
	}
	fmt.Fprintln(w)

	if sc.Growth == nil {
		return
	}
	g := sc.Growth
	fmt.Fprintln(w, "### Growth Note")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Principal %s, first-year interest %s per month, total return %s (ROI %s).\n\n",
		FormatCurrency(g.Principal, WholeDollars), FormatCurrency(g.MonthlyInterestYear1, WholeDollars),
		FormatCurrency(g.TotalReturn, WholeDollars), FormatPercentage(g.ROIPercent, 1))
	if len(g.YearlyBreakdown) == 0 {
		return
	}
	fmt.Fprintln(w, "| Year | Interest | Cumulative | Ending Value |")
	fmt.Fprintln(w, "|---:|---:|---:|---:|")
	for _, y := range g.YearlyBreakdown {
		fmt.Fprintf(w, "| %d | %s | %s | %s |\n", y.Year,
			FormatCurrency(y.InterestThisYear, WholeDollars),
			FormatCurrency(y.CumulativeInterest, WholeDollars),
			FormatCurrency(y.EndingValue, WholeDollars))
	}
	fmt.Fprintln(w)
}

var mdReplacer = strings.NewReplacer(`\`, `\\`, "|", `\|`, "*", `\*`, "_", `\_`, "<", "&lt;", ">", "&gt;")

func mdEscape(s string) string { return mdReplacer.Replace(s) }
