package main

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/wellcalc/investment-calculator/internal/calculation"
	"github.com/wellcalc/investment-calculator/internal/domain"
	"github.com/wellcalc/investment-calculator/internal/output"
	money "github.com/wellcalc/investment-calculator/pkg/decimal"
	"go.uber.org/zap"
)

func newGrowthCmd(a *app) *cobra.Command {
	var principal, rate, term string
	var simple bool
	var precision int

	cmd := &cobra.Command{
		Use:   "growth",
		Short: "Project a fixed-rate note year by year",
		Example: `  wellcalc growth --principal 100000 --rate 15 --term 2
  wellcalc growth --principal 250,000 --rate 12 --term 10 --simple`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := domain.GrowthInput{
				Principal:         decimal.NewFromInt(money.CoerceLeadingInt(principal)),
				AnnualRatePercent: money.CoerceNumber(rate),
				TermYears:         money.CoerceInt(term),
				Reinvest:          !simple,
			}
			if !calculation.IsAllowedRate(in.AnnualRatePercent) {
				return fmt.Errorf("rate %s%% is not offered (allowed: %v)", in.AnnualRatePercent, calculation.AllowedRatePercents)
			}
			if !calculation.IsAllowedTerm(in.TermYears) {
				return fmt.Errorf("term %d years is not offered (allowed: %v)", in.TermYears, calculation.AllowedTermYears)
			}
			if precision != output.WholeDollars && precision != output.Cents {
				return fmt.Errorf("precision must be %d or %d, got %d", output.WholeDollars, output.Cents, precision)
			}

			result := calculation.ProjectGrowth(in)
			a.log().Debug("growth projected", zap.Stringer("principal", result.Principal), zap.Int("years", len(result.YearlyBreakdown)))
			if a.asJSON {
				return printJSON(cmd.OutOrStdout(), result)
			}
			writeGrowth(cmd.OutOrStdout(), result, precision)
			return nil
		},
	}
	cmd.Flags().StringVar(&principal, "principal", "25000", "amount placed in the note (clamped to 25,000..1,000,000)")
	cmd.Flags().StringVar(&rate, "rate", "15", "annual rate percent (12, 13, 14 or 15)")
	cmd.Flags().StringVar(&term, "term", "20", "term in years (2, 5, 10, 15, 20, 25 or 30)")
	cmd.Flags().BoolVar(&simple, "simple", false, "pay interest out instead of reinvesting it")
	cmd.Flags().IntVar(&precision, "precision", output.WholeDollars, "currency decimal places (0 or 2)")
	return cmd
}

func writeGrowth(w io.Writer, g domain.GrowthResult, precision int) {
	fmt.Fprintf(w, "Principal:           %s\n", output.FormatCurrency(g.Principal, precision))
	fmt.Fprintf(w, "Monthly interest Y1: %s\n", output.FormatCurrency(g.MonthlyInterestYear1, precision))
	fmt.Fprintf(w, "Total interest:      %s\n", output.FormatCurrency(g.TotalInterest, precision))
	fmt.Fprintf(w, "Total return:        %s\n", output.FormatCurrency(g.TotalReturn, precision))
	fmt.Fprintf(w, "ROI:                 %s\n", output.FormatPercentage(g.ROIPercent, 2))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%4s %18s %18s %18s\n", "Year", "Interest", "Cumulative", "Ending Value")
	for _, y := range g.YearlyBreakdown {
		fmt.Fprintf(w, "%4d %18s %18s %18s\n", y.Year,
			output.FormatCurrency(y.InterestThisYear, precision),
			output.FormatCurrency(y.CumulativeInterest, precision),
			output.FormatCurrency(y.EndingValue, precision))
	}
}

func newTaxShieldCmd(a *app) *cobra.Command {
	var investment, taxRate string

	cmd := &cobra.Command{
		Use:   "taxshield",
		Short: "Compute year-one IDC and depletion deductions and the net investment",
		RunE: func(cmd *cobra.Command, args []string) error {
			result := calculation.ProjectTaxShield(domain.TaxShieldInput{
				Investment:     money.CoerceNumber(investment),
				TaxRatePercent: money.CoerceNumber(taxRate),
			})
			if a.asJSON {
				return printJSON(cmd.OutOrStdout(), result)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "IDC deduction (70%%):      %s\n", output.FormatCurrency(result.IntangibleDrillingCostDeduction, output.WholeDollars))
			fmt.Fprintf(w, "Depletion deduction (15%%): %s\n", output.FormatCurrency(result.DepletionDeduction, output.WholeDollars))
			fmt.Fprintf(w, "Total deduction:          %s\n", output.FormatCurrency(result.TotalDeduction, output.WholeDollars))
			fmt.Fprintf(w, "Tax saved:                %s\n", output.FormatCurrency(result.TaxSaved, output.WholeDollars))
			fmt.Fprintf(w, "Net investment:           %s\n", output.FormatCurrency(result.NetInvestment, output.WholeDollars))
			return nil
		},
	}
	cmd.Flags().StringVar(&investment, "investment", "100000", "capital invested")
	cmd.Flags().StringVar(&taxRate, "tax-rate", "37", "marginal tax rate percent")
	return cmd
}

func newRevenueCmd(a *app) *cobra.Command {
	var workingInterest, dailyRate, price, opex, severance, days string

	cmd := &cobra.Command{
		Use:   "revenue",
		Short: "Compute the investor's net monthly revenue from one well",
		Example: `  wellcalc revenue --working-interest 1 --daily-rate 50 --price 80
  wellcalc revenue --daily-rate 300 --price 3.5 --days 30.4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := a.engine()
			result := calculation.ProjectWellRevenue(domain.WellRevenueInput{
				WorkingInterestPercent: money.CoerceNumber(workingInterest),
				DailyRate:              money.CoerceNumber(dailyRate),
				UnitPrice:              money.CoerceNumber(price),
				MonthlyOpexPerWell:     money.CoerceNumber(opex),
				SeveranceTaxPercent:    money.CoerceNumber(severance),
			}, engine.ResolveDaysPerMonth(money.CoerceNumber(days)))
			if a.asJSON {
				return printJSON(cmd.OutOrStdout(), result)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Days per month:  %s\n", result.DaysPerMonth)
			fmt.Fprintf(w, "Gross monthly:   %s\n", output.FormatCurrency(result.GrossMonthlyRevenue, output.Cents))
			fmt.Fprintf(w, "Severance tax:   %s\n", output.FormatCurrency(result.SeveranceTax, output.Cents))
			fmt.Fprintf(w, "Opex share:      %s\n", output.FormatCurrency(result.OpexShare, output.Cents))
			fmt.Fprintf(w, "Net monthly:     %s\n", output.FormatCurrency(result.NetMonthlyRevenue, output.Cents))
			return nil
		},
	}
	cmd.Flags().StringVar(&workingInterest, "working-interest", "1", "working interest percent")
	cmd.Flags().StringVar(&dailyRate, "daily-rate", "50", "production per day (bbl for oil, mcf for gas)")
	cmd.Flags().StringVar(&price, "price", "80", "price per unit")
	cmd.Flags().StringVar(&opex, "opex", "8000", "monthly operating cost per well")
	cmd.Flags().StringVar(&severance, "severance", "4.6", "severance tax percent")
	cmd.Flags().StringVar(&days, "days", "", "production days per month (30 when unset)")
	return cmd
}

func newReturnsCmd(a *app) *cobra.Command {
	var netInvestment, cashFlow, years string

	cmd := &cobra.Command{
		Use:   "returns",
		Short: "Project total profit, annualized return and payback",
		RunE: func(cmd *cobra.Command, args []string) error {
			term := money.CoerceInt(years)
			if term < 0 || term > calculation.MaxTermYears {
				return fmt.Errorf("years must be between 0 and %d, got %d", calculation.MaxTermYears, term)
			}
			result := calculation.ProjectReturn(
				money.CoerceNumber(netInvestment),
				money.CoerceNumber(cashFlow),
				term,
			)
			if !result.PaybackReached() {
				a.log().Info("payback not reached",
					zap.Stringer("net_investment", result.NetInvestment),
					zap.Stringer("monthly_cash_flow", result.MonthlyCashFlow))
			}
			if a.asJSON {
				return printJSON(cmd.OutOrStdout(), result)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Total cash flow:   %s\n", output.FormatCurrency(result.TotalCashFlow, output.Cents))
			fmt.Fprintf(w, "Total profit:      %s\n", output.FormatCurrency(result.TotalProfit, output.Cents))
			fmt.Fprintf(w, "Annualized return: %s\n", output.FormatPercentage(result.AnnualizedReturnPercent, 2))
			fmt.Fprintf(w, "Payback:           %s\n", output.FormatPayback(result.PaybackMonths))
			if be := result.BreakEven; be != nil {
				fmt.Fprintf(w, "Break-even:        month %d (%s)\n", be.Month, money.FormatNumber(be.ExactMonth, 2))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&netInvestment, "net-investment", "68550", "capital at risk after the tax shield")
	cmd.Flags().StringVar(&cashFlow, "monthly-cash-flow", "1285.31", "combined monthly net revenue")
	cmd.Flags().StringVar(&years, "years", "5", "hold period in years")
	return cmd
}
