package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wellcalc/investment-calculator/internal/calculation"
	"github.com/wellcalc/investment-calculator/internal/config"
	"github.com/wellcalc/investment-calculator/internal/domain"
	"github.com/wellcalc/investment-calculator/internal/output"
	money "github.com/wellcalc/investment-calculator/pkg/decimal"
	"go.uber.org/zap"
)

func newSimulateCmd(a *app) *cobra.Command {
	var configFile, scenarioName, oilVolatility, gasVolatility, historyFile, format string
	var runs int
	var seed int64

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Monte Carlo simulation of a scenario under uncertain oil and gas prices",
		Example: `  wellcalc simulate --config scenarios.yaml --runs 5000 --oil-volatility 30 --gas-volatility 40
  wellcalc simulate --config scenarios.yaml --history prices.csv --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(configFile)
			if err != nil {
				return err
			}
			scenario, err := pickScenario(cfg, scenarioName)
			if err != nil {
				return err
			}

			var history *calculation.PriceHistory
			if historyFile != "" {
				if history, err = calculation.LoadPriceHistory(historyFile); err != nil {
					return err
				}
				for _, issue := range history.ValidateDataQuality() {
					a.log().Warn("price history quality", zap.String("file", historyFile), zap.String("issue", issue))
				}
			}

			engine := a.engine()
			result, err := engine.SimulatePrices(cmd.Context(), engine.ResolveDaysPerMonth(cfg.DaysPerMonth), scenario, domain.PriceSimulationConfig{
				NumSimulations:            runs,
				Seed:                      seed,
				OilPriceVolatilityPercent: money.CoerceNumber(oilVolatility),
				GasPriceVolatilityPercent: money.CoerceNumber(gasVolatility),
				UseHistorical:             history != nil,
			}, history)
			if err != nil {
				return err
			}

			if a.asJSON {
				format = "json"
			}
			w := cmd.OutOrStdout()
			switch strings.ToLower(format) {
			case "table", "":
				_, err = w.Write(output.FormatSimulationTable(result))
			case "json":
				err = printJSON(w, result)
			default:
				err = fmt.Errorf("%w: %q (available: table, json)", output.ErrUnsupportedFormat, format)
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "scenarios.yaml", "scenario configuration file")
	cmd.Flags().StringVarP(&scenarioName, "scenario", "s", "", "scenario to simulate (first in file when empty)")
	cmd.Flags().IntVarP(&runs, "runs", "n", 1000, "number of simulated hold periods")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	cmd.Flags().StringVar(&oilVolatility, "oil-volatility", "25", "yearly oil price volatility percent")
	cmd.Flags().StringVar(&gasVolatility, "gas-volatility", "35", "yearly gas price volatility percent")
	cmd.Flags().StringVar(&historyFile, "history", "", "CSV of year,oil_price,gas_price to sample yearly changes from")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format (table, json)")
	return cmd
}
