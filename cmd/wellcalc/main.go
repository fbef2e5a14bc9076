package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/wellcalc/investment-calculator/internal/calculation"
	"github.com/wellcalc/investment-calculator/internal/logging"
	"go.uber.org/zap"
)

// app carries state shared by every subcommand
type app struct {
	verbose bool
	asJSON  bool
	logger  *zap.Logger
}

func (a *app) log() *zap.Logger {
	if a.logger == nil {
		return zap.NewNop()
	}
	return a.logger
}

func (a *app) engine() *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logging.Engine(a.log()))
	engine.Debug = a.verbose
	return engine
}

// printJSON writes v as indented JSON
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "wellcalc",
		Short: "Oil & gas investment projection calculators",
		Long: `wellcalc projects returns on capital placed in oil and gas wells.

It models fixed-rate note growth, the year-one tax shield from intangible drilling
cost and depletion deductions, monthly oil and gas well revenue, and the resulting
annualized return and payback period. Scenario files compare several configurations
side by side.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(a.verbose)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&a.asJSON, "json", false, "print calculator results as JSON")

	root.AddCommand(
		newGrowthCmd(a),
		newTaxShieldCmd(a),
		newRevenueCmd(a),
		newReturnsCmd(a),
		newReportCmd(a),
		newSweepCmd(a),
		newSimulateCmd(a),
		newExampleConfigCmd(a),
		newServeCmd(a),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
