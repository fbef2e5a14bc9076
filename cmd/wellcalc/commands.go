package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/wellcalc/investment-calculator/internal/calculation"
	"github.com/wellcalc/investment-calculator/internal/config"
	"github.com/wellcalc/investment-calculator/internal/domain"
	"github.com/wellcalc/investment-calculator/internal/logging"
	"github.com/wellcalc/investment-calculator/internal/output"
	"github.com/wellcalc/investment-calculator/internal/server"
	money "github.com/wellcalc/investment-calculator/pkg/decimal"
	"go.uber.org/zap"
)

func newReportCmd(a *app) *cobra.Command {
	var configFile, format, outputDir string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run every scenario in a configuration file and report the comparison",
		Example: `  wellcalc report --config scenarios.yaml
  wellcalc report --config scenarios.yaml --format html --output-dir reports
  wellcalc report --config scenarios.yaml --format all --output-dir reports`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(configFile)
			if err != nil {
				return err
			}
			results, err := a.engine().RunScenarios(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("calculation failed: %w", err)
			}
			a.log().Debug("scenarios calculated",
				zap.Int("scenarios", len(results.Scenarios)),
				zap.String("recommended", results.Recommendation.ScenarioName))

			if outputDir == "" {
				if output.NormalizeFormatName(format) == output.FormatAll {
					return errors.New("--format all requires --output-dir")
				}
				f := output.GetFormatterByName(format)
				if f == nil {
					return fmt.Errorf("%w: %q (available: %s)", output.ErrUnsupportedFormat, format,
						strings.Join(output.AvailableFormatterNames(), ", "))
				}
				data, err := f.Format(results)
				if err != nil {
					return fmt.Errorf("%s report: %w", f.Name(), err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			paths, err := output.GenerateReport(results, format, outputDir)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", p)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "scenarios.yaml", "scenario configuration file")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format ("+strings.Join(output.AvailableFormatterNames(), ", ")+", all)")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "write timestamped report files here instead of stdout")
	return cmd
}

func newSweepCmd(a *app) *cobra.Command {
	var configFile, scenarioName, param, minValue, maxValue, format string
	var steps int

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Vary one scenario input across a range and tabulate the returns",
		Example: `  wellcalc sweep --config scenarios.yaml --scenario base --param oil_price --min 40 --max 120 --steps 9`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(configFile)
			if err != nil {
				return err
			}
			scenario, err := pickScenario(cfg, scenarioName)
			if err != nil {
				return err
			}

			engine := a.engine()
			sweep, err := engine.Sweep(cmd.Context(), engine.ResolveDaysPerMonth(cfg.DaysPerMonth), scenario, domain.SweepParameter{
				Name:     param,
				MinValue: money.CoerceNumber(minValue),
				MaxValue: money.CoerceNumber(maxValue),
				Steps:    steps,
			})
			if err != nil {
				if errors.Is(err, calculation.ErrUnknownParameter) {
					return fmt.Errorf("%w (available: %s)", err, strings.Join(calculation.SweepParameterNames(), ", "))
				}
				return err
			}

			if a.asJSON {
				format = "json"
			}
			w := cmd.OutOrStdout()
			switch strings.ToLower(format) {
			case "table", "":
				_, err = w.Write(output.FormatSweepTable(sweep))
			case "csv":
				var data []byte
				if data, err = output.FormatSweepCSV(sweep); err == nil {
					_, err = w.Write(data)
				}
			case "json":
				err = printJSON(w, sweep)
			default:
				err = fmt.Errorf("%w: %q (available: table, csv, json)", output.ErrUnsupportedFormat, format)
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "scenarios.yaml", "scenario configuration file")
	cmd.Flags().StringVarP(&scenarioName, "scenario", "s", "", "scenario to sweep (first in file when empty)")
	cmd.Flags().StringVarP(&param, "param", "p", "oil_price", "input to vary ("+strings.Join(calculation.SweepParameterNames(), ", ")+")")
	cmd.Flags().StringVar(&minValue, "min", "40", "first value")
	cmd.Flags().StringVar(&maxValue, "max", "120", "last value")
	cmd.Flags().IntVar(&steps, "steps", 9, "number of evenly spaced values")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format (table, csv, json)")
	return cmd
}

func pickScenario(cfg *domain.Configuration, name string) (*domain.Scenario, error) {
	if name == "" {
		return &cfg.Scenarios[0], nil
	}
	scenario, ok := cfg.FindScenario(name)
	if !ok {
		names := make([]string, 0, len(cfg.Scenarios))
		for _, s := range cfg.Scenarios {
			names = append(names, s.Name)
		}
		return nil, fmt.Errorf("scenario %q not found (available: %s)", name, strings.Join(names, ", "))
	}
	return scenario, nil
}

func newExampleConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "example-config [file]",
		Short: "Write an example scenario configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := "scenarios.yaml"
			if len(args) > 0 {
				filename = args[0]
			}
			parser := config.NewInputParser()
			if err := parser.SaveConfiguration(parser.CreateExampleConfiguration(), filename); err != nil {
				return err
			}
			a.log().Debug("example configuration written", zap.String("file", filename))
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", filename)
			return nil
		},
	}
}

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculators over HTTP",
		Long: `serve exposes every calculator as a JSON endpoint under /api, with /healthz and
Prometheus metrics at /metrics. Settings come from WELLCALC_* environment variables;
a .env file in the working directory is loaded when present.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadServerConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			logger := a.log()
			if cfg.Verbose && !a.verbose {
				if logger, err = logging.New(true); err != nil {
					return err
				}
				defer func() { _ = logger.Sync() }()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.New(cfg, logger).Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides WELLCALC_ADDR)")
	return cmd
}
