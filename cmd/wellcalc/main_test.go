package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wellcalc/investment-calculator/internal/output"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeContext(t, context.Background(), args...)
}

func executeContext(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return out.String(), err
}

func writeExampleConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	out, err := execute(t, "example-config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Example configuration written to "+path)
	return path
}

func TestGrowthCommand(t *testing.T) {
	out, err := execute(t, "growth", "--principal", "100,000", "--rate", "15", "--term", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Principal:           $100,000")
	assert.Contains(t, out, "Monthly interest Y1: $1,250")
	assert.Contains(t, out, "Total interest:      $32,250")
	assert.Contains(t, out, "Total return:        $132,250")
	assert.Contains(t, out, "ROI:                 32.25%")
	assert.Contains(t, out, "   2            $17,250            $32,250           $132,250")
}

func TestGrowthCommandSimpleInterestJSON(t *testing.T) {
	out, err := execute(t, "--json", "growth", "--principal", "100000", "--rate", "12", "--term", "2", "--simple")
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, "24000", body["total_interest"])
	assert.Equal(t, "124000", body["total_return"])
}

func TestGrowthCommandClampsPrincipal(t *testing.T) {
	out, err := execute(t, "growth", "--principal", "5000abc", "--term", "2", "--precision", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Principal:           $25,000.00")
}

func TestGrowthCommandRejectsInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"rate not offered", []string{"growth", "--rate", "11"}, "rate 11% is not offered"},
		{"term not offered", []string{"growth", "--term", "3"}, "term 3 years is not offered"},
		{"bad precision", []string{"growth", "--precision", "3"}, "precision must be 0 or 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestTaxShieldCommand(t *testing.T) {
	out, err := execute(t, "taxshield", "--investment", "$100,000", "--tax-rate", "37")
	require.NoError(t, err)
	assert.Contains(t, out, "IDC deduction (70%):      $70,000")
	assert.Contains(t, out, "Depletion deduction (15%): $15,000")
	assert.Contains(t, out, "Tax saved:                $31,450")
	assert.Contains(t, out, "Net investment:           $68,550")
}

func TestRevenueCommand(t *testing.T) {
	t.Run("default days", func(t *testing.T) {
		out, err := execute(t, "revenue")
		require.NoError(t, err)
		assert.Contains(t, out, "Days per month:  30\n")
		assert.Contains(t, out, "Gross monthly:   $1,200.00")
		assert.Contains(t, out, "Net monthly:     $1,064.80")
	})

	t.Run("average days", func(t *testing.T) {
		out, err := execute(t, "revenue", "--days", "30.4")
		require.NoError(t, err)
		assert.Contains(t, out, "Gross monthly:   $1,216.00")
		assert.Contains(t, out, "Net monthly:     $1,080.06")
	})

	t.Run("gas well", func(t *testing.T) {
		out, err := execute(t, "revenue", "--daily-rate", "300", "--price", "3.5")
		require.NoError(t, err)
		assert.Contains(t, out, "Net monthly:     $220.51")
	})
}

func TestReturnsCommand(t *testing.T) {
	out, err := execute(t, "returns")
	require.NoError(t, err)
	assert.Contains(t, out, "Total cash flow:   $77,118.60")
	assert.Contains(t, out, "Total profit:      $8,568.60")
	assert.Contains(t, out, "Annualized return: 2.50%")
	assert.Contains(t, out, "Payback:           53.3 months")
	assert.Contains(t, out, "Break-even:        month 54 (53.33)")
}

func TestReturnsCommandNeverPaysBack(t *testing.T) {
	out, err := execute(t, "returns", "--monthly-cash-flow", "-160")
	require.NoError(t, err)
	assert.Contains(t, out, "Annualized return: -100.00%")
	assert.Contains(t, out, "Payback:           "+output.NotApplicable)
	assert.NotContains(t, out, "Break-even")
}

func TestReturnsCommandRejectsHoldPeriodOutOfRange(t *testing.T) {
	for _, years := range []string{"51", "20000", "-1"} {
		t.Run(years, func(t *testing.T) {
			_, err := execute(t, "returns", "--years", years)
			assert.ErrorContains(t, err, "years must be between 0 and 50")
		})
	}
}

func TestReportCommandToStdout(t *testing.T) {
	cfg := writeExampleConfig(t)

	out, err := execute(t, "report", "--config", cfg, "--format", "csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Scenario,"))
	assert.True(t, strings.HasPrefix(lines[1], "base,"))
	assert.True(t, strings.HasPrefix(lines[2], "high-price,"))

	out, err = execute(t, "report", "-c", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "OIL & GAS INVESTMENT PROJECTION")
	assert.Contains(t, out, "RECOMMENDATION")
}

func TestReportCommandToDirectory(t *testing.T) {
	cfg := writeExampleConfig(t)
	dir := t.TempDir()

	out, err := execute(t, "report", "--config", cfg, "--format", "json", "--output-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to "+dir)

	matches, err := filepath.Glob(filepath.Join(dir, "wellcalc_report_*.json"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestReportCommandErrors(t *testing.T) {
	cfg := writeExampleConfig(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing config", []string{"report", "--config", filepath.Join(t.TempDir(), "nope.yaml")}, "failed to read file"},
		{"unknown format", []string{"report", "--config", cfg, "--format", "pdf"}, output.ErrUnsupportedFormat.Error()},
		{"all without directory", []string{"report", "--config", cfg, "--format", "all"}, "requires --output-dir"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSweepCommand(t *testing.T) {
	cfg := writeExampleConfig(t)

	out, err := execute(t, "sweep", "--config", cfg, "--param", "oil_price", "--min", "40", "--max", "120", "--steps", "3", "--format", "csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "base,oil_price,40,"))
	assert.True(t, strings.HasPrefix(lines[2], "base,oil_price,80,"))
	assert.True(t, strings.HasPrefix(lines[3], "base,oil_price,120,"))

	out, err = execute(t, "sweep", "--config", cfg, "--scenario", "high-price", "--steps", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "SENSITIVITY: high-price over oil_price (40 to 120, 2 steps)")
}

func TestSweepCommandErrors(t *testing.T) {
	cfg := writeExampleConfig(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown parameter", []string{"sweep", "--config", cfg, "--param", "water_cut"}, "available: gas_daily_rate"},
		{"unknown scenario", []string{"sweep", "--config", cfg, "--scenario", "nope"}, `scenario "nope" not found (available: base, high-price)`},
		{"single step", []string{"sweep", "--config", cfg, "--steps", "1"}, "at least 2 steps"},
		{"term past limit", []string{"sweep", "--config", cfg, "--param", "term_years", "--min", "1", "--max", "20000"}, "term_years sweep must stay within 0 and 50"},
		{"unknown format", []string{"sweep", "--config", cfg, "--format", "xml"}, "available: table, csv, json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSimulateCommand(t *testing.T) {
	cfg := writeExampleConfig(t)

	out, err := execute(t, "simulate", "--config", cfg, "--runs", "25", "--seed", "42", "--oil-volatility", "0", "--gas-volatility", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "PRICE SIMULATION: base (25 runs, seed 42)")
	assert.Contains(t, out, "Payback probability:  100.00%")

	history := filepath.Join(t.TempDir(), "prices.csv")
	require.NoError(t, os.WriteFile(history, []byte("year,oil,gas\n2020,50,2\n2021,55,2.2\n2022,40,3\n"), 0644))
	out, err = execute(t, "--json", "simulate", "-c", cfg, "-s", "high-price", "-n", "10", "--seed", "3", "--history", history, "--format", "json")
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, "high-price", body["scenario_name"])
	assert.Equal(t, true, body["config"].(map[string]any)["use_historical"])
	assert.NotContains(t, body, "outcomes")
}

func TestSimulateCommandErrors(t *testing.T) {
	cfg := writeExampleConfig(t)

	_, err := execute(t, "simulate", "--config", cfg, "--runs", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid price simulation")

	_, err = execute(t, "simulate", "--config", cfg, "--history", filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open file")
}

func TestServeCommandStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := executeContext(t, ctx, "serve", "--addr", "127.0.0.1:0")
	assert.NoError(t, err)
}
