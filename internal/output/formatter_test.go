package output

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wellcalc/investment-calculator/internal/calculation"
	"github.com/wellcalc/investment-calculator/internal/domain"
)

var fixedNow = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testConfiguration() *domain.Configuration {
	well := func(rate, price string) domain.WellRevenueInput {
		return domain.WellRevenueInput{
			WorkingInterestPercent: d("1"),
			DailyRate:              d(rate),
			UnitPrice:              d(price),
			MonthlyOpexPerWell:     d("8000"),
			SeveranceTaxPercent:    d("4.6"),
		}
	}
	return &domain.Configuration{
		DaysPerMonth: d("30"),
		Scenarios: []domain.Scenario{
			{
				Name:      "base",
				TermYears: 5,
				TaxShield: domain.TaxShieldInput{Investment: d("100000"), TaxRatePercent: d("37")},
				Oil:       well("50", "80"),
				Gas:       well("300", "3.5"),
				Growth:    &domain.GrowthInput{Principal: d("25000"), AnnualRatePercent: d("15"), TermYears: 2, Reinvest: true},
			},
			{
				Name:      "dry-hole",
				TermYears: 5,
				TaxShield: domain.TaxShieldInput{Investment: d("100000"), TaxRatePercent: d("37")},
				Oil:       well("50", "0"),
				Gas:       well("300", "0"),
			},
		},
	}
}

func buildTestComparison(t *testing.T) *domain.ScenarioComparison {
	t.Helper()
	calculation.SetNowFunc(func() time.Time { return fixedNow })
	t.Cleanup(func() { calculation.SetNowFunc(time.Now) })

	results, err := calculation.NewCalculationEngine().RunScenarios(context.Background(), testConfiguration())
	require.NoError(t, err)
	return results
}

func TestConsoleLiteFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestComparison(t))
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "base: NetInvestment=$68,550 Monthly=$1,285 Profit=$8,569 Return=2.50% Payback=53.3 months")
	assert.Contains(t, content, "dry-hole: NetInvestment=$68,550 Monthly=-$160 Profit=-$68,550 Return=-100.00% Payback=N/A")
	assert.Contains(t, content, "Recommended: base (2.50% annualized)")
}

func TestConsoleVerboseFormatter(t *testing.T) {
	out, err := ConsoleVerboseFormatter{}.Format(buildTestComparison(t))
	require.NoError(t, err)

	content := string(out)
	for _, want := range []string{
		"OIL & GAS INVESTMENT PROJECTION",
		"• Production month: 30 days",
		"SCENARIO 1: base",
		"  Tax Saved:             $31,450.00",
		"  Net Investment:        $68,550.00",
		"MONTHLY WELL REVENUE (30-day month):",
		"  Combined Monthly Cash Flow: $1,285.31",
		"  Payback Period:        53.3 months",
		"  Break-even:            month 54 (53.33)",
		"  Total Return:          $33,063",
		"  ROI:                   32.3%",
		"SCENARIO 2: dry-hole",
		"  Annualized Return:     -100.00%",
		"  Payback Period:        N/A",
		"  Break-even:            not within term",
		"Best annualized return: base (2.50%, payback 53.3 months)",
		"Leads dry-hole by 102.50 points",
	} {
		assert.Contains(t, content, want)
	}
}

func TestCSVSummarizerRows(t *testing.T) {
	out, err := CSVSummarizer{}.Format(buildTestComparison(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3, "header + 2 rows")
	assert.Equal(t, "base,5,31450.00,68550.00,1064.80,220.51,1285.31,77118.60,8568.60,2.50,53.33,54,true", lines[1])
	assert.Equal(t, "dry-hole,5,31450.00,68550.00,-80.00,-80.00,-160.00,0.00,-68550.00,-100.00,,,false", lines[2])
}

func TestCSVDetailedExporterSeries(t *testing.T) {
	out, err := CSVDetailedExporter{}.Format(buildTestComparison(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	// header + 61 monthly points + 2 growth years for base, 1 point for dry-hole
	require.Len(t, lines, 65)
	assert.Equal(t, "base,cumulative_profit,0,-68550.00,-68550.00,", lines[1])
	assert.Equal(t, "base,cumulative_profit,1,1285.31,-67264.69,", lines[2])
	assert.Equal(t, "base,cumulative_profit,60,1285.31,8568.60,", lines[61])
	assert.Equal(t, "base,growth,1,3750.00,3750.00,28750.00", lines[62])
	assert.Equal(t, "base,growth,2,4312.50,8062.50,33062.50", lines[63])
	assert.Equal(t, "dry-hole,cumulative_profit,0,-68550.00,-68550.00,", lines[64])
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestComparison(t))
	require.NoError(t, err)

	var decoded struct {
		GeneratedAt    time.Time `json:"generated_at"`
		Recommendation struct {
			ScenarioName string `json:"scenario_name"`
		} `json:"recommendation"`
		Scenarios []struct {
			Name    string `json:"name"`
			Returns struct {
				NetInvestment string  `json:"net_investment"`
				PaybackMonths *string `json:"payback_months"`
			} `json:"returns"`
		} `json:"scenarios"`
	}
	require.NoError(t, json.Unmarshal(out, &decoded))

	assert.True(t, decoded.GeneratedAt.Equal(fixedNow))
	assert.Equal(t, "base", decoded.Recommendation.ScenarioName)
	require.Len(t, decoded.Scenarios, 2)
	assert.Equal(t, "68550", decoded.Scenarios[0].Returns.NetInvestment)
	assert.NotNil(t, decoded.Scenarios[0].Returns.PaybackMonths)
	assert.Nil(t, decoded.Scenarios[1].Returns.PaybackMonths)
}

func TestMarkdownFormatter(t *testing.T) {
	out, err := MarkdownFormatter{}.Format(buildTestComparison(t))
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "_Generated 2025-01-01 00:00 UTC, 30-day production month_")
	assert.Contains(t, content, "## Key Assumptions")
	assert.Contains(t, content, "| base | $68,550 | $1,285.31 | $8,569 | 2.50% | 53.3 months |")
	assert.Contains(t, content, "| dry-hole | $68,550 | -$160.00 | -$68,550 | -100.00% | N/A |")
	assert.Contains(t, content, "**base** has the best annualized return at 2.50% with payback in 53.3 months, 102.50 points ahead of dry-hole.")
	assert.Contains(t, content, "| 2 | $4,313 | $8,063 | $33,063 |")
}

func TestHTMLFormatterBasic(t *testing.T) {
	out, err := HTMLFormatter{}.Format(buildTestComparison(t))
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "<title>Oil &amp; Gas Investment Projection</title>")
	assert.Contains(t, content, "<h2>Scenario Summary</h2>")
	assert.Contains(t, content, "<h2>Key Assumptions</h2>")
	assert.Contains(t, content, "<table>")
	assert.Contains(t, content, "<td>base</td>")
	assert.Contains(t, content, "<strong>base</strong>")
}

func TestHTMLFormatterEscapesScenarioNames(t *testing.T) {
	cmp := buildTestComparison(t)
	cmp.Scenarios[0].Name = "<script>alert(1)</script>"

	out, err := HTMLFormatter{}.Format(cmp)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<script>")
}

func TestHTMLAssumptionsFallBackToDefaults(t *testing.T) {
	cmp := buildTestComparison(t)
	cmp.Assumptions = nil

	out, err := HTMLFormatter{}.Format(cmp)
	require.NoError(t, err)
	assert.Contains(t, string(out), DefaultAssumptions[2])
}

// Golden snapshot tests (prefix-based) ensure key headers remain stable.
func TestGoldenSnapshots(t *testing.T) {
	cases := []struct {
		name      string
		golden    string
		formatter Formatter
	}{
		{"console_verbose", "console_verbose.golden", ConsoleVerboseFormatter{}},
		{"console_lite", "console_lite.golden", ConsoleFormatter{}},
		{"csv_summary", "csv_summary.golden", CSVSummarizer{}},
		{"csv_detailed", "csv_detailed.golden", CSVDetailedExporter{}},
		{"html", "html_prefix.golden", HTMLFormatter{}},
		{"markdown", "markdown_prefix.golden", MarkdownFormatter{}},
	}

	cmp := buildTestComparison(t)
	update := os.Getenv("UPDATE_GOLDEN") == "1"
	for _, tc := range cases {
		out, err := tc.formatter.Format(cmp)
		if err != nil {
			t.Fatalf("%s: format error: %v", tc.name, err)
		}
		goldenPath := filepath.Join("testdata", tc.golden)
		if update {
			// only first line to keep golden small & stable
			line := firstLine(string(out)) + "\n"
			if err := os.WriteFile(goldenPath, []byte(line), 0644); err != nil {
				t.Fatalf("%s: update golden failed: %v", tc.name, err)
			}
		}
		data, err := os.ReadFile(goldenPath)
		if err != nil {
			t.Fatalf("%s: read golden: %v", tc.name, err)
		}
		if !strings.HasPrefix(string(out), strings.TrimSpace(string(data))) {
			t.Fatalf("%s: output does not match golden prefix %q", tc.name, strings.TrimSpace(string(data)))
		}
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func TestFormatterAliasResolution(t *testing.T) {
	cases := map[string]string{
		"console-verbose": "console",
		" Verbose ":       "console",
		"summary":         "console-lite",
		"csv-detailed":    "detailed-csv",
		"md":              "markdown",
		"HTML":            "html",
	}
	for alias, want := range cases {
		f := GetFormatterByName(alias)
		if f == nil {
			t.Fatalf("alias %q did not resolve to a formatter", alias)
		}
		if f.Name() != want {
			t.Fatalf("alias %q resolved to %q, want %q", alias, f.Name(), want)
		}
	}
	assert.Nil(t, GetFormatterByName("pdf"))
}

func TestAvailableFormatterNames(t *testing.T) {
	assert.Equal(t, []string{"console", "console-lite", "csv", "detailed-csv", "html", "json", "markdown"}, AvailableFormatterNames())
	for _, name := range AvailableFormatterNames() {
		r, ok := lookup(name)
		require.True(t, ok, name)
		assert.NotEmpty(t, r.ext, name)
	}
}

func TestFormatterFunc(t *testing.T) {
	f := FormatterFunc{ID: "names", F: func(r *domain.ScenarioComparison) ([]byte, error) {
		return []byte(r.Recommendation.ScenarioName), nil
	}}
	out, err := f.Format(buildTestComparison(t))
	require.NoError(t, err)
	assert.Equal(t, "names", f.Name())
	assert.Equal(t, "base", string(out))
}

func TestRegisterFormatter(t *testing.T) {
	f := FormatterFunc{ID: "Recommended-Only", F: func(r *domain.ScenarioComparison) ([]byte, error) {
		return []byte(r.Recommendation.ScenarioName + "\n"), nil
	}}
	require.NoError(t, RegisterFormatter(f, ".txt"))
	t.Cleanup(func() {
		registryMu.Lock()
		delete(registry, "recommended-only")
		registryMu.Unlock()
	})

	assert.Contains(t, AvailableFormatterNames(), "recommended-only")
	assert.Equal(t, f.Name(), GetFormatterByName("RECOMMENDED-ONLY").Name())

	dir := t.TempDir()
	paths, err := GenerateReport(buildTestComparison(t), "recommended-only", dir)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, ".txt", filepath.Ext(paths[0]))
	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Equal(t, "base\n", string(data))
}

func TestRegisterFormatterRejects(t *testing.T) {
	noop := func(*domain.ScenarioComparison) ([]byte, error) { return nil, nil }
	tests := []struct {
		name string
		f    Formatter
		ext  string
		want string
	}{
		{"duplicate", JSONFormatter{}, "json", "already registered"},
		{"alias collision", FormatterFunc{ID: "md", F: noop}, "md", "collides with a format alias"},
		{"reserved all", FormatterFunc{ID: "all", F: noop}, "txt", "invalid formatter name"},
		{"empty name", FormatterFunc{ID: " ", F: noop}, "txt", "invalid formatter name"},
		{"no extension", FormatterFunc{ID: "bare", F: noop}, "", "file extension is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RegisterFormatter(tt.f, tt.ext)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
