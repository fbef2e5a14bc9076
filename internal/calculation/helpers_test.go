package calculation

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wellcalc/investment-calculator/internal/domain"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(dec(want)), "want %s, got %s", want, got.String())
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// defaultScenario mirrors the calculator defaults on the investor page
func defaultScenario() domain.Scenario {
	return domain.Scenario{
		Name:      "base",
		TermYears: 5,
		TaxShield: domain.TaxShieldInput{Investment: dec("100000"), TaxRatePercent: dec("37")},
		Oil: domain.WellRevenueInput{
			WorkingInterestPercent: dec("1"),
			DailyRate:              dec("50"),
			UnitPrice:              dec("80"),
			MonthlyOpexPerWell:     dec("8000"),
			SeveranceTaxPercent:    dec("4.6"),
		},
		Gas: domain.WellRevenueInput{
			WorkingInterestPercent: dec("1"),
			DailyRate:              dec("300"),
			UnitPrice:              dec("3.5"),
			MonthlyOpexPerWell:     dec("8000"),
			SeveranceTaxPercent:    dec("4.6"),
		},
	}
}

type recordingLogger struct {
	NopLogger
	warnings []string
}

func (r *recordingLogger) Warnf(format string, args ...any) {
	r.warnings = append(r.warnings, format)
}
