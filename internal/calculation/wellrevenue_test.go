package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wellcalc/investment-calculator/internal/domain"
)

func TestProjectWellRevenue(t *testing.T) {
	oil := domain.WellRevenueInput{
		WorkingInterestPercent: dec("1"),
		DailyRate:              dec("50"),
		UnitPrice:              dec("80"),
		MonthlyOpexPerWell:     dec("8000"),
		SeveranceTaxPercent:    dec("4.6"),
	}
	gas := domain.WellRevenueInput{
		WorkingInterestPercent: dec("1"),
		DailyRate:              dec("300"),
		UnitPrice:              dec("3.5"),
		MonthlyOpexPerWell:     dec("8000"),
		SeveranceTaxPercent:    dec("4.6"),
	}

	tests := []struct {
		name                        string
		in                          domain.WellRevenueInput
		days                        string
		gross, severance, opex, net string
	}{
		{"oil flat month", oil, "30", "1200", "55.2", "80", "1064.8"},
		{"oil average month", oil, "30.4", "1216", "55.936", "80", "1080.064"},
		{"gas flat month", gas, "30", "315", "14.49", "80", "220.51"},
		{"no production", domain.WellRevenueInput{WorkingInterestPercent: dec("2"), MonthlyOpexPerWell: dec("8000")}, "30", "0", "0", "160", "-160"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ProjectWellRevenue(tt.in, dec(tt.days))
			assertDecimal(t, tt.days, res.DaysPerMonth)
			assertDecimal(t, tt.gross, res.GrossMonthlyRevenue)
			assertDecimal(t, tt.severance, res.SeveranceTax)
			assertDecimal(t, tt.opex, res.OpexShare)
			assertDecimal(t, tt.net, res.NetMonthlyRevenue)
		})
	}
}

func TestProjectWellRevenue_DayCountIsCallerSupplied(t *testing.T) {
	in := domain.WellRevenueInput{WorkingInterestPercent: dec("5"), DailyRate: dec("10"), UnitPrice: dec("70")}
	flat := ProjectWellRevenue(in, DaysPerMonthFlat)
	avg := ProjectWellRevenue(in, DaysPerMonthAverage)
	assert.True(t, avg.GrossMonthlyRevenue.GreaterThan(flat.GrossMonthlyRevenue))
	assertDecimal(t, "1050", flat.GrossMonthlyRevenue)
	assertDecimal(t, "1064", avg.GrossMonthlyRevenue)
}
