package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wellcalc/investment-calculator/internal/domain"
)

func TestProjectTaxShield(t *testing.T) {
	tests := []struct {
		name                                        string
		investment, rate                            string
		idc, depletion, total, saved, netInvestment string
	}{
		{"page defaults", "100000", "37", "70000", "15000", "85000", "31450", "68550"},
		{"zero bracket", "100000", "0", "70000", "15000", "85000", "0", "100000"},
		{"zero investment", "0", "37", "0", "0", "0", "0", "0"},
		{"fractional", "25000", "24.5", "17500", "3750", "21250", "5206.25", "19793.75"},
		{"bracket above 100 is not clamped", "10000", "150", "7000", "1500", "8500", "12750", "-2750"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ProjectTaxShield(domain.TaxShieldInput{Investment: dec(tt.investment), TaxRatePercent: dec(tt.rate)})
			assertDecimal(t, tt.idc, res.IntangibleDrillingCostDeduction)
			assertDecimal(t, tt.depletion, res.DepletionDeduction)
			assertDecimal(t, tt.total, res.TotalDeduction)
			assertDecimal(t, tt.saved, res.TaxSaved)
			assertDecimal(t, tt.netInvestment, res.NetInvestment)
		})
	}
}

func TestProjectTaxShield_Idempotent(t *testing.T) {
	in := domain.TaxShieldInput{Investment: dec("123456.78"), TaxRatePercent: dec("32")}
	assert.Equal(t, mustJSON(t, ProjectTaxShield(in)), mustJSON(t, ProjectTaxShield(in)))
}
