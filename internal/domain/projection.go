package domain

import (
	"github.com/shopspring/decimal"
)

// GrowthInput describes a fixed-rate note held for a number of years
type GrowthInput struct {
	Principal         decimal.Decimal `yaml:"principal" json:"principal"`
	AnnualRatePercent decimal.Decimal `yaml:"annual_rate_percent" json:"annual_rate_percent"`
	TermYears         int             `yaml:"term_years" json:"term_years"`
	Reinvest          bool            `yaml:"reinvest" json:"reinvest"` // true compounds annually, false pays simple interest
}

// YearlyGrowth is one row of the growth breakdown
type YearlyGrowth struct {
	Year               int             `json:"year"`
	InterestThisYear   decimal.Decimal `json:"interest_this_year"`
	CumulativeInterest decimal.Decimal `json:"cumulative_interest"`
	EndingValue        decimal.Decimal `json:"ending_value"`
}

// GrowthResult holds the outcome of a growth projection
type GrowthResult struct {
	Principal            decimal.Decimal `json:"principal"` // clamped principal actually used
	MonthlyInterestYear1 decimal.Decimal `json:"monthly_interest_year_1"`
	TotalInterest        decimal.Decimal `json:"total_interest"`
	TotalReturn          decimal.Decimal `json:"total_return"`
	ROIPercent           decimal.Decimal `json:"roi_percent"`
	YearlyBreakdown      []YearlyGrowth  `json:"yearly_breakdown"`
}

// FinalYear returns the last breakdown row, or false for a zero-length term
func (g GrowthResult) FinalYear() (YearlyGrowth, bool) {
	if len(g.YearlyBreakdown) == 0 {
		return YearlyGrowth{}, false
	}
	return g.YearlyBreakdown[len(g.YearlyBreakdown)-1], true
}

// TaxShieldInput is the capital committed and the investor's marginal bracket
type TaxShieldInput struct {
	Investment     decimal.Decimal `yaml:"investment" json:"investment"`
	TaxRatePercent decimal.Decimal `yaml:"tax_rate_percent" json:"tax_rate_percent"`
}

// TaxShieldResult holds the year-one deductions and the capital left at risk
type TaxShieldResult struct {
	IntangibleDrillingCostDeduction decimal.Decimal `json:"intangible_drilling_cost_deduction"`
	DepletionDeduction              decimal.Decimal `json:"depletion_deduction"`
	TotalDeduction                  decimal.Decimal `json:"total_deduction"`
	TaxSaved                        decimal.Decimal `json:"tax_saved"`
	NetInvestment                   decimal.Decimal `json:"net_investment"`
}

// WellRevenueInput describes one well's production economics.
// DailyRate is barrels per day for oil and MCF per day for gas.
type WellRevenueInput struct {
	WorkingInterestPercent decimal.Decimal `yaml:"working_interest_percent" json:"working_interest_percent"`
	DailyRate              decimal.Decimal `yaml:"daily_rate" json:"daily_rate"`
	UnitPrice              decimal.Decimal `yaml:"unit_price" json:"unit_price"`
	MonthlyOpexPerWell     decimal.Decimal `yaml:"monthly_opex_per_well" json:"monthly_opex_per_well"`
	SeveranceTaxPercent    decimal.Decimal `yaml:"severance_tax_percent" json:"severance_tax_percent"`
}

// WellRevenueResult is the investor's monthly check from one well
type WellRevenueResult struct {
	DaysPerMonth        decimal.Decimal `json:"days_per_month"`
	GrossMonthlyRevenue decimal.Decimal `json:"gross_monthly_revenue"`
	SeveranceTax        decimal.Decimal `json:"severance_tax"`
	OpexShare           decimal.Decimal `json:"opex_share"`
	NetMonthlyRevenue   decimal.Decimal `json:"net_monthly_revenue"`
}

// MonthlyProfit is one point of the cumulative profit series
type MonthlyProfit struct {
	Month            int             `json:"month"`
	CumulativeProfit decimal.Decimal `json:"cumulative_profit"`
}

// BreakEvenPoint describes where cumulative profit first reaches zero
type BreakEvenPoint struct {
	// Month is the first series month whose cumulative profit is >= 0
	Month int `json:"month"`

	// Fraction (0..1] of the way from Month-1 to Month where the crossing happens
	Fraction decimal.Decimal `json:"fraction_of_month"`

	// ExactMonth is Month-1+Fraction
	ExactMonth decimal.Decimal `json:"exact_month"`
}

// ReturnProjectionResult combines net investment and cash flow into a return estimate
type ReturnProjectionResult struct {
	NetInvestment           decimal.Decimal  `json:"net_investment"`
	MonthlyCashFlow         decimal.Decimal  `json:"monthly_cash_flow"`
	TermYears               int              `json:"term_years"`
	TotalCashFlow           decimal.Decimal  `json:"total_cash_flow"`
	TotalProfit             decimal.Decimal  `json:"total_profit"`
	AnnualizedReturnPercent decimal.Decimal  `json:"annualized_return_percent"`
	PaybackMonths           *decimal.Decimal `json:"payback_months"` // nil when payback is never reached
	CumulativeProfitByMonth []MonthlyProfit  `json:"cumulative_profit_by_month"`
	BreakEven               *BreakEvenPoint  `json:"break_even,omitempty"`
}

// PaybackReached reports whether the investment is ever paid back
func (r ReturnProjectionResult) PaybackReached() bool {
	return r.PaybackMonths != nil
}
