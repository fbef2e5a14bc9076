package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/wellcalc/investment-calculator/internal/domain"
)

// Principal bounds for the growth note
var (
	MinPrincipal = decimal.NewFromInt(25000)
	MaxPrincipal = decimal.NewFromInt(1000000)
)

// AllowedRatePercents are the annual rates the note is offered at
var AllowedRatePercents = []int64{12, 13, 14, 15}

// AllowedTermYears are the note terms on offer
var AllowedTermYears = []int{2, 5, 10, 15, 20, 25, 30}

var (
	decimalHundred = decimal.NewFromInt(100)
	decimalTwelve  = decimal.NewFromInt(12)
)

// IsAllowedRate reports whether rate is one of AllowedRatePercents
func IsAllowedRate(rate decimal.Decimal) bool {
	for _, r := range AllowedRatePercents {
		if rate.Equal(decimal.NewFromInt(r)) {
			return true
		}
	}
	return false
}

// IsAllowedTerm reports whether years is one of AllowedTermYears
func IsAllowedTerm(years int) bool {
	for _, y := range AllowedTermYears {
		if y == years {
			return true
		}
	}
	return false
}

// ClampPrincipal bounds a raw principal to [MinPrincipal, MaxPrincipal]
func ClampPrincipal(principal decimal.Decimal) decimal.Decimal {
	return decimal.Max(MinPrincipal, decimal.Min(principal, MaxPrincipal))
}

// ProjectGrowth projects a fixed-rate note year by year.
//
// With Reinvest set, interest compounds annually on the growing balance. Otherwise
// each year pays principal*rate on the original (clamped) principal and the ending
// value is principal plus interest paid so far. Out-of-range principals are clamped,
// never rejected.
func ProjectGrowth(in domain.GrowthInput) domain.GrowthResult {
	principal := ClampPrincipal(in.Principal)
	rate := in.AnnualRatePercent.Div(decimalHundred)

	years := in.TermYears
	if years < 0 {
		years = 0
	}
	breakdown := make([]domain.YearlyGrowth, 0, years)
	cumulative := decimal.Zero

	if in.Reinvest {
		current := principal
		for year := 1; year <= years; year++ {
			interest := current.Mul(rate)
			current = current.Add(interest)
			cumulative = cumulative.Add(interest)
			breakdown = append(breakdown, domain.YearlyGrowth{
				Year:               year,
				InterestThisYear:   interest,
				CumulativeInterest: cumulative,
				EndingValue:        current,
			})
		}
	} else {
		interest := principal.Mul(rate)
		for year := 1; year <= years; year++ {
			cumulative = cumulative.Add(interest)
			breakdown = append(breakdown, domain.YearlyGrowth{
				Year:               year,
				InterestThisYear:   interest,
				CumulativeInterest: cumulative,
				EndingValue:        principal.Add(cumulative),
			})
		}
	}

	return domain.GrowthResult{
		Principal:            principal,
		MonthlyInterestYear1: principal.Mul(rate).Div(decimalTwelve),
		TotalInterest:        cumulative,
		TotalReturn:          principal.Add(cumulative),
		ROIPercent:           cumulative.Div(principal).Mul(decimalHundred),
		YearlyBreakdown:      breakdown,
	}
}
