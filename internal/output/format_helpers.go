package output

import (
	"strconv"

	"github.com/shopspring/decimal"
	money "github.com/wellcalc/investment-calculator/pkg/decimal"
)

// Display precisions accepted by FormatCurrency
const (
	WholeDollars = money.WholeDollars
	Cents        = money.Cents
)

// NotApplicable is shown in place of a payback period that is never reached
const NotApplicable = "N/A"

// FormatCurrency formats a decimal as en-US dollars rounded to precision places.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal, precision int) string {
	return money.NewMoneyFromDecimal(amount).Format(precision)
}

// FormatPercentage formats a percent value with the given decimal places.
func FormatPercentage(amount decimal.Decimal, places int) string {
	return money.FormatNumber(amount, places) + "%"
}

// FormatPayback renders a payback period in months with one decimal, or N/A
func FormatPayback(months *decimal.Decimal) string {
	if months == nil {
		return NotApplicable
	}
	return money.FormatNumber(*months, 1) + " months"
}

// paybackValue is the machine-readable payback column: empty when unreachable
func paybackValue(months *decimal.Decimal) string {
	if months == nil {
		return ""
	}
	return months.StringFixed(2)
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
