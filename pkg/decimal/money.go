package decimal

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Display precisions for currency
const (
	WholeDollars = 0
	Cents        = 2
)

var usPrinter = message.NewPrinter(language.AmericanEnglish)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// NewMoneyFromInput coerces raw form input into Money; anything unparsable is zero
func NewMoneyFromInput(raw string) Money {
	return Money{CoerceNumber(raw)}
}

// Clamp bounds the amount to [min, max]
func (m Money) Clamp(min, max Money) Money {
	if m.LessThan(min) {
		return min
	}
	if m.GreaterThan(max) {
		return max
	}
	return m
}

// LessThan checks if this amount is less than another
func (m Money) LessThan(other Money) bool {
	return m.Decimal.LessThan(other.Decimal)
}

// GreaterThan checks if this amount is greater than another
func (m Money) GreaterThan(other Money) bool {
	return m.Decimal.GreaterThan(other.Decimal)
}

// String returns the string representation with proper formatting
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders en-US dollars with thousands separators, rounded half away from
// zero to precision places: 1064.8 is "$1,065" at WholeDollars and "$1,064.80" at Cents.
func (m Money) Format(precision int) string {
	if precision < 0 {
		precision = 0
	}
	rounded := m.Decimal.Round(int32(precision))
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}
	return sign + "$" + groupFixed(rounded, precision)
}

// FormatNumber renders a plain grouped number with the given decimal places
func FormatNumber(d decimal.Decimal, places int) string {
	if places < 0 {
		places = 0
	}
	rounded := d.Round(int32(places))
	if rounded.IsNegative() {
		return "-" + groupFixed(rounded.Neg(), places)
	}
	return groupFixed(rounded, places)
}

// groupFixed renders a non-negative amount with exactly places decimals and en-US
// thousands separators. The digits come from the decimal itself, so amounts past
// float64 precision keep every digit.
func groupFixed(d decimal.Decimal, places int) string {
	fixed := d.StringFixed(int32(places))
	whole, frac, _ := strings.Cut(fixed, ".")

	var grouped string
	if n, err := strconv.ParseInt(whole, 10, 64); err == nil {
		grouped = usPrinter.Sprintf("%d", n)
	} else {
		grouped = groupDigits(whole)
	}
	if frac == "" {
		return grouped
	}
	return grouped + "." + frac
}

// groupDigits inserts commas every three digits for values too large for int64
func groupDigits(digits string) string {
	var b strings.Builder
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
