package decimal

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// CoerceNumber parses a form value the way a numeric input field does: surrounding
// whitespace is ignored, a leading "$" and thousands commas are accepted, and an empty
// or non-numeric value becomes zero.
func CoerceNumber(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// CoerceLeadingInt parses the leading integer of a value after removing commas,
// ignoring whatever follows the digits: "250,000abc" is 250000, "12.9" is 12 and
// "abc" is 0. Values past the int64 range saturate at math.MaxInt64 or math.MinInt64.
func CoerceLeadingInt(raw string) int64 {
	s := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		if s[0] == '-' {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	if err != nil {
		return 0
	}
	return n
}

var (
	maxInt = decimal.NewFromInt(math.MaxInt)
	minInt = decimal.NewFromInt(math.MinInt)
)

// CoerceInt parses a whole-number form value, truncating any fraction and
// saturating at the int range
func CoerceInt(raw string) int {
	d := CoerceNumber(raw).Truncate(0)
	if d.GreaterThan(maxInt) {
		return math.MaxInt
	}
	if d.LessThan(minInt) {
		return math.MinInt
	}
	return int(d.IntPart())
}
