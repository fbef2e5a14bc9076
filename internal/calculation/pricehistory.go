package calculation

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// PricePoint is one year's average realized prices
type PricePoint struct {
	Year     int             `json:"year"`
	OilPrice decimal.Decimal `json:"oil_price"`
	GasPrice decimal.Decimal `json:"gas_price"`
}

// PriceStatistics provides a statistical summary of one price series
type PriceStatistics struct {
	Mean   decimal.Decimal `json:"mean"`
	StdDev decimal.Decimal `json:"std_dev"`
	Min    decimal.Decimal `json:"min"`
	Max    decimal.Decimal `json:"max"`
	Count  int             `json:"count"`
}

// PriceChange is the ratio of a year's prices to the year before
type PriceChange struct {
	Year int             `json:"year"`
	Oil  decimal.Decimal `json:"oil"`
	Gas  decimal.Decimal `json:"gas"`
}

// PriceHistory holds yearly oil and gas prices loaded from CSV
type PriceHistory struct {
	Source       string          `json:"source"`
	Points       []PricePoint    `json:"points"`
	Oil          PriceStatistics `json:"oil"`
	Gas          PriceStatistics `json:"gas"`
	MissingYears []int           `json:"missing_years"`
}

// extreme yearly moves flagged by ValidateDataQuality
var (
	extremeRise = decimal.NewFromInt(3)
	extremeFall = decimal.NewFromInt(1).Div(decimal.NewFromInt(3))
)

// LoadPriceHistory loads a price history from a CSV file with year, oil price and
// gas price columns
func LoadPriceHistory(filePath string) (*PriceHistory, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	defer file.Close()

	return ParsePriceHistory(file, filePath)
}

// ParsePriceHistory reads a price history from CSV. The first row is a header.
// Rows with an unparseable year or price are skipped.
func ParsePriceHistory(r io.Reader, source string) (*PriceHistory, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if len(header) < 3 {
		return nil, fmt.Errorf("invalid CSV format: expected year, oil and gas columns, got %d", len(header))
	}

	seen := make(map[int]bool)
	var points []PricePoint
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read data row: %w", err)
		}
		if len(record) < 3 {
			continue
		}

		year, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil {
			continue
		}
		oil, err := decimal.NewFromString(strings.TrimSpace(record[1]))
		if err != nil {
			continue
		}
		gas, err := decimal.NewFromString(strings.TrimSpace(record[2]))
		if err != nil {
			continue
		}
		if seen[year] {
			return nil, fmt.Errorf("duplicate year %d in %s", year, source)
		}
		seen[year] = true
		points = append(points, PricePoint{Year: year, OilPrice: oil, GasPrice: gas})
	}

	if len(points) < 2 {
		return nil, fmt.Errorf("need at least two years of prices in %s, found %d", source, len(points))
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Year < points[j].Year })

	oil := make([]decimal.Decimal, len(points))
	gas := make([]decimal.Decimal, len(points))
	for i, p := range points {
		oil[i] = p.OilPrice
		gas[i] = p.GasPrice
	}

	var missing []int
	for i := 1; i < len(points); i++ {
		for year := points[i-1].Year + 1; year < points[i].Year; year++ {
			missing = append(missing, year)
		}
	}

	return &PriceHistory{
		Source:       source,
		Points:       points,
		Oil:          calculatePriceStatistics(oil),
		Gas:          calculatePriceStatistics(gas),
		MissingYears: missing,
	}, nil
}

func calculatePriceStatistics(values []decimal.Decimal) PriceStatistics {
	if len(values) == 0 {
		return PriceStatistics{}
	}

	count := decimal.NewFromInt(int64(len(values)))
	sum := decimal.Zero
	lo, hi := values[0], values[0]
	for _, v := range values {
		sum = sum.Add(v)
		lo = decimal.Min(lo, v)
		hi = decimal.Max(hi, v)
	}
	mean := sum.Div(count)

	varianceSum := decimal.Zero
	for _, v := range values {
		diff := v.Sub(mean)
		varianceSum = varianceSum.Add(diff.Mul(diff))
	}
	// population variance; sqrt goes through float64
	variance, _ := varianceSum.Div(count).Float64()

	return PriceStatistics{
		Mean:   mean,
		StdDev: decimal.NewFromFloat(math.Sqrt(variance)),
		Min:    lo,
		Max:    hi,
		Count:  len(values),
	}
}

// Changes returns the price ratios between consecutive years. Gaps in the
// history and years following a non-positive price are skipped.
func (h *PriceHistory) Changes() []PriceChange {
	var changes []PriceChange
	for i := 1; i < len(h.Points); i++ {
		prev, cur := h.Points[i-1], h.Points[i]
		if cur.Year != prev.Year+1 || !prev.OilPrice.IsPositive() || !prev.GasPrice.IsPositive() {
			continue
		}
		changes = append(changes, PriceChange{
			Year: cur.Year,
			Oil:  cur.OilPrice.Div(prev.OilPrice),
			Gas:  cur.GasPrice.Div(prev.GasPrice),
		})
	}
	return changes
}

// ValidateDataQuality reports gaps, non-positive prices and extreme yearly moves
func (h *PriceHistory) ValidateDataQuality() []string {
	var issues []string

	if len(h.MissingYears) > 0 {
		issues = append(issues, fmt.Sprintf("Missing years in price history: %v", h.MissingYears))
	}
	for _, p := range h.Points {
		if !p.OilPrice.IsPositive() {
			issues = append(issues, fmt.Sprintf("Non-positive oil price for year %d: %s", p.Year, p.OilPrice))
		}
		if !p.GasPrice.IsPositive() {
			issues = append(issues, fmt.Sprintf("Non-positive gas price for year %d: %s", p.Year, p.GasPrice))
		}
	}
	for _, c := range h.Changes() {
		if c.Oil.GreaterThan(extremeRise) || c.Oil.LessThan(extremeFall) {
			issues = append(issues, fmt.Sprintf("Extreme oil price move in %d: x%s", c.Year, c.Oil.StringFixed(2)))
		}
		if c.Gas.GreaterThan(extremeRise) || c.Gas.LessThan(extremeFall) {
			issues = append(issues, fmt.Sprintf("Extreme gas price move in %d: x%s", c.Year, c.Gas.StringFixed(2)))
		}
	}
	return issues
}
