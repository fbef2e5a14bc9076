package output

import (
	"bytes"
	"encoding/json"

	"github.com/wellcalc/investment-calculator/internal/domain"
)

// JSONFormatter writes the comparison as indented JSON. Decimals are quoted
// strings so amounts survive without float rounding.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(results); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
