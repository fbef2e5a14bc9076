package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/wellcalc/investment-calculator/internal/domain"
)

// FormatAll writes every registered formatter
const FormatAll = "all"

// GenerateReport writes the comparison in the named format to a timestamped file
// under dir and returns the paths written. "all" writes every format.
func GenerateReport(results *domain.ScenarioComparison, format, dir string) ([]string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	if NormalizeFormatName(format) == FormatAll {
		names := AvailableFormatterNames()
		paths := make([]string, 0, len(names))
		for _, name := range names {
			r, _ := lookup(name)
			path, err := WriteFormatted(r.formatter, results, dir, r.ext)
			if err != nil {
				return paths, fmt.Errorf("%s report: %w", name, err)
			}
			paths = append(paths, path)
		}
		return paths, nil
	}

	r, ok := lookup(format)
	if !ok {
		// enrich error with available formatters and aliases
		return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	path, err := WriteFormatted(r.formatter, results, dir, r.ext)
	if err != nil {
		return nil, fmt.Errorf("%s report: %w", r.formatter.Name(), err)
	}
	return []string{path}, nil
}
