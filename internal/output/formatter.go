package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/wellcalc/investment-calculator/internal/domain"
)

// ErrUnsupportedFormat is returned for report formats with no registered formatter.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// Formatter renders a scenario comparison. Implementations should be pure.
type Formatter interface {
	Format(results *domain.ScenarioComparison) ([]byte, error)
	// Name is the canonical format name used for lookup and in file names.
	Name() string
}

// FormatterFunc lets an ordinary function act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*domain.ScenarioComparison) ([]byte, error)
}

func (ff FormatterFunc) Format(r *domain.ScenarioComparison) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                                        { return ff.ID }

// registration pairs a formatter with the file extension its reports use
type registration struct {
	formatter Formatter
	ext       string
}

var (
	registryMu sync.RWMutex
	registry   = map[string]registration{}
)

func init() {
	for _, r := range []registration{
		{ConsoleVerboseFormatter{}, "txt"},
		{ConsoleFormatter{}, "txt"},
		{CSVSummarizer{}, "csv"},
		{CSVDetailedExporter{}, "csv"},
		{HTMLFormatter{}, "html"},
		{JSONFormatter{}, "json"},
		{MarkdownFormatter{}, "md"},
	} {
		if err := RegisterFormatter(r.formatter, r.ext); err != nil {
			panic(err)
		}
	}
}

// RegisterFormatter adds a formatter under its Name. Names are matched after
// normalization and must be unique.
func RegisterFormatter(f Formatter, ext string) error {
	name := strings.ToLower(strings.TrimSpace(f.Name()))
	if name == "" || name == FormatAll {
		return fmt.Errorf("invalid formatter name %q", f.Name())
	}
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		return fmt.Errorf("formatter %s: file extension is required", name)
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[name]; exists {
		return fmt.Errorf("formatter %s is already registered", name)
	}
	if _, isAlias := aliasMap[name]; isAlias {
		return fmt.Errorf("formatter %s collides with a format alias", name)
	}
	registry[name] = registration{formatter: f, ext: ext}
	return nil
}

func lookup(name string) (registration, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	r, ok := registry[NormalizeFormatName(name)]
	return r, ok
}

// GetFormatterByName fetches a registered formatter by name or alias.
func GetFormatterByName(name string) Formatter {
	if r, ok := lookup(name); ok {
		return r.formatter
	}
	return nil
}

// WriteFormatted runs a formatter and writes its output to a timestamped file in
// dir, named after the formatter. The timestamp is the comparison's GeneratedAt
// when set.
func WriteFormatted(f Formatter, results *domain.ScenarioComparison, dir, ext string) (string, error) {
	data, err := f.Format(results)
	if err != nil {
		return "", err
	}
	stamp := results.GeneratedAt
	if stamp.IsZero() {
		stamp = time.Now()
	}
	filename := filepath.Join(dir, fmt.Sprintf("wellcalc_report_%s_%s.%s", f.Name(), stamp.Format("20060102_150405"), ext))
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"console-verbose": "console",
	"verbose":         "console",
	"text":            "console",
	"summary":         "console-lite",
	"csv-detailed":    "detailed-csv",
	"csv-summary":     "csv",
	"html-report":     "html",
	"json-pretty":     "json",
	"md":              "markdown",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the registered formatter names, sorted.
func AvailableFormatterNames() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
