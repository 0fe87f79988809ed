package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/quotecalc/service-quote/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(result *domain.QuoteResult) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*domain.QuoteResult) ([]byte, error)
}

func (ff FormatterFunc) Format(r *domain.QuoteResult) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                                 { return ff.ID }

// WriteFormatted runs a formatter and writes output to a timestamped file in dir.
func WriteFormatted(f Formatter, result *domain.QuoteResult, dir, ext string) (string, error) {
	data, err := f.Format(result)
	if err != nil {
		return "", err
	}
	ts := result.GeneratedAt
	if ts.IsZero() {
		ts = time.Now()
	}
	filename := filepath.Join(dir, fmt.Sprintf("service_quote_%s.%s", ts.Format("20060102_150405"), ext))
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVFormatter{},
	HTMLFormatter{},
	JSONFormatter{},
	TextFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"pretty":      "console",
	"terminal":    "console",
	"clipboard":   "text",
	"txt":         "text",
	"quote-text":  "text",
	"json-pretty": "json",
	"html-report": "html",
	"print":       "html",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
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
