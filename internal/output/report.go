package output

import (
	"errors"
	"fmt"
	"strings"

	"github.com/quotecalc/service-quote/internal/domain"
)

// ErrUnsupportedFormat is returned for format names no formatter answers to.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// extensions maps formatter names to file extensions
var extensions = map[string]string{
	"console": "console.txt",
	"text":    "txt",
	"csv":     "csv",
	"json":    "json",
	"html":    "html",
}

// Render formats a quote with the named formatter.
func Render(result *domain.QuoteResult, format string) ([]byte, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupported(format)
	}
	return f.Format(result)
}

// GenerateReport writes the quote to a timestamped file in dir and returns its path.
// "all" writes every registered format.
func GenerateReport(result *domain.QuoteResult, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var paths []string
		for _, f := range builtInFormatters {
			path, err := WriteFormatted(f, result, dir, extensions[f.Name()])
			if err != nil {
				return paths, fmt.Errorf("failed to write %s report: %w", f.Name(), err)
			}
			paths = append(paths, path)
		}
		return paths, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupported(format)
	}
	path, err := WriteFormatted(f, result, dir, extensions[f.Name()])
	if err != nil {
		return nil, fmt.Errorf("failed to write %s report: %w", f.Name(), err)
	}
	return []string{path}, nil
}

// unsupported enriches the error with available formatters and aliases
func unsupported(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}
