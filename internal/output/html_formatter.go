package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/quotecalc/service-quote/internal/domain"
)

// HTMLFormatter produces a printable quote page.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/quote.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("quote").Funcs(template.FuncMap{
	"curr":   FormatCurrency,
	"pct":    FormatPercentage,
	"label":  AccountLabel,
	"months": activeMonths,
	"abbr":   domain.StateAbbreviation,
	"add":    func(i, j int) int { return i + j },
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(result *domain.QuoteResult) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.QuoteResult
		Accounts []domain.AccountQuote
		Problems []string
	}{result, accountsOf(result), ValidationProblems(result.Validation)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
