package output

import (
	"bytes"
	"encoding/csv"

	"github.com/quotecalc/service-quote/internal/domain"
)

// CSVFormatter exports quote lines, one row per priced item.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(result *domain.QuoteResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Section", "Item", "Detail", "Rate", "Setup"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	var rows [][]string
	for _, a := range accountsOf(result) {
		rows = append(rows, []string{"books", AccountLabel(a), intToString(a.Averages.Total) + " t/m", a.Rate.StringFixed(2), ""})
	}

	switch {
	case result.Monthly != nil:
		q := result.Monthly
		rows = append(rows, []string{"books", "total", "", q.BooksRate.StringFixed(2), ""})
		for _, p := range q.Payroll {
			rows = append(rows, []string{"payroll", p.State, intToString(p.Employees) + " employees " + string(p.Status), p.Rate.StringFixed(2), optional(p.Setup.StringFixed(2), p.HasSetup)})
		}
		for _, s := range q.SalesTax {
			rows = append(rows, []string{"sales_tax", s.State, intToString(s.Certificates) + " certificates " + string(s.Status), s.Rate.StringFixed(2), optional(s.Setup.StringFixed(2), s.HasSetup)})
		}
		rows = append(rows, []string{"total", "monthly", "", q.TotalMonthlyRate.StringFixed(2), q.TotalSetup.StringFixed(2)})
	case result.Annual != nil:
		q := result.Annual
		for _, pr := range q.PerPeriodRates {
			rows = append(rows, []string{"annual", pr.Name, "", pr.Rate.StringFixed(2), ""})
		}
		rows = append(rows,
			[]string{"total", "annual", "", q.TotalAnnualRate.StringFixed(2), ""},
			[]string{"total", "discount", FormatPercentage(q.DiscountPercentage), q.DiscountAmount.Neg().StringFixed(2), ""},
			[]string{"total", "due", "", q.DiscountedRate.StringFixed(2), ""},
		)
	}

	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func optional(value string, ok bool) string {
	if !ok {
		return ""
	}
	return value
}
