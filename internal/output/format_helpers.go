package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quotecalc/service-quote/internal/calculation"
	"github.com/quotecalc/service-quote/internal/domain"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as USD. Whole amounts print without cents.
func FormatCurrency(amount decimal.Decimal) string {
	if amount.Equal(amount.Truncate(0)) {
		return "$" + amount.StringFixed(0)
	}
	return "$" + amount.StringFixed(2)
}

// FormatPercentage formats a fractional rate (0.09) as a whole percentage (9%).
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Shift(2).Round(0).String() + "%"
}

// AccountLabel renders the short account label used in quote text, e.g. "CK 1234".
func AccountLabel(a domain.AccountQuote) string {
	lastFour := a.LastFour
	if lastFour == "" {
		lastFour = "X"
	}
	return a.Category.Abbreviation() + " " + lastFour
}

// accountsOf returns the per-account detail of whichever quote the result carries.
func accountsOf(result *domain.QuoteResult) []domain.AccountQuote {
	switch {
	case result.Monthly != nil:
		return result.Monthly.Books.Accounts
	case result.Annual != nil:
		return result.Annual.Accounts
	default:
		return nil
	}
}

func activeMonths(a domain.AccountQuote) string {
	names := calculation.ActiveMonthNames(a)
	if len(names) == 0 {
		return ""
	}
	if len(names) == 1 {
		return names[0]
	}
	return names[0] + "-" + names[len(names)-1]
}

func intToString(i int) string { return strconv.Itoa(i) }

// ValidationProblems describes every flagged field, one line per account or row.
func ValidationProblems(v domain.ValidationReport) []string {
	var lines []string
	if v.YearMissing {
		lines = append(lines, "year is required for annual quotes")
	}
	for _, a := range v.Accounts {
		if len(a.Invalid) > 0 {
			lines = append(lines, fmt.Sprintf("account %d: %s", a.Position+1, strings.Join(a.Invalid.Keys(), ", ")))
		}
	}
	for _, p := range v.Payroll {
		if len(p.Invalid) > 0 {
			lines = append(lines, fmt.Sprintf("payroll row %d: %s", p.Index+1, strings.Join(p.Invalid.Keys(), ", ")))
		}
	}
	for _, s := range v.SalesTax {
		if len(s.Invalid) > 0 {
			lines = append(lines, fmt.Sprintf("sales tax row %d: %s", s.Index+1, strings.Join(s.Invalid.Keys(), ", ")))
		}
	}
	return lines
}
