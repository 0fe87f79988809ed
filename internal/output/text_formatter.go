package output

import (
	"bytes"
	"fmt"

	"github.com/quotecalc/service-quote/internal/domain"
)

// TextFormatter renders the plain-text quote summary that staff paste into client notes.
type TextFormatter struct{}

func (t TextFormatter) Name() string { return "text" }

func (t TextFormatter) Format(result *domain.QuoteResult) ([]byte, error) {
	var buf bytes.Buffer
	switch {
	case result.Annual != nil:
		writeAnnualText(&buf, result.Annual)
	case result.Monthly != nil:
		writeMonthlyText(&buf, result.Monthly)
	default:
		return nil, fmt.Errorf("quote %s has no pricing", result.ID)
	}
	return buf.Bytes(), nil
}

func writeAccountLines(buf *bytes.Buffer, accounts []domain.AccountQuote) {
	for _, a := range accounts {
		fmt.Fprintf(buf, "• %s - %d t/m\n", AccountLabel(a), a.Averages.Total)
	}
}

func writeNotes(buf *bytes.Buffer) {
	fmt.Fprintln(buf, "\nCost of Services Adjustment:\n• (provide details)")
	fmt.Fprintln(buf, "\nInternal Notes:\n• (provide details)")
	fmt.Fprintln(buf, "\nBilling: (Please delete any fields that are not relevant)")
}

func writeAnnualText(buf *bytes.Buffer, q *domain.AnnualQuote) {
	fmt.Fprintf(buf, "Quote:\nBooks - %s\n", FormatCurrency(q.DiscountedRate))
	writeAccountLines(buf, q.Accounts)
	writeNotes(buf)

	fmt.Fprintf(buf, "+ Total Quote Amount: %s\n", FormatCurrency(q.TotalAnnualRate))
	if q.DiscountPercentage.IsPositive() {
		fmt.Fprintf(buf, "- Annual Discount: %s (%s)\n", FormatCurrency(q.DiscountAmount), FormatPercentage(q.DiscountPercentage))
	} else {
		fmt.Fprintf(buf, "- Annual Discount: %s\n", FormatCurrency(q.DiscountAmount))
	}
	fmt.Fprintln(buf, "- Amount Paid: $")
	fmt.Fprintf(buf, "= Total Amount Due Today: %s\n", FormatCurrency(q.DiscountedRate))
}

func writeMonthlyText(buf *bytes.Buffer, q *domain.MonthlyQuote) {
	fmt.Fprintf(buf, "Quote:\nBooks - %s\n", FormatCurrency(q.BooksRate))
	if q.EarliestMonth != "" {
		fmt.Fprintf(buf, "Starting Month: %s\n", q.EarliestMonth)
	}
	writeAccountLines(buf, q.Books.Accounts)

	if q.SalesTaxRate.IsPositive() {
		fmt.Fprintf(buf, "\nSales Tax - %s\nStarting Month:\n", FormatCurrency(q.SalesTaxRate))
		if len(q.SalesTax) == 0 {
			fmt.Fprintln(buf, "• STATE, Existing / New")
		}
		// One bullet per certificate.
		for _, line := range q.SalesTax {
			for i := 0; i < line.Certificates; i++ {
				fmt.Fprintf(buf, "• %s, %s\n", domain.StateAbbreviation(line.State), line.Status)
			}
		}
	}

	if q.PayrollRate.IsPositive() {
		fmt.Fprintf(buf, "\nPayroll - %s\nStarting Month:\n", FormatCurrency(q.PayrollRate))
		if len(q.Payroll) == 0 {
			fmt.Fprintln(buf, "• X Employees, STATE, Existing / New Account")
		}
		for _, line := range q.Payroll {
			fmt.Fprintf(buf, "• %d Employees, %s, %s Account\n", line.Employees, domain.StateAbbreviation(line.State), line.Status)
		}
	}

	writeNotes(buf)
	fmt.Fprintln(buf, "+ Cost of Services Adjustment: $")
	fmt.Fprintln(buf, "• [Cost since start date]")
	if q.PayrollSetup.IsPositive() {
		fmt.Fprintf(buf, "+ Payroll Set Up: %s\n", FormatCurrency(q.PayrollSetup))
	}
	if q.SalesTaxSetup.IsPositive() {
		fmt.Fprintf(buf, "+ Sales Tax Set Up: %s\n", FormatCurrency(q.SalesTaxSetup))
	}
	fmt.Fprintln(buf, "- Discounts: $")
	fmt.Fprintln(buf, "= Total Amount Due Today: $")
	fmt.Fprintf(buf, "\nMonthly Rate - All Services: %s\n", FormatCurrency(q.TotalMonthlyRate))
}
