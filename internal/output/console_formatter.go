package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/quotecalc/service-quote/internal/domain"
)

const (
	colorText    lipgloss.Color = "#cdd6f4"
	colorSubtext lipgloss.Color = "#a6adc8"
	colorOverlay lipgloss.Color = "#7f849c"
	colorBlue    lipgloss.Color = "#89b4fa"
	colorGreen   lipgloss.Color = "#a6e3a1"
	colorPeach   lipgloss.Color = "#fab387"
	colorRed     lipgloss.Color = "#f38ba8"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
	sectionStyle = lipgloss.NewStyle().Foreground(colorPeach).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(colorSubtext).Width(28)
	valueStyle   = lipgloss.NewStyle().Foreground(colorText).Align(lipgloss.Right).Width(10)
	totalStyle   = lipgloss.NewStyle().Foreground(colorGreen).Bold(true).Align(lipgloss.Right).Width(10)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorOverlay)
	errorStyle   = lipgloss.NewStyle().Foreground(colorRed)
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorOverlay).Padding(0, 1)
)

// ConsoleFormatter renders a styled terminal summary of the quote.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.QuoteResult) ([]byte, error) {
	var lines []string

	title := "SERVICE QUOTE"
	if result.CompanyName != "" {
		title += " · " + result.CompanyName
	}
	lines = append(lines, titleStyle.Render(title))
	if result.EmployeeName != "" {
		lines = append(lines, mutedStyle.Render("Prepared by "+result.EmployeeName))
	}
	lines = append(lines, "")

	lines = append(lines, sectionStyle.Render("Accounts"))
	for _, a := range accountsOf(result) {
		detail := fmt.Sprintf("%d t/m", a.Averages.Total)
		if a.Category.IsFlatFee() {
			detail = "flat fee"
		}
		if a.IsNew {
			detail += ", new"
		}
		label := fmt.Sprintf("%d. %s (%s)", a.Position+1, AccountLabel(a), detail)
		lines = append(lines, row(label, FormatCurrency(a.Rate), valueStyle))
		if months := activeMonths(a); months != "" {
			lines = append(lines, mutedStyle.Render("   "+months))
		}
	}
	lines = append(lines, "")

	switch {
	case result.Monthly != nil:
		lines = append(lines, monthlyLines(result.Monthly)...)
	case result.Annual != nil:
		lines = append(lines, annualLines(result.Annual)...)
	}

	if problems := validationLines(result.Validation); len(problems) > 0 {
		lines = append(lines, "", sectionStyle.Render("Needs attention"))
		lines = append(lines, problems...)
	}

	var buf bytes.Buffer
	buf.WriteString(boxStyle.Render(strings.Join(lines, "\n")))
	buf.WriteString("\n")
	return buf.Bytes(), nil
}

func row(label, value string, style lipgloss.Style) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), style.Render(value))
}

func monthlyLines(q *domain.MonthlyQuote) []string {
	lines := []string{sectionStyle.Render("Monthly")}
	books := FormatCurrency(q.BooksRate)
	if q.Books.FloorApplied {
		books += "*"
	}
	lines = append(lines, row("Books", books, valueStyle))
	for _, p := range q.Payroll {
		lines = append(lines, row(fmt.Sprintf("Payroll %s (%d)", domain.StateAbbreviation(p.State), p.Employees), FormatCurrency(p.Rate), valueStyle))
	}
	for _, s := range q.SalesTax {
		lines = append(lines, row(fmt.Sprintf("Sales tax %s (%d)", domain.StateAbbreviation(s.State), s.Certificates), FormatCurrency(s.Rate), valueStyle))
	}
	lines = append(lines,
		row("Monthly rate", FormatCurrency(q.TotalMonthlyRate), totalStyle),
		row("Setup fees", FormatCurrency(q.TotalSetup), totalStyle),
	)
	if q.Books.FloorApplied {
		lines = append(lines, mutedStyle.Render("* books minimum applied"))
	}
	if q.EarliestMonth != "" {
		lines = append(lines, mutedStyle.Render("Service months: "+q.EarliestMonth+"-"+q.LatestMonth))
	}
	return lines
}

func annualLines(q *domain.AnnualQuote) []string {
	heading := "Annual"
	if q.Year != 0 {
		heading = fmt.Sprintf("Annual %d", q.Year)
	}
	lines := []string{sectionStyle.Render(heading)}
	for _, pr := range q.PerPeriodRates {
		lines = append(lines, row(pr.Name, FormatCurrency(pr.Rate), valueStyle))
	}
	discount := "Discount"
	if q.DiscountPercentage.IsPositive() {
		discount += " (" + FormatPercentage(q.DiscountPercentage) + ")"
	}
	lines = append(lines,
		row("Total", FormatCurrency(q.TotalAnnualRate), totalStyle),
		row(discount, "-"+FormatCurrency(q.DiscountAmount), valueStyle),
		row("Due", FormatCurrency(q.DiscountedRate), totalStyle),
	)
	return lines
}

func validationLines(v domain.ValidationReport) []string {
	plain := ValidationProblems(v)
	lines := make([]string, 0, len(plain))
	for _, p := range plain {
		lines = append(lines, errorStyle.Render(p))
	}
	return lines
}
