// Command rate_table prints the price ladders produced by the quote engine so the
// rate card can be checked against the published price sheet.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"github.com/quotecalc/service-quote/internal/calculation"
	"github.com/quotecalc/service-quote/internal/domain"
	"github.com/quotecalc/service-quote/internal/output"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func render(title string, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	fmt.Println(title)
	fmt.Println(t.Render())
	fmt.Println()
}

func main() {
	maxTotal := flag.Int("max-total", 400, "largest average transaction total to tabulate")
	step := flag.Int("step", 25, "transaction total step")
	flag.Parse()
	if *step <= 0 {
		fmt.Fprintln(os.Stderr, "step must be positive")
		os.Exit(2)
	}

	engine := calculation.NewQuoteEngine()

	// Checking accounts without a deposit-heavy mix, by list position.
	var accountRows [][]string
	for total := 0; total <= *maxTotal; total += *step {
		row := []string{fmt.Sprint(total)}
		for pos := 0; pos < 4; pos++ {
			rate := engine.Books.AccountRate(pos, domain.CategoryChecking, domain.Averages{Total: total})
			row = append(row, output.FormatCurrency(rate))
		}
		accountRows = append(accountRows, row)
	}
	render("Checking account rate by position", []string{"t/m", "1st", "2nd", "3rd", "4th+"}, accountRows)

	var payrollRows [][]string
	for n := 1; n <= 12; n++ {
		rate, _ := engine.Payroll.Rate(n)
		payrollRows = append(payrollRows, []string{fmt.Sprint(n), output.FormatCurrency(rate)})
	}
	render("Payroll rate by employees", []string{"employees", "rate"}, payrollRows)

	var salesTaxRows [][]string
	for counter := 1; counter <= 12; counter++ {
		salesTaxRows = append(salesTaxRows, []string{fmt.Sprint(counter), output.FormatCurrency(engine.SalesTax.UnitPrice(counter))})
	}
	render("Sales tax price per certificate by running count", []string{"certificate", "price"}, salesTaxRows)

	var discountRows [][]string
	for _, total := range []int64{659, 660, 990, 1320, 1650, 1980, 2310, 2640, 3000} {
		amount := decimal.NewFromInt(total)
		quote := engine.Annual.Pricing([]domain.PeriodRate{{Name: "Year", Rate: amount}})
		discountRows = append(discountRows, []string{
			output.FormatCurrency(amount),
			output.FormatPercentage(quote.DiscountPercentage),
			output.FormatCurrency(quote.DiscountAmount),
			output.FormatCurrency(quote.DiscountedRate),
		})
	}
	render("Annual discount ladder", []string{"total", "discount", "amount", "due"}, discountRows)
}
