package output

import (
	"testing"

	"github.com/quotecalc/service-quote/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   decimal.Decimal
		want string
	}{
		{decimal.NewFromInt(1470), "$1470"},
		{decimal.Zero, "$0"},
		{decimal.RequireFromString("123.45"), "$123.45"},
		{decimal.RequireFromString("110.5"), "$110.50"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrency(tt.in))
	}
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "9%", FormatPercentage(decimal.RequireFromString("0.09")))
	assert.Equal(t, "25%", FormatPercentage(decimal.RequireFromString("0.25")))
	assert.Equal(t, "0%", FormatPercentage(decimal.Zero))
}

func TestAccountLabel(t *testing.T) {
	assert.Equal(t, "CK 1234", AccountLabel(domain.AccountQuote{Category: domain.CategoryChecking, LastFour: "1234"}))
	assert.Equal(t, "SA X", AccountLabel(domain.AccountQuote{Category: domain.CategorySavings}))
	assert.Equal(t, "CC 9", AccountLabel(domain.AccountQuote{Category: domain.CategoryCreditCard, LastFour: "9"}))
}

func TestActiveMonths(t *testing.T) {
	assert.Equal(t, "", activeMonths(domain.AccountQuote{}))
	assert.Equal(t, "March", activeMonths(domain.AccountQuote{AvailableMonths: []int{2}}))
	assert.Equal(t, "January-April", activeMonths(domain.AccountQuote{AvailableMonths: []int{0, 1, 2, 3}}))
}

func TestValidationProblems(t *testing.T) {
	report := domain.ValidationReport{
		YearMissing: true,
		Accounts: []domain.AccountValidation{
			{Position: 0, Invalid: domain.NewFieldSet()},
			{Position: 1, Invalid: domain.NewFieldSet("total_March", "bankName")},
		},
		Payroll:  []domain.RowValidation{{Index: 0, Invalid: domain.NewFieldSet("employees")}},
		SalesTax: []domain.RowValidation{{Index: 2, Invalid: domain.NewFieldSet("state")}},
	}

	assert.Equal(t, []string{
		"year is required for annual quotes",
		"account 2: bankName, total_March",
		"payroll row 1: employees",
		"sales tax row 3: state",
	}, ValidationProblems(report))
	assert.Empty(t, ValidationProblems(domain.ValidationReport{}))
}
