package calculation

import (
	"strings"
	"time"

	"github.com/quotecalc/service-quote/internal/domain"
	"github.com/quotecalc/service-quote/pkg/dateutil"
)

// newAccountWindow is how many recent months (current included) may start a new account
const newAccountWindow = 3

// DepositsEnabled reports whether deposit counts are collected for the account
func (bc *BooksCalculator) DepositsEnabled(category domain.Category, avgTotal int) bool {
	return category.ShowsDepositsChecks() && avgTotal > bc.Rules.DepositSplitThreshold
}

// ChecksEnabled reports whether check counts are collected for the account
func (bc *BooksCalculator) ChecksEnabled(category domain.Category, avgTotal int) bool {
	if !category.ShowsDepositsChecks() {
		return false
	}
	if category != domain.CategoryChecking && category != domain.CategorySavings {
		return false
	}
	return avgTotal > bc.Rules.ChecksThreshold
}

// RequiredFields returns the inputs an account must have filled in.
// The set depends on the averages computed from the data already entered, so callers
// re-run it after every edit until it stops changing.
func (bc *BooksCalculator) RequiredFields(account *domain.Account, avg domain.Averages, isNew bool, months []int) domain.FieldSet {
	required := domain.NewFieldSet(
		domain.FieldBankName,
		domain.FieldLastFour,
		domain.FieldCategory,
		domain.FieldStartingMonth,
	)
	if !account.Category.IsVolumeBased() || isNew {
		return required
	}

	deposits := bc.DepositsEnabled(account.Category, avg.Total)
	checks := bc.ChecksEnabled(account.Category, avg.Total)
	for _, m := range months {
		name := dateutil.MonthName(m)
		if account.Category.ShowsTotal() {
			required.Add(domain.PeriodFieldKey(domain.PeriodTotal, name))
		}
		if deposits {
			required.Add(domain.PeriodFieldKey(domain.PeriodDeposits, name))
		}
		if checks {
			required.Add(domain.PeriodFieldKey(domain.PeriodChecks, name))
		}
	}
	return required
}

// InvalidFields returns the required inputs that are missing or malformed.
// Totals must be positive numbers; deposits and checks must be numbers of at least zero.
func (bc *BooksCalculator) InvalidFields(account *domain.Account, required domain.FieldSet, months []int) domain.FieldSet {
	invalid := domain.NewFieldSet()

	if required.Has(domain.FieldBankName) && strings.TrimSpace(account.BankName) == "" {
		invalid.Add(domain.FieldBankName)
	}
	if required.Has(domain.FieldLastFour) && !validLastFour(account) {
		invalid.Add(domain.FieldLastFour)
	}
	if required.Has(domain.FieldCategory) && !account.Category.IsKnown() {
		invalid.Add(domain.FieldCategory)
	}
	if required.Has(domain.FieldStartingMonth) {
		if _, ok := dateutil.MonthIndex(account.StartingMonth); !ok {
			invalid.Add(domain.FieldStartingMonth)
		}
	}

	for _, m := range months {
		name := dateutil.MonthName(m)
		rec := account.Record(m)
		if key := domain.PeriodFieldKey(domain.PeriodTotal, name); required.Has(key) && !rec.Total.IsPositive() {
			invalid.Add(key)
		}
		if key := domain.PeriodFieldKey(domain.PeriodDeposits, name); required.Has(key) && !rec.Deposits.IsNonNegative() {
			invalid.Add(key)
		}
		if key := domain.PeriodFieldKey(domain.PeriodChecks, name); required.Has(key) && !rec.Checks.IsNonNegative() {
			invalid.Add(key)
		}
	}
	return invalid
}

func validLastFour(account *domain.Account) bool {
	digits := strings.TrimSpace(account.LastFour)
	if digits == "" || len(digits) > account.MaxLastFourDigits() {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ValidateAccount recomputes the account's averages from its current data and returns
// the full validation state for the account at position.
func (bc *BooksCalculator) ValidateAccount(position int, account *domain.Account, freq domain.Frequency, asOf time.Time) domain.AccountValidation {
	months := AvailableMonths(account, freq, asOf)
	avg := ComputeAverages(AccountRecords(account, months))
	effective := bc.EffectiveAverages(avg, account.IsNew)

	required := bc.RequiredFields(account, avg, account.IsNew, months)
	return domain.AccountValidation{
		Position:        position,
		Required:        required,
		Invalid:         bc.InvalidFields(account, required, months),
		DepositsEnabled: bc.DepositsEnabled(account.Category, effective.Total),
		ChecksEnabled:   bc.ChecksEnabled(account.Category, effective.Total),
		NewAvailable:    NewAccountAvailable(account.StartingMonth, asOf),
	}
}

// NewAccountAvailable reports whether the new-account option may be offered: the starting
// month must be one of the last three months, the current one included.
func NewAccountAvailable(startingMonth string, asOf time.Time) bool {
	idx, ok := dateutil.MonthIndex(startingMonth)
	if !ok {
		return false
	}
	return dateutil.WithinLastMonths(idx, asOf, newAccountWindow)
}

// ResolveRequiredFields returns the required inputs using the default price list
func ResolveRequiredFields(account *domain.Account, avg domain.Averages, isNew bool, months []int) domain.FieldSet {
	return defaultBooks.RequiredFields(account, avg, isNew, months)
}

// DepositsEnabled reports deposit collection using the default price list
func DepositsEnabled(category domain.Category, avgTotal int) bool {
	return defaultBooks.DepositsEnabled(category, avgTotal)
}

// ChecksEnabled reports check collection using the default price list
func ChecksEnabled(category domain.Category, avgTotal int) bool {
	return defaultBooks.ChecksEnabled(category, avgTotal)
}

// ValidatePayrollRow flags missing state, headcount or status
func ValidatePayrollRow(index int, row domain.PayrollRow) domain.RowValidation {
	invalid := domain.NewFieldSet()
	if strings.TrimSpace(row.State) == "" {
		invalid.Add(domain.FieldState)
	}
	if row.Employees.IsEmpty() {
		invalid.Add(domain.FieldEmployees)
	}
	if !row.Status.IsKnown() {
		invalid.Add(domain.FieldStatus)
	}
	return domain.RowValidation{Index: index, Invalid: invalid}
}

// ValidateSalesTaxRow flags missing state, certificate count or status
func ValidateSalesTaxRow(index int, row domain.SalesTaxRow) domain.RowValidation {
	invalid := domain.NewFieldSet()
	if strings.TrimSpace(row.State) == "" {
		invalid.Add(domain.FieldState)
	}
	if row.Certificates.IsEmpty() {
		invalid.Add(domain.FieldCertificates)
	}
	if !row.Status.IsKnown() {
		invalid.Add(domain.FieldStatus)
	}
	return domain.RowValidation{Index: index, Invalid: invalid}
}
