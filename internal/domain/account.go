package domain

import (
	"sort"
	"strings"

	"github.com/quotecalc/service-quote/pkg/dateutil"
)

// Category classifies a bookkeeping account
type Category string

const (
	CategoryChecking   Category = "Checking"
	CategorySavings    Category = "Savings"
	CategoryCreditCard Category = "Credit Card"
	CategoryJobox      Category = "Jobox"
	CategoryPaypal     Category = "Paypal"
	CategoryAmazon     Category = "Amazon"
)

// Categories lists every supported category in display order
var Categories = []Category{
	CategoryChecking,
	CategorySavings,
	CategoryCreditCard,
	CategoryJobox,
	CategoryPaypal,
	CategoryAmazon,
}

// IsKnown reports whether c is one of the supported categories
func (c Category) IsKnown() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

// IsFlatFee reports categories billed a fixed monthly fee
func (c Category) IsFlatFee() bool {
	return c == CategoryJobox || c == CategoryPaypal || c == CategoryAmazon
}

// IsVolumeBased reports categories billed from transaction volume
func (c Category) IsVolumeBased() bool {
	return c.IsKnown() && !c.IsFlatFee()
}

// ShowsDepositsChecks reports categories that collect deposit and check counts
func (c Category) ShowsDepositsChecks() bool {
	return c == CategoryChecking || c == CategorySavings
}

// ShowsTotal reports categories that collect a monthly transaction total
func (c Category) ShowsTotal() bool {
	return c == CategoryChecking || c == CategorySavings || c == CategoryCreditCard
}

// Abbreviation returns the short code used in quote text.
// Unrecognized categories fall back to CK.
func (c Category) Abbreviation() string {
	lower := strings.ToLower(string(c))
	switch {
	case strings.Contains(lower, "checking"):
		return "CK"
	case strings.Contains(lower, "savings"):
		return "SA"
	case strings.Contains(lower, "credit"):
		return "CC"
	default:
		return "CK"
	}
}

// PeriodRecord holds the counts entered for one month
type PeriodRecord struct {
	Total    Count `yaml:"total,omitempty" json:"total,omitempty"`
	Deposits Count `yaml:"deposits,omitempty" json:"deposits,omitempty"`
	Checks   Count `yaml:"checks,omitempty" json:"checks,omitempty"`
}

// Account is one bank or merchant account on the quote
type Account struct {
	BankName       string                  `yaml:"bank_name" json:"bank_name"`
	LastFour       string                  `yaml:"last_four" json:"last_four"`
	Category       Category                `yaml:"category" json:"category"`
	StartingMonth  string                  `yaml:"starting_month" json:"starting_month"`
	ExcludedMonths []int                   `yaml:"excluded_months,omitempty" json:"excluded_months,omitempty"`
	Records        map[string]PeriodRecord `yaml:"records,omitempty" json:"records,omitempty"` // keyed by month name
	IsNew          bool                    `yaml:"is_new,omitempty" json:"is_new,omitempty"`
}

// StartingMonthIndex returns the 0-based starting month (January when unset)
func (a *Account) StartingMonthIndex() int {
	return dateutil.StartingMonthIndex(a.StartingMonth)
}

// Record returns the counts entered for a month. Missing months yield an empty record.
func (a *Account) Record(month int) PeriodRecord {
	name := dateutil.MonthName(month)
	if name == "" {
		return PeriodRecord{}
	}
	if r, ok := a.Records[name]; ok {
		return r
	}
	for key, r := range a.Records {
		if idx, ok := dateutil.MonthIndex(key); ok && idx == month {
			return r
		}
	}
	return PeriodRecord{}
}

// SetRecord stores counts for a month under its canonical name
func (a *Account) SetRecord(month int, r PeriodRecord) {
	name := dateutil.MonthName(month)
	if name == "" {
		return
	}
	if a.Records == nil {
		a.Records = make(map[string]PeriodRecord)
	}
	a.Records[name] = r
}

// IsExcluded reports whether a month was dropped from the account
func (a *Account) IsExcluded(month int) bool {
	for _, m := range a.ExcludedMonths {
		if m == month {
			return true
		}
	}
	return false
}

// ExcludeFrom drops month and every later month. Exclusions only ever grow.
func (a *Account) ExcludeFrom(month int) {
	if month < 0 || month >= dateutil.MonthsPerYear {
		return
	}
	for m := month; m < dateutil.MonthsPerYear; m++ {
		if !a.IsExcluded(m) {
			a.ExcludedMonths = append(a.ExcludedMonths, m)
		}
	}
	sort.Ints(a.ExcludedMonths)
}

// IsEmpty reports an account with no identity fields filled in
func (a *Account) IsEmpty() bool {
	return a.BankName == "" && a.LastFour == "" && a.Category == "" && a.StartingMonth == ""
}

// HasData reports whether anything meaningful was entered
func (a *Account) HasData() bool {
	return a.BankName != "" || a.LastFour != "" ||
		(a.Category != "" && a.Category != CategoryChecking) ||
		a.StartingMonth != "" || len(a.Records) > 0
}

// MaxLastFourDigits returns the identifier length accepted for the bank
func (a *Account) MaxLastFourDigits() int {
	if strings.Contains(strings.ToLower(a.BankName), "american express") {
		return 5
	}
	return 4
}

// Averages are per-month transaction counts, each rounded up to a multiple of 5
type Averages struct {
	Total    int `yaml:"total" json:"total"`
	Deposits int `yaml:"deposits" json:"deposits"`
	Checks   int `yaml:"checks" json:"checks"`
}
