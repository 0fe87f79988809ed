package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status marks a payroll or sales-tax registration as new or existing
type Status string

const (
	StatusNew      Status = "New"
	StatusExisting Status = "Existing"
)

// IsKnown reports whether s is New or Existing
func (s Status) IsKnown() bool {
	return s == StatusNew || s == StatusExisting
}

// Frequency is the billing frequency of a quote
type Frequency string

const (
	FrequencyMonthly Frequency = "monthly"
	FrequencyAnnual  Frequency = "annual"
)

// IsAnnual reports whether the quote is billed yearly
func (f Frequency) IsAnnual() bool {
	return f == FrequencyAnnual
}

// PayrollRow is one state payroll registration
type PayrollRow struct {
	State     string `yaml:"state" json:"state"`
	Employees Count  `yaml:"employees" json:"employees"`
	Status    Status `yaml:"status" json:"status"`
}

// SalesTaxRow is one state sales-tax registration
type SalesTaxRow struct {
	State        string `yaml:"state" json:"state"`
	Certificates Count  `yaml:"certificates" json:"certificates"`
	Status       Status `yaml:"status" json:"status"`
}

// QuoteRequest is the raw input for a quote. It is owned by the caller; the engine only reads it.
type QuoteRequest struct {
	CompanyName  string        `yaml:"company_name,omitempty" json:"company_name,omitempty"`
	EmployeeName string        `yaml:"employee_name,omitempty" json:"employee_name,omitempty"`
	Frequency    Frequency     `yaml:"frequency" json:"frequency"`
	AsOf         time.Time     `yaml:"as_of,omitempty" json:"as_of,omitempty"`
	Year         int           `yaml:"year,omitempty" json:"year,omitempty"`
	Accounts     []Account     `yaml:"accounts" json:"accounts"`
	Payroll      []PayrollRow  `yaml:"payroll,omitempty" json:"payroll,omitempty"`
	SalesTax     []SalesTaxRow `yaml:"sales_tax,omitempty" json:"sales_tax,omitempty"`
}

// AccountQuote is the computed view of a single account
type AccountQuote struct {
	Position        int             `json:"position"`
	BankName        string          `json:"bank_name"`
	LastFour        string          `json:"last_four"`
	Category        Category        `json:"category"`
	StartingMonth   string          `json:"starting_month"`
	IsNew           bool            `json:"is_new"`
	Averages        Averages        `json:"averages"` // after the new-account override
	Rate            decimal.Decimal `json:"rate"`
	AvailableMonths []int           `json:"available_months"`
}

// BooksTotal is the bookkeeping line of a monthly quote
type BooksTotal struct {
	Accounts     []AccountQuote  `json:"accounts"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Total        decimal.Decimal `json:"total"`
	FloorApplied bool            `json:"floor_applied"`
}

// PayrollLine is the computed view of one payroll row. Has* flags mark values that are
// defined; undefined values render as blank.
type PayrollLine struct {
	State     string          `json:"state"`
	Employees int             `json:"employees"`
	Status    Status          `json:"status"`
	Rate      decimal.Decimal `json:"rate"`
	HasRate   bool            `json:"has_rate"`
	Setup     decimal.Decimal `json:"setup"`
	HasSetup  bool            `json:"has_setup"`
}

// SalesTaxLine is the computed view of one sales-tax row
type SalesTaxLine struct {
	State        string          `json:"state"`
	Certificates int             `json:"certificates"`
	Status       Status          `json:"status"`
	Rate         decimal.Decimal `json:"rate"`
	Setup        decimal.Decimal `json:"setup"`
	HasSetup     bool            `json:"has_setup"`
	CounterEnd   int             `json:"counter_end"` // running certificate count after this row
}

// MonthlyQuote is the monthly service quote
type MonthlyQuote struct {
	BooksRate        decimal.Decimal `json:"books_rate"`
	PayrollRate      decimal.Decimal `json:"payroll_rate"`
	PayrollSetup     decimal.Decimal `json:"payroll_setup"`
	SalesTaxRate     decimal.Decimal `json:"sales_tax_rate"`
	SalesTaxSetup    decimal.Decimal `json:"sales_tax_setup"`
	TotalSetup       decimal.Decimal `json:"total_setup"`
	TotalMonthlyRate decimal.Decimal `json:"total_monthly_rate"`
	EarliestMonth    string          `json:"earliest_month,omitempty"`
	LatestMonth      string          `json:"latest_month,omitempty"`
	Books            BooksTotal      `json:"books"`
	Payroll          []PayrollLine   `json:"payroll,omitempty"`
	SalesTax         []SalesTaxLine  `json:"sales_tax,omitempty"`
}

// PeriodRate is the floored books rate billed for one calendar month
type PeriodRate struct {
	Month int             `json:"month"`
	Name  string          `json:"name"`
	Rate  decimal.Decimal `json:"rate"`
}

// AnnualQuote is the yearly books quote with its volume discount
type AnnualQuote struct {
	Year               int             `json:"year,omitempty"`
	PerPeriodRates     []PeriodRate    `json:"per_period_rates"`
	TotalAnnualRate    decimal.Decimal `json:"total_annual_rate"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	DiscountAmount     decimal.Decimal `json:"discount_amount"`
	DiscountedRate     decimal.Decimal `json:"discounted_rate"`
	Accounts           []AccountQuote  `json:"accounts,omitempty"`
}

// QuoteResult bundles everything produced for one request
type QuoteResult struct {
	ID           string           `json:"id"`
	GeneratedAt  time.Time        `json:"generated_at"`
	CompanyName  string           `json:"company_name,omitempty"`
	EmployeeName string           `json:"employee_name,omitempty"`
	Frequency    Frequency        `json:"frequency"`
	Monthly      *MonthlyQuote    `json:"monthly,omitempty"`
	Annual       *AnnualQuote     `json:"annual,omitempty"`
	Validation   ValidationReport `json:"validation"`
}
