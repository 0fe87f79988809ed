package calculation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/quotecalc/service-quote/internal/domain"
	"github.com/quotecalc/service-quote/pkg/dateutil"
)

// QuoteEngine orchestrates all quote calculations. It holds no per-request state,
// so one engine can serve concurrent callers.
type QuoteEngine struct {
	Books    *BooksCalculator
	Payroll  *PayrollCalculator
	SalesTax *SalesTaxCalculator
	Annual   *AnnualCalculator
	Logger   Logger
	Now      func() time.Time
	NewID    func() string
}

// NewQuoteEngine creates a quote engine with the default price list
func NewQuoteEngine() *QuoteEngine {
	return NewQuoteEngineWithRules(domain.DefaultPricingRules())
}

// NewQuoteEngineWithRules creates a quote engine with a custom price list
func NewQuoteEngineWithRules(rules domain.PricingRules) *QuoteEngine {
	books := NewBooksCalculatorWithRules(rules.Books)
	return &QuoteEngine{
		Books:    books,
		Payroll:  &PayrollCalculator{Rules: rules.Payroll},
		SalesTax: &SalesTaxCalculator{Rules: rules.SalesTax},
		Annual:   &AnnualCalculator{Books: books, Rules: rules.Annual},
		Logger:   NopLogger{},
		Now:      time.Now,
		NewID:    uuid.NewString,
	}
}

// SetLogger sets the logger for the quote engine. If nil is provided, a no-op logger is used.
func (qe *QuoteEngine) SetLogger(l Logger) {
	if l == nil {
		qe.Logger = NopLogger{}
		return
	}
	qe.Logger = l
}

// asOf returns the reference date of the request, defaulting to now
func (qe *QuoteEngine) asOf(req *domain.QuoteRequest) time.Time {
	if !req.AsOf.IsZero() {
		return req.AsOf
	}
	return qe.Now()
}

func frequencyOf(req *domain.QuoteRequest) domain.Frequency {
	if req.Frequency == domain.FrequencyAnnual {
		return domain.FrequencyAnnual
	}
	return domain.FrequencyMonthly
}

// MonthlyQuote prices books, payroll and sales tax for a monthly engagement
func (qe *QuoteEngine) MonthlyQuote(req *domain.QuoteRequest) *domain.MonthlyQuote {
	asOf := qe.asOf(req)
	books := qe.Books.Total(req.Accounts, domain.FrequencyMonthly, asOf)
	for _, a := range books.Accounts {
		qe.Logger.Debugf("account %d (%s %s): averages=%+v rate=%s", a.Position, a.Category, a.LastFour, a.Averages, a.Rate)
	}
	if books.FloorApplied {
		qe.Logger.Infof("books subtotal %s raised to monthly minimum %s", books.Subtotal, books.Total)
	}

	payroll, payrollRate, payrollSetup := qe.Payroll.Lines(req.Payroll)
	salesTax, salesTaxRate, salesTaxSetup := qe.SalesTax.Lines(req.SalesTax)

	quote := &domain.MonthlyQuote{
		BooksRate:        books.Total,
		PayrollRate:      payrollRate,
		PayrollSetup:     payrollSetup,
		SalesTaxRate:     salesTaxRate,
		SalesTaxSetup:    salesTaxSetup,
		TotalSetup:       payrollSetup.Add(salesTaxSetup),
		TotalMonthlyRate: books.Total.Add(payrollRate).Add(salesTaxRate),
		Books:            books,
		Payroll:          payroll,
		SalesTax:         salesTax,
	}

	// The quoted service window spans every month any account is active in the year.
	rates, _ := qe.Annual.PeriodRates(req.Accounts, asOf)
	if len(rates) > 0 {
		quote.EarliestMonth = rates[0].Name
		quote.LatestMonth = rates[len(rates)-1].Name
	}
	return quote
}

// AnnualQuote prices books for a yearly engagement. Payroll and sales tax are billed
// monthly only and are ignored here.
func (qe *QuoteEngine) AnnualQuote(req *domain.QuoteRequest) *domain.AnnualQuote {
	quote := qe.Annual.Quote(req.Accounts, qe.asOf(req))
	quote.Year = req.Year
	if !quote.DiscountAmount.IsZero() {
		qe.Logger.Infof("annual total %s discounted %s%% to %s", quote.TotalAnnualRate, quote.DiscountPercentage.Shift(2), quote.DiscountedRate)
	}
	return &quote
}

// Validate resolves required and invalid fields for every account and row.
// Averages are recomputed from the current data on every call.
func (qe *QuoteEngine) Validate(req *domain.QuoteRequest) domain.ValidationReport {
	asOf := qe.asOf(req)
	freq := frequencyOf(req)

	report := domain.ValidationReport{Accounts: make([]domain.AccountValidation, 0, len(req.Accounts))}
	for i := range req.Accounts {
		report.Accounts = append(report.Accounts, qe.Books.ValidateAccount(i, &req.Accounts[i], freq, asOf))
	}

	if freq.IsAnnual() {
		report.YearMissing = req.Year == 0
		return report
	}
	for i, row := range req.Payroll {
		report.Payroll = append(report.Payroll, ValidatePayrollRow(i, row))
	}
	for i, row := range req.SalesTax {
		report.SalesTax = append(report.SalesTax, ValidateSalesTaxRow(i, row))
	}
	return report
}

// RunQuote validates and prices a request for its billing frequency
func (qe *QuoteEngine) RunQuote(ctx context.Context, req *domain.QuoteRequest) (*domain.QuoteResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	freq := frequencyOf(req)
	result := &domain.QuoteResult{
		ID:           qe.NewID(),
		GeneratedAt:  qe.Now(),
		CompanyName:  req.CompanyName,
		EmployeeName: req.EmployeeName,
		Frequency:    freq,
		Validation:   qe.Validate(req),
	}
	if !result.Validation.Valid() {
		qe.Logger.Warnf("quote %s has invalid fields; pricing with best-effort values", result.ID)
	}

	if freq.IsAnnual() {
		result.Annual = qe.AnnualQuote(req)
	} else {
		result.Monthly = qe.MonthlyQuote(req)
	}
	return result, nil
}

// ActiveMonthNames lists the names of the months an account quote covers
func ActiveMonthNames(q domain.AccountQuote) []string {
	names := make([]string, 0, len(q.AvailableMonths))
	for _, m := range q.AvailableMonths {
		names = append(names, dateutil.MonthName(m))
	}
	return names
}
