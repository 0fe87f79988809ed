package calculation

import (
	"time"

	"github.com/quotecalc/service-quote/internal/domain"
	"github.com/quotecalc/service-quote/pkg/dateutil"
	money "github.com/quotecalc/service-quote/pkg/decimal"
	"github.com/shopspring/decimal"
)

// AnnualCalculator aggregates monthly books rates over a year and applies the
// volume discount
type AnnualCalculator struct {
	Books *BooksCalculator
	Rules domain.AnnualRules
}

// NewAnnualCalculator creates an annual calculator with the default price list
func NewAnnualCalculator(books *BooksCalculator) *AnnualCalculator {
	return &AnnualCalculator{Books: books, Rules: domain.DefaultPricingRules().Annual}
}

// PeriodRates charges each account's monthly rate in every month it is active, sums
// per month and floors each month at the books minimum. Accounts keep their position in
// the full list even when inactive accounts are skipped.
func (ac *AnnualCalculator) PeriodRates(accounts []domain.Account, asOf time.Time) ([]domain.PeriodRate, []domain.AccountQuote) {
	var sums [dateutil.MonthsPerYear]money.Money
	var active [dateutil.MonthsPerYear]bool
	var quoted []domain.AccountQuote

	for i := range accounts {
		q := ac.Books.QuoteAccount(i, &accounts[i], domain.FrequencyAnnual, asOf)
		if len(q.AvailableMonths) == 0 {
			continue
		}
		quoted = append(quoted, q)
		for _, m := range q.AvailableMonths {
			sums[m] = sums[m].Add(money.NewMoneyFromDecimal(q.Rate))
			active[m] = true
		}
	}

	minimum := money.NewMoneyFromDecimal(ac.Books.Rules.MonthlyMinimum)
	var rates []domain.PeriodRate
	for m := 0; m < dateutil.MonthsPerYear; m++ {
		if !active[m] {
			continue
		}
		rates = append(rates, domain.PeriodRate{
			Month: m,
			Name:  dateutil.MonthName(m),
			Rate:  money.Max(sums[m], minimum).Decimal,
		})
	}
	return rates, quoted
}

// DiscountPercentage returns the discount rate for an annual total
func (ac *AnnualCalculator) DiscountPercentage(total decimal.Decimal) decimal.Decimal {
	pct := decimal.Zero
	for _, tier := range ac.Rules.Discounts {
		if total.GreaterThanOrEqual(tier.Min) {
			pct = tier.Rate
		}
	}
	return pct
}

// Pricing floors each month, totals the year and applies the discount. The discount is
// rounded down to the nearest $5.
func (ac *AnnualCalculator) Pricing(periodRates []domain.PeriodRate) domain.AnnualQuote {
	minimum := money.NewMoneyFromDecimal(ac.Books.Rules.MonthlyMinimum)
	quote := domain.AnnualQuote{PerPeriodRates: make([]domain.PeriodRate, 0, len(periodRates))}

	total := money.Zero()
	for _, pr := range periodRates {
		floored := money.Max(money.NewMoneyFromDecimal(pr.Rate), minimum)
		pr.Rate = floored.Decimal
		quote.PerPeriodRates = append(quote.PerPeriodRates, pr)
		total = total.Add(floored)
	}

	pct := ac.DiscountPercentage(total.Decimal)
	discount := total.Mul(pct).RoundDownToFive()

	quote.TotalAnnualRate = total.Decimal
	quote.DiscountPercentage = pct
	quote.DiscountAmount = discount.Decimal
	quote.DiscountedRate = total.Sub(discount).Decimal
	return quote
}

// Quote builds the full annual quote for a set of accounts
func (ac *AnnualCalculator) Quote(accounts []domain.Account, asOf time.Time) domain.AnnualQuote {
	rates, quoted := ac.PeriodRates(accounts, asOf)
	quote := ac.Pricing(rates)
	quote.Accounts = quoted
	return quote
}

var defaultAnnual = NewAnnualCalculator(defaultBooks)

// BuildPeriodRates aggregates per-month books rates with the default price list
func BuildPeriodRates(accounts []domain.Account, asOf time.Time) []domain.PeriodRate {
	rates, _ := defaultAnnual.PeriodRates(accounts, asOf)
	return rates
}

// ComputeAnnualPricing applies the default discount ladder to per-month rates
func ComputeAnnualPricing(periodRates []domain.PeriodRate) domain.AnnualQuote {
	return defaultAnnual.Pricing(periodRates)
}
