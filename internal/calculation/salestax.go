package calculation

import (
	"github.com/quotecalc/service-quote/internal/domain"
	"github.com/shopspring/decimal"
)

// SalesTaxCalculator prices sales-tax certificates. Unit prices fall as the number of
// certificates counted across all rows grows, so rows must be priced in order.
type SalesTaxCalculator struct {
	Rules domain.SalesTaxRules
}

// NewSalesTaxCalculator creates a sales-tax calculator with the default price list
func NewSalesTaxCalculator() *SalesTaxCalculator {
	return &SalesTaxCalculator{Rules: domain.DefaultPricingRules().SalesTax}
}

// UnitPrice returns the price of the certificate at running position counter (1-based)
func (sc *SalesTaxCalculator) UnitPrice(counter int) decimal.Decimal {
	for _, tier := range sc.Rules.Tiers {
		if tier.UpTo == 0 || counter <= tier.UpTo {
			return tier.Price
		}
	}
	return decimal.Zero
}

// NextRate prices one row of certificates starting after counter certificates were
// already counted. It returns the row rate and the updated counter.
func (sc *SalesTaxCalculator) NextRate(counter, certificates int) (decimal.Decimal, int) {
	rate := decimal.Zero
	for i := 0; i < certificates; i++ {
		counter++
		rate = rate.Add(sc.UnitPrice(counter))
	}
	return rate, counter
}

// Rates folds over the rows in order and returns one rate per row
func (sc *SalesTaxCalculator) Rates(counts []int) []decimal.Decimal {
	rates := make([]decimal.Decimal, len(counts))
	counter := 0
	for i, n := range counts {
		rates[i], counter = sc.NextRate(counter, n)
	}
	return rates
}

// Setup returns the setup fee for a row. New registrations pay per certificate with a
// single-certificate minimum; existing ones pay nothing.
func (sc *SalesTaxCalculator) Setup(status domain.Status, certificates int) (decimal.Decimal, bool) {
	if status != domain.StatusNew {
		return decimal.Zero, false
	}
	if certificates > 0 {
		return sc.Rules.SetupPerCert.Mul(decimal.NewFromInt(int64(certificates))), true
	}
	return sc.Rules.MinimumSetupFee, true
}

// Lines prices every row and returns the per-row lines plus rate and setup totals
func (sc *SalesTaxCalculator) Lines(rows []domain.SalesTaxRow) ([]domain.SalesTaxLine, decimal.Decimal, decimal.Decimal) {
	lines := make([]domain.SalesTaxLine, 0, len(rows))
	rateTotal, setupTotal := decimal.Zero, decimal.Zero
	counter := 0
	for _, row := range rows {
		n := row.Certificates.Int()
		line := domain.SalesTaxLine{State: row.State, Certificates: n, Status: row.Status}
		line.Rate, counter = sc.NextRate(counter, n)
		line.CounterEnd = counter
		line.Setup, line.HasSetup = sc.Setup(row.Status, n)
		rateTotal = rateTotal.Add(line.Rate)
		setupTotal = setupTotal.Add(line.Setup)
		lines = append(lines, line)
	}
	return lines, rateTotal, setupTotal
}

var defaultSalesTax = NewSalesTaxCalculator()

// ComputeSalesTaxRates prices rows of certificate counts with the default price list
func ComputeSalesTaxRates(counts []int) []decimal.Decimal {
	return defaultSalesTax.Rates(counts)
}

// ComputeSalesTaxSetup returns the default setup fee for a row
func ComputeSalesTaxSetup(status domain.Status, certificates int) (decimal.Decimal, bool) {
	return defaultSalesTax.Setup(status, certificates)
}
