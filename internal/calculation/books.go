package calculation

import (
	"time"

	"github.com/quotecalc/service-quote/internal/domain"
	money "github.com/quotecalc/service-quote/pkg/decimal"
	"github.com/shopspring/decimal"
)

// BooksCalculator prices bookkeeping accounts
type BooksCalculator struct {
	Rules domain.BooksRules
}

// NewBooksCalculator creates a books calculator with the default price list
func NewBooksCalculator() *BooksCalculator {
	return NewBooksCalculatorWithRules(domain.DefaultPricingRules().Books)
}

// NewBooksCalculatorWithRules creates a books calculator with custom rules
func NewBooksCalculatorWithRules(rules domain.BooksRules) *BooksCalculator {
	return &BooksCalculator{Rules: rules}
}

// BaseFee returns the base fee for an account at the given list position
func (bc *BooksCalculator) BaseFee(position int) decimal.Decimal {
	fee := decimal.Zero
	for _, tier := range bc.Rules.BaseFees {
		if position >= tier.FromPosition {
			fee = tier.Fee
		}
	}
	return fee
}

// TransactionFee prices the transaction volume of a volume-based account.
// Above the split threshold, deposits making up at least half of the volume are billed
// at the reduced deposit rate.
func (bc *BooksCalculator) TransactionFee(category domain.Category, avg domain.Averages) decimal.Decimal {
	if avg.Total == 0 || category.IsFlatFee() {
		return decimal.Zero
	}

	total := decimal.NewFromInt(int64(avg.Total))
	deposits := decimal.NewFromInt(int64(avg.Deposits))

	if avg.Total > bc.Rules.DepositSplitThreshold && deposits.GreaterThanOrEqual(total.Mul(bc.Rules.DepositSplitShare)) {
		depositFee := deposits.Mul(bc.Rules.DepositRate)
		otherFee := total.Sub(deposits).Mul(bc.Rules.TransactionRate)
		return depositFee.Add(otherFee)
	}
	return total.Mul(bc.Rules.TransactionRate)
}

// AccountRate returns one account's monthly books rate.
// A volume-based account with no transactions owes nothing, base fee included.
func (bc *BooksCalculator) AccountRate(position int, category domain.Category, avg domain.Averages) decimal.Decimal {
	if category.IsFlatFee() {
		return bc.Rules.FlatFee
	}
	if avg.Total == 0 {
		return decimal.Zero
	}
	base := money.NewMoneyFromDecimal(bc.BaseFee(position))
	fee := money.NewMoneyFromDecimal(bc.TransactionFee(category, avg))
	return base.Add(fee).RoundUpToFive().Decimal
}

// EffectiveAverages applies the new-account override when isNew is set
func (bc *BooksCalculator) EffectiveAverages(avg domain.Averages, isNew bool) domain.Averages {
	if !isNew {
		return avg
	}
	return ApplyNewAccountOverride(avg, bc.Rules.NewAccountFloor)
}

// QuoteAccount computes averages and the rate for the account at position
func (bc *BooksCalculator) QuoteAccount(position int, account *domain.Account, freq domain.Frequency, asOf time.Time) domain.AccountQuote {
	months := AvailableMonths(account, freq, asOf)
	avg := bc.EffectiveAverages(ComputeAverages(AccountRecords(account, months)), account.IsNew)
	return domain.AccountQuote{
		Position:        position,
		BankName:        account.BankName,
		LastFour:        account.LastFour,
		Category:        account.Category,
		StartingMonth:   account.StartingMonth,
		IsNew:           account.IsNew,
		Averages:        avg,
		Rate:            bc.AccountRate(position, account.Category, avg),
		AvailableMonths: months,
	}
}

// Total sums every account's rate and applies the monthly minimum.
// Positions follow list order, so removing an account re-tiers the ones after it.
func (bc *BooksCalculator) Total(accounts []domain.Account, freq domain.Frequency, asOf time.Time) domain.BooksTotal {
	result := domain.BooksTotal{Accounts: make([]domain.AccountQuote, 0, len(accounts))}
	sum := money.Zero()
	for i := range accounts {
		q := bc.QuoteAccount(i, &accounts[i], freq, asOf)
		result.Accounts = append(result.Accounts, q)
		sum = sum.Add(money.NewMoneyFromDecimal(q.Rate))
	}

	minimum := money.NewMoneyFromDecimal(bc.Rules.MonthlyMinimum)
	result.Subtotal = sum.Decimal
	result.Total = money.Max(sum, minimum).Decimal
	result.FloorApplied = sum.LessThan(minimum)
	return result
}

var defaultBooks = NewBooksCalculator()

// ComputeAccountRate prices a single account with the default price list
func ComputeAccountRate(position int, category domain.Category, avg domain.Averages) decimal.Decimal {
	return defaultBooks.AccountRate(position, category, avg)
}

// ComputeBooksTotal prices all accounts with the default price list
func ComputeBooksTotal(accounts []domain.Account, freq domain.Frequency, asOf time.Time) domain.BooksTotal {
	return defaultBooks.Total(accounts, freq, asOf)
}
