package calculation

import (
	"fmt"
	"testing"
	"time"

	"github.com/quotecalc/service-quote/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// mayFifteenth is outside the first quarter, so monthly quotes cover January to April
var mayFifteenth = time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC)

func assertDollars(t *testing.T, expected int64, actual decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	if !decimal.NewFromInt(expected).Equal(actual) {
		assert.Fail(t, fmt.Sprintf("expected $%d, got $%s", expected, actual.String()), msgAndArgs...)
	}
}

// volumeAccount builds an account with the same counts entered for every listed month
func volumeAccount(category domain.Category, start string, rec domain.PeriodRecord, months ...int) domain.Account {
	a := domain.Account{
		BankName:      "First National",
		LastFour:      "1234",
		Category:      category,
		StartingMonth: start,
	}
	for _, m := range months {
		a.SetRecord(m, rec)
	}
	return a
}

func totals(total, deposits, checks int) domain.PeriodRecord {
	return domain.PeriodRecord{
		Total:    domain.CountOf(total),
		Deposits: domain.CountOf(deposits),
		Checks:   domain.CountOf(checks),
	}
}
