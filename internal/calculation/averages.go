package calculation

import (
	"time"

	"github.com/quotecalc/service-quote/internal/domain"
	"github.com/quotecalc/service-quote/pkg/dateutil"
	money "github.com/quotecalc/service-quote/pkg/decimal"
)

// ComputeAverages averages each field across the records, takes the ceiling and rounds
// up to the nearest 0 or 5. Unparsable values count as zero.
func ComputeAverages(records []domain.PeriodRecord) domain.Averages {
	if len(records) == 0 {
		return domain.Averages{}
	}

	var total, deposits, checks int
	for _, r := range records {
		total += r.Total.Int()
		deposits += r.Deposits.Int()
		checks += r.Checks.Int()
	}

	n := len(records)
	return domain.Averages{
		Total:    roundedAverage(total, n),
		Deposits: roundedAverage(deposits, n),
		Checks:   roundedAverage(checks, n),
	}
}

func roundedAverage(sum, n int) int {
	ceil := (sum + n - 1) / n
	return int(money.RoundUpToFiveOrZero(int64(ceil)))
}

// AvailableMonths returns the months an account is billed for: from its starting month
// onward, limited to the months the frequency covers, minus excluded months.
func AvailableMonths(account *domain.Account, freq domain.Frequency, asOf time.Time) []int {
	start := account.StartingMonthIndex()
	var months []int
	for _, m := range dateutil.RelevantMonths(freq.IsAnnual(), asOf) {
		if m < start || account.IsExcluded(m) {
			continue
		}
		months = append(months, m)
	}
	return months
}

// AccountRecords collects the account's records for the given months.
// Months without data contribute an empty record.
func AccountRecords(account *domain.Account, months []int) []domain.PeriodRecord {
	records := make([]domain.PeriodRecord, 0, len(months))
	for _, m := range months {
		records = append(records, account.Record(m))
	}
	return records
}

// AccountAverages computes the plain averages over an account's available months
func AccountAverages(account *domain.Account, freq domain.Frequency, asOf time.Time) domain.Averages {
	return ComputeAverages(AccountRecords(account, AvailableMonths(account, freq, asOf)))
}

// ApplyNewAccountOverride bills a new account on at least floor transactions.
// Deposits and checks survive only when the entered total is above the floor.
func ApplyNewAccountOverride(avg domain.Averages, floor int) domain.Averages {
	effective := domain.Averages{Total: avg.Total}
	if effective.Total < floor {
		effective.Total = floor
	}
	if avg.Total > floor {
		effective.Deposits = avg.Deposits
		effective.Checks = avg.Checks
	}
	return effective
}
