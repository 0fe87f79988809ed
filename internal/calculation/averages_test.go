package calculation

import (
	"testing"
	"time"

	"github.com/quotecalc/service-quote/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestComputeAverages(t *testing.T) {
	tests := []struct {
		name     string
		records  []domain.PeriodRecord
		expected domain.Averages
	}{
		{
			name:     "no records",
			records:  nil,
			expected: domain.Averages{},
		},
		{
			name:     "exact multiples pass through",
			records:  []domain.PeriodRecord{totals(100, 50, 10), totals(100, 50, 10)},
			expected: domain.Averages{Total: 100, Deposits: 50, Checks: 10},
		},
		{
			name: "ceiling then round up",
			// 23/2 = 11.5 -> 12 -> 15; 7/2 = 3.5 -> 4 -> 5; 13/2 = 6.5 -> 7 -> 10
			records:  []domain.PeriodRecord{totals(11, 3, 6), totals(12, 4, 7)},
			expected: domain.Averages{Total: 15, Deposits: 5, Checks: 10},
		},
		{
			name:     "missing fields count as zero",
			records:  []domain.PeriodRecord{{Total: "40"}, {}},
			expected: domain.Averages{Total: 20},
		},
		{
			name: "garbage is coerced",
			records: []domain.PeriodRecord{
				{Total: "12abc", Deposits: "n/a", Checks: "-4"},
			},
			expected: domain.Averages{Total: 15},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComputeAverages(tt.records))
		})
	}
}

func TestAvailableMonths(t *testing.T) {
	march := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		account  domain.Account
		freq     domain.Frequency
		asOf     time.Time
		expected []int
	}{
		{
			name:     "monthly after first quarter stops before current month",
			account:  domain.Account{StartingMonth: "February"},
			freq:     domain.FrequencyMonthly,
			asOf:     mayFifteenth,
			expected: []int{1, 2, 3},
		},
		{
			name:     "monthly in first quarter covers the year",
			account:  domain.Account{StartingMonth: "October"},
			freq:     domain.FrequencyMonthly,
			asOf:     march,
			expected: []int{9, 10, 11},
		},
		{
			name:     "annual covers the year",
			account:  domain.Account{StartingMonth: "Nov"},
			freq:     domain.FrequencyAnnual,
			asOf:     mayFifteenth,
			expected: []int{10, 11},
		},
		{
			name:     "empty starting month defaults to January",
			account:  domain.Account{},
			freq:     domain.FrequencyMonthly,
			asOf:     mayFifteenth,
			expected: []int{0, 1, 2, 3},
		},
		{
			name:     "excluded months are dropped",
			account:  domain.Account{StartingMonth: "January", ExcludedMonths: []int{2, 3}},
			freq:     domain.FrequencyMonthly,
			asOf:     mayFifteenth,
			expected: []int{0, 1},
		},
		{
			name:     "start after relevant window",
			account:  domain.Account{StartingMonth: "August"},
			freq:     domain.FrequencyMonthly,
			asOf:     mayFifteenth,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AvailableMonths(&tt.account, tt.freq, tt.asOf))
		})
	}
}

func TestAccountAverages(t *testing.T) {
	// Only March has data; February and April count as zero.
	account := volumeAccount(domain.CategoryChecking, "February", totals(90, 0, 0), 2)
	avg := AccountAverages(&account, domain.FrequencyMonthly, mayFifteenth)
	assert.Equal(t, domain.Averages{Total: 30}, avg)

	// Records outside the available range are ignored.
	account.SetRecord(8, totals(500, 500, 500))
	assert.Equal(t, avg, AccountAverages(&account, domain.FrequencyMonthly, mayFifteenth))
}

func TestApplyNewAccountOverride(t *testing.T) {
	tests := []struct {
		name     string
		avg      domain.Averages
		expected domain.Averages
	}{
		{
			name:     "low total raised to floor and counts dropped",
			avg:      domain.Averages{Total: 20, Deposits: 15, Checks: 10},
			expected: domain.Averages{Total: 30},
		},
		{
			name:     "total at floor still drops counts",
			avg:      domain.Averages{Total: 30, Deposits: 20, Checks: 5},
			expected: domain.Averages{Total: 30},
		},
		{
			name:     "total above floor keeps counts",
			avg:      domain.Averages{Total: 40, Deposits: 25, Checks: 10},
			expected: domain.Averages{Total: 40, Deposits: 25, Checks: 10},
		},
		{
			name:     "zero activity",
			avg:      domain.Averages{},
			expected: domain.Averages{Total: 30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ApplyNewAccountOverride(tt.avg, 30))
		})
	}
}
