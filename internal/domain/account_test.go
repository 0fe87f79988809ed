package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_Classification(t *testing.T) {
	testCases := []struct {
		category      Category
		flatFee       bool
		volumeBased   bool
		depositsCheck bool
		total         bool
		abbreviation  string
	}{
		{CategoryChecking, false, true, true, true, "CK"},
		{CategorySavings, false, true, true, true, "SA"},
		{CategoryCreditCard, false, true, false, true, "CC"},
		{CategoryJobox, true, false, false, false, "CK"},
		{CategoryPaypal, true, false, false, false, "CK"},
		{CategoryAmazon, true, false, false, false, "CK"},
		{"", false, false, false, false, "CK"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.category), func(t *testing.T) {
			assert.Equal(t, tc.flatFee, tc.category.IsFlatFee())
			assert.Equal(t, tc.volumeBased, tc.category.IsVolumeBased())
			assert.Equal(t, tc.depositsCheck, tc.category.ShowsDepositsChecks())
			assert.Equal(t, tc.total, tc.category.ShowsTotal())
			assert.Equal(t, tc.abbreviation, tc.category.Abbreviation())
		})
	}
}

func TestAccount_ExcludeFrom(t *testing.T) {
	a := &Account{}
	a.ExcludeFrom(9)
	assert.Equal(t, []int{9, 10, 11}, a.ExcludedMonths)

	// Excluding an earlier month extends the cutoff; a later one changes nothing.
	a.ExcludeFrom(7)
	assert.Equal(t, []int{7, 8, 9, 10, 11}, a.ExcludedMonths)
	a.ExcludeFrom(10)
	assert.Equal(t, []int{7, 8, 9, 10, 11}, a.ExcludedMonths)

	a.ExcludeFrom(12)
	a.ExcludeFrom(-1)
	assert.Len(t, a.ExcludedMonths, 5)
	assert.True(t, a.IsExcluded(8))
	assert.False(t, a.IsExcluded(6))
}

func TestAccount_Record(t *testing.T) {
	a := &Account{Records: map[string]PeriodRecord{
		"march": {Total: "10"},
		"Apr":   {Total: "20"},
	}}
	a.SetRecord(0, PeriodRecord{Total: "5"})

	assert.Equal(t, Count("5"), a.Record(0).Total)
	assert.Equal(t, Count("10"), a.Record(2).Total)
	assert.Equal(t, Count("20"), a.Record(3).Total)
	assert.Equal(t, PeriodRecord{}, a.Record(6))
	assert.Equal(t, PeriodRecord{}, a.Record(14))
}

func TestAccount_MaxLastFourDigits(t *testing.T) {
	assert.Equal(t, 4, (&Account{BankName: "Wells Fargo"}).MaxLastFourDigits())
	assert.Equal(t, 5, (&Account{BankName: "American Express"}).MaxLastFourDigits())
}

func TestAccount_HasData(t *testing.T) {
	assert.False(t, (&Account{Category: CategoryChecking}).HasData())
	assert.True(t, (&Account{Category: CategoryPaypal}).HasData())
	assert.True(t, (&Account{BankName: "Chase"}).HasData())
	assert.True(t, (&Account{}).IsEmpty())
}
