package calculation

import (
	"testing"

	"github.com/quotecalc/service-quote/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalesTaxRates(t *testing.T) {
	tests := []struct {
		name     string
		counts   []int
		expected []int64
	}{
		{
			name:     "empty",
			counts:   []int{},
			expected: []int64{},
		},
		{
			name:     "single row within first tier",
			counts:   []int{5},
			expected: []int64{450},
		},
		{
			// 90,90,90 | 90,90,75,75 | 75,75,75,60,60
			name:     "running counter spans rows",
			counts:   []int{3, 4, 5},
			expected: []int64{270, 330, 345},
		},
		{
			name:     "reordering changes row prices",
			counts:   []int{5, 4, 3},
			expected: []int64{450, 300, 195},
		},
		{
			name:     "zero rows still consume nothing",
			counts:   []int{0, 6, 0, 5},
			expected: []int64{0, 525, 0, 360},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rates := ComputeSalesTaxRates(tt.counts)
			require.Len(t, rates, len(tt.expected))
			for i, want := range tt.expected {
				assertDollars(t, want, rates[i], "row %d", i)
			}
		})
	}
}

func TestSalesTaxRatesIdempotent(t *testing.T) {
	counts := []int{3, 4, 5}
	assert.Equal(t, ComputeSalesTaxRates(counts), ComputeSalesTaxRates(counts))
}

func TestSalesTaxNextRate(t *testing.T) {
	calc := NewSalesTaxCalculator()
	rate, counter := calc.NextRate(9, 3)
	assertDollars(t, 195, rate) // 75 + 60 + 60
	assert.Equal(t, 12, counter)
}

func TestSalesTaxSetup(t *testing.T) {
	tests := []struct {
		name         string
		status       domain.Status
		certificates int
		expected     int64
		ok           bool
	}{
		{name: "new with certificates", status: domain.StatusNew, certificates: 3, expected: 450, ok: true},
		{name: "new without certificates", status: domain.StatusNew, certificates: 0, expected: 150, ok: true},
		{name: "existing", status: domain.StatusExisting, certificates: 3, expected: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee, ok := ComputeSalesTaxSetup(tt.status, tt.certificates)
			assert.Equal(t, tt.ok, ok)
			assertDollars(t, tt.expected, fee)
		})
	}
}

func TestSalesTaxLines(t *testing.T) {
	rows := []domain.SalesTaxRow{
		{State: "TX", Certificates: "3", Status: domain.StatusNew},
		{State: "OK", Certificates: "4", Status: domain.StatusExisting},
		{State: "LA", Certificates: "5", Status: domain.StatusNew},
	}

	lines, rate, setup := NewSalesTaxCalculator().Lines(rows)
	require.Len(t, lines, 3)
	assert.Equal(t, []int{3, 7, 12}, []int{lines[0].CounterEnd, lines[1].CounterEnd, lines[2].CounterEnd})
	assertDollars(t, 945, rate)
	assertDollars(t, 1200, setup) // 450 + 750
	assert.True(t, decimal.Zero.Equal(lines[1].Setup))
}
