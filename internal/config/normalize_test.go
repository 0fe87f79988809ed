package config

import (
	"testing"

	"github.com/quotecalc/service-quote/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMatchCategory(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.Category
		ok       bool
	}{
		{"Checking", domain.CategoryChecking, true},
		{"savings", domain.CategorySavings, true},
		{"credit card", domain.CategoryCreditCard, true},
		{"CC", domain.CategoryCreditCard, true},
		{"Checkng", domain.CategoryChecking, true},
		{"Checking Account", domain.CategoryChecking, true},
		{"Savngs", domain.CategorySavings, true},
		{"Amazon", domain.CategoryAmazon, true},
		{"Brokerage", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := MatchCategory(tt.input)
		assert.Equal(t, tt.ok, ok, "input=%q", tt.input)
		assert.Equal(t, tt.expected, got, "input=%q", tt.input)
	}
}

func TestMatchState(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"Texas", "Texas", true},
		{"tx", "Texas", true},
		{"new york", "New York", true},
		{"Pensylvania", "Pennsylvania", true},
		{"ZZ", "", false},
		{"Atlantis", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := MatchState(tt.input)
		assert.Equal(t, tt.ok, ok, "input=%q", tt.input)
		assert.Equal(t, tt.expected, got, "input=%q", tt.input)
	}
}

func TestMatchStatusAndFrequency(t *testing.T) {
	s, ok := MatchStatus("NEW")
	assert.True(t, ok)
	assert.Equal(t, domain.StatusNew, s)

	_, ok = MatchStatus("pending")
	assert.False(t, ok)

	f, ok := MatchFrequency("")
	assert.True(t, ok)
	assert.Equal(t, domain.FrequencyMonthly, f)

	f, ok = MatchFrequency("Yearly")
	assert.True(t, ok)
	assert.Equal(t, domain.FrequencyAnnual, f)
}

func TestNormalizeRequest_LeavesUnknownValues(t *testing.T) {
	req := &domain.QuoteRequest{
		Accounts: []domain.Account{{Category: "Brokerage", StartingMonth: "Smarch"}},
		Payroll:  []domain.PayrollRow{{State: "Atlantis", Status: "pending"}},
	}
	NormalizeRequest(req)

	assert.Equal(t, domain.FrequencyMonthly, req.Frequency)
	assert.Equal(t, domain.Category("Brokerage"), req.Accounts[0].Category)
	assert.Equal(t, "Smarch", req.Accounts[0].StartingMonth)
	assert.Equal(t, "Atlantis", req.Payroll[0].State)
	assert.Equal(t, domain.Status("pending"), req.Payroll[0].Status)
}
