package config

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/quotecalc/service-quote/internal/domain"
	"github.com/quotecalc/service-quote/pkg/dateutil"
)

// maxTypoDistance is the largest edit distance accepted as a misspelling
const maxTypoDistance = 2

var categoryAliases = map[string]domain.Category{
	"ck":          domain.CategoryChecking,
	"sa":          domain.CategorySavings,
	"cc":          domain.CategoryCreditCard,
	"credit":      domain.CategoryCreditCard,
	"creditcard":  domain.CategoryCreditCard,
	"credit_card": domain.CategoryCreditCard,
	"amex":        domain.CategoryCreditCard,
	"paypal":      domain.CategoryPaypal,
	"amazon":      domain.CategoryAmazon,
	"jobox":       domain.CategoryJobox,
}

// closest returns the candidate with the smallest edit distance to name, compared
// case-insensitively. ok is false when nothing is within maxTypoDistance.
func closest(name string, candidates []string) (string, bool) {
	target := strings.ToLower(strings.TrimSpace(name))
	if target == "" {
		return "", false
	}
	best, bestDist := "", maxTypoDistance+1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(target, strings.ToLower(c))
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, bestDist <= maxTypoDistance
}

// MatchCategory resolves free-form category input to a supported category.
// Exact names, short codes and small typos are accepted.
func MatchCategory(name string) (domain.Category, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return "", false
	}
	for _, c := range domain.Categories {
		if strings.ToLower(string(c)) == key {
			return c, true
		}
	}
	if c, ok := categoryAliases[key]; ok {
		return c, true
	}
	// Strip a trailing "account" so "Checking Account" resolves.
	key = strings.TrimSpace(strings.TrimSuffix(key, "account"))

	names := make([]string, len(domain.Categories))
	for i, c := range domain.Categories {
		names[i] = string(c)
	}
	if match, ok := closest(key, names); ok {
		return domain.Category(match), true
	}
	return "", false
}

// MatchState resolves a state name or postal code to the full state name
func MatchState(name string) (string, bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", false
	}
	if len(trimmed) == 2 {
		code := strings.ToUpper(trimmed)
		for state, abbr := range domain.StateAbbreviations {
			if abbr == code {
				return state, true
			}
		}
	}
	for state := range domain.StateAbbreviations {
		if strings.EqualFold(state, trimmed) {
			return state, true
		}
	}
	if len(trimmed) <= maxTypoDistance+1 {
		return "", false
	}
	return closest(trimmed, domain.StateNames())
}

// MatchStatus resolves "new"/"existing" in any case
func MatchStatus(name string) (domain.Status, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "new", "n":
		return domain.StatusNew, true
	case "existing", "exist", "e":
		return domain.StatusExisting, true
	default:
		return "", false
	}
}

// MatchFrequency resolves a billing frequency; empty input means monthly
func MatchFrequency(name string) (domain.Frequency, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "monthly", "month":
		return domain.FrequencyMonthly, true
	case "annual", "annually", "yearly", "year":
		return domain.FrequencyAnnual, true
	default:
		return "", false
	}
}

// NormalizeRequest rewrites free-form names in place to their canonical forms.
// Values that cannot be resolved are left untouched so validation can flag them.
func NormalizeRequest(req *domain.QuoteRequest) {
	if f, ok := MatchFrequency(string(req.Frequency)); ok {
		req.Frequency = f
	}
	for i := range req.Accounts {
		a := &req.Accounts[i]
		a.BankName = strings.TrimSpace(a.BankName)
		a.LastFour = strings.TrimSpace(a.LastFour)
		if c, ok := MatchCategory(string(a.Category)); ok {
			a.Category = c
		}
		if idx, ok := dateutil.MonthIndex(a.StartingMonth); ok {
			a.StartingMonth = dateutil.MonthName(idx)
		}
		normalizeRecords(a)
	}
	for i := range req.Payroll {
		row := &req.Payroll[i]
		if s, ok := MatchState(row.State); ok {
			row.State = s
		}
		if st, ok := MatchStatus(string(row.Status)); ok {
			row.Status = st
		}
	}
	for i := range req.SalesTax {
		row := &req.SalesTax[i]
		if s, ok := MatchState(row.State); ok {
			row.State = s
		}
		if st, ok := MatchStatus(string(row.Status)); ok {
			row.Status = st
		}
	}
}

// normalizeRecords re-keys records by canonical month name. Unknown keys are kept.
func normalizeRecords(a *domain.Account) {
	if len(a.Records) == 0 {
		return
	}
	out := make(map[string]domain.PeriodRecord, len(a.Records))
	for key, rec := range a.Records {
		if idx, ok := dateutil.MonthIndex(key); ok {
			out[dateutil.MonthName(idx)] = rec
			continue
		}
		out[key] = rec
	}
	a.Records = out
}
