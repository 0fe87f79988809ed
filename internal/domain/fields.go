package domain

import (
	"encoding/json"
	"sort"
	"strings"
)

// Field keys for account identity inputs
const (
	FieldBankName      = "bankName"
	FieldLastFour      = "lastFour"
	FieldCategory      = "category"
	FieldStartingMonth = "startingMonth"
)

// Field keys for payroll and sales-tax rows
const (
	FieldState        = "state"
	FieldEmployees    = "employees"
	FieldCertificates = "certificates"
	FieldStatus       = "status"
)

// Period field prefixes; a period key is prefix + "_" + month name, e.g. "total_March".
const (
	PeriodTotal    = "total"
	PeriodDeposits = "deposits"
	PeriodChecks   = "checks"
)

// PeriodFieldKey builds the key for a per-month input
func PeriodFieldKey(prefix, month string) string {
	return prefix + "_" + month
}

// IsPeriodFieldKey reports keys that belong to a per-month input
func IsPeriodFieldKey(key string) bool {
	return strings.HasPrefix(key, PeriodTotal+"_") ||
		strings.HasPrefix(key, PeriodDeposits+"_") ||
		strings.HasPrefix(key, PeriodChecks+"_")
}

// FieldSet is a set of input field keys. It serializes as a sorted list.
type FieldSet map[string]struct{}

// NewFieldSet builds a set from keys
func NewFieldSet(keys ...string) FieldSet {
	fs := make(FieldSet, len(keys))
	for _, k := range keys {
		fs[k] = struct{}{}
	}
	return fs
}

// Add inserts a key
func (fs FieldSet) Add(key string) {
	fs[key] = struct{}{}
}

// Has reports membership
func (fs FieldSet) Has(key string) bool {
	_, ok := fs[key]
	return ok
}

// Keys returns the keys sorted
func (fs FieldSet) Keys() []string {
	keys := make([]string, 0, len(fs))
	for k := range fs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// WithoutPeriodFields returns a copy with every per-month key removed.
// Editing an account's category or starting month invalidates those flags.
func (fs FieldSet) WithoutPeriodFields() FieldSet {
	out := make(FieldSet, len(fs))
	for k := range fs {
		if !IsPeriodFieldKey(k) {
			out[k] = struct{}{}
		}
	}
	return out
}

// MarshalJSON renders the set as a sorted array
func (fs FieldSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(fs.Keys())
}

// UnmarshalJSON reads a set from an array of keys
func (fs *FieldSet) UnmarshalJSON(data []byte) error {
	var keys []string
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	*fs = NewFieldSet(keys...)
	return nil
}

// AccountValidation lists the required and invalid fields of one account
type AccountValidation struct {
	Position        int      `json:"position"`
	Required        FieldSet `json:"required"`
	Invalid         FieldSet `json:"invalid"`
	DepositsEnabled bool     `json:"deposits_enabled"`
	ChecksEnabled   bool     `json:"checks_enabled"`
	NewAvailable    bool     `json:"new_available"`
}

// RowValidation lists the invalid fields of one payroll or sales-tax row
type RowValidation struct {
	Index   int      `json:"index"`
	Invalid FieldSet `json:"invalid"`
}

// ValidationReport collects validity flags for a whole request
type ValidationReport struct {
	Accounts    []AccountValidation `json:"accounts"`
	Payroll     []RowValidation     `json:"payroll,omitempty"`
	SalesTax    []RowValidation     `json:"sales_tax,omitempty"`
	YearMissing bool                `json:"year_missing,omitempty"`
}

// Valid reports whether no field anywhere is flagged
func (r ValidationReport) Valid() bool {
	if r.YearMissing {
		return false
	}
	for _, a := range r.Accounts {
		if len(a.Invalid) > 0 {
			return false
		}
	}
	for _, p := range r.Payroll {
		if len(p.Invalid) > 0 {
			return false
		}
	}
	for _, s := range r.SalesTax {
		if len(s.Invalid) > 0 {
			return false
		}
	}
	return true
}
