package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/quotecalc/service-quote/internal/domain"
	"github.com/quotecalc/service-quote/pkg/dateutil"
	"gopkg.in/yaml.v3"
)

// ErrInvalidRequest marks a request document that is structurally unusable
var ErrInvalidRequest = errors.New("invalid quote request")

// InputParser handles parsing of quote request files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a quote request from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.QuoteRequest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	if strings.EqualFold(filepath.Ext(filename), ".json") {
		return ip.ParseJSON(data)
	}
	return ip.ParseYAML(data)
}

// ParseYAML decodes, normalizes and validates a YAML request document
func (ip *InputParser) ParseYAML(data []byte) (*domain.QuoteRequest, error) {
	var req domain.QuoteRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return ip.prepare(&req)
}

// ParseJSON decodes, normalizes and validates a JSON request document
func (ip *InputParser) ParseJSON(data []byte) (*domain.QuoteRequest, error) {
	var req domain.QuoteRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return ip.prepare(&req)
}

func (ip *InputParser) prepare(req *domain.QuoteRequest) (*domain.QuoteRequest, error) {
	NormalizeRequest(req)
	if err := ip.ValidateRequest(req); err != nil {
		return nil, fmt.Errorf("request validation failed: %w", err)
	}
	return req, nil
}

// ValidateRequest rejects documents the engine cannot make sense of. Missing or malformed
// field values are not errors here; the engine reports them per field.
func (ip *InputParser) ValidateRequest(req *domain.QuoteRequest) error {
	if _, ok := MatchFrequency(string(req.Frequency)); !ok {
		return fmt.Errorf("%w: frequency must be 'monthly' or 'annual', got %q", ErrInvalidRequest, req.Frequency)
	}

	if len(req.Accounts) == 0 {
		return fmt.Errorf("%w: no accounts provided", ErrInvalidRequest)
	}

	if req.Year != 0 && (req.Year < 2000 || req.Year > 2100) {
		return fmt.Errorf("%w: year %d is out of range", ErrInvalidRequest, req.Year)
	}

	for i := range req.Accounts {
		if err := ip.validateAccount(&req.Accounts[i]); err != nil {
			return fmt.Errorf("%w: account %d: %v", ErrInvalidRequest, i+1, err)
		}
	}

	return nil
}

// validateAccount checks the structure of a single account
func (ip *InputParser) validateAccount(account *domain.Account) error {
	for _, m := range account.ExcludedMonths {
		if m < 0 || m >= dateutil.MonthsPerYear {
			return fmt.Errorf("excluded month %d must be between 0 and 11", m)
		}
	}
	for key := range account.Records {
		if _, ok := dateutil.MonthIndex(key); !ok {
			return fmt.Errorf("record key %q is not a month", key)
		}
	}
	return nil
}

// CreateExampleRequest creates an example quote request
func (ip *InputParser) CreateExampleRequest() *domain.QuoteRequest {
	checking := domain.Account{
		BankName:      "Chase",
		LastFour:      "4821",
		Category:      domain.CategoryChecking,
		StartingMonth: "January",
	}
	card := domain.Account{
		BankName:      "American Express",
		LastFour:      "31005",
		Category:      domain.CategoryCreditCard,
		StartingMonth: "January",
	}
	for m, total := range []int{180, 210, 165, 195} {
		checking.SetRecord(m, domain.PeriodRecord{
			Total:    domain.CountOf(total),
			Deposits: domain.CountOf(total / 2),
			Checks:   domain.CountOf(12),
		})
		card.SetRecord(m, domain.PeriodRecord{Total: domain.CountOf(total / 4)})
	}

	return &domain.QuoteRequest{
		CompanyName:  "Acme Plumbing LLC",
		EmployeeName: "Jordan Lee",
		Frequency:    domain.FrequencyMonthly,
		AsOf:         time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
		Year:         2025,
		Accounts: []domain.Account{
			checking,
			card,
			{BankName: "Paypal", LastFour: "0001", Category: domain.CategoryPaypal, StartingMonth: "March"},
		},
		Payroll: []domain.PayrollRow{
			{State: "Texas", Employees: "4", Status: domain.StatusNew},
		},
		SalesTax: []domain.SalesTaxRow{
			{State: "Texas", Certificates: "2", Status: domain.StatusExisting},
			{State: "Oklahoma", Certificates: "1", Status: domain.StatusNew},
		},
	}
}

// WriteExampleRequest writes the example request as YAML
func (ip *InputParser) WriteExampleRequest(filename string) error {
	data, err := yaml.Marshal(ip.CreateExampleRequest())
	if err != nil {
		return fmt.Errorf("failed to encode example: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
