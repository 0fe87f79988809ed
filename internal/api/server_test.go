package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotecalc/service-quote/internal/calculation"
	"github.com/quotecalc/service-quote/internal/config"
	"github.com/quotecalc/service-quote/internal/domain"
)

const monthlyBody = `{
  "company_name": "Acme Plumbing",
  "as_of": "2024-05-15T00:00:00Z",
  "accounts": [
    {
      "bank_name": "First National", "last_four": "1234", "category": "Checking", "starting_month": "January",
      "records": {
        "January":  {"total": 200, "deposits": 120, "checks": 30},
        "February": {"total": 200, "deposits": 120, "checks": 30},
        "March":    {"total": 200, "deposits": 120, "checks": 30},
        "April":    {"total": 200, "deposits": 120, "checks": 30}
      }
    },
    {
      "bank_name": "Lone Star", "last_four": "5678", "category": "credit card", "starting_month": "February",
      "records": {"February": {"total": "40"}, "March": {"total": "40"}, "April": {"total": "40"}}
    }
  ],
  "payroll": [{"state": "TX", "employees": 5, "status": "New"}],
  "sales_tax": [
    {"state": "TX", "certificates": 3, "status": "New"},
    {"state": "OK", "certificates": 4, "status": "Existing"}
  ]
}`

func newTestServer(origins ...string) *Server {
	gin.SetMode(gin.TestMode)
	engine := calculation.NewQuoteEngine()
	engine.Now = func() time.Time { return time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC) }
	engine.NewID = func() string { return "quote-1" }
	return NewServer(config.ServerSettings{Address: ":0", AllowedOrigins: origins}, engine, nil)
}

func do(s *Server, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := do(newTestServer(), http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["version"])
}

func TestMonthlyQuote(t *testing.T) {
	w := do(newTestServer(), http.MethodPost, "/api/quotes/monthly", monthlyBody)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result domain.QuoteResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "quote-1", result.ID)
	assert.True(t, result.Validation.Valid())
	require.NotNil(t, result.Monthly)
	assert.Nil(t, result.Annual)
	assert.Equal(t, "200", result.Monthly.BooksRate.String())
	assert.Equal(t, "945", result.Monthly.TotalMonthlyRate.String())
	assert.Equal(t, "600", result.Monthly.TotalSetup.String())
	require.Len(t, result.Monthly.Payroll, 1)
	assert.Equal(t, "Texas", result.Monthly.Payroll[0].State)
}

func TestAnnualQuoteOverridesFrequency(t *testing.T) {
	body := strings.Replace(monthlyBody, `"company_name"`, `"year": 2025, "frequency": "monthly", "company_name"`, 1)
	w := do(newTestServer(), http.MethodPost, "/api/quotes/annual", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result domain.QuoteResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, domain.FrequencyAnnual, result.Frequency)
	require.NotNil(t, result.Annual)
	assert.Nil(t, result.Monthly)
	assert.Equal(t, 2025, result.Annual.Year)
	assert.False(t, result.Validation.YearMissing)
}

func TestQuoteUsesBodyFrequency(t *testing.T) {
	body := strings.Replace(monthlyBody, `"company_name"`, `"frequency": "yearly", "company_name"`, 1)
	w := do(newTestServer(), http.MethodPost, "/api/quotes", body)
	require.Equal(t, http.StatusOK, w.Code)

	var result domain.QuoteResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.NotNil(t, result.Annual)
	assert.True(t, result.Validation.YearMissing)
}

func TestQuoteRenderedFormat(t *testing.T) {
	w := do(newTestServer(), http.MethodPost, "/api/quotes/monthly?format=clipboard", monthlyBody)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "Monthly Rate - All Services: $945")

	w = do(newTestServer(), http.MethodPost, "/api/quotes/monthly?format=csv", monthlyBody)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "Section,Item,Detail,Rate,Setup"))
}

func TestQuoteUnsupportedFormat(t *testing.T) {
	w := do(newTestServer(), http.MethodPost, "/api/quotes/monthly?format=pdf", monthlyBody)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unsupported report format")
}

func TestQuoteRejectsBadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"malformed json", `{"accounts": [`, "failed to parse JSON"},
		{"no accounts", `{"accounts": []}`, "no accounts provided"},
		{"bad frequency", `{"frequency": "weekly", "accounts": [{"category": "Checking"}]}`, "frequency must be"},
		{"bad month key", `{"accounts": [{"category": "Checking", "records": {"Smarch": {"total": 1}}}]}`, "is not a month"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(newTestServer(), http.MethodPost, "/api/quotes", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
		})
	}
}

func TestRequirements(t *testing.T) {
	body := strings.Replace(monthlyBody, `"bank_name": "First National", `, "", 1)
	w := do(newTestServer(), http.MethodPost, "/api/requirements", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Valid    bool                    `json:"valid"`
		Report   domain.ValidationReport `json:"report"`
		Problems []string                `json:"problems"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Valid)
	require.Len(t, resp.Report.Accounts, 2)
	assert.True(t, resp.Report.Accounts[0].Required.Has(domain.FieldBankName))
	assert.True(t, resp.Report.Accounts[0].Invalid.Has(domain.FieldBankName))
	assert.Equal(t, []string{"account 1: bankName"}, resp.Problems)
}

func TestRequirementsValidRequest(t *testing.T) {
	w := do(newTestServer(), http.MethodPost, "/api/requirements", monthlyBody)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"valid":true`)
	assert.Contains(t, w.Body.String(), `"problems":[]`)
}

func TestCORS(t *testing.T) {
	w := do(newTestServer("*"), http.MethodGet, "/api/health", "", "Origin", "https://quotes.example.com")
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	w = do(newTestServer("https://quotes.example.com"), http.MethodGet, "/api/health", "", "Origin", "https://quotes.example.com")
	assert.Equal(t, "https://quotes.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	w = do(newTestServer(), http.MethodGet, "/api/health", "", "Origin", "https://quotes.example.com")
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSConfig(t *testing.T) {
	_, ok := corsConfig(nil)
	assert.False(t, ok)

	cfg, ok := corsConfig([]string{"https://a.example.com", "*"})
	require.True(t, ok)
	assert.True(t, cfg.AllowAllOrigins)
	assert.Empty(t, cfg.AllowOrigins)
	assert.NoError(t, cfg.Validate())

	cfg, ok = corsConfig([]string{"https://a.example.com"})
	require.True(t, ok)
	assert.False(t, cfg.AllowAllOrigins)
	assert.Equal(t, []string{"https://a.example.com"}, cfg.AllowOrigins)
	assert.NoError(t, cfg.Validate())
}
