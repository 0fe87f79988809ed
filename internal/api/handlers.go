package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quotecalc/service-quote/internal/buildinfo"
	"github.com/quotecalc/service-quote/internal/domain"
	"github.com/quotecalc/service-quote/internal/output"
)

var contentTypes = map[string]string{
	"console": "text/plain; charset=utf-8",
	"text":    "text/plain; charset=utf-8",
	"csv":     "text/csv; charset=utf-8",
	"html":    "text/html; charset=utf-8",
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": buildinfo.Version})
}

// decode reads the body as a JSON quote request
func (s *Server) decode(c *gin.Context) (*domain.QuoteRequest, bool) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error reading request body"})
		return nil, false
	}
	req, err := s.parser.ParseJSON(body)
	if err != nil {
		s.logger.Debugf("rejected quote request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return req, true
}

// quote prices a request. A non-empty frequency overrides the one in the body.
// The optional ?format= query renders the result with an output formatter instead of JSON.
func (s *Server) quote(frequency domain.Frequency) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := s.decode(c)
		if !ok {
			return
		}
		if frequency != "" {
			req.Frequency = frequency
		}

		result, err := s.engine.RunQuote(c.Request.Context(), req)
		if err != nil {
			s.logger.Errorf("quote failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error computing quote"})
			return
		}

		format := output.NormalizeFormatName(c.Query("format"))
		if format == "" || format == "json" {
			c.JSON(http.StatusOK, result)
			return
		}

		data, err := output.Render(result, format)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, output.ErrUnsupportedFormat) {
				status = http.StatusBadRequest
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, contentTypes[format], data)
	}
}

// requirements reports required and invalid fields without pricing
func (s *Server) requirements(c *gin.Context) {
	req, ok := s.decode(c)
	if !ok {
		return
	}
	report := s.engine.Validate(req)
	c.JSON(http.StatusOK, gin.H{
		"valid":    report.Valid(),
		"report":   report,
		"problems": problemsOrEmpty(output.ValidationProblems(report)),
	})
}

func problemsOrEmpty(p []string) []string {
	if p == nil {
		return []string{}
	}
	return p
}
