package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/quotecalc/service-quote/internal/calculation"
	"github.com/quotecalc/service-quote/internal/config"
	"github.com/quotecalc/service-quote/internal/domain"
)

const shutdownTimeout = 5 * time.Second

// Server exposes the quote engine over HTTP for the embedding quote page.
type Server struct {
	settings config.ServerSettings
	engine   *calculation.QuoteEngine
	parser   *config.InputParser
	logger   calculation.Logger
	router   *gin.Engine
}

// NewServer wires routes and middleware. A nil logger discards output.
func NewServer(settings config.ServerSettings, engine *calculation.QuoteEngine, logger calculation.Logger) *Server {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	s := &Server{
		settings: settings,
		engine:   engine,
		parser:   config.NewInputParser(),
		logger:   logger,
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	if cfg, ok := corsConfig(settings.AllowedOrigins); ok {
		r.Use(cors.New(cfg))
	}

	r.GET("/api/health", s.health)
	r.POST("/api/quotes", s.quote(""))
	r.POST("/api/quotes/monthly", s.quote(domain.FrequencyMonthly))
	r.POST("/api/quotes/annual", s.quote(domain.FrequencyAnnual))
	r.POST("/api/requirements", s.requirements)

	s.router = r
	return s
}

// corsConfig builds the CORS policy. No origins means no CORS middleware at all.
func corsConfig(origins []string) (cors.Config, bool) {
	if len(origins) == 0 {
		return cors.Config{}, false
	}
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg, true
		}
	}
	cfg.AllowOrigins = origins
	return cfg, true
}

// Handler returns the router for use with httptest or a custom http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.settings.Address,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("quote API listening on %s", s.settings.Address)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Infof("shutting down quote API")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
