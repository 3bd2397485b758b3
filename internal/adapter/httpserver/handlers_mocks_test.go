package httpserver

import (
	"context"
	"errors"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/odenirdev/feedpulse/internal/domain"
	"github.com/odenirdev/feedpulse/internal/platform/config"
)

// --- Mock implementations ---

type mockAppService struct {
	analyzeFn func(ctx context.Context, messages []domain.Message, windowMinutes float64) (*domain.Report, error)
}

func (m *mockAppService) Analyze(ctx context.Context, messages []domain.Message, windowMinutes float64) (*domain.Report, error) {
	if m.analyzeFn != nil {
		return m.analyzeFn(ctx, messages, windowMinutes)
	}
	return nil, errors.New("not implemented")
}

// --- Test helpers ---

func newTestServer(t *testing.T, app appService, opts ...func(*Server)) *Server {
	t.Helper()

	srv := &Server{
		echo:     echo.New(),
		config:   &config.Config{Port: "8080", MaxBatchSize: 1000},
		app:      app,
		clock:    clockwork.NewFakeClock(),
		registry: prometheus.NewRegistry(),
	}

	for _, opt := range opts {
		opt(srv)
	}

	srv.registerRoutes()

	return srv
}

func withHealthChecks(checks ...HealthCheck) func(*Server) {
	return func(s *Server) {
		s.healthChecks = checks
	}
}

func withMaxBatchSize(size int) func(*Server) {
	return func(s *Server) {
		cfg := *s.config
		cfg.MaxBatchSize = size
		s.config = &cfg
	}
}

// callHandler wraps a handler with error middleware, matching production behavior
func callHandler(handler echo.HandlerFunc, c echo.Context) error {
	return ErrorHandlingMiddleware()(handler)(c)
}
