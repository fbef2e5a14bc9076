// Package server exposes the projection engine as a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/wellcalc/investment-calculator/internal/calculation"
	"github.com/wellcalc/investment-calculator/internal/config"
	"github.com/wellcalc/investment-calculator/internal/logging"
	"go.uber.org/zap"
)

// Server serves the calculators over HTTP
type Server struct {
	cfg     config.ServerConfig
	logger  *zap.Logger
	engine  *calculation.CalculationEngine
	metrics *Metrics
	handler http.Handler
}

// New builds a server and its routes. A nil logger disables logging.
func New(cfg config.ServerConfig, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logging.Engine(logger))
	engine.Debug = cfg.Verbose

	s := &Server{
		cfg:     cfg,
		logger:  logger,
		engine:  engine,
		metrics: NewMetrics(cfg.MetricsNamespace),
	}
	s.handler = withRequestID(withLogging(logger, s.routes()))
	return s
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("GET /api/growth", s.instrument("growth", s.handleGrowth))
	mux.Handle("GET /api/tax-shield", s.instrument("tax_shield", s.handleTaxShield))
	mux.Handle("GET /api/well-revenue", s.instrument("well_revenue", s.handleWellRevenue))
	mux.Handle("GET /api/return", s.instrument("return", s.handleReturn))
	mux.Handle("GET /api/scenario", s.instrument("scenario", s.handleScenario))
	mux.Handle("GET /api/simulate", s.instrument("simulate", s.handleSimulate))
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", s.metrics.Handler())
	return mux
}

// Handler returns the root handler with request id and logging middleware
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Metrics returns the server's collectors
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Run listens on the configured address and serves until ctx is cancelled
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully within
// the configured shutdown timeout
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.handler,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.logger.Info("server started", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", zap.Duration("timeout", s.cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
