// Package server собирает HTTP дашборд: маршруты, middleware и graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/iudanet/servermanager/internal/server/handlers"
	"github.com/iudanet/servermanager/internal/server/middleware"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second

	// stateBuffer состояний, которые hub может отстать от Projector
	stateBuffer = 16
)

// Options настраивает дашборд
type Options struct {
	Addr      string
	Version   string
	RateLimit float64 // запросов в секунду на IP
	RateBurst int
}

// Server is the dashboard HTTP server.
type Server struct {
	projector handlers.Projector
	hub       *handlers.Hub
	limiter   *middleware.RateLimiter
	logger    *slog.Logger
	handler   http.Handler
	opts      Options
}

// New собирает маршруты дашборда. hub должен быть Notifier для projector,
// иначе браузер не получит события формы.
func New(opts Options, projector handlers.Projector, hub *handlers.Hub, logger *slog.Logger) *Server {
	s := &Server{
		projector: projector,
		hub:       hub,
		logger:    logger,
		opts:      opts,
		limiter:   middleware.NewRateLimiter(rate.Limit(opts.RateLimit), opts.RateBurst, logger),
	}

	actions := handlers.NewActionsHandler(logger, projector)
	dashboard := handlers.NewDashboardHandler(logger, projector, opts.Version)
	report := handlers.NewReportHandler(logger, projector)
	stream := handlers.NewStreamHandler(logger, hub, projector)
	health := handlers.NewHealthHandler(logger, projector, opts.Version)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", dashboard.Page)
	mux.HandleFunc("GET /report", report.Report)
	mux.HandleFunc("GET /ws", stream.ServeWS)
	mux.HandleFunc("GET /api/v1/health", health.Health)
	mux.HandleFunc("GET /api/v1/state", actions.State)

	// Действия ограничены по частоте, чтение страницы и поток нет
	limited := http.NewServeMux()
	limited.HandleFunc("POST /actions/load", actions.Load)
	limited.HandleFunc("POST /actions/ping/{ip}", actions.Ping)
	limited.HandleFunc("POST /actions/filter/{status}", actions.Filter)
	limited.HandleFunc("POST /actions/servers", actions.Save)
	limited.HandleFunc("DELETE /actions/servers/{id}", actions.Delete)
	mux.Handle("/actions/", s.limiter.Middleware(limited))

	var h http.Handler = mux
	h = middleware.LoggingWithSkip(logger, []string{"/api/v1/health", "/ws"})(h)
	h = middleware.RequestID(h)
	h = middleware.RecoveryMiddleware(logger)(h)
	s.handler = h

	return s
}

// Handler returns the root handler with middleware applied.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run слушает opts.Addr до отмены ctx, затем корректно останавливается
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.opts.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer s.limiter.Stop()

	hubCtx, stopHub := context.WithCancel(ctx)
	defer stopHub()
	states, unsubscribe := s.projector.Subscribe(stateBuffer)
	defer unsubscribe()
	go s.hub.Run(hubCtx, states)

	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errC := make(chan error, 1)
	go func() {
		s.logger.Info("dashboard listening", "addr", ln.Addr().String())
		errC <- srv.Serve(ln)
	}()

	select {
	case err := <-errC:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("dashboard server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down dashboard")
	// websocket соединения hijacked: Shutdown их не ждёт, hub закрывает их сам
	stopHub()

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown dashboard: %w", err)
	}
	return nil
}
