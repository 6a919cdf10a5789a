package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/netutil"

	"github.com/jobtrackr/jobtrackr-api/config"
	httpx "github.com/jobtrackr/jobtrackr-api/internal/http"
)

// HTTPServer wraps the server and its connection-limited listener.
type HTTPServer struct {
	server   *http.Server
	listener net.Listener
	logger   *slog.Logger
	shutdown time.Duration
}

// NewHTTPServer constructs the HTTP server with routing, middleware, and a
// connection-capped listener. It does not start serving.
func NewHTTPServer(cfg config.HTTPConfig, services ServiceContainer, logger *slog.Logger) (*HTTPServer, error) {
	if logger == nil {
		logger = slog.Default()
	}

	router := httpx.NewRouter(httpx.RouterServices{
		Apps:     services.Apps,
		Tags:     services.Tags,
		Identity: services.Identity,
		Logger:   logger,
	})

	addr := cfg.Addr
	if addr == "" {
		addr = ":8080"
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	return &HTTPServer{
		server: &http.Server{
			Addr:         addr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  120 * time.Second,
		},
		listener: netutil.LimitListener(ln, cfg.MaxConns),
		logger:   logger,
		shutdown: cfg.ShutdownTimeout,
	}, nil
}

// Serve blocks serving requests until Shutdown is called or the listener
// fails. A closed-server error is reported as a clean exit.
func (s *HTTPServer) Serve() error {
	s.logger.Info("starting HTTP server", "addr", s.server.Addr)
	if err := s.server.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests within the configured timeout. The
// deadline runs from a fresh context because the caller's context is usually
// already canceled by the time shutdown starts.
func (s *HTTPServer) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdown)
	defer cancel()

	s.logger.Info("shutting down HTTP server")
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
