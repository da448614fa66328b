package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"user-post-service/internal/config"
)

// Server owns the HTTP listener for the REST API.
type Server struct {
	Config *config.Config
	Logger *zap.Logger
	HTTP   *http.Server
}

// New creates a new server instance serving handler on HTTP_PORT.
func New(cfg *config.Config, l *zap.Logger, handler http.Handler) *Server {
	return &Server{
		Config: cfg,
		Logger: l,
		HTTP: &http.Server{
			Addr:              ":" + cfg.App.HTTPPort,
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
	}
}

// Start listens and serves until Shutdown is called. It returns nil after a
// graceful shutdown.
func (s *Server) Start() error {
	lc := net.ListenConfig{}
	lis, err := lc.Listen(context.Background(), "tcp", s.HTTP.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	return s.Serve(lis)
}

// Serve accepts connections on lis.
func (s *Server) Serve(lis net.Listener) error {
	s.Logger.Info("HTTP server running",
		zap.String("address", lis.Addr().String()),
		zap.String("swagger", "/swagger/index.html"),
	)

	if err := s.HTTP.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.HTTP.Shutdown(ctx)
}
