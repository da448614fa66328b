package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"
	"time"

	"go.uber.org/zap"

	"user-post-service/cmd/api/di"
	"user-post-service/cmd/api/server"
	"user-post-service/internal/config"
	"user-post-service/pkg/logger"
)

// App represents the application
type App struct {
	Config    *config.Config
	Logger    *zap.Logger
	Server    *server.Server
	Container *di.Container
}

// New creates a new application instance
func New(ctx context.Context) (*App, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := initLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return NewWithConfig(ctx, cfg, l)
}

// NewWithConfig builds the application from an already loaded configuration.
func NewWithConfig(ctx context.Context, cfg *config.Config, l *zap.Logger) (*App, error) {
	container, err := di.NewContainer(ctx, cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to create container: %w", err)
	}

	return &App{
		Config:    cfg,
		Logger:    l,
		Server:    server.New(cfg, l, container.Router),
		Container: container,
	}, nil
}

// Run starts the application and blocks until ctx is canceled or the
// server fails.
func (a *App) Run(ctx context.Context) error {
	a.Logger.Info("starting application",
		zap.String("service", a.Config.Logger.ServiceName),
		zap.String("version", a.Config.Logger.ServiceVersion),
		zap.String("environment", getEnvironment()),
		zap.String("store", a.Config.Store.Driver),
	)

	errChan := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				errChan <- fmt.Errorf("server panic: %v", r)
			}
		}()

		errChan <- a.Server.Start()
	}()

	select {
	case <-ctx.Done():
		a.Logger.Info("shutting down application...")
		return a.shutdown()
	case err := <-errChan:
		if err != nil {
			err = fmt.Errorf("server error: %w", err)
		}
		return errors.Join(err, a.shutdown())
	}
}

// shutdown gracefully shuts down the application
func (a *App) shutdown() error {
	timeout := time.Duration(a.Config.App.ShutdownTimeoutSeconds) * time.Second
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	a.Logger.Info("starting graceful shutdown",
		zap.Int("timeout_seconds", a.Config.App.ShutdownTimeoutSeconds),
	)

	var errs []error

	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		a.Logger.Error("failed to shutdown HTTP server", zap.Error(err))
		errs = append(errs, fmt.Errorf("HTTP shutdown: %w", err))
	}

	if a.Container != nil {
		if err := a.Container.Close(); err != nil {
			a.Logger.Error("failed to close container", zap.Error(err))
			errs = append(errs, fmt.Errorf("container close: %w", err))
		}
	}

	// stdout and stderr cannot be synced on most platforms
	if err := a.Logger.Sync(); err != nil && !errors.Is(err, syscall.EINVAL) && !errors.Is(err, syscall.ENOTTY) {
		errs = append(errs, fmt.Errorf("logger sync: %w", err))
	}

	a.Logger.Info("application shutdown complete")

	return errors.Join(errs...)
}

func loadConfig() (*config.Config, error) {
	return config.LoadConfig(getConfigPath())
}

// initLogger initializes the application logger
func initLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.NewWithConfig(logger.Config{
		Level:            cfg.Logger.Level,
		Format:           cfg.Logger.Format,
		OutputPath:       cfg.Logger.OutputPath,
		SlowQuerySeconds: cfg.Logger.SlowQuerySeconds,
		EnableSampling:   cfg.Logger.EnableSampling,
		ServiceName:      cfg.Logger.ServiceName,
		ServiceVersion:   cfg.Logger.ServiceVersion,
		Environment:      getEnvironment(),
	})
}

func getConfigPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return "."
}

func getEnvironment() string {
	if env := os.Getenv("APP_ENV"); env != "" {
		return env
	}
	return "development"
}
