package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengdinas/internal/pkg/logger"
	"github.com/piresc/nebengdinas/internal/pkg/models"
)

const defaultShutdownTimeout = 30 * time.Second

// GracefulServer wraps Echo with graceful shutdown of the server and the
// components it depends on
type GracefulServer struct {
	echo       *echo.Echo
	logger     *logger.ZapLogger
	addr       string
	timeout    time.Duration
	components *ShutdownManager
}

// NewGracefulServer creates a server listening on cfg.Host:cfg.Port.
// components may be nil.
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, cfg models.ServerConfig, components *ShutdownManager) *GracefulServer {
	timeout := time.Duration(cfg.ShutdownTimeout) * time.Second
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	if cfg.ReadTimeout > 0 {
		e.Server.ReadTimeout = time.Duration(cfg.ReadTimeout) * time.Second
	}
	if cfg.WriteTimeout > 0 {
		e.Server.WriteTimeout = time.Duration(cfg.WriteTimeout) * time.Second
	}
	e.HideBanner = true

	return &GracefulServer{
		echo:       e,
		logger:     zapLogger,
		addr:       fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		timeout:    timeout,
		components: components,
	}
}

// Run serves until ctx is cancelled, then shuts the server and the
// registered components down. A listener failure is returned immediately.
func (s *GracefulServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", logger.String("address", s.addr))
		if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("Received shutdown signal")
	}

	return s.Shutdown()
}

// Shutdown stops accepting requests, waits for in-flight ones and then
// closes the registered components
func (s *GracefulServer) Shutdown() error {
	s.logger.Info("Shutting down server gracefully", logger.Duration("timeout", s.timeout))

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	err := s.echo.Shutdown(ctx)
	if err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
	}

	if s.components != nil {
		s.components.Shutdown(ctx)
	}

	s.logger.Info("Server shutdown completed")
	return err
}

// ShutdownManager closes dependencies in reverse registration order
type ShutdownManager struct {
	logger    *logger.ZapLogger
	names     []string
	functions []func(context.Context) error
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager(zapLogger *logger.ZapLogger) *ShutdownManager {
	return &ShutdownManager{logger: zapLogger}
}

// Register adds a named cleanup function
func (sm *ShutdownManager) Register(name string, fn func(context.Context) error) {
	sm.names = append(sm.names, name)
	sm.functions = append(sm.functions, fn)
}

// Shutdown runs every cleanup function, last registered first. Failures
// are logged and counted; the remaining components still run.
func (sm *ShutdownManager) Shutdown(ctx context.Context) int {
	sm.logger.Info("Starting graceful shutdown of components", logger.Int("components", len(sm.functions)))

	failed := 0
	for i := len(sm.functions) - 1; i >= 0; i-- {
		if err := sm.functions[i](ctx); err != nil {
			failed++
			sm.logger.Error("Error during component shutdown",
				logger.String("component", sm.names[i]),
				logger.Err(err))
		}
	}

	sm.logger.Info("All components shutdown completed", logger.Int("failed", failed))
	return failed
}
