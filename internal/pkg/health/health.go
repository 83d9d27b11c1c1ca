package health

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengdinas/internal/pkg/circuitbreaker"
	"github.com/piresc/nebengdinas/internal/pkg/database"
	"github.com/piresc/nebengdinas/internal/pkg/logger"
	"github.com/piresc/nebengdinas/internal/pkg/nats"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// HealthChecker checks one dependency
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a function to HealthChecker
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) CheckHealth(ctx context.Context) error { return f(ctx) }

// NewPostgresHealthChecker pings the database pool
func NewPostgresHealthChecker(client *database.PostgresClient) HealthChecker {
	return CheckerFunc(func(ctx context.Context) error {
		return client.GetDB().PingContext(ctx)
	})
}

// NewRedisHealthChecker pings redis
func NewRedisHealthChecker(client *database.RedisClient) HealthChecker {
	return CheckerFunc(func(ctx context.Context) error {
		return client.Client.Ping(ctx).Err()
	})
}

// NewNATSHealthChecker reports the connection state
func NewNATSHealthChecker(client *nats.Client) HealthChecker {
	return CheckerFunc(func(ctx context.Context) error {
		if !client.IsConnected() {
			return errors.New("nats not connected")
		}
		return nil
	})
}

// HealthService aggregates dependency checks
type HealthService struct {
	mu       sync.RWMutex
	checkers map[string]HealthChecker
	breakers *circuitbreaker.Manager
	logger   *logger.ZapLogger
}

// NewHealthService creates an empty health service
func NewHealthService(l *logger.ZapLogger) *HealthService {
	if l == nil {
		l = logger.NewNop()
	}
	return &HealthService{checkers: make(map[string]HealthChecker), logger: l}
}

// AddChecker registers a dependency check under name
func (h *HealthService) AddChecker(name string, checker HealthChecker) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checkers[name] = checker
}

// WatchBreakers includes circuit breaker states in detailed reports. An
// open breaker is informational and does not fail readiness.
func (h *HealthService) WatchBreakers(m *circuitbreaker.Manager) {
	h.breakers = m
}

// Response is the detailed health report
type Response struct {
	Status       string                    `json:"status"`
	Timestamp    time.Time                 `json:"timestamp"`
	Service      string                    `json:"service"`
	Version      string                    `json:"version,omitempty"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
	Breakers     map[string]string         `json:"circuit_breakers,omitempty"`
}

// DependencyInfo is one dependency's result
type DependencyInfo struct {
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
	Latency string `json:"latency"`
}

// CheckAllHealth runs every checker
func (h *HealthService) CheckAllHealth(ctx context.Context) Response {
	h.mu.RLock()
	names := make([]string, 0, len(h.checkers))
	for name := range h.checkers {
		names = append(names, name)
	}
	h.mu.RUnlock()
	sort.Strings(names)

	resp := Response{
		Status:       StatusHealthy,
		Timestamp:    time.Now(),
		Dependencies: make(map[string]DependencyInfo, len(names)),
	}

	for _, name := range names {
		h.mu.RLock()
		checker := h.checkers[name]
		h.mu.RUnlock()

		start := time.Now()
		err := checker.CheckHealth(ctx)
		info := DependencyInfo{Status: StatusHealthy, Latency: time.Since(start).String()}
		if err != nil {
			h.logger.Error("Health check failed", logger.String("dependency", name), logger.Err(err))
			info.Status = StatusUnhealthy
			info.Error = err.Error()
			resp.Status = StatusUnhealthy
		}
		resp.Dependencies[name] = info
	}

	if h.breakers != nil {
		resp.Breakers = h.breakers.States()
	}
	return resp
}

// RegisterEnhancedHealthEndpoints mounts /ping, /health, /health/detailed,
// /health/ready and /health/live.
func RegisterEnhancedHealthEndpoints(e *echo.Echo, serviceName, version string, hs *HealthService) {
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})

	g := e.Group("/health")

	g.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":    "ok",
			"service":   serviceName,
			"timestamp": time.Now(),
		})
	})

	g.GET("/detailed", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		resp := hs.CheckAllHealth(ctx)
		resp.Service = serviceName
		resp.Version = version

		code := http.StatusOK
		if resp.Status == StatusUnhealthy {
			code = http.StatusServiceUnavailable
		}
		return c.JSON(code, resp)
	})

	g.GET("/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
		defer cancel()

		resp := hs.CheckAllHealth(ctx)
		resp.Service = serviceName
		if resp.Status == StatusUnhealthy {
			return c.JSON(http.StatusServiceUnavailable, resp)
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ready", "service": serviceName})
	})

	g.GET("/live", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "alive", "service": serviceName})
	})
}
