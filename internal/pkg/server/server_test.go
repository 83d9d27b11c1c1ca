package server

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengdinas/internal/pkg/logger"
	"github.com/piresc/nebengdinas/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGracefulServer(t *testing.T) {
	tests := []struct {
		name            string
		cfg             models.ServerConfig
		expectedAddr    string
		expectedTimeout time.Duration
	}{
		{
			name:            "configured timeouts",
			cfg:             models.ServerConfig{Port: 8080, ReadTimeout: 5, WriteTimeout: 7, ShutdownTimeout: 12},
			expectedAddr:    ":8080",
			expectedTimeout: 12 * time.Second,
		},
		{
			name:            "default shutdown timeout",
			cfg:             models.ServerConfig{Host: "127.0.0.1", Port: 9090},
			expectedAddr:    "127.0.0.1:9090",
			expectedTimeout: defaultShutdownTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			gs := NewGracefulServer(e, logger.NewNop(), tt.cfg, nil)

			assert.Equal(t, tt.expectedAddr, gs.addr)
			assert.Equal(t, tt.expectedTimeout, gs.timeout)
			if tt.cfg.ReadTimeout > 0 {
				assert.Equal(t, time.Duration(tt.cfg.ReadTimeout)*time.Second, e.Server.ReadTimeout)
				assert.Equal(t, time.Duration(tt.cfg.WriteTimeout)*time.Second, e.Server.WriteTimeout)
			}
		})
	}
}

func TestGracefulServer_RunStopsOnCancel(t *testing.T) {
	e := echo.New()
	components := NewShutdownManager(logger.NewNop())
	closed := make(chan struct{})
	components.Register("redis", func(context.Context) error {
		close(closed)
		return nil
	})

	gs := NewGracefulServer(e, logger.NewNop(), models.ServerConfig{Host: "127.0.0.1", Port: 0, ShutdownTimeout: 2}, components)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- gs.Run(ctx) }()

	require.Eventually(t, func() bool { return e.ListenerAddr() != nil }, 2*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
	select {
	case <-closed:
	default:
		t.Fatal("components were not shut down")
	}
}

func TestGracefulServer_RunReportsListenFailure(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()
	port := busy.Addr().(*net.TCPAddr).Port

	gs := NewGracefulServer(echo.New(), logger.NewNop(), models.ServerConfig{Host: "127.0.0.1", Port: port}, nil)

	err = gs.Run(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start server")
}

func TestShutdownManager_ReverseOrderAndFailures(t *testing.T) {
	sm := NewShutdownManager(logger.NewNop())
	var order []string
	sm.Register("postgres", func(context.Context) error {
		order = append(order, "postgres")
		return nil
	})
	sm.Register("nats", func(context.Context) error {
		order = append(order, "nats")
		return errors.New("drain timeout")
	})
	sm.Register("redis", func(context.Context) error {
		order = append(order, "redis")
		return nil
	})

	failed := sm.Shutdown(context.Background())

	assert.Equal(t, 1, failed)
	assert.Equal(t, []string{"redis", "nats", "postgres"}, order)
}
