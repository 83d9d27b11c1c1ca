package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/piresc/nebengdinas/internal/pkg/apperror"
	"github.com/piresc/nebengdinas/internal/pkg/circuitbreaker"
	"github.com/piresc/nebengdinas/internal/pkg/logger"
	nrpkg "github.com/piresc/nebengdinas/internal/pkg/newrelic"
	"github.com/piresc/nebengdinas/internal/pkg/requestcontext"
	"github.com/piresc/nebengdinas/internal/pkg/retry"
)

const (
	// APIKeyHeader carries the outbound credential
	APIKeyHeader = "X-API-Key"
	// RequestIDHeader propagates the inbound request id
	RequestIDHeader = "X-Request-ID"

	defaultTimeout = 10 * time.Second
)

// Config describes one upstream JSON API
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	// Breaker is the circuit breaker name guarding this upstream
	Breaker string
}

// Client is a JSON client with retry, circuit breaking and New Relic
// external segments.
type Client struct {
	baseURL    string
	apiKey     string
	breaker    string
	httpClient *http.Client
	retrier    *retry.Retrier
	breakers   *circuitbreaker.Manager
	logger     *logger.ZapLogger
}

// NewClient creates a client. Nil retrier or breakers get defaults.
func NewClient(cfg Config, retrier *retry.Retrier, breakers *circuitbreaker.Manager, log *logger.ZapLogger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if log == nil {
		log = logger.NewNop()
	}
	if retrier == nil {
		retrier = retry.NewWithDefaults(log)
	}
	if breakers == nil {
		breakers = circuitbreaker.NewManager(circuitbreaker.DefaultConfig(), log)
	}
	if cfg.Breaker == "" {
		cfg.Breaker = cfg.BaseURL
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		breaker:    cfg.Breaker,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		retrier:    retrier,
		breakers:   breakers,
		logger:     log,
	}
}

// StatusError is a non-2xx response
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// PostJSON sends body as JSON to path and decodes the response into out
func (c *Client) PostJSON(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, payload, out)
}

// GetJSON fetches path and decodes the response into out
func (c *Client) GetJSON(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte, out interface{}) error {
	url := c.baseURL + path

	return c.breakers.Execute(ctx, c.breaker, func(ctx context.Context) error {
		return c.retrier.Execute(ctx, func(ctx context.Context) error {
			var reader io.Reader
			if payload != nil {
				reader = bytes.NewReader(payload)
			}
			req, err := http.NewRequestWithContext(ctx, method, url, reader)
			if err != nil {
				return fmt.Errorf("failed to create request: %w", err)
			}
			req.Header.Set("Accept", "application/json")
			if payload != nil {
				req.Header.Set("Content-Type", "application/json")
			}
			if c.apiKey != "" {
				req.Header.Set(APIKeyHeader, c.apiKey)
			}
			if id := requestcontext.GetRequestID(ctx); id != "" {
				req.Header.Set(RequestIDHeader, id)
			}

			resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
				return c.httpClient.Do(req)
			})
			if err != nil {
				return apperror.TransientError{Op: method + " " + url, Err: err}
			}
			defer resp.Body.Close()

			raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
			if err != nil {
				return apperror.TransientError{Op: "read response", Err: err}
			}

			if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
				return apperror.TransientError{Op: method + " " + url, Err: &StatusError{StatusCode: resp.StatusCode, Body: string(raw)}}
			}
			if resp.StatusCode >= 300 {
				c.logger.Warn("Upstream rejected request",
					logger.String("url", url),
					logger.Int("status", resp.StatusCode))
				return &StatusError{StatusCode: resp.StatusCode, Body: string(raw)}
			}

			if out == nil || len(raw) == 0 {
				return nil
			}
			if err := json.Unmarshal(raw, out); err != nil {
				return fmt.Errorf("failed to decode response: %w", err)
			}
			return nil
		})
	})
}
