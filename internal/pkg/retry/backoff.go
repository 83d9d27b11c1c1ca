package retry

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"net"
	"time"

	"github.com/piresc/nebengdinas/internal/pkg/apperror"
	"github.com/piresc/nebengdinas/internal/pkg/logger"
)

// Operation is one attempt of a retried call
type Operation func(ctx context.Context) error

// Config holds backoff settings
type Config struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Multiplier  float64
	Jitter      bool
	Retryable   func(error) bool
}

// DefaultConfig retries transient failures three times starting at 200ms
func DefaultConfig() Config {
	return Config{
		MaxAttempts: 3,
		BaseDelay:   200 * time.Millisecond,
		MaxDelay:    10 * time.Second,
		Multiplier:  2.0,
		Jitter:      true,
		Retryable:   IsRetryable,
	}
}

// Retrier runs an operation with exponential backoff
type Retrier struct {
	config Config
	logger *logger.ZapLogger
	sleep  func(ctx context.Context, d time.Duration) error
}

// New creates a retrier. A nil logger discards output.
func New(config Config, l *logger.ZapLogger) *Retrier {
	if config.MaxAttempts < 1 {
		config.MaxAttempts = 1
	}
	if config.Multiplier <= 0 {
		config.Multiplier = 2.0
	}
	if config.Retryable == nil {
		config.Retryable = IsRetryable
	}
	if l == nil {
		l = logger.NewNop()
	}
	return &Retrier{config: config, logger: l, sleep: sleepCtx}
}

// NewWithDefaults creates a retrier with DefaultConfig
func NewWithDefaults(l *logger.ZapLogger) *Retrier {
	return New(DefaultConfig(), l)
}

// Execute calls op until it succeeds, returns a non-retryable error, or
// the attempts run out.
func (r *Retrier) Execute(ctx context.Context, op Operation) error {
	var lastErr error

	for attempt := 1; attempt <= r.config.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := op(ctx)
		if err == nil {
			if attempt > 1 {
				r.logger.Info("Operation succeeded after retry", logger.Int("attempt", attempt))
			}
			return nil
		}
		lastErr = err

		if !r.config.Retryable(err) {
			return err
		}
		if attempt == r.config.MaxAttempts {
			break
		}

		delay := r.delay(attempt)
		r.logger.Debug("Operation failed, retrying",
			logger.Err(err),
			logger.Int("attempt", attempt),
			logger.Duration("delay", delay))

		if err := r.sleep(ctx, delay); err != nil {
			return err
		}
	}

	r.logger.Warn("Operation failed after all attempts",
		logger.Err(lastErr),
		logger.Int("attempts", r.config.MaxAttempts))

	return fmt.Errorf("gave up after %d attempts: %w", r.config.MaxAttempts, lastErr)
}

func (r *Retrier) delay(attempt int) time.Duration {
	d := float64(r.config.BaseDelay) * math.Pow(r.config.Multiplier, float64(attempt-1))
	if r.config.MaxDelay > 0 && d > float64(r.config.MaxDelay) {
		d = float64(r.config.MaxDelay)
	}
	if r.config.Jitter {
		d += d * 0.1 * rand.Float64()
	}
	return time.Duration(d)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// IsRetryable treats transient errors, network errors and deadlines as
// worth another attempt. Domain errors are final.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if apperror.IsTransient(err) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
