package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/piresc/nebengdinas/internal/pkg/apperror"
	"github.com/stretchr/testify/assert"
)

func newTestRetrier(attempts int) (*Retrier, *[]time.Duration) {
	var slept []time.Duration
	r := New(Config{MaxAttempts: attempts, BaseDelay: 100 * time.Millisecond, Multiplier: 2}, nil)
	r.sleep = func(ctx context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}
	return r, &slept
}

func TestExecute_SucceedsAfterTransientFailures(t *testing.T) {
	r, slept := newTestRetrier(3)
	calls := 0

	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return apperror.TransientError{Op: "smtp send", Err: errors.New("421 try later")}
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, *slept)
}

func TestExecute_StopsOnDomainError(t *testing.T) {
	r, slept := newTestRetrier(5)
	calls := 0
	notFound := apperror.NotFoundError{Resource: "trip", ID: "x"}

	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return notFound
	})

	assert.ErrorIs(t, err, notFound)
	assert.Equal(t, 1, calls)
	assert.Empty(t, *slept)
}

func TestExecute_GivesUp(t *testing.T) {
	r, _ := newTestRetrier(2)
	cause := apperror.TransientError{Op: "publish", Err: errors.New("no responders")}

	err := r.Execute(context.Background(), func(ctx context.Context) error { return cause })

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "gave up after 2 attempts")
	assert.True(t, apperror.IsTransient(err))
}

func TestExecute_CancelledContext(t *testing.T) {
	r, _ := newTestRetrier(3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Execute(ctx, func(ctx context.Context) error { return nil })

	assert.ErrorIs(t, err, context.Canceled)
}

func TestDelay_CappedAtMax(t *testing.T) {
	r := New(Config{MaxAttempts: 10, BaseDelay: time.Second, MaxDelay: 3 * time.Second, Multiplier: 2}, nil)

	assert.Equal(t, time.Second, r.delay(1))
	assert.Equal(t, 2*time.Second, r.delay(2))
	assert.Equal(t, 3*time.Second, r.delay(5))
}

func TestIsRetryable(t *testing.T) {
	assert.False(t, IsRetryable(nil))
	assert.True(t, IsRetryable(context.DeadlineExceeded))
	assert.True(t, IsRetryable(apperror.TransientError{Op: "x", Err: errors.New("y")}))
	assert.False(t, IsRetryable(apperror.ConflictError{Resource: "group"}))
	assert.False(t, IsRetryable(errors.New("plain")))
}
