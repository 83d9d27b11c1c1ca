// Package notifier renders and delivers email notifications. Delivery is
// best effort: a failed send is logged and queued in redis for the
// notify-retry job, and never reaches the caller.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/piresc/nebengdinas/internal/pkg/constants"
	"github.com/piresc/nebengdinas/internal/pkg/database"
	"github.com/piresc/nebengdinas/internal/pkg/logger"
	"github.com/piresc/nebengdinas/internal/pkg/models"
	"github.com/piresc/nebengdinas/internal/pkg/retry"
)

//go:generate mockgen -source=dispatcher.go -destination=mocks/mock_sender.go -package=mocks

// Sender delivers one message
type Sender interface {
	Send(ctx context.Context, msg models.Message) error
	IsConfigured() bool
}

const (
	defaultSendTimeout = 10 * time.Second
	// queueWindow is how long sends go straight to the retry queue after a failure
	queueWindow = time.Minute
	// MaxAttempts bounds how often a queued message is retried before it is dropped
	MaxAttempts = 5
)

// Dispatcher sends notifications after commit without failing the caller
type Dispatcher struct {
	sender  Sender
	redis   *database.RedisClient
	timeout time.Duration
	now     func() time.Time

	mu         sync.Mutex
	queueUntil time.Time
}

// NewDispatcher creates a dispatcher. redis may be nil, in which case
// failed messages are only logged.
func NewDispatcher(sender Sender, redis *database.RedisClient, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = defaultSendTimeout
	}
	return &Dispatcher{sender: sender, redis: redis, timeout: timeout, now: time.Now}
}

// Notify renders the named template and sends it
func (d *Dispatcher) Notify(ctx context.Context, name string, to, cc []string, data Data) {
	if len(to) == 0 {
		logger.Debug("Skipping notification without recipients", logger.String("template", name))
		return
	}
	msg, err := Render(name, to, cc, data)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to render notification", logger.String("template", name), logger.Err(err))
		return
	}
	d.Send(ctx, msg)
}

// Send delivers msg with a bounded timeout. The request context is only
// used for tracing; cancellation of the caller does not abort delivery.
func (d *Dispatcher) Send(ctx context.Context, msg models.Message) {
	if d.sender == nil || !d.sender.IsConfigured() {
		logger.Info("Email not configured, notification logged only",
			logger.Strings("to", msg.To),
			logger.String("subject", msg.Subject))
		return
	}

	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
	defer cancel()

	// after a failure the caller waits at most one timeout per window
	if d.queueing() {
		logger.WarnCtx(ctx, "Email delivery failing, notification queued for retry",
			logger.Strings("to", msg.To),
			logger.String("subject", msg.Subject))
		d.enqueue(sendCtx, models.QueuedMessage{Message: msg, LastError: "not attempted after a recent failure", QueuedAt: d.now()})
		return
	}

	if err := d.sender.Send(sendCtx, msg); err != nil {
		d.setQueueUntil(d.now().Add(queueWindow))
		logger.WarnCtx(ctx, "Notification send failed, queued for retry",
			logger.Strings("to", msg.To),
			logger.String("subject", msg.Subject),
			logger.Err(err))
		d.enqueue(sendCtx, models.QueuedMessage{Message: msg, Attempts: 1, LastError: err.Error(), QueuedAt: d.now()})
		return
	}
	d.setQueueUntil(time.Time{})
}

func (d *Dispatcher) queueing() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.now().Before(d.queueUntil)
}

func (d *Dispatcher) setQueueUntil(t time.Time) {
	d.mu.Lock()
	d.queueUntil = t
	d.mu.Unlock()
}

func (d *Dispatcher) enqueue(ctx context.Context, qm models.QueuedMessage) {
	if d.redis == nil {
		return
	}
	payload, err := json.Marshal(qm)
	if err != nil {
		logger.Error("Failed to encode queued notification", logger.Err(err))
		return
	}
	if err := d.redis.LPush(ctx, constants.KeyNotificationRetry, payload); err != nil {
		logger.Error("Failed to queue notification for retry",
			logger.String("subject", qm.Message.Subject),
			logger.Err(err))
	}
}

// DrainResult summarises one retry drain
type DrainResult struct {
	Sent     int `json:"sent"`
	Requeued int `json:"requeued"`
	Dropped  int `json:"dropped"`
}

// DrainRetryQueue resends up to limit queued messages, oldest first.
// Messages that still fail are requeued until MaxAttempts.
func (d *Dispatcher) DrainRetryQueue(ctx context.Context, retrier *retry.Retrier, limit int) (DrainResult, error) {
	var result DrainResult
	if d.redis == nil {
		return result, fmt.Errorf("retry queue requires redis")
	}
	if !d.sender.IsConfigured() {
		return result, fmt.Errorf("email sender is not configured")
	}

	var failed []models.QueuedMessage
	defer func() {
		for _, qm := range failed {
			d.enqueue(context.WithoutCancel(ctx), qm)
		}
	}()

	for i := 0; limit <= 0 || i < limit; i++ {
		raw, err := d.redis.RPop(ctx, constants.KeyNotificationRetry)
		if database.IsNil(err) {
			break
		}
		if err != nil {
			return result, fmt.Errorf("failed to pop retry queue: %w", err)
		}

		var qm models.QueuedMessage
		if err := json.Unmarshal([]byte(raw), &qm); err != nil {
			logger.Error("Dropping undecodable queued notification", logger.Err(err))
			result.Dropped++
			continue
		}

		err = retrier.Execute(ctx, func(ctx context.Context) error {
			sendCtx, cancel := context.WithTimeout(ctx, d.timeout)
			defer cancel()
			return d.sender.Send(sendCtx, qm.Message)
		})
		if err == nil {
			result.Sent++
			continue
		}

		qm.Attempts++
		qm.LastError = err.Error()
		if qm.Attempts >= MaxAttempts {
			logger.Error("Dropping notification after max attempts",
				logger.Strings("to", qm.Message.To),
				logger.String("subject", qm.Message.Subject),
				logger.Int("attempts", qm.Attempts),
				logger.Err(err))
			result.Dropped++
			continue
		}
		failed = append(failed, qm)
		result.Requeued++
	}

	return result, nil
}
