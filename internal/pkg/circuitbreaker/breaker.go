package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/piresc/nebengdinas/internal/pkg/logger"
)

// Breaker names for the outbound dependencies
const (
	SMTP             = "smtp"
	SuggestionSource = "suggestion-source"
)

// State of a breaker
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	default:
		return "unknown"
	}
}

var (
	ErrCircuitBreakerOpen = errors.New("circuit breaker is open")
	ErrTooManyRequests    = errors.New("too many requests in half-open state")
)

// Config holds breaker thresholds
type Config struct {
	FailureThreshold uint32
	OpenTimeout      time.Duration
	HalfOpenRequests uint32
	// IsFailure decides which errors count against the breaker
	IsFailure func(err error) bool
}

// DefaultConfig opens after five consecutive failures for thirty seconds
func DefaultConfig() Config {
	return Config{
		FailureThreshold: 5,
		OpenTimeout:      30 * time.Second,
		HalfOpenRequests: 1,
		IsFailure:        func(err error) bool { return err != nil },
	}
}

// CircuitBreaker stops calling a dependency that keeps failing
type CircuitBreaker struct {
	name   string
	config Config
	logger *logger.ZapLogger
	now    func() time.Time

	mu               sync.Mutex
	state            State
	consecutiveFails uint32
	halfOpenInFlight uint32
	openedAt         time.Time
}

// New creates a closed breaker
func New(name string, config Config, l *logger.ZapLogger) *CircuitBreaker {
	if config.IsFailure == nil {
		config.IsFailure = DefaultConfig().IsFailure
	}
	if config.HalfOpenRequests == 0 {
		config.HalfOpenRequests = 1
	}
	if l == nil {
		l = logger.NewNop()
	}
	return &CircuitBreaker{name: name, config: config, logger: l, now: time.Now}
}

// Execute runs fn unless the breaker is open
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	if err := cb.allow(); err != nil {
		return err
	}
	err := fn(ctx)
	cb.record(err)
	return err
}

func (cb *CircuitBreaker) allow() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateOpen:
		if cb.now().Sub(cb.openedAt) < cb.config.OpenTimeout {
			return ErrCircuitBreakerOpen
		}
		cb.transition(StateHalfOpen)
		cb.halfOpenInFlight = 0
		fallthrough
	case StateHalfOpen:
		if cb.halfOpenInFlight >= cb.config.HalfOpenRequests {
			return ErrTooManyRequests
		}
		cb.halfOpenInFlight++
	}
	return nil
}

func (cb *CircuitBreaker) record(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if !cb.config.IsFailure(err) {
		cb.consecutiveFails = 0
		if cb.state == StateHalfOpen {
			cb.transition(StateClosed)
		}
		return
	}

	cb.consecutiveFails++
	if cb.state == StateHalfOpen || cb.consecutiveFails >= cb.config.FailureThreshold {
		cb.openedAt = cb.now()
		cb.transition(StateOpen)
	}
}

func (cb *CircuitBreaker) transition(to State) {
	if cb.state == to {
		return
	}
	from := cb.state
	cb.state = to
	cb.logger.Warn("Circuit breaker state changed",
		logger.String("name", cb.name),
		logger.String("from", from.String()),
		logger.String("to", to.String()),
		logger.Uint32("consecutive_failures", cb.consecutiveFails))
}

// State returns the current state
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// Manager hands out one breaker per dependency name
type Manager struct {
	mu       sync.Mutex
	breakers map[string]*CircuitBreaker
	config   Config
	logger   *logger.ZapLogger
}

// NewManager creates a manager whose breakers share config
func NewManager(config Config, l *logger.ZapLogger) *Manager {
	return &Manager{breakers: make(map[string]*CircuitBreaker), config: config, logger: l}
}

// Get returns the named breaker, creating it on first use
func (m *Manager) Get(name string) *CircuitBreaker {
	m.mu.Lock()
	defer m.mu.Unlock()

	cb, ok := m.breakers[name]
	if !ok {
		cb = New(name, m.config, m.logger)
		m.breakers[name] = cb
	}
	return cb
}

// Execute runs fn through the named breaker
func (m *Manager) Execute(ctx context.Context, name string, fn func(context.Context) error) error {
	return m.Get(name).Execute(ctx, fn)
}

// States reports every breaker's state for the health endpoint
func (m *Manager) States() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]string, len(m.breakers))
	for name, cb := range m.breakers {
		out[name] = cb.State().String()
	}
	return out
}
