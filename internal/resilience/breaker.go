package resilience

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
)

// ErrServiceUnavailable is returned while the breaker rejects calls
// without invoking the downstream dependency.
var ErrServiceUnavailable = errors.New("service unavailable: circuit open")

type BreakerConfig struct {
	Name string
	// FailureThreshold consecutive failures open the circuit.
	FailureThreshold uint32
	// ResetTimeout must elapse after the last failure before a probe
	// call may move the circuit to half-open.
	ResetTimeout time.Duration
	// RequiredSuccesses consecutive half-open successes close it again.
	RequiredSuccesses uint32
}

func DefaultBreakerConfig(name string) BreakerConfig {
	return BreakerConfig{
		Name:              name,
		FailureThreshold:  5,
		ResetTimeout:      60 * time.Second,
		RequiredSuccesses: 3,
	}
}

// Breaker guards one external dependency per process. State is local to
// the process; independent handler instances keep independent breakers.
type Breaker struct {
	cb     *gobreaker.CircuitBreaker[any]
	logger *slog.Logger
}

type BreakerOption func(*Breaker)

func WithBreakerLogger(logger *slog.Logger) BreakerOption {
	return func(b *Breaker) {
		b.logger = logger
	}
}

func NewBreaker(cfg BreakerConfig, opts ...BreakerOption) *Breaker {
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.ResetTimeout <= 0 {
		cfg.ResetTimeout = 60 * time.Second
	}
	if cfg.RequiredSuccesses == 0 {
		cfg.RequiredSuccesses = 3
	}

	b := &Breaker{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}

	b.cb = gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name: cfg.Name,
		// Half-open closes after RequiredSuccesses consecutive successes;
		// a single failure there reopens immediately.
		MaxRequests: cfg.RequiredSuccesses,
		Timeout:     cfg.ResetTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			b.logger.Info("circuit breaker state change",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return b
}

// Execute runs fn through the breaker. While the circuit is open the
// downstream call is never made and ErrServiceUnavailable is returned.
func (b *Breaker) Execute(fn func() (any, error)) (any, error) {
	result, err := b.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
		}
		return nil, err
	}
	return result, nil
}

// State exposes the current breaker state for diagnostics.
func (b *Breaker) State() gobreaker.State {
	return b.cb.State()
}

// ExecuteValue type-casts the breaker result, mirroring Execute.
func ExecuteValue[T any](b *Breaker, fn func() (T, error)) (T, error) {
	var zero T
	result, err := b.Execute(func() (any, error) {
		return fn()
	})
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}
