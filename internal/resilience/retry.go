package resilience

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"sync"
	"time"
)

var ErrRetriesExhausted = fmt.Errorf("max retry attempts reached")

type RetryConfig struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
	Multiplier float64
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: 3,
		BaseDelay:  time.Second,
		MaxDelay:   30 * time.Second,
		Multiplier: 2.0,
	}
}

// Retrier re-runs a fallible call with exponential backoff and jitter.
// It is an explicit dependency owned by whoever constructs the external
// client, not package state, so tests can isolate it.
type Retrier struct {
	cfg    RetryConfig
	logger *slog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

type RetrierOption func(*Retrier)

func WithRetrierLogger(logger *slog.Logger) RetrierOption {
	return func(r *Retrier) {
		r.logger = logger
	}
}

func WithRetrierRand(rng *rand.Rand) RetrierOption {
	return func(r *Retrier) {
		r.rng = rng
	}
}

func NewRetrier(cfg RetryConfig, opts ...RetrierOption) *Retrier {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = time.Second
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = 30 * time.Second
	}
	if cfg.Multiplier <= 1 {
		cfg.Multiplier = 2.0
	}

	r := &Retrier{
		cfg:    cfg,
		logger: slog.Default(),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Do runs fn, retrying retryable failures up to MaxRetries extra attempts.
// A non-retryable error or an exhausted budget surfaces the last error.
// The backoff wait is cancellable through ctx.
func (r *Retrier) Do(ctx context.Context, op string, fn func() error) error {
	var err error

	for attempt := 1; attempt <= r.cfg.MaxRetries+1; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		err = fn()
		if err == nil {
			return nil
		}

		if !IsRetryable(err) {
			return err
		}
		if attempt == r.cfg.MaxRetries+1 {
			break
		}

		delay := r.delay(attempt)
		r.logger.Warn("retrying external call",
			slog.String("op", op),
			slog.Int("attempt", attempt),
			slog.Duration("delay", delay),
			slog.String("error", err.Error()),
		)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return fmt.Errorf("%w: %w", ErrRetriesExhausted, err)
}

// delay computes min(maxDelay, base*mult^(attempt-1)) scaled by a jitter
// factor in [0.5, 1.0].
func (r *Retrier) delay(attempt int) time.Duration {
	backoff := float64(r.cfg.BaseDelay) * math.Pow(r.cfg.Multiplier, float64(attempt-1))
	if capped := float64(r.cfg.MaxDelay); backoff > capped {
		backoff = capped
	}

	r.mu.Lock()
	jitter := 0.5 + 0.5*r.rng.Float64()
	r.mu.Unlock()

	return time.Duration(backoff * jitter)
}

// DoValue is Do for calls that produce a result.
func DoValue[T any](ctx context.Context, r *Retrier, op string, fn func() (T, error)) (T, error) {
	var result T
	err := r.Do(ctx, op, func() error {
		var innerErr error
		result, innerErr = fn()
		return innerErr
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
