//go:build !integration
// +build !integration

package resilience

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRetrier(maxRetries int) *Retrier {
	return NewRetrier(RetryConfig{
		MaxRetries: maxRetries,
		BaseDelay:  time.Millisecond,
		MaxDelay:   5 * time.Millisecond,
		Multiplier: 2.0,
	}, WithRetrierRand(rand.New(rand.NewSource(1))))
}

func TestRetrierSucceedsAfterTransientFailures(t *testing.T) {
	t.Parallel()

	calls := 0
	err := testRetrier(3).Do(context.Background(), "discover", func() error {
		calls++
		if calls < 3 {
			return NewExternalError(KindNetwork, errors.New("connection reset"))
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetrierStopsOnNonRetryableError(t *testing.T) {
	t.Parallel()

	permanent := NewExternalError(KindPermanent, errors.New("bad api key"))

	calls := 0
	err := testRetrier(3).Do(context.Background(), "discover", func() error {
		calls++
		return permanent
	})

	assert.ErrorIs(t, err, permanent)
	assert.NotErrorIs(t, err, ErrRetriesExhausted)
	assert.Equal(t, 1, calls, "a non-retryable error must not be retried")
}

func TestRetrierExhaustsBudget(t *testing.T) {
	t.Parallel()

	transient := NewExternalError(KindServer, errors.New("503"))

	calls := 0
	err := testRetrier(3).Do(context.Background(), "discover", func() error {
		calls++
		return transient
	})

	assert.ErrorIs(t, err, ErrRetriesExhausted)
	assert.ErrorIs(t, err, transient)
	assert.Equal(t, 4, calls, "initial attempt plus three retries")
}

func TestRetrierRespectsContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := NewRetrier(RetryConfig{
		MaxRetries: 5,
		BaseDelay:  time.Hour,
		MaxDelay:   time.Hour,
		Multiplier: 2.0,
	}).Do(ctx, "discover", func() error {
		calls++
		cancel()
		return NewExternalError(KindTimeout, errors.New("deadline"))
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestRetrierDelayWithinJitterBounds(t *testing.T) {
	t.Parallel()

	r := NewRetrier(RetryConfig{
		MaxRetries: 3,
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   time.Second,
		Multiplier: 2.0,
	}, WithRetrierRand(rand.New(rand.NewSource(99))))

	for attempt := 1; attempt <= 4; attempt++ {
		raw := float64(100*time.Millisecond) * pow(2.0, attempt-1)
		if raw > float64(time.Second) {
			raw = float64(time.Second)
		}

		for i := 0; i < 50; i++ {
			d := r.delay(attempt)
			assert.GreaterOrEqual(t, float64(d), 0.5*raw)
			assert.LessOrEqual(t, float64(d), raw)
		}
	}
}

func pow(base float64, exp int) float64 {
	out := 1.0
	for i := 0; i < exp; i++ {
		out *= base
	}
	return out
}

func TestIsRetryableClassification(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		err       error
		retryable bool
	}{
		{name: "timeout", err: NewExternalError(KindTimeout, errors.New("t")), retryable: true},
		{name: "network", err: NewExternalError(KindNetwork, errors.New("n")), retryable: true},
		{name: "rate limited", err: NewExternalError(KindRateLimited, errors.New("429")), retryable: true},
		{name: "server", err: NewExternalError(KindServer, errors.New("500")), retryable: true},
		{name: "permanent", err: NewExternalError(KindPermanent, errors.New("401")), retryable: false},
		{name: "wrapped transient", err: errors.Join(errors.New("outer"), NewExternalError(KindServer, errors.New("inner"))), retryable: true},
		{name: "deadline exceeded", err: context.DeadlineExceeded, retryable: true},
		{name: "plain error", err: errors.New("boom"), retryable: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.retryable, IsRetryable(tc.err))
		})
	}
}

func TestDoValueReturnsResult(t *testing.T) {
	t.Parallel()

	calls := 0
	got, err := DoValue(context.Background(), testRetrier(2), "genres", func() ([]string, error) {
		calls++
		if calls == 1 {
			return nil, NewExternalError(KindNetwork, errors.New("flaky"))
		}
		return []string{"action", "comedy"}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"action", "comedy"}, got)
	assert.Equal(t, 2, calls)
}
