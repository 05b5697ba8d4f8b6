package retry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy(attempts int) Policy {
	return Policy{
		MaxAttempts: attempts,
		BaseDelay:   time.Millisecond,
		MaxDelay:    4 * time.Millisecond,
	}
}

func TestDo_SucceedsAfterTransientFailures(t *testing.T) {
	calls := 0
	err := Do(context.Background(), testPolicy(4), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return ErrTransientNetwork
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_ExhaustedReturnsLastErrorUnchanged(t *testing.T) {
	lastErr := &HTTPError{StatusCode: http.StatusServiceUnavailable, Message: "down"}

	calls := 0
	err := Do(context.Background(), testPolicy(3), func(ctx context.Context) error {
		calls++
		if calls == 3 {
			return lastErr
		}
		return &HTTPError{StatusCode: http.StatusBadGateway}
	})

	assert.Equal(t, 3, calls)
	var got *HTTPError
	require.True(t, errors.As(err, &got))
	assert.Same(t, lastErr, got)
}

func TestDo_NonRetryableStopsImmediately(t *testing.T) {
	authErr := errors.New("forbidden")

	calls := 0
	err := Do(context.Background(), testPolicy(5), func(ctx context.Context) error {
		calls++
		return authErr
	})

	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, authErr)
}

func TestDo_ClientErrorNotRetried(t *testing.T) {
	calls := 0
	err := Do(context.Background(), testPolicy(5), func(ctx context.Context) error {
		calls++
		return &HTTPError{StatusCode: http.StatusNotFound}
	})

	assert.Equal(t, 1, calls)
	assert.Error(t, err)
}

func TestDo_AttemptTimeoutIsRetried(t *testing.T) {
	p := testPolicy(2)
	p.OpTimeout = 5 * time.Millisecond

	calls := 0
	err := Do(context.Background(), p, func(ctx context.Context) error {
		calls++
		<-ctx.Done()
		return ctx.Err()
	})

	assert.Equal(t, 2, calls)
	assert.ErrorIs(t, err, ErrTransientNetwork)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDo_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := Do(ctx, testPolicy(3), func(ctx context.Context) error {
		calls++
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, calls)
}

func TestDoValue(t *testing.T) {
	calls := 0
	v, err := DoValue(context.Background(), testPolicy(3), func(ctx context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "", ErrRateLimited
		}
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, 2, calls)
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"transient", fmt.Errorf("list: %w", ErrTransientNetwork), true},
		{"rate limited", ErrRateLimited, true},
		{"429", &HTTPError{StatusCode: http.StatusTooManyRequests}, true},
		{"500", &HTTPError{StatusCode: http.StatusInternalServerError}, true},
		{"401", &HTTPError{StatusCode: http.StatusUnauthorized}, false},
		{"unexpected eof", io.ErrUnexpectedEOF, true},
		{"plain", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestDo_RetryAfterHintIsCapped(t *testing.T) {
	p := Policy{MaxAttempts: 2, BaseDelay: time.Millisecond, MaxDelay: 30 * time.Millisecond}

	calls := 0
	start := time.Now()
	err := Do(context.Background(), p, func(ctx context.Context) error {
		calls++
		if calls == 1 {
			return &HTTPError{StatusCode: http.StatusTooManyRequests, RetryAfter: time.Hour}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	elapsed := time.Since(start)
	assert.GreaterOrEqual(t, elapsed, 30*time.Millisecond, "hint extends the delay")
	assert.Less(t, elapsed, time.Second, "hint is capped by MaxDelay")
}

func TestPolicy_BackoffDoublesUpToMaxDelay(t *testing.T) {
	p := Policy{MaxAttempts: 6, BaseDelay: 10 * time.Millisecond, MaxDelay: 50 * time.Millisecond}

	b := p.backoff()
	var delays []time.Duration
	for {
		d, stop := b.Next()
		if stop {
			break
		}
		delays = append(delays, d)
	}

	assert.Equal(t, []time.Duration{
		10 * time.Millisecond,
		20 * time.Millisecond,
		40 * time.Millisecond,
		50 * time.Millisecond,
		50 * time.Millisecond,
	}, delays, "одна задержка на каждую попытку после первой")
}

func TestDo_GapsBetweenAttemptsDouble(t *testing.T) {
	base := 20 * time.Millisecond
	p := Policy{MaxAttempts: 4, BaseDelay: base, MaxDelay: time.Minute}

	var stamps []time.Time
	err := Do(context.Background(), p, func(ctx context.Context) error {
		stamps = append(stamps, time.Now())
		return ErrTransientNetwork
	})
	require.ErrorIs(t, err, ErrTransientNetwork)
	require.Len(t, stamps, 4)

	for i, want := range []time.Duration{base, 2 * base, 4 * base} {
		gap := stamps[i+1].Sub(stamps[i])
		assert.GreaterOrEqual(t, gap, want, "gap %d", i+1)
	}
}
