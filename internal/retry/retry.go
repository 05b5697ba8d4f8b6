// Package retry оборачивает сетевые вызовы адаптеров экспоненциальным повтором.
// Повторяются только временные ошибки: rate limit, сетевые сбои и 5xx.
package retry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	goretry "github.com/sethvargo/go-retry"
)

var (
	// ErrTransientNetwork временная сетевая ошибка, вызов можно повторить
	ErrTransientNetwork = errors.New("transient network error")

	// ErrRateLimited провайдер ограничил частоту запросов
	ErrRateLimited = errors.New("rate limited")
)

// HTTPError неуспешный ответ удалённого провайдера
type HTTPError struct {
	Message    string
	StatusCode int
	RetryAfter time.Duration
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("http %d", e.StatusCode)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

// Policy задаёт параметры повторов
type Policy struct {
	MaxAttempts int           // MaxAttempts общее число попыток, включая первую
	BaseDelay   time.Duration // BaseDelay задержка перед второй попыткой, далее удваивается
	MaxDelay    time.Duration // MaxDelay верхняя граница задержки
	OpTimeout   time.Duration // OpTimeout таймаут одной попытки, 0 означает без таймаута
}

// DefaultPolicy returns the policy used by adapters when none is configured.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 4,
		BaseDelay:   200 * time.Millisecond,
		MaxDelay:    5 * time.Second,
		OpTimeout:   30 * time.Second,
	}
}

func (p Policy) backoff() goretry.Backoff {
	base := p.BaseDelay
	if base <= 0 {
		base = time.Millisecond
	}
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	b := goretry.NewExponential(base)
	if p.MaxDelay > 0 {
		b = goretry.WithCappedDuration(p.MaxDelay, b)
	}
	return goretry.WithMaxRetries(uint64(attempts-1), b)
}

// Do runs op until it succeeds, returns a non-retryable error, or the
// attempt budget is exhausted. The last error is returned unchanged.
// A RetryAfter hint from *HTTPError extends the next delay, capped by MaxDelay.
func Do(ctx context.Context, p Policy, op func(ctx context.Context) error) error {
	var hint time.Duration
	next := p.backoff()
	backoff := goretry.BackoffFunc(func() (time.Duration, bool) {
		d, stop := next.Next()
		if stop {
			return 0, true
		}
		if hint > d {
			d = hint
			if p.MaxDelay > 0 && d > p.MaxDelay {
				d = p.MaxDelay
			}
		}
		hint = 0
		return d, false
	})

	return goretry.Do(ctx, backoff, func(ctx context.Context) error {
		err := attempt(ctx, p.OpTimeout, op)
		if err == nil {
			return nil
		}
		// Отмена внешнего контекста не повторяется
		if ctx.Err() != nil {
			return err
		}
		if IsRetryable(err) {
			var httpErr *HTTPError
			if errors.As(err, &httpErr) {
				hint = httpErr.RetryAfter
			}
			return goretry.RetryableError(err)
		}
		return err
	})
}

// DoValue is Do for operations that produce a value.
func DoValue[T any](ctx context.Context, p Policy, op func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := Do(ctx, p, func(ctx context.Context) error {
		v, err := op(ctx)
		if err != nil {
			return err
		}
		result = v
		return nil
	})
	return result, err
}

func attempt(ctx context.Context, timeout time.Duration, op func(ctx context.Context) error) error {
	if timeout <= 0 {
		return op(ctx)
	}
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	err := op(attemptCtx)
	if err != nil && errors.Is(attemptCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
		// Таймаут попытки считается временной сетевой ошибкой
		return fmt.Errorf("%w: attempt timed out after %s: %w", ErrTransientNetwork, timeout, err)
	}
	return err
}

// IsRetryable classifies err as transient.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTransientNetwork) || errors.Is(err, ErrRateLimited) {
		return true
	}
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return IsRetryableStatus(httpErr.StatusCode)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var opErr *net.OpError
	return errors.As(err, &opErr)
}

// IsRetryableStatus reports whether an HTTP status is worth retrying.
func IsRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
