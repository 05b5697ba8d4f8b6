package middleware

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// RateLimiter ограничивает число запросов на ключ (IP) за окно времени
type RateLimiter struct {
	buckets map[string]*bucket
	now     func() time.Time
	rate    int
	window  time.Duration
	mu      sync.Mutex
}

// bucket окно запросов конкретного ключа
type bucket struct {
	windowStart time.Time
	tokens      int
}

// NewRateLimiter создает limiter на rate запросов за window
func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		buckets: make(map[string]*bucket),
		now:     time.Now,
		rate:    rate,
		window:  window,
	}
}

// Allow списывает запрос с ключа. При отказе возвращает время до нового окна.
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.buckets[key]
	if !ok || now.Sub(b.windowStart) >= rl.window {
		b = &bucket{windowStart: now, tokens: rl.rate}
		rl.buckets[key] = b
	}

	if b.tokens > 0 {
		b.tokens--
		return true, 0
	}
	return false, b.windowStart.Add(rl.window).Sub(now)
}

// Cleanup удаляет ключи, окно которых давно закончилось
func (rl *RateLimiter) Cleanup() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	removed := 0
	for key, b := range rl.buckets {
		if now.Sub(b.windowStart) > rl.window*2 {
			delete(rl.buckets, key)
			removed++
		}
	}
	return removed
}

// RunCleanup периодически чистит limiter до отмены ctx
func (rl *RateLimiter) RunCleanup(ctx context.Context) {
	ticker := time.NewTicker(rl.window * 2)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.Cleanup()
		case <-ctx.Done():
			return
		}
	}
}

// PathRateLimit отдельный лимит для путей с префиксом Prefix
type PathRateLimit struct {
	Limiter *RateLimiter
	Prefix  string
}

// RateLimit выбирает limiter по самому длинному подходящему префиксу пути,
// иначе использует fallback. Отказ: 429 с Retry-After в секундах.
func RateLimit(logger *slog.Logger, fallback *RateLimiter, paths ...PathRateLimit) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limiter := fallback
			matched := ""
			for _, p := range paths {
				if strings.HasPrefix(r.URL.Path, p.Prefix) && len(p.Prefix) > len(matched) {
					limiter = p.Limiter
					matched = p.Prefix
				}
			}
			if limiter == nil {
				next.ServeHTTP(w, r)
				return
			}

			key := clientIP(r)
			if ok, wait := limiter.Allow(key); !ok {
				logger.WarnContext(r.Context(), "Rate limit exceeded",
					"ip", key,
					"method", r.Method,
					"path", r.URL.Path,
				)

				secs := int(wait.Round(time.Second) / time.Second)
				if secs < 1 {
					secs = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(secs))
				writeError(w, "rate limit exceeded, please try again later", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP извлекает IP клиента с учётом X-Forwarded-For и X-Real-IP
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
