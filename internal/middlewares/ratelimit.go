package middlewares

//go:generate mockgen -source=ratelimit.go -destination=mock_ratelimit.go -package=middlewares

import (
	"context"
	"net"
	"net/http"

	"github.com/sbilibin2017/gw-expense-note/internal/logger"
)

// AttemptCounter counts attempts per key inside a fixed window.
type AttemptCounter interface {
	Increment(ctx context.Context, key string) (int64, error)
	Reset(ctx context.Context, key string) error
}

// RateLimitOption configures RateLimitMiddleware.
type RateLimitOption func(*rateLimiter)

// WithResetOnSuccess clears the counter after a successful response, so only
// failed attempts accumulate.
func WithResetOnSuccess() RateLimitOption {
	return func(l *rateLimiter) {
		l.resetOnSuccess = true
	}
}

type rateLimiter struct {
	counter        AttemptCounter
	limit          int64
	resetOnSuccess bool
}

// RateLimitMiddleware answers 429 once a client exceeds limit attempts on a route.
// Counting failures do not block requests.
func RateLimitMiddleware(counter AttemptCounter, limit int64, opts ...RateLimitOption) func(http.Handler) http.Handler {
	l := &rateLimiter{counter: counter, limit: limit}
	for _, opt := range opts {
		opt(l)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			key := r.URL.Path + ":" + clientIP(r)

			count, err := l.counter.Increment(ctx, key)
			if err != nil {
				logger.Log.Warnw("rate limit counter unavailable", "request_id", RequestIDFromContext(ctx), "error", err)
				next.ServeHTTP(w, r)
				return
			}

			if count > l.limit {
				logger.Log.Infow("rate limit exceeded", "request_id", RequestIDFromContext(ctx), "path", r.URL.Path, "count", count)
				writeError(w, http.StatusTooManyRequests, "Too many requests")
				return
			}

			if !l.resetOnSuccess {
				next.ServeHTTP(w, r)
				return
			}

			rw := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rw, r)
			if rw.statusCode < http.StatusBadRequest {
				if err := l.counter.Reset(ctx, key); err != nil {
					logger.Log.Warnw("failed to reset rate limit counter", "request_id", RequestIDFromContext(ctx), "error", err)
				}
			}
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
