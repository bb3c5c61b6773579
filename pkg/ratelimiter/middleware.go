package ratelimiter

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrymomot/folio/pkg/logger"
)

type middlewareConfig struct {
	logger  *slog.Logger
	denied  func(w http.ResponseWriter, r *http.Request, res Result)
	onError func(r *http.Request, err error)
	now     func() time.Time
}

type MiddlewareOption func(*middlewareConfig)

// WithDeniedHandler writes the response for a rejected request. Rate limit
// headers, including Retry-After, are already set when it runs.
func WithDeniedHandler(h func(w http.ResponseWriter, r *http.Request, res Result)) MiddlewareOption {
	return func(c *middlewareConfig) {
		if h != nil {
			c.denied = h
		}
	}
}

// WithMiddlewareLogger logs store failures.
func WithMiddlewareLogger(l *slog.Logger) MiddlewareOption {
	return func(c *middlewareConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithErrorHook is called when the store fails, after logging.
func WithErrorHook(fn func(r *http.Request, err error)) MiddlewareOption {
	return func(c *middlewareConfig) { c.onError = fn }
}

// Middleware limits requests per key. When the store fails the request is
// let through and the failure logged: an unavailable limiter must not take
// the endpoint down with it.
func Middleware(l Limiter, keyFunc KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{
		logger: slog.Default(),
		denied: func(w http.ResponseWriter, _ *http.Request, _ Result) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	log := cfg.logger.With(logger.Component("ratelimiter"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFunc(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			res, err := l.Allow(r.Context(), key)
			if err != nil {
				log.WarnContext(r.Context(), "rate limit check failed, allowing request",
					logger.Event("ratelimit_store_error"),
					logger.Error(err),
				)
				if cfg.onError != nil {
					cfg.onError(r, err)
				}
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, res.Remaining)))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed() {
				// Round up so clients never retry a moment too early.
				retry := res.RetryAfter(cfg.now())
				secs := int((retry + time.Second - 1) / time.Second)
				h.Set("Retry-After", strconv.Itoa(max(secs, 1)))
				cfg.denied(w, r, res)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
