package contact

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/folio/handler"
	"github.com/dmitrymomot/folio/pkg/logger"
	"github.com/dmitrymomot/folio/pkg/metrics"
	"github.com/dmitrymomot/folio/pkg/ratelimiter"
	"github.com/dmitrymomot/folio/pkg/requestid"
)

// requestLogger logs one line per request and feeds the HTTP counter.
// Health and scrape routes log at debug.
func requestLogger(log *slog.Logger, m *metrics.Metrics) func(http.Handler) http.Handler {
	log = log.With(logger.Component("http"))
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			route := routePattern(r)
			if m != nil {
				m.ObserveHTTP(route, status)
			}

			level := slog.LevelInfo
			switch {
			case status >= http.StatusInternalServerError:
				level = slog.LevelError
			case route == "/health/live" || route == "/health/ready" || route == "/metrics":
				level = slog.LevelDebug
			}
			log.Log(r.Context(), level, "http request",
				slog.String("method", r.Method),
				slog.String("route", route),
				logger.Status(status),
				slog.Int("bytes", ww.BytesWritten()),
				logger.Duration(time.Since(start)),
				logger.RequestID(requestid.FromContext(r.Context())),
			)
		})
	}
}

// routePattern keeps metric labels bounded: unmatched paths share one label.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}

func rateLimit(opts RouterOptions, log *slog.Logger) func(http.Handler) http.Handler {
	keyFunc := opts.KeyFunc
	if keyFunc == nil {
		keyFunc = ratelimiter.HashedIPKey("")
	}
	m := opts.Metrics

	return ratelimiter.Middleware(opts.Limiter, keyFunc,
		ratelimiter.WithMiddlewareLogger(log),
		ratelimiter.WithDeniedHandler(func(w http.ResponseWriter, r *http.Request, res ratelimiter.Result) {
			if m != nil {
				m.IncRateLimited()
			}
			log.InfoContext(r.Context(), "contact request rate limited",
				logger.Event("rate_limited"),
				slog.Time("reset_at", res.ResetAt),
			)
			_ = handler.JSONError(http.StatusTooManyRequests, MsgTooMany).Render(w, r)
		}),
		ratelimiter.WithErrorHook(func(*http.Request, error) {
			if m != nil {
				m.IncRateLimitErrors()
			}
		}),
	)
}
