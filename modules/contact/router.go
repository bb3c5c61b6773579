package contact

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/folio/pkg/clientip"
	domain "github.com/dmitrymomot/folio/pkg/contact"
	"github.com/dmitrymomot/folio/pkg/email"
	"github.com/dmitrymomot/folio/pkg/httpserver"
	"github.com/dmitrymomot/folio/pkg/metrics"
	"github.com/dmitrymomot/folio/pkg/ratelimiter"
	"github.com/dmitrymomot/folio/pkg/requestid"
)

// DefaultMaxBodyBytes bounds the contact request body.
const DefaultMaxBodyBytes int64 = 64 << 10

// RouterOptions configures the contact module. Service is required; every
// other field is optional.
type RouterOptions struct {
	Service *domain.Service
	Logger  *slog.Logger

	// MaxBodyBytes defaults to DefaultMaxBodyBytes.
	MaxBodyBytes int64

	// Diagnostics mounts GET /api/test-email. Credentials is reported by
	// that endpoint and gates the test send.
	Diagnostics bool
	Credentials email.CredentialStatus

	// Limiter guards the /api routes. KeyFunc defaults to the client IP.
	Limiter ratelimiter.Limiter
	KeyFunc ratelimiter.KeyFunc

	// ClientIP resolves the caller address; the zero Resolver trusts only
	// RemoteAddr.
	ClientIP *clientip.Resolver

	Metrics         *metrics.Metrics
	ReadinessChecks []httpserver.Check

	// Now stamps diagnostic responses. Defaults to time.Now.
	Now func() time.Time
}

// Router creates the contact service router.
//
//	r := contact.Router(contact.RouterOptions{
//	    Service: svc,
//	    Limiter: ratelimiter.NewBucket(store, cfg),
//	    Metrics: metrics.New(),
//	})
//	server.Run(ctx, r)
func Router(opts RouterOptions) chi.Router {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.ClientIP == nil {
		opts.ClientIP = clientip.New()
	}

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		opts.ClientIP.Middleware,
		requestLogger(log, opts.Metrics),
		middleware.Recoverer,
	)

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(log, 2*time.Second, opts.ReadinessChecks...))
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	// Route-level middleware runs after matching, so metrics see the pattern.
	var guard []func(http.Handler) http.Handler
	if opts.Limiter != nil {
		guard = append(guard, rateLimit(opts, log))
	}
	guard = append(guard, middleware.RequestSize(opts.MaxBodyBytes))

	api := r.With(guard...)
	api.Post("/api/contact", submitHandler(opts.Service, log, opts.MaxBodyBytes))
	if opts.Diagnostics {
		api.Get("/api/test-email", diagnosticHandler(opts.Service, opts.Credentials, opts.Now))
	}

	return r
}
