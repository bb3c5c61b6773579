package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	api "github.com/dmitrymomot/folio/modules/contact"
	"github.com/dmitrymomot/folio/pkg/clientip"
	"github.com/dmitrymomot/folio/pkg/config"
	"github.com/dmitrymomot/folio/pkg/contact"
	"github.com/dmitrymomot/folio/pkg/email"
	"github.com/dmitrymomot/folio/pkg/environment"
	"github.com/dmitrymomot/folio/pkg/httpserver"
	"github.com/dmitrymomot/folio/pkg/logger"
	"github.com/dmitrymomot/folio/pkg/metrics"
	"github.com/dmitrymomot/folio/pkg/ratelimiter"
	"github.com/dmitrymomot/folio/pkg/redis"
	"github.com/dmitrymomot/folio/pkg/requestid"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	env := environment.Parse(cfg.AppEnv)
	log := logger.New(
		logger.WithEnvironment(env, cfg.AppName),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithContextExtractors(requestid.LogExtractor()),
		logger.WithFilter(logger.MessageContains(cfg.LogSuppress...)),
	)
	logger.SetAsDefault(log)

	sender, err := newSender(cfg)
	if err != nil {
		return err
	}
	composer, err := contact.NewComposer(cfg.Contact)
	if err != nil {
		return err
	}

	m := metrics.New()
	svc := contact.NewService(
		contact.NewDispatcher(sender, composer, contact.WithDispatchRecorder(m)),
		contact.WithLogger(log),
		contact.WithRecorder(m),
	)

	opts := api.RouterOptions{
		Service:      svc,
		Logger:       log,
		MaxBodyBytes: cfg.MaxBodyBytes,
		Diagnostics:  cfg.Diagnostics,
		Credentials:  email.Configured(cfg.Email),
		Metrics:      m,
		KeyFunc:      ratelimiter.HashedIPKey(cfg.RateLimitSalt),
	}
	opts.ClientIP, err = newClientIP(cfg)
	if err != nil {
		return err
	}

	if cfg.RateLimitEnabled {
		store, checks, closeStore, err := newRateLimitStore(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer closeStore()
		opts.ReadinessChecks = append(opts.ReadinessChecks, checks...)

		limiter, err := ratelimiter.NewBucket(store, cfg.RateLimit)
		if err != nil {
			return err
		}
		opts.Limiter = limiter
	}

	log.Info("starting contact service",
		slog.String("provider", email.Configured(cfg.Email).Provider),
		slog.Bool("diagnostics", cfg.Diagnostics),
		slog.Bool("rate_limit", cfg.RateLimitEnabled),
	)

	server := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return server.Run(ctx, api.Router(opts))
}

func newSender(cfg appConfig) (email.EmailSender, error) {
	if cfg.Email.Provider == email.ProviderPostmark || cfg.Email.Provider == "" {
		return email.NewPostmarkClient(cfg.Email,
			email.WithHTTPClient(&http.Client{Timeout: cfg.EmailSendTimeout}),
		)
	}
	return email.New(cfg.Email)
}

// newClientIP reads the peer address unless TRUST_PROXY is set.
func newClientIP(cfg appConfig) (*clientip.Resolver, error) {
	if !cfg.TrustProxy {
		return clientip.New(), nil
	}
	trusted, err := clientip.ParseTrustedProxies(cfg.TrustedProxies)
	if err != nil {
		return nil, err
	}
	return clientip.New(
		clientip.WithProxyHeaders(clientip.DefaultProxyHeaders...),
		clientip.WithTrustedProxies(trusted...),
	), nil
}

// newRateLimitStore uses Redis when REDIS_URL is set so limits hold across
// replicas, otherwise an in-process store.
func newRateLimitStore(ctx context.Context, cfg appConfig, log *slog.Logger) (ratelimiter.Store, []httpserver.Check, func(), error) {
	if !cfg.Redis.Enabled() {
		store := ratelimiter.NewMemoryStore()
		return store, nil, store.Close, nil
	}

	client, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, nil, err
	}
	log.Info("rate limiter using redis")
	closeFn := func() {
		if err := client.Close(); err != nil {
			log.Warn("failed to close redis client", logger.Error(err))
		}
	}
	checks := []httpserver.Check{{Name: "redis", Fn: redis.Healthcheck(client)}}
	return ratelimiter.NewRedisStore(client), checks, closeFn, nil
}
