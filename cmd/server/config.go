package main

import (
	"time"

	"github.com/dmitrymomot/folio/pkg/contact"
	"github.com/dmitrymomot/folio/pkg/email"
	"github.com/dmitrymomot/folio/pkg/httpserver"
	"github.com/dmitrymomot/folio/pkg/ratelimiter"
	"github.com/dmitrymomot/folio/pkg/redis"
)

type appConfig struct {
	AppName  string `env:"APP_NAME" envDefault:"folio"`
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL"`
	// Substrings of log lines that are dropped, e.g. noise from scanners.
	LogSuppress []string `env:"LOG_SUPPRESS" envSeparator:"," envDefault:"http: TLS handshake error,connection reset by peer"`

	HTTP  httpserver.Config
	Email email.Config
	// Postmark API call timeout. Zero leaves in-flight sends unbounded so a
	// slow gateway still delivers; set it to cap how long a request can hang.
	EmailSendTimeout time.Duration `env:"EMAIL_SEND_TIMEOUT" envDefault:"0s"`

	Contact      contact.ComposerConfig
	MaxBodyBytes int64 `env:"CONTACT_MAX_BODY_BYTES" envDefault:"65536"`
	Diagnostics  bool  `env:"CONTACT_DIAGNOSTICS" envDefault:"false"`

	RateLimit        ratelimiter.Config
	RateLimitEnabled bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RateLimitSalt    string `env:"RATE_LIMIT_SALT"`
	// Honor proxy headers for the client IP. Only enable behind a proxy
	// that overwrites them.
	TrustProxy bool `env:"TRUST_PROXY" envDefault:"false"`
	// CIDRs or addresses of our own proxies, skipped in X-Forwarded-For.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	Redis redis.Config
}
