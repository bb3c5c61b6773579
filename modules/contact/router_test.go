package contact_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	api "github.com/dmitrymomot/folio/modules/contact"
	"github.com/dmitrymomot/folio/pkg/contact"
	"github.com/dmitrymomot/folio/pkg/email"
	"github.com/dmitrymomot/folio/pkg/httpserver"
	"github.com/dmitrymomot/folio/pkg/metrics"
	"github.com/dmitrymomot/folio/pkg/ratelimiter"
	"github.com/dmitrymomot/folio/pkg/requestid"
)

const operator = "owner@example.com"

// gateway stands in for the Postmark API and records every recipient.
type gateway struct {
	mu     sync.Mutex
	to     []string
	status int
}

func newGateway(t *testing.T, status int) (*gateway, *httptest.Server) {
	t.Helper()
	gw := &gateway{status: status}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg struct{ To string }
		_ = json.NewDecoder(r.Body).Decode(&msg)

		gw.mu.Lock()
		gw.to = append(gw.to, msg.To)
		gw.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if gw.status != http.StatusOK {
			w.WriteHeader(gw.status)
			_, _ = w.Write([]byte(`{"ErrorCode":10,"Message":"Bad or missing Server API token."}`))
			return
		}
		_, _ = w.Write([]byte(`{"ErrorCode":0,"Message":"OK","MessageID":"id"}`))
	}))
	t.Cleanup(srv.Close)
	return gw, srv
}

func (g *gateway) recipients() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.to...)
}

func emailConfig() email.Config {
	return email.Config{
		Provider:             email.ProviderPostmark,
		PostmarkServerToken:  "server-token",
		PostmarkAccountToken: "account-token",
		SenderEmail:          "noreply@example.com",
		SupportEmail:         "support@example.com",
	}
}

func newService(t *testing.T, gatewayURL string) *contact.Service {
	t.Helper()
	sender, err := email.NewPostmarkClient(emailConfig(), email.WithBaseURL(gatewayURL))
	require.NoError(t, err)
	composer, err := contact.NewComposer(contact.ComposerConfig{OperatorEmail: operator, OwnerName: "Alex"})
	require.NoError(t, err)
	return contact.NewService(contact.NewDispatcher(sender, composer), contact.WithLogger(discard()))
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newRouter(t *testing.T, gatewayURL string, mutate func(*api.RouterOptions)) http.Handler {
	t.Helper()
	opts := api.RouterOptions{
		Service: newService(t, gatewayURL),
		Logger:  discard(),
	}
	if mutate != nil {
		mutate(&opts)
	}
	return api.Router(opts)
}

func post(h http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

const aliceBody = `{"name":"Alice","email":"alice@example.com","message":"Hello, I would like to get in touch regarding a project."}`

func TestContact_Submit(t *testing.T) {
	t.Parallel()

	t.Run("valid submission sends both emails", func(t *testing.T) {
		t.Parallel()

		gw, srv := newGateway(t, http.StatusOK)
		rec := post(newRouter(t, srv.URL, nil), aliceBody)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Email sent successfully"}`, rec.Body.String())
		assert.ElementsMatch(t, []string{operator, "alice@example.com"}, gw.recipients())
		assert.True(t, requestid.IsValid(rec.Header().Get(requestid.Header)))
	})

	t.Run("missing name", func(t *testing.T) {
		t.Parallel()

		gw, srv := newGateway(t, http.StatusOK)
		rec := post(newRouter(t, srv.URL, nil), `{"name":"","email":"a@b.com","message":"hi there, testing"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Missing required fields"}`, rec.Body.String())
		assert.Empty(t, gw.recipients())
	})

	t.Run("invalid email", func(t *testing.T) {
		t.Parallel()

		gw, srv := newGateway(t, http.StatusOK)
		rec := post(newRouter(t, srv.URL, nil), `{"name":"Bob","email":"not-an-email","message":"hi there, testing"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid email format"}`, rec.Body.String())
		assert.Empty(t, gw.recipients())
	})

	t.Run("gateway rejects credentials", func(t *testing.T) {
		t.Parallel()

		gw, srv := newGateway(t, http.StatusUnauthorized)
		rec := post(newRouter(t, srv.URL, nil), aliceBody)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Failed to send email"}`, rec.Body.String())
		assert.Len(t, gw.recipients(), 2, "both sends are attempted")
	})

	t.Run("upper case keys are missing fields", func(t *testing.T) {
		t.Parallel()

		gw, srv := newGateway(t, http.StatusOK)
		rec := post(newRouter(t, srv.URL, nil), `{"NAME":"Bob","EMAIL":"bob@example.com","MESSAGE":"hi there, testing"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Missing required fields"}`, rec.Body.String())
		assert.Empty(t, gw.recipients())
	})

	t.Run("undeliverable address notifies nobody", func(t *testing.T) {
		t.Parallel()

		for _, addr := range []string{`\"bob\"@example.com`, "bob,eve@example.com"} {
			gw, srv := newGateway(t, http.StatusOK)
			rec := post(newRouter(t, srv.URL, nil), `{"name":"Bob","email":"`+addr+`","message":"hi there, testing"}`)

			assert.Equal(t, http.StatusInternalServerError, rec.Code, addr)
			assert.JSONEq(t, `{"error":"Failed to send email"}`, rec.Body.String())
			assert.Empty(t, gw.recipients(), addr)
		}
	})

	t.Run("content type is not required", func(t *testing.T) {
		t.Parallel()

		_, srv := newGateway(t, http.StatusOK)
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(aliceBody))
		req.Header.Set("Content-Type", "text/plain")
		rec := httptest.NewRecorder()
		newRouter(t, srv.URL, nil).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestContact_StructurallyInvalidBodies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"name":`},
		{"empty body", ``},
		{"array", `[]`},
		{"non-string name", `{"name":42,"email":"a@b.com","message":"hello"}`},
		{"non-string message", `{"name":"A","email":"a@b.com","message":{"x":1}}`},
		{"null body", `null`},
		{"trailing data", aliceBody + `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gw, srv := newGateway(t, http.StatusOK)
			rec := post(newRouter(t, srv.URL, nil), tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"Missing required fields"}`, rec.Body.String())
			assert.Empty(t, gw.recipients())
		})
	}
}

func TestContact_BodyLimit(t *testing.T) {
	t.Parallel()

	gw, srv := newGateway(t, http.StatusOK)
	h := newRouter(t, srv.URL, func(o *api.RouterOptions) { o.MaxBodyBytes = 128 })

	body := `{"name":"Alice","email":"alice@example.com","message":"` + strings.Repeat("a", 256) + `"}`
	rec := post(h, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Missing required fields"}`, rec.Body.String())
	assert.Empty(t, gw.recipients())
}

func TestContact_RateLimit(t *testing.T) {
	t.Parallel()

	_, srv := newGateway(t, http.StatusOK)
	store := ratelimiter.NewMemoryStore()
	t.Cleanup(store.Close)
	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Hour})
	require.NoError(t, err)

	m := metrics.New()
	h := newRouter(t, srv.URL, func(o *api.RouterOptions) {
		o.Limiter = limiter
		o.Metrics = m
	})

	first := post(h, aliceBody)
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "0", first.Header().Get("X-RateLimit-Remaining"))

	second := post(h, aliceBody)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.JSONEq(t, `{"error":"Too many requests"}`, second.Body.String())
	assert.NotEmpty(t, second.Header().Get("Retry-After"))

	// Health checks are never limited.
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "folio_ratelimit_denied_total 1")
	assert.Contains(t, rec.Body.String(), `folio_http_requests_total{code="429",route="/api/contact"} 1`)
}

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (ratelimiter.Result, error) {
	return ratelimiter.Result{}, errors.New("redis down")
}

func TestContact_RateLimitFailsOpen(t *testing.T) {
	t.Parallel()

	_, srv := newGateway(t, http.StatusOK)
	h := newRouter(t, srv.URL, func(o *api.RouterOptions) { o.Limiter = failingLimiter{} })

	rec := post(h, aliceBody)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestContact_Diagnostics(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC)
	ready := email.Configured(emailConfig())

	get := func(h http.Handler) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/test-email", nil))
		return rec
	}

	t.Run("not mounted by default", func(t *testing.T) {
		t.Parallel()

		_, srv := newGateway(t, http.StatusOK)
		assert.Equal(t, http.StatusNotFound, get(newRouter(t, srv.URL, nil)).Code)
	})

	t.Run("sends a test message", func(t *testing.T) {
		t.Parallel()

		gw, srv := newGateway(t, http.StatusOK)
		rec := get(newRouter(t, srv.URL, func(o *api.RouterOptions) {
			o.Diagnostics = true
			o.Credentials = ready
			o.Now = func() time.Time { return now }
		}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Test email sent successfully!","to":"owner@example.com","timestamp":"2025-03-01T12:30:00.000Z"}`, rec.Body.String())
		assert.Equal(t, []string{operator}, gw.recipients())
	})

	t.Run("missing credentials", func(t *testing.T) {
		t.Parallel()

		cfg := emailConfig()
		cfg.PostmarkAccountToken = ""

		gw, srv := newGateway(t, http.StatusOK)
		rec := get(newRouter(t, srv.URL, func(o *api.RouterOptions) {
			o.Diagnostics = true
			o.Credentials = email.Configured(cfg)
		}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{
			"error":"Email credentials not configured",
			"provider":"postmark",
			"credentials":[{"name":"POSTMARK_SERVER_TOKEN","set":true},{"name":"POSTMARK_ACCOUNT_TOKEN","set":false}]
		}`, rec.Body.String())
		assert.Empty(t, gw.recipients())
	})

	t.Run("send failure reports details", func(t *testing.T) {
		t.Parallel()

		_, srv := newGateway(t, http.StatusUnauthorized)
		rec := get(newRouter(t, srv.URL, func(o *api.RouterOptions) {
			o.Diagnostics = true
			o.Credentials = ready
		}))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Failed to send test email", body["error"])
		assert.NotEmpty(t, body["details"])
	})
}

func TestContact_Health(t *testing.T) {
	t.Parallel()

	_, srv := newGateway(t, http.StatusOK)
	h := newRouter(t, srv.URL, func(o *api.RouterOptions) {
		o.ReadinessChecks = []httpserver.Check{{
			Name: "redis",
			Fn:   func(context.Context) error { return errors.New("connection refused") },
		}}
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"alive"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"not_ready","failed":["redis"]}`, rec.Body.String())

	// Metrics are opt-in.
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestContact_RequestIDPropagates(t *testing.T) {
	t.Parallel()

	_, srv := newGateway(t, http.StatusOK)
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(aliceBody))
	req.Header.Set(requestid.Header, "client-supplied-id")
	rec := httptest.NewRecorder()
	newRouter(t, srv.URL, nil).ServeHTTP(rec, req)

	assert.Equal(t, "client-supplied-id", rec.Header().Get(requestid.Header))
	_, _ = io.Copy(io.Discard, rec.Body)
}
