package httpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/folio/pkg/httpserver"
)

func startServer(t *testing.T, ctx context.Context, srv *httpserver.Server, h http.Handler) (string, <-chan error) {
	t.Helper()

	bound := make(chan string, 1)
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, h) }()

	deadline := time.After(2 * time.Second)
	for {
		if addr := srv.Addr(); addr != "" {
			bound <- addr
			break
		}
		select {
		case err := <-done:
			t.Fatalf("server exited early: %v", err)
		case <-deadline:
			t.Fatal("server did not bind")
		case <-time.After(10 * time.Millisecond):
		}
	}
	return <-bound, done
}

func TestRunAndCancel(t *testing.T) {
	t.Parallel()

	srv := httpserver.New(
		httpserver.WithAddr("127.0.0.1:0"),
		httpserver.WithShutdownTimeout(100*time.Millisecond),
	)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr, done := startServer(t, ctx, srv, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	resp, err := http.Get("http://" + addr)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("run did not finish")
	}
	require.NoError(t, srv.Shutdown(context.Background()))
}

func TestManualShutdownWithHooks(t *testing.T) {
	t.Parallel()

	var started atomic.Value
	var stopped atomic.Bool
	srv := httpserver.New(
		httpserver.WithAddr("127.0.0.1:0"),
		httpserver.WithShutdownTimeout(100*time.Millisecond),
		httpserver.WithStartHook(func(addr string, _ *slog.Logger) { started.Store(addr) }),
		httpserver.WithStopHook(func(_ *slog.Logger) { stopped.Store(true) }),
	)

	addr, done := startServer(t, context.Background(), srv, http.NewServeMux())
	assert.Equal(t, addr, started.Load())

	require.NoError(t, srv.Shutdown(context.Background()))
	require.NoError(t, srv.Shutdown(context.Background()))

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("run did not finish")
	}
	assert.True(t, stopped.Load())
}

func TestStartError(t *testing.T) {
	t.Parallel()

	srv := httpserver.New(httpserver.WithAddr(":invalid"))
	err := srv.Run(context.Background(), http.NotFoundHandler())
	assert.ErrorIs(t, err, httpserver.ErrStart)
}

func TestRunTwice(t *testing.T) {
	t.Parallel()

	srv := httpserver.New(httpserver.WithAddr("127.0.0.1:0"))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, done := startServer(t, ctx, srv, http.NotFoundHandler())
	assert.ErrorIs(t, srv.Run(ctx, http.NotFoundHandler()), httpserver.ErrStart)

	cancel()
	<-done
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	srv := httpserver.NewFromConfig(httpserver.Config{Addr: "127.0.0.1:0", ShutdownTimeout: time.Second})
	ctx, cancel := context.WithCancel(context.Background())
	addr, done := startServer(t, ctx, srv, http.NotFoundHandler())
	assert.NotEmpty(t, addr)
	cancel()
	require.NoError(t, <-done)
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { httpserver.WithAddr("") })
	assert.Panics(t, func() { httpserver.WithReadTimeout(0) })
	assert.Panics(t, func() { httpserver.WithReadHeaderTimeout(-1) })
	assert.Panics(t, func() { httpserver.WithWriteTimeout(0) })
	assert.Panics(t, func() { httpserver.WithIdleTimeout(0) })
	assert.Panics(t, func() { httpserver.WithShutdownTimeout(0) })
	assert.Panics(t, func() { httpserver.WithStartHook(nil) })
	assert.Panics(t, func() { httpserver.WithStopHook(nil) })
}

func decodeHealth(t *testing.T, body io.Reader) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestLivenessHandler(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	httpserver.LivenessHandler()(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alive", decodeHealth(t, rec.Body)["status"])
}

func TestReadinessHandler(t *testing.T) {
	t.Parallel()

	t.Run("ready", func(t *testing.T) {
		t.Parallel()

		h := httpserver.ReadinessHandler(nil, time.Second,
			httpserver.Check{Name: "redis", Fn: func(context.Context) error { return nil }},
			httpserver.Check{Name: "skipped"},
		)
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ready", decodeHealth(t, rec.Body)["status"])
	})

	t.Run("not ready", func(t *testing.T) {
		t.Parallel()

		h := httpserver.ReadinessHandler(slog.New(slog.DiscardHandler), time.Second,
			httpserver.Check{Name: "ok", Fn: func(context.Context) error { return nil }},
			httpserver.Check{Name: "redis", Fn: func(context.Context) error { return errors.New("connection refused") }},
		)
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		body := decodeHealth(t, rec.Body)
		assert.Equal(t, "not_ready", body["status"])
		assert.Equal(t, []any{"redis"}, body["failed"])
	})

	t.Run("checks get a deadline", func(t *testing.T) {
		t.Parallel()

		h := httpserver.ReadinessHandler(nil, 50*time.Millisecond,
			httpserver.Check{Name: "slow", Fn: func(ctx context.Context) error {
				_, ok := ctx.Deadline()
				assert.True(t, ok)
				<-ctx.Done()
				return ctx.Err()
			}},
		)
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
