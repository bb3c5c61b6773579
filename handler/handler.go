package handler

import (
	"errors"
	"net/http"
)

// HandlerFunc provides type-safe HTTP request handling with custom context support.
// C must implement the Context interface, R can be any request type.
//
//	h := handler.HandlerFunc[handler.Context, contact.Submission](
//		func(ctx handler.Context, req contact.Submission) handler.Response {
//			return handler.JSON(http.StatusOK, okBody)
//		},
//	)
type HandlerFunc[C Context, R any] func(ctx C, req R) Response

// Response renders itself to an http.ResponseWriter.
// Implementations should set headers, status code, and write body.
// Errors are handled by the framework (returns 500).
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind parses HTTP requests into typed values.
type Bind func(r *http.Request, v any) error

// ErrorHandler handles errors from binding or rendering.
type ErrorHandler[C Context] func(ctx C, err error)

// WrapOption configures the Wrap function.
type WrapOption[C Context, R any] func(*wrapConfig[C, R])

type wrapConfig[C Context, R any] struct {
	binder       Bind
	errorHandler ErrorHandler[C]
}

// WithBinder sets the request binder. Without one the handler receives the
// zero value of R.
func WithBinder[C Context, R any](b Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if b != nil {
			c.binder = b
		}
	}
}

// WithErrorHandler sets a custom error handler.
func WithErrorHandler[C Context, R any](h ErrorHandler[C]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// defaultErrorHandler writes plain-text errors. HTTPError picks the status
// and message; other errors become a bare 500.
func defaultErrorHandler[C Context](ctx C, err error) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		msg := httpErr.Message
		if msg == "" {
			msg = http.StatusText(httpErr.Code)
		}
		http.Error(ctx.ResponseWriter(), msg, httpErr.Code)
		return
	}
	http.Error(ctx.ResponseWriter(), http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// Wrap converts a typed HandlerFunc to http.HandlerFunc.
//
//	mux.Post("/api/contact", handler.Wrap(submit,
//		handler.WithBinder[handler.Context, contact.Submission](binder.JSON()),
//		handler.WithErrorHandler[handler.Context, contact.Submission](handler.NewJSONErrorHandler(log)),
//	))
//
// C must be satisfied by the value NewContext returns; Wrap panics otherwise.
func Wrap[C Context, R any](h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	cfg := &wrapConfig[C, R]{
		errorHandler: defaultErrorHandler[C],
	}
	for _, opt := range opts {
		opt(cfg)
	}

	newContext := func(w http.ResponseWriter, r *http.Request) C {
		c, ok := NewContext(w, r).(C)
		if !ok {
			panic("handler: context type is not satisfied by NewContext")
		}
		return c
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := newContext(w, r)

		var req R
		if cfg.binder != nil {
			if err := cfg.binder(r, &req); err != nil {
				cfg.errorHandler(ctx, err)
				return
			}
		}

		response := h(ctx, req)
		if response == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := response.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}
