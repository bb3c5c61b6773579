package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/folio/pkg/logger"
	"github.com/dmitrymomot/folio/pkg/requestid"
)

// DefaultErrorMessage is rendered for errors that carry no HTTPError.
const DefaultErrorMessage = "Internal server error"

// NewJSONErrorHandler renders errors as {"error": message}. HTTPError values
// choose status and message; anything else becomes a 500 with
// DefaultErrorMessage so internal detail never leaks. Server errors are
// logged at error level, client errors at warn.
func NewJSONErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	log = log.With(logger.Component("http"))

	return func(ctx Context, err error) {
		status, message := http.StatusInternalServerError, DefaultErrorMessage

		var httpErr HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
			if httpErr.Message != "" {
				message = httpErr.Message
			} else {
				message = http.StatusText(status)
			}
		}

		level := slog.LevelWarn
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		r := ctx.Request()
		log.Log(ctx, level, "request failed",
			logger.Status(status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.RequestID(requestid.FromContext(ctx)),
			logger.Error(err),
		)

		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			// Client is gone; nobody reads the body.
			return
		}
		if rerr := JSONError(status, message).Render(ctx.ResponseWriter(), r); rerr != nil {
			log.WarnContext(ctx, "failed to write error response", logger.Error(rerr))
		}
	}
}
