package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20 // 1 MB

type jsonConfig struct {
	maxBytes         int64
	checkContentType bool
}

// JSONOption configures the JSON binder.
type JSONOption func(*jsonConfig)

// WithMaxBytes limits the accepted body size. Non-positive values keep the default.
func WithMaxBytes(n int64) JSONOption {
	return func(c *jsonConfig) {
		if n > 0 {
			c.maxBytes = n
		}
	}
}

// WithAnyContentType skips the Content-Type check and decodes the body as JSON
// regardless of the declared media type.
func WithAnyContentType() JSONOption {
	return func(c *jsonConfig) {
		c.checkContentType = false
	}
}

// JSON creates a JSON binder function.
//
// Example:
//
//	h := handler.Wrap(contactHandler,
//		handler.WithBinder[handler.Context, contact.Submission](
//			binder.JSON(binder.WithMaxBytes(64<<10)),
//		),
//	)
func JSON(opts ...JSONOption) func(r *http.Request, v any) error {
	cfg := jsonConfig{
		maxBytes:         DefaultMaxJSONSize,
		checkContentType: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(r *http.Request, v any) error {
		if err := r.Context().Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}

		if cfg.checkContentType {
			if err := checkJSONContentType(r); err != nil {
				return err
			}
		}

		if r.Body == nil {
			return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, cfg.maxBytes+1))
		if err != nil {
			return fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseJSON, err)
		}
		if int64(len(body)) > cfg.maxBytes {
			return fmt.Errorf("%w: max %d bytes", ErrRequestTooLarge, cfg.maxBytes)
		}

		decoder := json.NewDecoder(bytes.NewReader(body))

		if err := decoder.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
			}
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}

		// Ensure entire body was consumed
		var extra json.RawMessage
		if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: unexpected data after JSON object", ErrFailedToParseJSON)
		}

		return nil
	}
}

func checkJSONContentType(r *http.Request) error {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return fmt.Errorf("%w: missing content-type header, expected application/json", ErrMissingContentType)
	}

	// Extract media type without parameters
	mediaType := contentType
	if idx := strings.Index(contentType, ";"); idx != -1 {
		mediaType = contentType[:idx]
	}
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))

	if mediaType != "application/json" {
		return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mediaType)
	}
	return nil
}
