package contactclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrymomot/folio/pkg/contact"
	"github.com/dmitrymomot/folio/pkg/logger"
)

const (
	DefaultEndpoint        = "/api/contact"
	DefaultFallbackMessage = "Failed to send message"

	// Error bodies are tiny; anything larger is not ours.
	maxErrorBody = 64 << 10
)

// Client posts submissions to the contact endpoint.
type Client struct {
	baseURL  string
	endpoint string
	fallback string
	http     *http.Client
	logger   *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.http = c
		}
	}
}

// WithEndpoint overrides the request path.
func WithEndpoint(path string) Option {
	return func(cl *Client) {
		if path != "" {
			cl.endpoint = path
		}
	}
}

// WithFallbackMessage sets the message used when the server gives no usable
// error text or cannot be reached.
func WithFallbackMessage(msg string) Option {
	return func(cl *Client) {
		if msg != "" {
			cl.fallback = msg
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(cl *Client) {
		if l != nil {
			cl.logger = l
		}
	}
}

// New returns a client for the service at baseURL, e.g. "https://example.com".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		endpoint: DefaultEndpoint,
		fallback: DefaultFallbackMessage,
		http:     &http.Client{Timeout: 30 * time.Second},
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(logger.Component("contactclient"))
	return c
}

type errorBody struct {
	Error string `json:"error"`
}

// Submit sends s and maps the response to an Outcome. It never panics and
// never returns an error: network and decoding failures become a
// TransportError with the fallback message.
func (c *Client) Submit(ctx context.Context, s contact.Submission) Outcome {
	payload, err := json.Marshal(s)
	if err != nil {
		return c.transportFailure(ctx, "encode submission", err)
	}

	target, err := url.JoinPath(c.baseURL, c.endpoint)
	if err != nil {
		return c.transportFailure(ctx, "build request url", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(payload))
	if err != nil {
		return c.transportFailure(ctx, "build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return c.transportFailure(ctx, "send request", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return Success()
	}

	var body errorBody
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&body); err != nil {
		c.logger.WarnContext(ctx, "undecodable error response",
			logger.Status(resp.StatusCode),
			logger.Error(err),
		)
		return TransportError(c.fallback)
	}
	if body.Error == "" {
		return TransportError(c.fallback)
	}
	return TransportError(body.Error)
}

func (c *Client) transportFailure(ctx context.Context, op string, err error) Outcome {
	c.logger.WarnContext(ctx, "contact submission failed",
		slog.String("op", op),
		logger.Error(err),
	)
	return TransportError(c.fallback)
}
