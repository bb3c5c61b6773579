package logger

import (
	"context"
	"log/slog"
	"strings"
)

// FilterFunc reports whether a record should be dropped.
type FilterFunc func(ctx context.Context, rec slog.Record) bool

// FilterHandler drops records matched by any of its filters and passes
// everything else to the next handler unchanged.
type FilterHandler struct {
	next    slog.Handler
	filters []FilterFunc
}

func NewFilterHandler(next slog.Handler, filters ...FilterFunc) slog.Handler {
	clean := make([]FilterFunc, 0, len(filters))
	for _, f := range filters {
		if f != nil {
			clean = append(clean, f)
		}
	}
	return &FilterHandler{next: next, filters: clean}
}

func (h *FilterHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *FilterHandler) Handle(ctx context.Context, rec slog.Record) error {
	for _, drop := range h.filters {
		if drop(ctx, rec) {
			return nil
		}
	}
	return h.next.Handle(ctx, rec)
}

func (h *FilterHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &FilterHandler{next: h.next.WithAttrs(attrs), filters: h.filters}
}

func (h *FilterHandler) WithGroup(name string) slog.Handler {
	return &FilterHandler{next: h.next.WithGroup(name), filters: h.filters}
}

// MessageContains matches records whose message or error attribute contains
// any of substrs. Empty substrings never match.
func MessageContains(substrs ...string) FilterFunc {
	needles := make([]string, 0, len(substrs))
	for _, s := range substrs {
		if s != "" {
			needles = append(needles, s)
		}
	}
	return func(_ context.Context, rec slog.Record) bool {
		if len(needles) == 0 {
			return false
		}
		if containsAny(rec.Message, needles) {
			return true
		}
		matched := false
		rec.Attrs(func(a slog.Attr) bool {
			if a.Key == "error" && containsAny(a.Value.String(), needles) {
				matched = true
				return false
			}
			return true
		})
		return matched
	}
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
