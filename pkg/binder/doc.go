// Package binder decodes HTTP request bodies into Go structs.
//
// A binder is a func(r *http.Request, v any) error that handler.Wrap applies
// before calling a typed handler.
//
// # Basic Usage
//
//	type Submission struct {
//	    Name    string `json:"name"`
//	    Email   string `json:"email"`
//	    Message string `json:"message"`
//	}
//
//	bind := binder.JSON(
//	    binder.WithMaxBytes(64 << 10),
//	    binder.WithAnyContentType(),
//	)
//
//	var s Submission
//	if err := bind(r, &s); err != nil {
//	    // errors.Is(err, binder.ErrFailedToParseJSON), ErrRequestTooLarge, ...
//	}
//
// # Options
//
//   - WithMaxBytes: body size limit, DefaultMaxJSONSize when unset
//   - WithAnyContentType: decode regardless of the Content-Type header
//
// # Error Handling
//
// Every failure wraps one of the package sentinel errors:
//
//   - ErrMissingContentType, ErrUnsupportedMediaType: header checks
//   - ErrRequestTooLarge: body exceeded the limit
//   - ErrFailedToParseJSON: malformed JSON, type mismatch or trailing data
package binder
