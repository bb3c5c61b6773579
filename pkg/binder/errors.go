package binder

import "errors"

// Common binding errors
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON request body")
	ErrMissingContentType   = errors.New("missing content type")
	ErrRequestTooLarge      = errors.New("request body too large")
)
