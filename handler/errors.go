package handler

import (
	"errors"
	"net/http"
)

var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError is an error with a status code and a client-facing message.
// Cause is logged but never rendered.
type HTTPError struct {
	Code    int
	Message string
	Cause   error
}

func NewHTTPError(code int, message string) HTTPError {
	return HTTPError{Code: code, Message: message}
}

// Wrap returns a copy of e carrying cause.
func (e HTTPError) Wrap(cause error) HTTPError {
	e.Cause = cause
	return e
}

func (e HTTPError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Code)
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e HTTPError) Unwrap() error { return e.Cause }
