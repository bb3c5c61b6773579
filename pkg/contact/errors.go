package contact

import "errors"

var (
	ErrMissingFields  = errors.New("contact.errors.missing_required_fields")
	ErrInvalidEmail   = errors.New("contact.errors.invalid_email_format")
	ErrDispatchFailed = errors.New("contact.errors.dispatch_failed")
	ErrInvalidConfig  = errors.New("contact.errors.invalid_config")
)
