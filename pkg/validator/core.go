package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError describes a single failed rule.
type ValidationError struct {
	Field   string
	Message string
	// TranslationKey identifies the message for clients that localize errors.
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors collects rule failures and implements error.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve ValidationErrors) Unwrap() error {
	return ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule pairs a check with the error reported when the check fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// WithMessage returns a copy of the rule reporting msg instead of the default message.
func (r Rule) WithMessage(msg string) Rule {
	r.Error.Message = msg
	return r
}

// FirstFailure evaluates rules in order and stops at the first failing one.
// Use it for a single field whose checks are ordered from coarse to fine,
// so the user sees "is required" rather than "too short" for an empty value.
func FirstFailure(rules ...Rule) (ValidationError, bool) {
	for _, rule := range rules {
		if !rule.Check() {
			return rule.Error, true
		}
	}
	return ValidationError{}, false
}

// Chain runs FirstFailure per group and aggregates the results.
// Each group usually holds the rules of one field.
func Chain(groups ...[]Rule) error {
	var errs ValidationErrors

	for _, group := range groups {
		if verr, failed := FirstFailure(group...); failed {
			errs.Add(verr)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}
