package contactclient

import "github.com/dmitrymomot/folio/pkg/contact"

// OutcomeKind tags an Outcome.
type OutcomeKind string

const (
	OutcomeSuccess         OutcomeKind = "success"
	OutcomeValidationError OutcomeKind = "validation_error"
	OutcomeTransportError  OutcomeKind = "transport_error"
	// OutcomeSuppressed is returned by Form.Submit while another submit of
	// the same form is in flight. No request was made.
	OutcomeSuppressed OutcomeKind = "suppressed"
)

// Outcome is the terminal result of one submit attempt.
type Outcome struct {
	Kind        OutcomeKind
	FieldErrors contact.ValidationResult // set for OutcomeValidationError
	Message     string                   // set for OutcomeTransportError
}

func Success() Outcome {
	return Outcome{Kind: OutcomeSuccess}
}

func ValidationError(fields contact.ValidationResult) Outcome {
	return Outcome{Kind: OutcomeValidationError, FieldErrors: fields}
}

func TransportError(msg string) Outcome {
	return Outcome{Kind: OutcomeTransportError, Message: msg}
}

func (o Outcome) IsSuccess() bool { return o.Kind == OutcomeSuccess }
