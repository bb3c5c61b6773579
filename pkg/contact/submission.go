package contact

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrymomot/folio/pkg/email"
)

// Field names a submission field. Values match the JSON keys.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldMessage Field = "message"
)

// Fields lists every submission field in form order.
var Fields = []Field{FieldName, FieldEmail, FieldMessage}

// Submission is a single contact form entry. It is never stored.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// UnmarshalJSON reads only the exact lowercase keys. encoding/json would
// otherwise match "NAME" or "Email" to a field; such keys count as absent.
// A present key with a non-string value is an error.
func (s *Submission) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var out Submission
	for _, f := range Fields {
		v, ok := raw[string(f)]
		if !ok {
			continue
		}
		var str string
		if err := json.Unmarshal(v, &str); err != nil {
			return fmt.Errorf("field %q: %w", f, err)
		}
		out = out.With(f, str)
	}
	*s = out
	return nil
}

// Value returns the raw value of f.
func (s Submission) Value(f Field) string {
	switch f {
	case FieldName:
		return s.Name
	case FieldEmail:
		return s.Email
	case FieldMessage:
		return s.Message
	}
	return ""
}

// With returns a copy of s with f set to value. Unknown fields leave s unchanged.
func (s Submission) With(f Field, value string) Submission {
	switch f {
	case FieldName:
		s.Name = value
	case FieldEmail:
		s.Email = value
	case FieldMessage:
		s.Message = value
	}
	return s
}

// ValidationResult maps a field to its error message. A field without an
// entry, or with an empty message, is valid.
type ValidationResult map[Field]string

// Valid reports whether no field carries an error.
func (r ValidationResult) Valid() bool {
	for _, msg := range r {
		if msg != "" {
			return false
		}
	}
	return true
}

// Get returns the error message of f or an empty string.
func (r ValidationResult) Get(f Field) string {
	return r[f]
}

// Clear returns a copy of r without an error for f. Other fields are kept
// as they were, without revalidation.
func (r ValidationResult) Clear(f Field) ValidationResult {
	out := make(ValidationResult, len(r))
	for k, v := range r {
		if k != f && v != "" {
			out[k] = v
		}
	}
	return out
}

// Kind identifies one of the two emails sent per submission.
type Kind string

const (
	KindOperatorNotification Kind = "operator_notification"
	KindSenderAcknowledgment Kind = "sender_acknowledgment"
)

// Tag returns the gateway tag used for analytics.
func (k Kind) Tag() string {
	switch k {
	case KindOperatorNotification:
		return "contact-notification"
	case KindSenderAcknowledgment:
		return "contact-acknowledgment"
	}
	return string(k)
}

// OutboundEmail is a composed message ready to hand to the gateway.
type OutboundEmail struct {
	Kind     Kind
	To       string
	ReplyTo  string
	Subject  string
	BodyHTML string
}

// Params converts the message to gateway parameters.
func (e OutboundEmail) Params() email.SendEmailParams {
	return email.SendEmailParams{
		SendTo:   e.To,
		ReplyTo:  e.ReplyTo,
		Subject:  e.Subject,
		BodyHTML: e.BodyHTML,
		Tag:      e.Kind.Tag(),
	}
}
