package contact

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/folio/pkg/validator"
)

// Validation messages shown next to the form fields.
const (
	MsgNameRequired    = "Name is required"
	MsgNameTooShort    = "Name must be at least 2 characters"
	MsgEmailRequired   = "Email is required"
	MsgEmailInvalid    = "Please enter a valid email address"
	MsgMessageRequired = "Message is required"
	MsgMessageTooShort = "Message must be at least 10 characters"
)

const (
	MinNameLength    = 2
	MinMessageLength = 10
)

// whitespaceClass is the ECMAScript \s set. Go's \s only covers ASCII, which
// would accept addresses the browser rejects.
const whitespaceClass = `\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`

var emailPattern = regexp.MustCompile(
	`^[^` + whitespaceClass + `@]+@[^` + whitespaceClass + `@]+\.[^` + whitespaceClass + `@]+$`,
)

// IsEmail reports whether s has the shape local@domain.tld: no whitespace,
// exactly one @ and at least one dot after it. The check is deliberately
// loose; "a@b.c" passes.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		'\u00a0', '\u1680', '\u2028', '\u2029', '\u202f', '\u205f', '\u3000', '\ufeff':
		return true
	}
	return r >= '\u2000' && r <= '\u200a'
}

// Trim strips leading and trailing whitespace as a browser's String.trim does.
func Trim(s string) string {
	return strings.TrimFunc(s, isSpace)
}

// Validate checks a submission the way the form does before sending it.
// Each field reports at most one message. Lengths are measured after
// trimming, in UTF-16 code units. The email pattern is applied to the
// untrimmed value, so padded addresses are rejected.
func Validate(s Submission) ValidationResult {
	name := Trim(s.Name)
	addr := Trim(s.Email)
	message := Trim(s.Message)

	err := validator.Chain(
		[]validator.Rule{
			validator.NotEmpty(string(FieldName), name).WithMessage(MsgNameRequired),
			validator.MinLenBy(string(FieldName), name, MinNameLength, validator.UTF16Length).WithMessage(MsgNameTooShort),
		},
		[]validator.Rule{
			validator.NotEmpty(string(FieldEmail), addr).WithMessage(MsgEmailRequired),
			validator.Matches(string(FieldEmail), s.Email, IsEmail, "email address").WithMessage(MsgEmailInvalid),
		},
		[]validator.Rule{
			validator.NotEmpty(string(FieldMessage), message).WithMessage(MsgMessageRequired),
			validator.MinLenBy(string(FieldMessage), message, MinMessageLength, validator.UTF16Length).WithMessage(MsgMessageTooShort),
		},
	)

	result := ValidationResult{}
	for _, verr := range validator.ExtractValidationErrors(err) {
		result[Field(verr.Field)] = verr.Message
	}
	return result
}

// CheckRequest applies the server-side checks: every field must be present
// and non-empty, then the email must match the pattern. Values are not
// trimmed.
func CheckRequest(s Submission) error {
	if s.Name == "" || s.Email == "" || s.Message == "" {
		return ErrMissingFields
	}
	if !IsEmail(s.Email) {
		return ErrInvalidEmail
	}
	return nil
}
