package email

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// EmailSender represents an interface for sending emails.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams represents the parameters for sending an email.
type SendEmailParams struct {
	SendTo   string `json:"send_to"`            // Email address of the recipient
	ReplyTo  string `json:"reply_to,omitempty"` // Optional, defaults to Config.SupportEmail
	Subject  string `json:"subject"`            // Subject of the email
	BodyHTML string `json:"body_html"`          // HTML body of the email
	Tag      string `json:"tag,omitempty"`      // Optional
}

// emailRegex accepts a single mailbox. Whitespace and list separators are
// rejected so an address can never expand into extra headers or recipients.
var emailRegex = regexp.MustCompile(`^[^\s@,;<>"]+@[^\s@,;<>"]+\.[^\s@,;<>"]+$`)

// Validate checks that the params describe a deliverable message.
func (p SendEmailParams) Validate() error {
	if strings.TrimSpace(p.SendTo) == "" {
		return fmt.Errorf("%w: SendTo is required", ErrInvalidParams)
	}
	if !emailRegex.MatchString(p.SendTo) {
		return fmt.Errorf("%w: SendTo must be a valid email address", ErrInvalidParams)
	}
	if p.ReplyTo != "" && !emailRegex.MatchString(p.ReplyTo) {
		return fmt.Errorf("%w: ReplyTo must be a valid email address", ErrInvalidParams)
	}
	if strings.TrimSpace(p.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if strings.ContainsAny(p.Subject, "\r\n") {
		return fmt.Errorf("%w: Subject must be a single line", ErrInvalidParams)
	}
	if strings.TrimSpace(p.BodyHTML) == "" {
		return fmt.Errorf("%w: BodyHTML is required", ErrInvalidParams)
	}
	return nil
}

// IsValidAddress reports whether s is accepted as a recipient address.
func IsValidAddress(s string) bool {
	return emailRegex.MatchString(s)
}
