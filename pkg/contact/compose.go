package contact

import (
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/dmitrymomot/folio/pkg/email"
	"github.com/dmitrymomot/folio/pkg/email/templates"
	"github.com/dmitrymomot/folio/pkg/sanitizer"
)

const (
	SubjectOperatorNotification = "New Contact Form Message from %s"
	SubjectSenderAcknowledgment = "Thank you for contacting me!"
	SubjectDiagnostic           = "Test Email from Portfolio Contact Form"

	DefaultResponseWindow = "24-48 hours"
)

// KindDiagnostic marks the test message sent by the diagnostics endpoint.
const KindDiagnostic Kind = "diagnostic"

// ComposerConfig holds the fixed parts of every composed email.
type ComposerConfig struct {
	OperatorEmail  string `env:"CONTACT_OPERATOR_EMAIL,required"`
	OwnerName      string `env:"CONTACT_OWNER_NAME"`
	ResponseWindow string `env:"CONTACT_RESPONSE_WINDOW" envDefault:"24-48 hours"`
}

// Composer renders the operator notification and the sender acknowledgment.
type Composer struct {
	cfg ComposerConfig
}

// NewComposer validates cfg and returns a Composer.
func NewComposer(cfg ComposerConfig) (*Composer, error) {
	if !email.IsValidAddress(cfg.OperatorEmail) {
		return nil, fmt.Errorf("%w: operator email %q is not a valid address", ErrInvalidConfig, cfg.OperatorEmail)
	}
	if strings.TrimSpace(cfg.ResponseWindow) == "" {
		cfg.ResponseWindow = DefaultResponseWindow
	}
	return &Composer{cfg: cfg}, nil
}

// OperatorEmail returns the fixed notification recipient.
func (c *Composer) OperatorEmail() string {
	return c.cfg.OperatorEmail
}

// Compose builds both emails for s, operator notification first.
func (c *Composer) Compose(ctx context.Context, s Submission) ([]OutboundEmail, error) {
	notification, err := c.OperatorNotification(ctx, s)
	if err != nil {
		return nil, err
	}
	ack, err := c.SenderAcknowledgment(ctx, s)
	if err != nil {
		return nil, err
	}
	return []OutboundEmail{notification, ack}, nil
}

// OperatorNotification addresses the site owner. Replies go straight to the
// submitter when their address is usable as a header value.
func (c *Composer) OperatorNotification(ctx context.Context, s Submission) (OutboundEmail, error) {
	body, err := templates.RenderHTML(ctx, operatorNotificationTmpl, s)
	if err != nil {
		return OutboundEmail{}, fmt.Errorf("render operator notification: %w", err)
	}

	msg := OutboundEmail{
		Kind:     KindOperatorNotification,
		To:       c.cfg.OperatorEmail,
		Subject:  fmt.Sprintf(SubjectOperatorNotification, subjectName(s.Name)),
		BodyHTML: body,
	}
	if email.IsValidAddress(s.Email) {
		msg.ReplyTo = s.Email
	}
	return msg, nil
}

// SenderAcknowledgment thanks the submitter and echoes their message.
func (c *Composer) SenderAcknowledgment(ctx context.Context, s Submission) (OutboundEmail, error) {
	body, err := templates.RenderHTML(ctx, senderAcknowledgmentTmpl, acknowledgmentData{
		Submission:     s,
		OwnerName:      c.cfg.OwnerName,
		ResponseWindow: c.cfg.ResponseWindow,
	})
	if err != nil {
		return OutboundEmail{}, fmt.Errorf("render sender acknowledgment: %w", err)
	}

	return OutboundEmail{
		Kind:     KindSenderAcknowledgment,
		To:       s.Email,
		Subject:  SubjectSenderAcknowledgment,
		BodyHTML: body,
	}, nil
}

// Diagnostic builds the test message sent to the operator to verify delivery.
func (c *Composer) Diagnostic(ctx context.Context, provider string, now time.Time) (OutboundEmail, error) {
	body, err := templates.RenderHTML(ctx, diagnosticTmpl, diagnosticData{
		To:       c.cfg.OperatorEmail,
		Provider: provider,
		Time:     now.UTC().Format(time.RFC1123),
	})
	if err != nil {
		return OutboundEmail{}, fmt.Errorf("render diagnostic: %w", err)
	}

	return OutboundEmail{
		Kind:     KindDiagnostic,
		To:       c.cfg.OperatorEmail,
		Subject:  SubjectDiagnostic,
		BodyHTML: body,
	}, nil
}

// MaxSubjectNameLength caps the submitter name quoted in a subject line.
const MaxSubjectNameLength = 100

// subjectName keeps user input to one bounded header line. Line breaks are
// folded before control characters go, since NEL is both.
var subjectName = sanitizer.Compose(
	sanitizer.SingleLine,
	sanitizer.RemoveControlChars,
	sanitizer.RemoveExtraWhitespace,
	sanitizer.LimitLengthFunc(MaxSubjectNameLength),
)

type acknowledgmentData struct {
	Submission
	OwnerName      string
	ResponseWindow string
}

type diagnosticData struct {
	To       string
	Provider string
	Time     string
}

const containerStyle = `font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #e0e0e0; border-radius: 8px;`

var operatorNotificationTmpl = template.Must(template.New("operator_notification").Parse(`<div style="` + containerStyle + `">
  <h2 style="color: #22c55e; margin-bottom: 20px;">New Contact Form Submission</h2>
  <div style="background-color: #f8f9fa; padding: 15px; border-radius: 5px; margin-bottom: 20px;">
    <p style="margin: 0 0 10px 0;"><strong>Name:</strong> {{.Name}}</p>
    <p style="margin: 0 0 10px 0;"><strong>Email:</strong> {{.Email}}</p>
    <p style="margin: 0;"><strong>Message:</strong></p>
  </div>
  <div style="background-color: #ffffff; padding: 15px; border-radius: 5px; border-left: 4px solid #22c55e;">
    <p style="margin: 0; white-space: pre-wrap;">{{.Message}}</p>
  </div>
  <p style="margin-top: 20px; font-size: 12px; color: #666;">
    This message was sent from your portfolio website contact form.
  </p>
</div>`))

var senderAcknowledgmentTmpl = template.Must(template.New("sender_acknowledgment").Parse(`<div style="` + containerStyle + `">
  <h2 style="color: #22c55e; margin-bottom: 20px;">Thank You for Your Message!</h2>
  <p style="margin-bottom: 20px;">Hi {{.Name}},</p>
  <p style="margin-bottom: 20px;">
    Thank you for reaching out through my portfolio website. I have received your message and will get back to you as soon as possible.
  </p>
  <div style="background-color: #f8f9fa; padding: 15px; border-radius: 5px; margin-bottom: 20px;">
    <p style="margin: 0 0 10px 0;"><strong>Your Message:</strong></p>
    <p style="margin: 0; white-space: pre-wrap;">{{.Message}}</p>
  </div>
  <p style="margin-bottom: 20px;">
    I typically respond within {{.ResponseWindow}}. If you don't hear back from me by then, please feel free to follow up.
  </p>
  <p style="margin-bottom: 20px;">
    Best regards{{if .OwnerName}},<br>
    {{.OwnerName}}{{end}}
  </p>
  <p style="font-size: 12px; color: #666;">
    This is an automated response. Please do not reply to this email.
  </p>
</div>`))

var diagnosticTmpl = template.Must(template.New("diagnostic").Parse(`<div style="` + containerStyle + `">
  <h2 style="color: #22c55e; margin-bottom: 20px;">Test Email Successful!</h2>
  <p style="margin-bottom: 20px;">
    Your portfolio contact form is configured and ready to send emails.
  </p>
  <div style="background-color: #f8f9fa; padding: 15px; border-radius: 5px; margin-bottom: 20px;">
    <p style="margin: 0 0 10px 0;"><strong>From:</strong> Portfolio Contact Form</p>
    <p style="margin: 0 0 10px 0;"><strong>To:</strong> {{.To}}</p>
    <p style="margin: 0 0 10px 0;"><strong>Provider:</strong> {{.Provider}}</p>
    <p style="margin: 0;"><strong>Time:</strong> {{.Time}}</p>
  </div>
  <p style="color: #666; font-size: 14px;">
    You can now receive messages from visitors through your portfolio contact form!
  </p>
</div>`))
