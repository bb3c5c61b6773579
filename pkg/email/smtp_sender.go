package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime"
	"mime/quotedprintable"
	"net"
	"net/smtp"
	"strconv"
	"time"
)

// sendMailFunc matches smtp.SendMail.
type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type smtpSender struct {
	addr     string
	auth     smtp.Auth
	config   Config
	sendMail sendMailFunc
	now      func() time.Time
}

// NewSMTPSender creates a sender that relays through an authenticated SMTP
// server, e.g. Gmail with an account address and an app password.
// smtp.SendMail upgrades the connection with STARTTLS when the server offers it.
func NewSMTPSender(cfg Config) (EmailSender, error) {
	if cfg.SMTPHost == "" {
		return nil, fmt.Errorf("%w: SMTPHost is required", ErrInvalidConfig)
	}
	if cfg.SMTPPort <= 0 || cfg.SMTPPort > 65535 {
		return nil, fmt.Errorf("%w: SMTPPort must be between 1 and 65535", ErrInvalidConfig)
	}
	if cfg.SMTPUsername == "" {
		return nil, fmt.Errorf("%w: SMTPUsername is required", ErrInvalidConfig)
	}
	if cfg.SMTPPassword == "" {
		return nil, fmt.Errorf("%w: SMTPPassword is required", ErrInvalidConfig)
	}
	if err := validateIdentity(cfg); err != nil {
		return nil, err
	}

	return &smtpSender{
		addr:     net.JoinHostPort(cfg.SMTPHost, strconv.Itoa(cfg.SMTPPort)),
		auth:     smtp.PlainAuth("", cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPHost),
		config:   cfg,
		sendMail: smtp.SendMail,
		now:      time.Now,
	}, nil
}

// SendEmail implements EmailSender. The SMTP exchange itself is not
// cancellable; ctx is checked before the connection is opened.
func (s *smtpSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}

	msg, err := buildMessage(s.config.SenderEmail, replyTo(params, s.config), params, s.now())
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}

	if err := s.sendMail(s.addr, s.auth, s.config.SenderEmail, []string{params.SendTo}, msg); err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	return nil
}

// buildMessage renders an RFC 5322 message with a quoted-printable HTML body.
// The subject is Q-encoded so non-ASCII names survive transport.
func buildMessage(from, replyTo string, params SendEmailParams, now time.Time) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", params.SendTo)
	if replyTo != "" {
		fmt.Fprintf(&buf, "Reply-To: %s\r\n", replyTo)
	}
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", params.Subject))
	fmt.Fprintf(&buf, "Date: %s\r\n", now.Format(time.RFC1123Z))
	if params.Tag != "" {
		fmt.Fprintf(&buf, "X-Tag: %s\r\n", params.Tag)
	}
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	buf.WriteString("Content-Transfer-Encoding: quoted-printable\r\n")
	buf.WriteString("\r\n")

	qp := quotedprintable.NewWriter(&buf)
	if _, err := qp.Write([]byte(params.BodyHTML)); err != nil {
		return nil, fmt.Errorf("encode body: %w", err)
	}
	if err := qp.Close(); err != nil {
		return nil, fmt.Errorf("encode body: %w", err)
	}

	return buf.Bytes(), nil
}
