package email

import (
	"context"
	"errors"
	"io"
	"mime/quotedprintable"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smtpConfig() Config {
	return Config{
		Provider:     ProviderSMTP,
		SMTPHost:     "smtp.example.com",
		SMTPPort:     587,
		SMTPUsername: "owner@example.com",
		SMTPPassword: "app-password",
		SenderEmail:  "owner@example.com",
		SupportEmail: "owner@example.com",
	}
}

func TestNewSMTPSender_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(c *Config)
		errMsg string
	}{
		{"missing host", func(c *Config) { c.SMTPHost = "" }, "SMTPHost is required"},
		{"bad port", func(c *Config) { c.SMTPPort = 0 }, "SMTPPort must be between 1 and 65535"},
		{"missing username", func(c *Config) { c.SMTPUsername = "" }, "SMTPUsername is required"},
		{"missing password", func(c *Config) { c.SMTPPassword = "" }, "SMTPPassword is required"},
		{"invalid sender", func(c *Config) { c.SenderEmail = "nope" }, "SenderEmail must be a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := smtpConfig()
			tt.modify(&cfg)

			sender, err := NewSMTPSender(cfg)
			assert.Nil(t, sender)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestSMTPSender_SendEmail(t *testing.T) {
	t.Parallel()

	newSender := func(t *testing.T, fn sendMailFunc) *smtpSender {
		t.Helper()
		s, err := NewSMTPSender(smtpConfig())
		require.NoError(t, err)
		sender := s.(*smtpSender)
		sender.sendMail = fn
		sender.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }
		return sender
	}

	t.Run("relays message to the recipient", func(t *testing.T) {
		t.Parallel()

		var (
			gotAddr string
			gotFrom string
			gotTo   []string
			gotMsg  []byte
		)
		sender := newSender(t, func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
			return nil
		})

		params := SendEmailParams{
			SendTo:   "visitor@example.org",
			ReplyTo:  "owner@example.com",
			Subject:  "Thank you for contacting me!",
			BodyHTML: "<p>Hi</p>",
			Tag:      "contact-acknowledgment",
		}
		require.NoError(t, sender.SendEmail(context.Background(), params))

		assert.Equal(t, "smtp.example.com:587", gotAddr)
		assert.Equal(t, "owner@example.com", gotFrom)
		assert.Equal(t, []string{"visitor@example.org"}, gotTo)
		assert.Contains(t, string(gotMsg), "To: visitor@example.org\r\n")
		assert.Contains(t, string(gotMsg), "Reply-To: owner@example.com\r\n")
		assert.Contains(t, string(gotMsg), "Subject: Thank you for contacting me!\r\n")
	})

	t.Run("transport failure", func(t *testing.T) {
		t.Parallel()

		sender := newSender(t, func(string, smtp.Auth, string, []string, []byte) error {
			return errors.New("535 authentication failed")
		})

		err := sender.SendEmail(context.Background(), SendEmailParams{
			SendTo: "visitor@example.org", Subject: "s", BodyHTML: "b",
		})
		assert.ErrorIs(t, err, ErrFailedToSendEmail)
		assert.Contains(t, err.Error(), "535")
	})

	t.Run("cancelled context does not dial", func(t *testing.T) {
		t.Parallel()

		called := false
		sender := newSender(t, func(string, smtp.Auth, string, []string, []byte) error {
			called = true
			return nil
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := sender.SendEmail(ctx, SendEmailParams{SendTo: "visitor@example.org", Subject: "s", BodyHTML: "b"})
		assert.ErrorIs(t, err, ErrFailedToSendEmail)
		assert.False(t, called)
	})
}

func TestBuildMessage(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	body := "<p>" + strings.Repeat("long line ", 20) + "José</p>"

	msg, err := buildMessage("owner@example.com", "", SendEmailParams{
		SendTo:   "visitor@example.org",
		Subject:  "New Contact Form Message from José",
		BodyHTML: body,
	}, now)
	require.NoError(t, err)

	head, encoded, found := strings.Cut(string(msg), "\r\n\r\n")
	require.True(t, found)

	assert.Contains(t, head, "From: owner@example.com")
	assert.NotContains(t, head, "Reply-To:")
	assert.Contains(t, head, "Subject: =?utf-8?q?New_Contact_Form_Message_from_Jos=C3=A9?=")
	assert.Contains(t, head, "Date: Wed, 01 May 2024 10:00:00 +0000")
	assert.Contains(t, head, "Content-Transfer-Encoding: quoted-printable")

	for _, line := range strings.Split(encoded, "\r\n") {
		assert.LessOrEqual(t, len(line), 76)
	}

	decoded, err := io.ReadAll(quotedprintable.NewReader(strings.NewReader(encoded)))
	require.NoError(t, err)
	assert.Equal(t, body, string(decoded))
}
