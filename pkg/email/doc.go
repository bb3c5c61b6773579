// Package email provides a provider-agnostic interface for sending transactional emails.
//
// # Architecture
//
// The package is built around the EmailSender interface, allowing different email
// providers to be swapped without changing application code. Currently supported:
//   - Postmark for production delivery through the transactional HTTP API
//   - SMTP for relays that authenticate with an account and an app password
//   - DevSender for local development (saves emails to disk)
//
// All implementations validate email parameters before sending and report
// delivery failures as ErrFailedToSendEmail.
//
// # Usage
//
// Pick the provider from configuration:
//
//	var cfg email.Config // loaded with pkg/config
//	sender, err := email.New(cfg)
//	if err != nil {
//	    // missing credentials, fail at startup
//	}
//
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//	    SendTo:   "user@example.com",
//	    ReplyTo:  "visitor@example.org", // optional, defaults to SupportEmail
//	    Subject:  "Welcome!",
//	    BodyHTML: htmlContent,
//	    Tag:      "welcome", // optional, for analytics
//	})
//
// Development mode saves emails locally:
//
//	devSender := email.NewDevSender("./tmp/emails")
//	err := devSender.SendEmail(ctx, params)
//	// Creates HTML and JSON files in ./tmp/emails/
//
// Bodies are rendered with the templates subpackage, either from templ
// components or from html/template:
//
//	html, err := templates.RenderHTML(ctx, tmpl, data)
//
// # Configuration
//
//   - EMAIL_PROVIDER: postmark (default), smtp or dev
//   - POSTMARK_SERVER_TOKEN, POSTMARK_ACCOUNT_TOKEN: Postmark credentials
//   - SMTP_HOST, SMTP_PORT, SMTP_USERNAME, SMTP_PASSWORD: SMTP relay
//   - SENDER_EMAIL: From address for all emails
//   - SUPPORT_EMAIL: default Reply-To address
//   - EMAIL_DEV_DIR: output directory of the dev provider
//
// Configured reports which credentials are present without revealing them,
// for diagnostics endpoints.
//
// # Error Handling
//
//   - ErrInvalidConfig: Configuration validation failed
//   - ErrInvalidParams: Email parameters validation failed
//   - ErrFailedToSendEmail: Email delivery failed
//
// All errors can be checked using errors.Is().
package email
