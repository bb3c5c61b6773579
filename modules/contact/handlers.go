package contact

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/folio/handler"
	"github.com/dmitrymomot/folio/pkg/binder"
	domain "github.com/dmitrymomot/folio/pkg/contact"
	"github.com/dmitrymomot/folio/pkg/email"
)

// Client-facing messages of POST /api/contact.
const (
	MsgSent          = "Email sent successfully"
	MsgMissingFields = "Missing required fields"
	MsgInvalidEmail  = "Invalid email format"
	MsgSendFailed    = "Failed to send email"
	MsgTooMany       = "Too many requests"

	MsgTestSent          = "Test email sent successfully!"
	MsgTestFailed        = "Failed to send test email"
	MsgCredentialsAbsent = "Email credentials not configured"
)

// isoMillis matches the timestamps browsers produce with toISOString.
const isoMillis = "2006-01-02T15:04:05.000Z"

type messageBody struct {
	Message string `json:"message"`
}

type diagnosticSent struct {
	Message   string `json:"message"`
	To        string `json:"to"`
	Timestamp string `json:"timestamp"`
}

type diagnosticError struct {
	Error       string             `json:"error"`
	Details     string             `json:"details,omitempty"`
	Provider    string             `json:"provider"`
	Credentials []email.Credential `json:"credentials"`
}

// submitHandler serves POST /api/contact. A body that is not a JSON object
// of string fields, or exceeds maxBody, answers 400 with MsgMissingFields;
// earlier deployments answered 500 for undecodable JSON.
func submitHandler(svc *domain.Service, log *slog.Logger, maxBody int64) http.HandlerFunc {
	submit := func(ctx handler.Context, req domain.Submission) handler.Response {
		err := svc.Submit(ctx, req)
		switch {
		case err == nil:
			return handler.JSON(http.StatusOK, messageBody{Message: MsgSent})
		case errors.Is(err, domain.ErrMissingFields):
			return handler.JSONError(http.StatusBadRequest, MsgMissingFields)
		case errors.Is(err, domain.ErrInvalidEmail):
			return handler.JSONError(http.StatusBadRequest, MsgInvalidEmail)
		default:
			return handler.JSONError(http.StatusInternalServerError, MsgSendFailed)
		}
	}

	// Anything the binder rejects is a structurally invalid submission.
	jsonErrors := handler.NewJSONErrorHandler(log)
	onError := func(ctx handler.Context, err error) {
		var httpErr handler.HTTPError
		if !errors.As(err, &httpErr) {
			err = handler.NewHTTPError(http.StatusBadRequest, MsgMissingFields).Wrap(err)
		}
		jsonErrors(ctx, err)
	}

	return handler.Wrap(submit,
		handler.WithBinder[handler.Context, domain.Submission](binder.JSON(
			binder.WithMaxBytes(maxBody),
			binder.WithAnyContentType(),
		)),
		handler.WithErrorHandler[handler.Context, domain.Submission](onError),
	)
}

func diagnosticHandler(svc *domain.Service, creds email.CredentialStatus, now func() time.Time) http.HandlerFunc {
	diagnose := func(ctx handler.Context, _ struct{}) handler.Response {
		if !creds.Ready() {
			return handler.JSON(http.StatusBadRequest, diagnosticError{
				Error:       MsgCredentialsAbsent,
				Provider:    creds.Provider,
				Credentials: creds.Credentials,
			})
		}

		msg, err := svc.Diagnose(ctx, creds.Provider)
		if err != nil {
			return handler.JSON(http.StatusInternalServerError, diagnosticError{
				Error:       MsgTestFailed,
				Details:     err.Error(),
				Provider:    creds.Provider,
				Credentials: creds.Credentials,
			})
		}

		return handler.JSON(http.StatusOK, diagnosticSent{
			Message:   MsgTestSent,
			To:        msg.To,
			Timestamp: now().UTC().Format(isoMillis),
		})
	}
	return handler.Wrap[handler.Context, struct{}](diagnose)
}
