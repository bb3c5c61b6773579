package contact

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/folio/pkg/logger"
)

// Submission outcomes reported to a Recorder.
const (
	OutcomeSent          = "sent"
	OutcomeMissingFields = "missing_fields"
	OutcomeInvalidEmail  = "invalid_email"
	OutcomeFailed        = "failed"
)

// Recorder receives service measurements, e.g. Prometheus collectors.
type Recorder interface {
	ObserveSubmission(outcome string, d time.Duration)
	ObserveSend(kind Kind, d time.Duration, err error)
}

type noopRecorder struct{}

func (noopRecorder) ObserveSubmission(string, time.Duration) {}
func (noopRecorder) ObserveSend(Kind, time.Duration, error) {}

// Service handles one submission end to end: request checks, then dispatch.
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	dispatcher *Dispatcher
	logger     *slog.Logger
	recorder   Recorder
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithRecorder(r Recorder) ServiceOption {
	return func(s *Service) {
		if r != nil {
			s.recorder = r
		}
	}
}

func NewService(d *Dispatcher, opts ...ServiceOption) *Service {
	s := &Service{
		dispatcher: d,
		logger:     slog.Default(),
		recorder:   noopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("contact"))
	return s
}

// Submit validates the request and sends both emails.
// It returns ErrMissingFields, ErrInvalidEmail or ErrDispatchFailed.
func (s *Service) Submit(ctx context.Context, sub Submission) error {
	start := time.Now()

	if err := CheckRequest(sub); err != nil {
		outcome := OutcomeMissingFields
		if errors.Is(err, ErrInvalidEmail) {
			outcome = OutcomeInvalidEmail
		}
		s.recorder.ObserveSubmission(outcome, time.Since(start))
		s.logger.InfoContext(ctx, "contact submission rejected",
			logger.Event("submission_rejected"),
			slog.String("reason", outcome),
		)
		return err
	}

	if err := s.dispatcher.Dispatch(ctx, sub); err != nil {
		s.recorder.ObserveSubmission(OutcomeFailed, time.Since(start))
		s.logger.ErrorContext(ctx, "failed to send contact emails",
			logger.Event("submission_failed"),
			logger.Error(err),
			logger.Duration(time.Since(start)),
		)
		return err
	}

	s.recorder.ObserveSubmission(OutcomeSent, time.Since(start))
	s.logger.InfoContext(ctx, "contact submission sent",
		logger.Event("submission_sent"),
		logger.Duration(time.Since(start)),
	)
	return nil
}

// Diagnose sends a test message to the operator address.
func (s *Service) Diagnose(ctx context.Context, provider string) (OutboundEmail, error) {
	msg, err := s.dispatcher.SendDiagnostic(ctx, provider)
	if err != nil {
		s.logger.ErrorContext(ctx, "test email failed",
			logger.Event("diagnostic_failed"),
			logger.Error(err),
		)
		return msg, err
	}
	s.logger.InfoContext(ctx, "test email sent", logger.Event("diagnostic_sent"))
	return msg, nil
}
