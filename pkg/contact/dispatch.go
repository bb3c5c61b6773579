package contact

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/folio/pkg/email"
)

// Dispatcher sends the emails of a submission through the gateway.
type Dispatcher struct {
	sender   email.EmailSender
	composer *Composer
	recorder Recorder
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithDispatchRecorder reports per-email latency and outcome.
func WithDispatchRecorder(r Recorder) DispatcherOption {
	return func(d *Dispatcher) {
		if r != nil {
			d.recorder = r
		}
	}
}

// NewDispatcher wires a sender and a composer.
func NewDispatcher(sender email.EmailSender, composer *Composer, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		sender:   sender,
		composer: composer,
		recorder: noopRecorder{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch composes both emails and sends them concurrently. It returns only
// after both sends have settled. Any failure yields ErrDispatchFailed joined
// with every send error, so one delivered email and one failure still count
// as a failed dispatch.
//
// Sends are detached from ctx cancellation: a client disconnect must not
// abort a message the gateway may already be accepting.
func (d *Dispatcher) Dispatch(ctx context.Context, s Submission) error {
	messages, err := d.composer.Compose(ctx, s)
	if err != nil {
		return errors.Join(ErrDispatchFailed, err)
	}
	return d.send(context.WithoutCancel(ctx), messages...)
}

// SendDiagnostic delivers a test message to the operator address.
func (d *Dispatcher) SendDiagnostic(ctx context.Context, provider string) (OutboundEmail, error) {
	msg, err := d.composer.Diagnostic(ctx, provider, time.Now())
	if err != nil {
		return OutboundEmail{}, errors.Join(ErrDispatchFailed, err)
	}
	return msg, d.send(context.WithoutCancel(ctx), msg)
}

// send checks every message before any is handed to the gateway. One
// invalid message means nothing is sent.
func (d *Dispatcher) send(ctx context.Context, messages ...OutboundEmail) error {
	errs := make([]error, len(messages))
	for i, msg := range messages {
		if err := msg.Params().Validate(); err != nil {
			errs[i] = fmt.Errorf("send %s: %w", msg.Kind, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return errors.Join(ErrDispatchFailed, err)
	}

	var g errgroup.Group
	for i, msg := range messages {
		g.Go(func() error {
			start := time.Now()
			err := d.sender.SendEmail(ctx, msg.Params())
			d.recorder.ObserveSend(msg.Kind, time.Since(start), err)
			if err != nil {
				errs[i] = fmt.Errorf("send %s: %w", msg.Kind, err)
			}
			return errs[i]
		})
	}

	if err := g.Wait(); err != nil {
		return errors.Join(ErrDispatchFailed, errors.Join(errs...))
	}
	return nil
}
