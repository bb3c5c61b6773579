package contactclient

import (
	"context"
	"sync"

	"github.com/dmitrymomot/folio/pkg/contact"
)

// Submitter sends a validated submission. *Client implements it.
type Submitter interface {
	Submit(ctx context.Context, s contact.Submission) Outcome
}

// Form holds the state of one contact form: field values, per-field errors
// and whether a submission is in flight. It is safe for concurrent use.
type Form struct {
	client Submitter

	mu         sync.Mutex
	values     contact.Submission
	errors     contact.ValidationResult
	submitting bool
}

func NewForm(client Submitter) *Form {
	return &Form{client: client, errors: contact.ValidationResult{}}
}

// SetField stores value and clears the error of that field only. Other
// fields keep their errors until the next submit.
func (f *Form) SetField(field contact.Field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = f.values.With(field, value)
	f.errors = f.errors.Clear(field)
}

// Submit validates the current values and, when valid, sends them. While a
// submit is in flight further calls return OutcomeSuppressed without
// touching the network. On success the fields are reset.
func (f *Form) Submit(ctx context.Context) Outcome {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return Outcome{Kind: OutcomeSuppressed}
	}
	values := f.values
	result := contact.Validate(values)
	f.errors = result
	if !result.Valid() {
		f.mu.Unlock()
		return ValidationError(result)
	}
	f.submitting = true
	f.mu.Unlock()

	outcome := f.client.Submit(ctx, values)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	if outcome.IsSuccess() {
		f.values = contact.Submission{}
		f.errors = contact.ValidationResult{}
	}
	return outcome
}

// Submitting reports whether a submission is in flight; the submit control
// should be disabled while it is true.
func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Errors returns a copy of the current field errors.
func (f *Form) Errors() contact.ValidationResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(contact.ValidationResult, len(f.errors))
	for k, v := range f.errors {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

func (f *Form) Values() contact.Submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}
