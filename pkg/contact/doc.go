// Package contact implements the contact form pipeline of a portfolio site.
//
// Validate mirrors the checks the browser form runs before sending. On the
// server, Service.Submit repeats the structural and email checks with
// CheckRequest, then the Dispatcher sends two emails through an
// email.EmailSender: a notification to the site operator and an
// acknowledgment to the submitter. Both sends run concurrently and are joined
// before Submit returns.
//
//	composer, err := contact.NewComposer(contact.ComposerConfig{
//	    OperatorEmail: "owner@example.com",
//	    OwnerName:     "Alex",
//	})
//	svc := contact.NewService(
//	    contact.NewDispatcher(sender, composer),
//	    contact.WithLogger(log),
//	)
//	switch err := svc.Submit(ctx, sub); {
//	case errors.Is(err, contact.ErrMissingFields):
//	case errors.Is(err, contact.ErrInvalidEmail):
//	case errors.Is(err, contact.ErrDispatchFailed):
//	}
//
// Submissions are not stored and sends are not retried. A dispatch where one
// email was delivered and the other failed is reported as a failure.
package contact
