// Package contactclient is the caller side of the contact endpoint.
//
// Client posts a submission and reduces whatever happens (2xx, error body,
// garbage, network failure) to a terminal Outcome:
//
//	c := contactclient.New("https://example.com")
//	out := c.Submit(ctx, contact.Submission{Name: "Ada", Email: "ada@example.com", Message: "Hello there!"})
//	switch out.Kind {
//	case contactclient.OutcomeSuccess:
//	case contactclient.OutcomeTransportError:
//		show(out.Message)
//	}
//
// Form keeps the state a UI binds to. It validates before sending, clears a
// field's error as soon as that field changes, suppresses a second submit
// while the first is in flight and resets the fields after success.
package contactclient
