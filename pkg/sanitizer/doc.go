// Package sanitizer provides small string cleaning helpers for user input
// that ends up in places with stricter rules than an HTML body, such as
// email header values.
//
// Helpers are plain func(string) string values (or close over their
// parameters) so they combine with Compose:
//
//	clean := sanitizer.Compose(
//	    sanitizer.RemoveControlChars,
//	    sanitizer.SingleLine,
//	    sanitizer.LimitLengthFunc(100),
//	)
//	subject := "New message from " + clean(name)
package sanitizer
