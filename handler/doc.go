// Package handler provides type-safe HTTP request handling.
//
// A HandlerFunc receives a Context and a request value already decoded by
// the configured binders, and returns a Response that renders itself:
//
//	func submit(ctx handler.Context, req contact.Submission) handler.Response {
//		if err := svc.Submit(ctx, req); err != nil {
//			return handler.JSONError(http.StatusInternalServerError, "Failed to send email")
//		}
//		return handler.JSON(http.StatusOK, map[string]string{"message": "Email sent successfully"})
//	}
//
//	r.Post("/api/contact", handler.Wrap(submit,
//		handler.WithBinder[handler.Context, contact.Submission](binder.JSON()),
//	))
//
// # Responses
//
//   - JSON(status, body): body is marshalled as-is
//   - JSONError(status, message): {"error": message}
//
// # Errors
//
// Binder and render failures go to the ErrorHandler. HTTPError carries a
// status and a client-facing message; NewJSONErrorHandler renders it as
// {"error": message} and turns any other error into a generic 500.
package handler
