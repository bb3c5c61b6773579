// Package requestid correlates the log records of one HTTP request.
//
// Middleware assigns every request an id (reusing a valid inbound
// X-Request-ID), stores it in the request context and echoes it in the
// response. LogExtractor plugs the id into the logger:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LogExtractor()))
//	r.Use(requestid.Middleware)
package requestid
