// Package contact mounts the contact form HTTP API.
//
// Routes:
//
//	POST /api/contact      validate a submission and send both emails
//	GET  /api/test-email   send a test message (only with Diagnostics)
//	GET  /health/live      liveness check
//	GET  /health/ready     readiness check running ReadinessChecks
//	GET  /metrics          Prometheus exposition (only with Metrics)
//
// Every request passes request id, client ip and request logging
// middleware. The /api routes are additionally rate limited when a Limiter
// is set and bounded by MaxBodyBytes.
//
// POST /api/contact answers with fixed bodies:
//
//	200 {"message":"Email sent successfully"}
//	400 {"error":"Missing required fields"}
//	400 {"error":"Invalid email format"}
//	429 {"error":"Too many requests"}
//	500 {"error":"Failed to send email"}
//
// A body that cannot be decoded, lacks one of the exact lowercase keys
// "name", "email" and "message", or exceeds MaxBodyBytes gets the 400
// "Missing required fields" answer. Earlier deployments answered 500
// "Failed to send email" for undecodable JSON.
package contact
