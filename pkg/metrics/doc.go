// Package metrics defines the Prometheus collectors of the contact service
// and serves them on /metrics.
//
// Collectors live on a private registry so tests can build as many
// instances as they like. Metrics implements contact.Recorder and is passed
// to the contact service and dispatcher.
package metrics
