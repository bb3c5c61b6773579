package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/folio/pkg/contact"
)

const namespace = "folio"

// Metrics holds the service collectors. It implements contact.Recorder.
type Metrics struct {
	registry *prometheus.Registry

	Submissions     *prometheus.CounterVec
	SubmissionTime  prometheus.Histogram
	EmailsSent      *prometheus.CounterVec
	EmailSendTime   *prometheus.HistogramVec
	RateLimited     prometheus.Counter
	RateLimitErrors prometheus.Counter
	HTTPRequests    *prometheus.CounterVec
}

// New registers every collector on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Submissions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contact_submissions_total",
			Help:      "Contact submissions by outcome",
		}, []string{"outcome"}),
		SubmissionTime: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "contact_submission_duration_seconds",
			Help:      "Time from accepted request to both sends settled",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		}),
		EmailsSent: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emails_sent_total",
			Help:      "Gateway send attempts by email kind and result",
		}, []string{"kind", "result"}),
		EmailSendTime: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "email_send_duration_seconds",
			Help:      "Gateway send latency by email kind",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
		RateLimited: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ratelimit_denied_total",
			Help:      "Requests rejected by the rate limiter",
		}),
		RateLimitErrors: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ratelimit_store_errors_total",
			Help:      "Rate limit checks that failed and let the request through",
		}),
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP responses by route and status code",
		}, []string{"route", "code"}),
	}
}

func (m *Metrics) ObserveSubmission(outcome string, d time.Duration) {
	m.Submissions.WithLabelValues(outcome).Inc()
	if outcome == contact.OutcomeSent || outcome == contact.OutcomeFailed {
		m.SubmissionTime.Observe(d.Seconds())
	}
}

func (m *Metrics) ObserveSend(kind contact.Kind, d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.EmailsSent.WithLabelValues(string(kind), result).Inc()
	m.EmailSendTime.WithLabelValues(string(kind)).Observe(d.Seconds())
}

func (m *Metrics) IncRateLimited() {
	m.RateLimited.Inc()
}

func (m *Metrics) IncRateLimitErrors() {
	m.RateLimitErrors.Inc()
}

func (m *Metrics) ObserveHTTP(route string, code int) {
	m.HTTPRequests.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

// Registry exposes the underlying registry, mostly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

var _ contact.Recorder = (*Metrics)(nil)
