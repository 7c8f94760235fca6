package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups all Prometheus instruments used across the application.
// Registered once at startup via New(); passed by pointer wherever needed.
type Metrics struct {
	RequestsTotal       *prometheus.CounterVec
	RequestDuration     *prometheus.HistogramVec
	RequestsRateLimited prometheus.Counter
}

// New registers all instruments with the given Prometheus registerer and
// returns the populated Metrics struct.
// A custom registry keeps tests isolated from prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests served, by method, route and status.",
		}, []string{"method", "route", "status"}),

		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Time spent serving HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),

		RequestsRateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "http_requests_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter.",
		}),
	}

	reg.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.RequestsRateLimited,
	)

	return m
}

// HTTPHooks returns the callbacks expected by middleware.MetricHooks.
// Keeps the prometheus calls here so the middleware package stays import-free.
func (m *Metrics) HTTPHooks() (
	onServed func(method, route string, status int, latency time.Duration),
	onRejected func(),
) {
	onServed = func(method, route string, status int, latency time.Duration) {
		m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		m.RequestDuration.WithLabelValues(method, route).Observe(latency.Seconds())
	}
	onRejected = func() {
		m.RequestsRateLimited.Inc()
	}
	return
}
