package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/greethub/greeter/internal/api/handler"
	apimw "github.com/greethub/greeter/internal/api/middleware"
	"github.com/greethub/greeter/internal/metrics"
	"github.com/greethub/greeter/internal/ratelimiter"
)

// NewRouter builds the public HTTP surface: exactly one route, GET /.
// Every call returns an independent router. m and limiter may be nil.
func NewRouter(logger *zap.Logger, m *metrics.Metrics, limiter *ratelimiter.Limiter) http.Handler {
	r := chi.NewRouter()

	var hooks apimw.MetricHooks
	if m != nil {
		hooks.OnServed, hooks.OnRejected = m.HTTPHooks()
	}

	r.Use(chimw.Recoverer) // recover panics, return 500
	r.Use(chimw.RealIP)
	r.Use(apimw.CorrelationID)
	r.Use(apimw.RequestLogger(logger))
	r.Use(apimw.Instrument(hooks))

	// Route-level so rejected requests still carry their route pattern.
	var limited chi.Router = r
	if limiter != nil {
		limited = r.With(apimw.RateLimit(limiter.Allow, hooks.OnRejected, handler.TooManyRequests))
	}

	gh := handler.NewGreetingHandler()
	limited.Get("/", gh.Greet)

	return r
}

// NewOpsRouter serves liveness and the Prometheus scrape endpoint on a
// separate listener so they never share the public route table.
func NewOpsRouter(reg prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)

	hh := handler.NewHealthHandler(time.Now())
	r.Get("/health", hh.Health)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return r
}
