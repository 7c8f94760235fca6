package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// MetricHooks decouples the middleware from prometheus.
// Both callbacks are optional.
type MetricHooks struct {
	OnServed   func(method, route string, status int, latency time.Duration)
	OnRejected func()
}

// Instrument reports every completed request to hooks.OnServed, labelled by
// the chi route pattern rather than the raw path. Requests that match no
// route are labelled "unmatched"; non-standard methods are labelled "other".
func Instrument(hooks MetricHooks) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if hooks.OnServed == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := wrap(w)

			next.ServeHTTP(wrapped, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					route = p
				}
			}
			hooks.OnServed(methodLabel(r.Method), route, wrapped.status, time.Since(start))
		})
	}
}

// methodLabel keeps client-chosen methods out of the label space.
func methodLabel(m string) string {
	switch m {
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodConnect,
		http.MethodOptions, http.MethodTrace:
		return m
	}
	return "other"
}
