package middleware

import (
	"net/http"
	"strings"
	"time"
)

// httpMetrics records one finished request.
type httpMetrics interface {
	Observe(method, route string, code int, duration time.Duration)
}

// Metrics returns middleware that reports request counts and latency. It
// must wrap the mux directly: the route label comes from r.Pattern, which
// the mux fills in on the request it was handed.
func Metrics(m httpMetrics) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &responseRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			route := strings.TrimPrefix(r.Pattern, r.Method+" ")
			if route == "" {
				route = "unmatched"
			}
			m.Observe(r.Method, route, sw.status, time.Since(start))
		})
	}
}
