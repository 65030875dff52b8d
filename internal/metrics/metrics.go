// Package metrics exposes Prometheus collectors for the Steelgate server:
// request counters and latency histograms, lead submission outcomes, and
// content store query results.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal          *prometheus.CounterVec
	httpRequestDurationSeconds *prometheus.HistogramVec
	leadsSubmittedTotal        *prometheus.CounterVec
	contentQueriesTotal        *prometheus.CounterVec

	once sync.Once
)

// Init initializes the Prometheus metrics collectors.
// It is safe to call this function multiple times.
func Init() {
	once.Do(func() {
		httpRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests, labeled by method and code.",
			},
			[]string{"method", "code"},
		)

		httpRequestDurationSeconds = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Histogram of HTTP request latencies, labeled by method and route.",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
			},
			[]string{"method", "route"},
		)

		leadsSubmittedTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "leads_submitted_total",
				Help: "Total lead form submissions, labeled by form and outcome.",
			},
			[]string{"form", "status"},
		)

		contentQueriesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "content_queries_total",
				Help: "Total queries issued to the content store, labeled by outcome.",
			},
			[]string{"status"},
		)
	})
}

// Handler returns the Prometheus metrics HTTP handler for /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveLead records a lead submission outcome. form is "contact" or
// "quote"; status is "accepted", "rejected", "honeypot", or "failed".
func ObserveLead(form, status string) {
	if leadsSubmittedTotal == nil {
		return
	}
	leadsSubmittedTotal.WithLabelValues(form, status).Inc()
}

// ObserveContentQuery records a content store query outcome ("ok" or "error").
func ObserveContentQuery(status string) {
	if contentQueriesTotal == nil {
		return
	}
	contentQueriesTotal.WithLabelValues(status).Inc()
}

// statusRecorder captures the response code for the request counter.
type statusRecorder struct {
	http.ResponseWriter
	code    int
	written bool
}

func (sr *statusRecorder) WriteHeader(code int) {
	if !sr.written {
		sr.code = code
		sr.written = true
	}
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if !sr.written {
		sr.code = http.StatusOK
		sr.written = true
	}
	return sr.ResponseWriter.Write(b)
}

// Middleware records request counts and latencies. The route label uses the
// chi route pattern (e.g. "/inventory/{category}") so URL parameters do not
// explode metric cardinality.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}

		if httpRequestsTotal != nil {
			httpRequestsTotal.WithLabelValues(r.Method, strconv.Itoa(rec.code)).Inc()
		}
		if httpRequestDurationSeconds != nil {
			httpRequestDurationSeconds.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		}
	})
}
