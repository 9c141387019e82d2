package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

// Every HTTP series is labelled by route pattern, method and status.
var routeLabels = []string{"path", "method", "status"}

var (
	requestsServed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "evosota",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Requests served, by route",
	}, routeLabels)

	requestSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "evosota",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Request latency by route",
		Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
	}, routeLabels)

	responseBytes = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "evosota",
		Subsystem: "http",
		Name:      "response_bytes",
		Help:      "Response body bytes written to the client, by route",
		Buckets:   prometheus.ExponentialBuckets(256, 4, 8),
	}, routeLabels)

	inflight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "evosota",
		Subsystem: "http",
		Name:      "inflight_requests",
		Help:      "Requests currently being served",
	})

	catalogLoaded = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "evosota",
		Subsystem: "catalog",
		Name:      "loaded_timestamp_seconds",
		Help:      "Unix time the served leaderboard files were loaded",
	})
)

func init() {
	prometheus.MustRegister(requestsServed, requestSeconds, responseBytes, inflight, catalogLoaded)
}

// SetCatalogLoaded records when the served snapshot was read.
func SetCatalogLoaded(t time.Time) { catalogLoaded.Set(float64(t.Unix())) }

// recorder captures the status and body size a handler produced.
type recorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (rw *recorder) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *recorder) Write(p []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(p)
	rw.bytes += n
	return n, err
}

// MetricsMiddleware instruments requests for Prometheus. It reads the route
// after the handler ran, when chi has filled in the matched pattern.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inflight.Inc()
		defer inflight.Dec()

		rw := &recorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rw, r)

		labels := prometheus.Labels{
			"path":   routePatternOrPath(r),
			"method": r.Method,
			"status": strconv.Itoa(rw.status),
		}
		requestsServed.With(labels).Inc()
		requestSeconds.With(labels).Observe(time.Since(start).Seconds())
		responseBytes.With(labels).Observe(float64(rw.bytes))
	})
}

// routePatternOrPath keeps label cardinality bounded: unmatched requests
// fall back to the raw path only when no pattern was recorded.
func routePatternOrPath(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}
