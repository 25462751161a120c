package httpserver

import (
	"net/http"
	"regexp"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const _metricPrefix = "scout_server."

var (
	uuidRegex        = regexp.MustCompile(`[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)
	genericTextRegex = regexp.MustCompile(`^/v1/generic-texts/[^/]+`)
)

type httpMetrics struct {
	duration metric.Float64Histogram
	total    metric.Int64Counter
	active   metric.Int64UpDownCounter
}

var (
	metrics      *httpMetrics
	metricsMutex sync.Mutex
)

// ResetMetricsForTesting forces the instruments to be recreated from the
// current meter provider.
func ResetMetricsForTesting() {
	metricsMutex.Lock()
	defer metricsMutex.Unlock()
	metrics = nil
}

func IsMetricsInitialized() bool {
	metricsMutex.Lock()
	defer metricsMutex.Unlock()
	return metrics != nil
}

func loadMetrics() *httpMetrics {
	metricsMutex.Lock()
	defer metricsMutex.Unlock()

	if metrics != nil {
		return metrics
	}

	meter := otel.GetMeterProvider().Meter(_tracerName)

	duration, err := meter.Float64Histogram(
		_metricPrefix+"http.request.duration.seconds",
		metric.WithDescription("Duration of HTTP requests"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10),
	)
	if err != nil {
		panic(err)
	}

	total, err := meter.Int64Counter(
		_metricPrefix+"http.requests.total",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		panic(err)
	}

	active, err := meter.Int64UpDownCounter(
		_metricPrefix+"http.requests.active",
		metric.WithDescription("Number of HTTP requests currently being processed"),
	)
	if err != nil {
		panic(err)
	}

	metrics = &httpMetrics{duration: duration, total: total, active: active}
	return metrics
}

// MetricsMiddleware records duration, count and concurrency per route. Record
// ids and text names are folded so the endpoint label stays bounded.
func MetricsMiddleware() func(http.Handler) http.Handler {
	instruments := loadMetrics()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			route := metric.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.endpoint", normalizeEndpoint(r.URL.Path)),
			)

			instruments.active.Add(r.Context(), 1, route)
			defer instruments.active.Add(r.Context(), -1, route)

			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			status := metric.WithAttributes(attribute.Int("http.status_code", wrapped.statusCode))
			instruments.duration.Record(r.Context(), time.Since(start).Seconds(), route, status)
			instruments.total.Add(r.Context(), 1, route, status)
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func normalizeEndpoint(path string) string {
	if path == "" || path == "/" {
		return "root"
	}

	path = genericTextRegex.ReplaceAllString(path, "/v1/generic-texts/_name")
	return uuidRegex.ReplaceAllString(path, "_id")
}
