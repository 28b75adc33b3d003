package httpserver

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"regexp"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const _meterName = "dms-server"

var (
	uuidRegex           = regexp.MustCompile(`[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)
	numericSegmentRegex = regexp.MustCompile(`/[0-9]+(/|$)`)
)

type httpMetrics struct {
	duration metric.Float64Histogram
	total    metric.Int64Counter
	active   metric.Int64UpDownCounter
}

var (
	metricsMutex sync.Mutex
	instruments  *httpMetrics
)

// ResetMetricsForTesting drops the instruments so the next middleware picks up
// the current meter provider.
func ResetMetricsForTesting() {
	metricsMutex.Lock()
	defer metricsMutex.Unlock()
	instruments = nil
}

func IsMetricsInitialized() bool {
	metricsMutex.Lock()
	defer metricsMutex.Unlock()
	return instruments != nil
}

func loadMetrics() *httpMetrics {
	metricsMutex.Lock()
	defer metricsMutex.Unlock()

	if instruments != nil {
		return instruments
	}

	meter := otel.GetMeterProvider().Meter(_meterName)
	m := &httpMetrics{}

	var err error
	m.duration, err = meter.Float64Histogram(
		"dms_server.http.request.duration.seconds",
		metric.WithDescription("Duration of HTTP requests"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10),
	)
	if err != nil {
		panic(err)
	}

	m.total, err = meter.Int64Counter(
		"dms_server.http.requests.total",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		panic(err)
	}

	m.active, err = meter.Int64UpDownCounter(
		"dms_server.http.requests.active",
		metric.WithDescription("Number of HTTP requests currently being processed"),
	)
	if err != nil {
		panic(err)
	}

	instruments = m
	return m
}

// MetricsMiddleware records latency and outcome per normalized endpoint. Form
// and record identifiers are folded into "_id" to keep cardinality bounded.
func MetricsMiddleware() func(http.Handler) http.Handler {
	m := loadMetrics()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			route := metric.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.endpoint", normalizeEndpoint(r.URL.Path)),
			)

			m.active.Add(r.Context(), 1, route)
			defer m.active.Add(r.Context(), -1, route)

			wrappedWriter := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrappedWriter, r)

			outcome := metric.WithAttributes(
				attribute.Int("http.status_code", wrappedWriter.statusCode),
				attribute.String("http.status_class", fmt.Sprintf("%dxx", wrappedWriter.statusCode/100)),
			)
			m.duration.Record(r.Context(), time.Since(start).Seconds(), route, outcome)
			m.total.Add(r.Context(), 1, route, outcome)
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

func (rw *responseWriter) Write(b []byte) (int, error) {
	return rw.ResponseWriter.Write(b)
}

func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := rw.ResponseWriter.(http.Hijacker); ok {
		return hijacker.Hijack()
	}
	return nil, nil, fmt.Errorf("underlying ResponseWriter does not support hijacking")
}

func normalizeEndpoint(path string) string {
	if path == "" || path == "/" {
		return "root"
	}

	normalized := uuidRegex.ReplaceAllString(path, "_id")
	return numericSegmentRegex.ReplaceAllString(normalized, "/_id$1")
}
