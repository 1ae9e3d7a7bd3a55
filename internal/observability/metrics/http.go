package metrics

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HTTPServerMetrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	comparisonsTotal   *prometheus.CounterVec
	comparisonDuration *prometheus.HistogramVec
	comparisonRisk     *prometheus.CounterVec
	clausesAligned     *prometheus.HistogramVec
	exportsTotal       *prometheus.CounterVec
	uploadsTotal       *prometheus.CounterVec
}

func NewHTTPServerMetrics(service string) *HTTPServerMetrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cta",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cta",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "cta",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	comparisonsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cta",
			Subsystem: "comparison",
			Name:      "runs_total",
			Help:      "Total comparison runs by status.",
		},
		[]string{"service", "status"},
	)
	comparisonDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cta",
			Subsystem: "comparison",
			Name:      "duration_seconds",
			Help:      "Comparison execution duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service"},
	)
	comparisonRisk := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cta",
			Subsystem: "comparison",
			Name:      "risk_level_total",
			Help:      "Completed comparisons by resulting risk level.",
		},
		[]string{"service", "risk_level"},
	)
	clausesAligned := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cta",
			Subsystem: "comparison",
			Name:      "clauses_aligned",
			Help:      "Distribution of aligned clause pairs per comparison.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13, 21, 34},
		},
		[]string{"service"},
	)
	exportsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cta",
			Subsystem: "report",
			Name:      "exports_total",
			Help:      "Total report exports by status.",
		},
		[]string{"service", "status"},
	)
	uploadsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cta",
			Subsystem: "document",
			Name:      "uploads_total",
			Help:      "Total document uploads by declared type.",
		},
		[]string{"service", "doc_type"},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		comparisonsTotal,
		comparisonDuration,
		comparisonRisk,
		clausesAligned,
		exportsTotal,
		uploadsTotal,
	)

	return &HTTPServerMetrics{
		registry:           registry,
		requestTotal:       requestTotal,
		requestDuration:    requestDuration,
		requestInFlight:    requestInFlight,
		comparisonsTotal:   comparisonsTotal,
		comparisonDuration: comparisonDuration,
		comparisonRisk:     comparisonRisk,
		clausesAligned:     clausesAligned,
		exportsTotal:       exportsTotal,
		uploadsTotal:       uploadsTotal,
	}
}

func (m *HTTPServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *HTTPServerMetrics) Middleware(service string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		path := normalizePath(r.URL.Path)
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		next.ServeHTTP(recorder, r)

		m.requestTotal.WithLabelValues(
			service,
			r.Method,
			path,
			strconv.Itoa(recorder.statusCode),
		).Inc()
		m.requestDuration.WithLabelValues(service, r.Method, path).Observe(time.Since(start).Seconds())
	})
}

func normalizePath(path string) string {
	switch {
	case strings.HasPrefix(path, "/api/v1/documents/"):
		return "/api/v1/documents/{document_id}"
	case strings.HasPrefix(path, "/api/v1/comparisons/") && strings.HasSuffix(path, "/export"):
		return "/api/v1/comparisons/{comparison_id}/export"
	case strings.HasPrefix(path, "/api/v1/comparisons/"):
		return "/api/v1/comparisons/{comparison_id}"
	default:
		return path
	}
}

func (m *HTTPServerMetrics) RecordComparison(service string, riskLevel string, alignments int, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.comparisonsTotal.WithLabelValues(service, status).Inc()
	if err != nil {
		return
	}
	m.comparisonDuration.WithLabelValues(service).Observe(duration.Seconds())
	m.clausesAligned.WithLabelValues(service).Observe(float64(alignments))
	if riskLevel == "" {
		riskLevel = "unknown"
	}
	m.comparisonRisk.WithLabelValues(service, riskLevel).Inc()
}

func (m *HTTPServerMetrics) RecordExport(service string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.exportsTotal.WithLabelValues(service, status).Inc()
}

func (m *HTTPServerMetrics) RecordUpload(service, docType string) {
	if docType == "" {
		docType = "unknown"
	}
	m.uploadsTotal.WithLabelValues(service, docType).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *statusRecorder) Flush() {
	flusher, ok := w.ResponseWriter.(http.Flusher)
	if ok {
		flusher.Flush()
	}
}

func (w *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not implement http.Hijacker")
	}
	return hijacker.Hijack()
}

func (w *statusRecorder) Push(target string, opts *http.PushOptions) error {
	pusher, ok := w.ResponseWriter.(http.Pusher)
	if !ok {
		return http.ErrNotSupported
	}
	return pusher.Push(target, opts)
}
