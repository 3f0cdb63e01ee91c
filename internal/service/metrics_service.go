package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the API and the records engine.
type MetricsService struct {
	registry          *prometheus.Registry
	handler           http.Handler
	requestDuration   *prometheus.HistogramVec
	requestTotal      *prometheus.CounterVec
	operationTotal    *prometheus.CounterVec
	scheduleConflicts prometheus.Counter
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	operationTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "records_operations_total",
		Help: "Records operations by outcome",
	}, []string{"operation", "outcome"})

	scheduleConflicts := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "records_schedule_conflicts_total",
		Help: "Sections placed into an already occupied schedule cell",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, operationTotal, scheduleConflicts, goroutines)

	return &MetricsService{
		registry:          registry,
		handler:           promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration:   requestDuration,
		requestTotal:      requestTotal,
		operationTotal:    operationTotal,
		scheduleConflicts: scheduleConflicts,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// RecordOperation counts one records operation; outcome is "success" or a failure code.
func (m *MetricsService) RecordOperation(operation, outcome string) {
	if m == nil {
		return
	}
	m.operationTotal.WithLabelValues(operation, outcome).Inc()
}

// RecordScheduleConflict counts a placement into an occupied cell.
func (m *MetricsService) RecordScheduleConflict() {
	if m == nil {
		return
	}
	m.scheduleConflicts.Inc()
}

// Gatherer exposes the registry, mainly for tests.
func (m *MetricsService) Gatherer() prometheus.Gatherer {
	return m.registry
}
