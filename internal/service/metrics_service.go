package service

import (
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the planner.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	scheduleSize    prometheus.Gauge
	catalogSize     prometheus.Gauge
}

// NewMetricsService registers the planner's Prometheus collectors.
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

	scheduleSize := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "schedule_activities_total",
		Help: "Number of activities currently in the schedule",
	})

	catalogSize := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_courses_total",
		Help: "Number of courses loaded into the catalog",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, scheduleSize, catalogSize, goroutines)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		scheduleSize:    scheduleSize,
		catalogSize:     catalogSize,
	}
}

// ObserveHTTPRequest records latency and volume for one request.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	labels := prometheus.Labels{
		"method": method,
		"path":   path,
		"status": strconv.Itoa(status),
	}
	m.requestDuration.With(labels).Observe(duration.Seconds())
	m.requestTotal.With(labels).Inc()
}

// SetScheduleSize publishes the current schedule size.
func (m *MetricsService) SetScheduleSize(n int) {
	m.scheduleSize.Set(float64(n))
}

// SetCatalogSize publishes the loaded catalog size.
func (m *MetricsService) SetCatalogSize(n int) {
	m.catalogSize.Set(float64(n))
}

// Handler exposes the Prometheus scrape endpoint.
func (m *MetricsService) Handler() http.Handler {
	return m.handler
}
