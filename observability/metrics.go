package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the client
type Metrics struct {
	// Backend API metrics
	APIRequestsTotal   *prometheus.CounterVec
	APIRequestDuration *prometheus.HistogramVec
	APIErrorsTotal     *prometheus.CounterVec

	// Session metrics
	SessionEventsTotal *prometheus.CounterVec

	// Prediction metrics
	PredictionsTotal     *prometheus.CounterVec
	PredictionConfidence *prometheus.HistogramVec
}

// defaultBuckets are the default histogram buckets for duration metrics (in seconds)
var defaultBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30}

// confidenceBuckets are histogram buckets for confidence metrics (0 to 100)
var confidenceBuckets = []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}

// globalMetrics is the global metrics instance
var globalMetrics *Metrics

// NewMetrics creates and registers all Prometheus metrics
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	factory := promauto.With(reg)

	m := &Metrics{
		APIRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "stockai",
				Subsystem: "api",
				Name:      "requests_total",
				Help:      "Total number of backend API requests",
			},
			[]string{"operation"},
		),
		APIRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "stockai",
				Subsystem: "api",
				Name:      "request_duration_seconds",
				Help:      "Duration of backend API requests in seconds",
				Buckets:   defaultBuckets,
			},
			[]string{"operation", "status"},
		),
		APIErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "stockai",
				Subsystem: "api",
				Name:      "errors_total",
				Help:      "Total number of backend API errors",
			},
			[]string{"operation", "error_type"},
		),
		SessionEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "stockai",
				Subsystem: "session",
				Name:      "events_total",
				Help:      "Total number of session lifecycle events",
			},
			[]string{"event"},
		),
		PredictionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "stockai",
				Subsystem: "prediction",
				Name:      "requests_total",
				Help:      "Total number of prediction requests by model type",
			},
			[]string{"model_type"},
		),
		PredictionConfidence: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "stockai",
				Subsystem: "prediction",
				Name:      "confidence",
				Help:      "Distribution of prediction confidence levels",
				Buckets:   confidenceBuckets,
			},
			[]string{"model_type"},
		),
	}

	return m
}

// InitMetrics initializes the global metrics instance
func InitMetrics() *Metrics {
	if globalMetrics == nil {
		globalMetrics = NewMetrics(nil)
	}
	return globalMetrics
}

// GetMetrics returns the global metrics instance, initializing it if needed
func GetMetrics() *Metrics {
	if globalMetrics == nil {
		return InitMetrics()
	}
	return globalMetrics
}

// RecordAPIRequest records a completed backend API request
func (m *Metrics) RecordAPIRequest(operation, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.APIRequestsTotal.WithLabelValues(operation).Inc()
	m.APIRequestDuration.WithLabelValues(operation, status).Observe(duration.Seconds())
}

// RecordAPIError records a backend API error by type
func (m *Metrics) RecordAPIError(operation, errorType string) {
	if m == nil {
		return
	}
	m.APIErrorsTotal.WithLabelValues(operation, errorType).Inc()
}

// RecordSessionEvent records a session lifecycle event (login, logout, expired)
func (m *Metrics) RecordSessionEvent(event string) {
	if m == nil {
		return
	}
	m.SessionEventsTotal.WithLabelValues(event).Inc()
}

// RecordPrediction records a prediction request and its confidence
func (m *Metrics) RecordPrediction(modelType string, confidence float64) {
	if m == nil {
		return
	}
	m.PredictionsTotal.WithLabelValues(modelType).Inc()
	m.PredictionConfidence.WithLabelValues(modelType).Observe(confidence)
}
