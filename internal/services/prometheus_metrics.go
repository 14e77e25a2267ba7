package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	exportsTotal    *prometheus.CounterVec
	exportDuration  prometheus.Histogram
	exportRows      *prometheus.HistogramVec
	scopeEmptyTotal *prometheus.CounterVec
	authEventsTotal *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return newPrometheusMetrics(prometheus.DefaultRegisterer)
}

// NewPrometheusMetricsWith registers the collectors on reg
func NewPrometheusMetricsWith(reg prometheus.Registerer) MetricsRecorderInterface {
	return newPrometheusMetrics(reg)
}

func newPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		exportsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fleet_exports_total",
				Help: "Total number of spreadsheet exports by entity and outcome",
			},
			[]string{"entity", "status"},
		),
		exportDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "fleet_export_duration_milliseconds",
				Help:    "Export generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		exportRows: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fleet_export_rows",
				Help:    "Number of data rows written per export",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
			[]string{"entity"},
		),
		scopeEmptyTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fleet_scope_empty_total",
				Help: "Requests whose account scope resolved to nothing",
			},
			[]string{"operation"},
		),
		authEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fleet_authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	entity := tags["entity"]

	switch name {
	case "export_generated":
		m.exportsTotal.WithLabelValues(entity, "success").Inc()
	case "export_failed":
		m.exportsTotal.WithLabelValues(entity, "failed_"+tags["reason"]).Inc()
	case "scope_empty":
		m.scopeEmptyTotal.WithLabelValues(tags["operation"]).Inc()
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "export_duration":
		m.exportDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "export_rows":
		m.exportRows.WithLabelValues(tags["entity"]).Observe(value)
	}
}
