package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the conversion API.
type Metrics struct {
	conversionsTotal   *prometheus.CounterVec   // by family, scheme, status
	conversionDuration *prometheus.HistogramVec // engine time by family
	requestErrors      *prometheus.CounterVec   // by kind

	wsConnectionsTotal  prometheus.Counter
	wsActiveConnections prometheus.Gauge
	wsMessagesTotal     *prometheus.CounterVec // by direction
}

// NewMetrics creates and registers all collectors on the default registry.
func NewMetrics() *Metrics {
	return &Metrics{
		conversionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "signalscope_conversions_total",
				Help: "Total conversion requests by family, scheme, and status",
			},
			[]string{"family", "scheme", "status"},
		),
		conversionDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "signalscope_conversion_duration_seconds",
				Help:    "Engine computation time per conversion by family",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
			},
			[]string{"family"},
		),
		requestErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "signalscope_request_errors_total",
				Help: "Total failed requests by error kind",
			},
			[]string{"kind"},
		),
		wsConnectionsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "signalscope_websocket_connections_total",
				Help: "Total WebSocket connections established",
			},
		),
		wsActiveConnections: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "signalscope_websocket_active_connections",
				Help: "Currently active WebSocket connections",
			},
		),
		wsMessagesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "signalscope_websocket_messages_total",
				Help: "Total WebSocket messages by direction (received, sent)",
			},
			[]string{"direction"},
		),
	}
}

// RecordConversion records one completed conversion attempt.
func (m *Metrics) RecordConversion(family, scheme, status string, engineMs float64) {
	if m == nil {
		return
	}
	m.conversionsTotal.WithLabelValues(family, scheme, status).Inc()
	if status == "ok" {
		m.conversionDuration.WithLabelValues(family).Observe(engineMs / 1000)
	}
}

// RecordError records a failed request by taxonomy kind.
func (m *Metrics) RecordError(kind string) {
	if m == nil {
		return
	}
	m.requestErrors.WithLabelValues(kind).Inc()
}

func (m *Metrics) RecordWSConnect() {
	if m == nil {
		return
	}
	m.wsConnectionsTotal.Inc()
	m.wsActiveConnections.Inc()
}

func (m *Metrics) RecordWSDisconnect() {
	if m == nil {
		return
	}
	m.wsActiveConnections.Dec()
}

func (m *Metrics) RecordWSMessage(direction string) {
	if m == nil {
		return
	}
	m.wsMessagesTotal.WithLabelValues(direction).Inc()
}
