// Package metrics exposes the hub's Prometheus instruments.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so several hubs can live in one process (tests).
type Metrics struct {
	registry    *prometheus.Registry
	events      *prometheus.CounterVec
	failures    *prometheus.CounterVec
	connections prometheus.Gauge
	ledger      *prometheus.GaugeVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		events: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "caps_hub_events_received_total",
			Help: "The total number of inbound events by name",
		}, []string{"event"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "caps_hub_events_failed_total",
			Help: "The total number of inbound events that were rejected or failed",
		}, []string{"event"}),
		connections: factory.NewGauge(prometheus.GaugeOpts{
			Name: "caps_hub_connections_active",
			Help: "The number of open hub connections",
		}),
		ledger: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "caps_hub_ledger_size",
			Help: "The ledger contents at the last stats run",
		}, []string{"kind"}),
	}
}

func (m *Metrics) EventReceived(event string) {
	m.events.WithLabelValues(event).Inc()
}

func (m *Metrics) EventFailed(event string) {
	m.failures.WithLabelValues(event).Inc()
}

func (m *Metrics) ConnectionOpened() {
	m.connections.Inc()
}

func (m *Metrics) ConnectionClosed() {
	m.connections.Dec()
}

// ObserveLedger records the ledger counters.
func (m *Metrics) ObserveLedger(vendors, pending, received int) {
	m.ledger.WithLabelValues("vendors").Set(float64(vendors))
	m.ledger.WithLabelValues("pending").Set(float64(pending))
	m.ledger.WithLabelValues("received").Set(float64(received))
}

// Registry returns the registry the instruments are registered with.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
