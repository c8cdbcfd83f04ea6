package ws

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the gateway's prometheus collectors on a dedicated
// registry so tests and multiple server instances never collide on the
// default global one.
type Metrics struct {
	registry    *prometheus.Registry
	connections prometheus.Gauge
	broadcasts  prometheus.Counter
	dropped     prometheus.Counter
}

// NewMetrics creates a metrics set backed by a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	connections := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ws_active_connections",
		Help: "Number of currently connected websocket clients",
	})

	broadcasts := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ws_broadcast_messages_total",
		Help: "Total number of messages fanned out to room subscribers",
	})

	dropped := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ws_dropped_messages_total",
		Help: "Total number of messages dropped because a client buffer was full",
	})

	registry.MustRegister(connections, broadcasts, dropped)

	return &Metrics{
		registry:    registry,
		connections: connections,
		broadcasts:  broadcasts,
		dropped:     dropped,
	}
}

// Registry exposes the registry for the /metrics endpoint.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
