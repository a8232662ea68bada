// Package metrics holds the Prometheus collectors for splitledger.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the collectors registered on one registry.
type Metrics struct {
	registry *prometheus.Registry

	RPCRequests  *prometheus.CounterVec
	RPCDuration  *prometheus.HistogramVec
	Settlements  prometheus.Histogram
	Participants prometheus.Histogram
}

// New creates the collectors and registers them, together with the Go
// runtime and process collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RPCRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "splitledger",
			Name:      "rpc_requests_total",
			Help:      "RPC requests by procedure and result code.",
		}, []string{"procedure", "code"}),
		RPCDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "splitledger",
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency by procedure.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		Settlements: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "splitledger",
			Name:      "settlements_per_computation",
			Help:      "Number of payments produced by one settlement computation.",
			Buckets:   prometheus.LinearBuckets(0, 2, 10),
		}),
		Participants: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "splitledger",
			Name:      "balance_participants",
			Help:      "Number of people with a balance in one computation.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		}),
	}

	m.registry.MustRegister(
		m.RPCRequests,
		m.RPCDuration,
		m.Settlements,
		m.Participants,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveSettlement records the size of one balance/settlement computation.
// Safe to call on a nil *Metrics.
func (m *Metrics) ObserveSettlement(participants, settlements int) {
	if m == nil {
		return
	}
	m.Participants.Observe(float64(participants))
	m.Settlements.Observe(float64(settlements))
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
