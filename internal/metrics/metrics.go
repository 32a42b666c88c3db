package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the collectors exported by quest.
type Metrics struct {
	StoreOperations *prometheus.CounterVec
	StoreDuration   *prometheus.HistogramVec
	NodeVisits      *prometheus.CounterVec
	Edits           *prometheus.CounterVec
}

// New registers the collectors on reg. Pass prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		StoreOperations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "quest_store_operations_total",
			Help: "Total number of adventure store calls, labelled by operation and status.",
		}, []string{"op", "status"}),

		StoreDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "quest_store_operation_duration_seconds",
			Help:    "Latency of adventure store calls in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),

		NodeVisits: f.NewCounterVec(prometheus.CounterOpts{
			Name: "quest_node_visits_total",
			Help: "Total number of nodes entered during playback, labelled by kind.",
		}, []string{"kind"}),

		Edits: f.NewCounterVec(prometheus.CounterOpts{
			Name: "quest_edits_total",
			Help: "Total number of editing commands applied, labelled by command.",
		}, []string{"command"}),
	}
}

// Nop returns collectors bound to a private registry, for callers that don't export metrics.
func Nop() *Metrics {
	return New(prometheus.NewRegistry())
}
