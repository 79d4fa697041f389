package telemetry

import "github.com/prometheus/client_golang/prometheus"

// Metrics collects the counters and gauges emitted by the chain and network
// packages. A Network built with a Metrics instance owns it (a Network built
// with nil records no metrics); each instance is registered against its own
// registry so multiple simulation runs in the same process (e.g. in tests)
// never collide on metric names.
type Metrics struct {
	Registry *prometheus.Registry

	BlocksMined     prometheus.Counter
	BlocksDiscarded prometheus.Counter
	BlocksRejected  prometheus.Counter
	TamperAttempts  prometheus.Counter
	ConsensusChecks prometheus.Counter
	Synchronizes    prometheus.Counter
	ActiveNodes     prometheus.Gauge
}

// NewMetrics builds a fresh, independently registered Metrics instance.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		Registry: registry,
		BlocksMined: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ledgersim_blocks_mined_total",
			Help: "Blocks successfully mined and spliced onto a chain tip.",
		}),
		BlocksDiscarded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ledgersim_blocks_discarded_total",
			Help: "Mined blocks discarded because a peer's block won the commit race.",
		}),
		BlocksRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ledgersim_blocks_rejected_total",
			Help: "Broadcast blocks rejected by a receiving peer.",
		}),
		TamperAttempts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ledgersim_tamper_attempts_total",
			Help: "Tamper attempts carried out by malicious nodes.",
		}),
		ConsensusChecks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ledgersim_consensus_checks_total",
			Help: "Consensus queries evaluated across the network.",
		}),
		Synchronizes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ledgersim_synchronizes_total",
			Help: "Longest-chain synchronizations performed on node reactivation.",
		}),
		ActiveNodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ledgersim_active_nodes",
			Help: "Number of nodes currently marked active in the network.",
		}),
	}

	registry.MustRegister(
		m.BlocksMined,
		m.BlocksDiscarded,
		m.BlocksRejected,
		m.TamperAttempts,
		m.ConsensusChecks,
		m.Synchronizes,
		m.ActiveNodes,
	)
	return m
}
