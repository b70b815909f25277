package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	minerBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "miner",
		Name:      "blocks_total",
		Help:      "Count of blocks mined and admitted.",
	}, []string{"node"})

	minerBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "miner",
		Name:      "block_duration_seconds",
		Help:      "Time from candidate assembly to admission.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"node"})

	minerAttempts = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "miner",
		Name:      "attempts_per_block",
		Help:      "Nonce attempts submitted per admitted block.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 16),
	}, []string{"node"})

	minerStaleTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "miner",
		Name:      "stale_candidates_total",
		Help:      "Count of candidates rebuilt because the tail moved.",
	}, []string{"node"})
)

// Miner tracks metrics for the mining loop.
type Miner struct {
	node string
}

// NewMiner constructs a Miner metrics collector.
func NewMiner(node string) *Miner {
	return &Miner{node: nodeLabel(node)}
}

// ObserveBlock records an admitted block and the attempts it took.
func (m Miner) ObserveBlock(attempts uint64, started time.Time) {
	minerBlocksTotal.WithLabelValues(m.node).Inc()
	minerBlockDuration.WithLabelValues(m.node).Observe(time.Since(started).Seconds())
	minerAttempts.WithLabelValues(m.node).Observe(float64(attempts))
}

// ObserveStale records a candidate invalidated by a moved tail.
func (m Miner) ObserveStale() {
	minerStaleTotal.WithLabelValues(m.node).Inc()
}
