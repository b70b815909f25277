package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	nodePeers = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "node",
		Name:      "peers",
		Help:      "Number of registered peer connections.",
	}, []string{"node"})

	nodeInboundTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "node",
		Name:      "inbound_blocks_total",
		Help:      "Count of blocks received from peers by admission outcome.",
	}, []string{"node", "outcome"})

	nodeBroadcastTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "node",
		Name:      "broadcasts_total",
		Help:      "Count of block broadcast runs.",
	}, []string{"node", "status"})

	nodeBroadcastDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "node",
		Name:      "broadcast_duration_seconds",
		Help:      "Duration of writing one block to all peers.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"node", "status"})

	nodeBroadcastPeers = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "node",
		Name:      "broadcast_peers",
		Help:      "Number of peers addressed per broadcast run.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
	}, []string{"node"})

	nodePeerWriteFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "node",
		Name:      "peer_write_failures_total",
		Help:      "Count of failed block writes to peers.",
	}, []string{"node"})
)

// Node tracks metrics for the peer network.
type Node struct {
	node string
}

// NewNode constructs a Node metrics collector.
func NewNode(node string) *Node {
	return &Node{node: nodeLabel(node)}
}

// SetPeers records the current number of registered peers.
func (m Node) SetPeers(n int) {
	nodePeers.WithLabelValues(m.node).Set(float64(n))
}

// ObserveInbound records the admission outcome of a peer-supplied block.
func (m Node) ObserveInbound(outcome string) {
	nodeInboundTotal.WithLabelValues(m.node, outcome).Inc()
}

// ObserveBroadcast records one broadcast run over peers.
func (m Node) ObserveBroadcast(peers, failures int, started time.Time) {
	status := "success"
	if failures > 0 {
		status = "partial"
	}
	nodeBroadcastTotal.WithLabelValues(m.node, status).Inc()
	nodeBroadcastDuration.WithLabelValues(m.node, status).Observe(time.Since(started).Seconds())
	nodeBroadcastPeers.WithLabelValues(m.node).Observe(float64(peers))
	if failures > 0 {
		nodePeerWriteFailuresTotal.WithLabelValues(m.node).Add(float64(failures))
	}
}
