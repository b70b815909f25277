package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	validatorAdmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "validator",
		Name:      "admissions_total",
		Help:      "Count of admission attempts by outcome.",
	}, []string{"node", "outcome"})

	validatorAdmissionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "validator",
		Name:      "admission_duration_seconds",
		Help:      "Time spent in the admission critical section, including lock wait.",
		Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1},
	}, []string{"node", "outcome"})

	validatorChainHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "validator",
		Name:      "chain_height",
		Help:      "Index of the last admitted block.",
	}, []string{"node"})
)

// Validator tracks metrics for the admission gate.
type Validator struct {
	node string
}

// NewValidator constructs a Validator metrics collector.
func NewValidator(node string) *Validator {
	return &Validator{node: nodeLabel(node)}
}

// ObserveAdmission records an admission attempt outcome and duration.
func (m Validator) ObserveAdmission(outcome string, started time.Time) {
	validatorAdmissionsTotal.WithLabelValues(m.node, outcome).Inc()
	validatorAdmissionDuration.WithLabelValues(m.node, outcome).Observe(time.Since(started).Seconds())
	if outcome == "success" {
		validatorChainHeight.WithLabelValues(m.node).Inc()
	}
}
