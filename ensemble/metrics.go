// File: metrics.go
// Role: Prometheus instruments for ensemble runs.

package ensemble

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/recom/chain"
)

// Metrics holds the run instruments.
type Metrics struct {
	steps      prometheus.Counter
	accepted   prometheus.Counter
	rejections *prometheus.CounterVec
	failures   prometheus.Counter
	distinct   prometheus.Gauge
}

// NewMetrics creates the instruments and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "recom_steps_total",
			Help: "Partitions emitted by all chains.",
		}),
		accepted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "recom_accepted_total",
			Help: "Candidates that became the chain state.",
		}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "recom_rejections_total",
			Help: "Candidates rejected, by reason.",
		}, []string{"reason"}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "recom_proposal_failures_total",
			Help: "Retryable proposal failures.",
		}),
		distinct: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "recom_distinct_plans",
			Help: "Distinct plans seen (Bloom estimate).",
		}),
	}
	for _, c := range []prometheus.Collector{m.steps, m.accepted, m.rejections, m.failures, m.distinct} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// observe adds the difference between two Stats snapshots of one chain.
func (m *Metrics) observe(prev, cur chain.Stats) {
	m.steps.Add(float64(cur.Emitted - prev.Emitted))
	m.accepted.Add(float64(cur.Accepted - prev.Accepted))
	m.rejections.WithLabelValues("constraint").Add(float64(cur.RejectedByConstraint - prev.RejectedByConstraint))
	m.rejections.WithLabelValues("rule").Add(float64(cur.RejectedByRule - prev.RejectedByRule))
	m.failures.Add(float64(cur.ProposalFailures - prev.ProposalFailures))
}

func (m *Metrics) setDistinct(n int) {
	m.distinct.Set(float64(n))
}
