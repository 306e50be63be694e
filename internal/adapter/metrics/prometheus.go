package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"unipact/internal/core/domain"
)

const namespace = "unipact"

// Prometheus implements port.Metrics with Prometheus counters.
type Prometheus struct {
	transitions  *prometheus.CounterVec
	gateDenied   prometheus.Counter
	reportFailed prometheus.Counter
	ranks        *prometheus.CounterVec
}

// NewPrometheus creates the collectors and registers them with reg.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	m := &Prometheus{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "campaign_transitions_total",
			Help:      "Campaign workflow transitions by name.",
		}, []string{"transition"}),
		gateDenied: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "award_gate_denied_total",
			Help:      "Awards refused because no finder's fee was paid.",
		}),
		reportFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_failures_total",
			Help:      "Completed campaigns whose report could not be produced.",
		}),
		ranks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rank_computations_total",
			Help:      "Club rank recomputations by resulting rank.",
		}, []string{"rank"}),
	}
	reg.MustRegister(m.transitions, m.gateDenied, m.reportFailed, m.ranks)
	return m
}

func (m *Prometheus) Transition(name string) { m.transitions.WithLabelValues(name).Inc() }

func (m *Prometheus) GateDenied() { m.gateDenied.Inc() }

func (m *Prometheus) ReportFailed() { m.reportFailed.Inc() }

func (m *Prometheus) RankComputed(rank domain.Rank) { m.ranks.WithLabelValues(string(rank)).Inc() }
