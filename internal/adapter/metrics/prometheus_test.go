package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"unipact/internal/core/domain"
)

func TestPrometheusCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheus(reg)

	m.Transition("award")
	m.Transition("award")
	m.Transition("complete")
	m.GateDenied()
	m.RankComputed(domain.RankS)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.transitions.WithLabelValues("award")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transitions.WithLabelValues("complete")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.gateDenied))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.reportFailed))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ranks.WithLabelValues("S")))

	count, err := testutil.GatherAndCount(reg)
	assert.NoError(t, err)
	assert.Equal(t, 5, count)
}
