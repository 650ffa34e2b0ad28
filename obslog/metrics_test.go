package obslog_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/trueform/compiler/obslog"
)

func TestMetricsRecordsCacheOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := obslog.NewMetrics(reg)
	m.ObserveCache("part_build", true)
	m.ObserveCache("part_build", false)
	m.ObserveBuildDuration("full", 0.01)
	m.SetSessionsActive(3)

	families, err := reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *obslog.Metrics
	require.NotPanics(t, func() {
		m.ObserveCache("mesh", true)
		m.ObserveBuildDuration("partial", 1)
		m.SetSessionsActive(0)
	})
}
