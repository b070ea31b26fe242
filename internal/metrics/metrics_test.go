package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveDispatch(t *testing.T) {
	m := New()

	m.ObserveDispatch("handled")
	m.ObserveDispatch("handled")
	m.ObserveDispatch("unknown")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.DispatchCounter("handled")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DispatchCounter("unknown")))
}

func TestMetrics_ObserveTyped(t *testing.T) {
	m := New()

	m.ObserveTyped("parse_failure")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.TypedCounter("parse_failure")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.Registry(), "gameshell_typed_invocations_total"))
}

func TestMetrics_Snapshot(t *testing.T) {
	m := New()
	m.ObserveTyped("handled")
	m.ObserveDispatch("unknown")
	m.ObserveDispatch("failed")

	samples, err := m.Snapshot()
	require.NoError(t, err)
	require.Len(t, samples, 3)

	assert.Equal(t, Sample{Name: "gameshell_console_dispatch_total", Outcome: "failed", Value: 1}, samples[0])
	assert.Equal(t, Sample{Name: "gameshell_console_dispatch_total", Outcome: "unknown", Value: 1}, samples[1])
	assert.Equal(t, Sample{Name: "gameshell_typed_invocations_total", Outcome: "handled", Value: 1}, samples[2])
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveDispatch("handled")
		m.ObserveTyped("handled")
	})
}
