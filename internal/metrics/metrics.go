// Package metrics counts dispatch and typed invocation outcomes on a private
// Prometheus registry. The console reads them back through Snapshot.
package metrics

import (
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "gameshell"

// Metrics holds the console's counters.
type Metrics struct {
	registry *prometheus.Registry

	dispatchTotal *prometheus.CounterVec
	typedTotal    *prometheus.CounterVec
}

// Sample is one labelled counter value.
type Sample struct {
	Name    string
	Outcome string
	Value   float64
}

// New creates the counters and registers them on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		dispatchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "console",
			Name:      "dispatch_total",
			Help:      "Dispatched console lines by outcome",
		}, []string{"outcome"}),
		typedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "typed",
			Name:      "invocations_total",
			Help:      "Typed command invocations by outcome",
		}, []string{"outcome"}),
	}
	m.registry.MustRegister(m.dispatchTotal, m.typedTotal)
	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveDispatch counts one dispatch outcome.
func (m *Metrics) ObserveDispatch(outcome string) {
	if m == nil {
		return
	}
	m.dispatchTotal.WithLabelValues(outcome).Inc()
}

// ObserveTyped counts one typed invocation outcome.
func (m *Metrics) ObserveTyped(outcome string) {
	if m == nil {
		return
	}
	m.typedTotal.WithLabelValues(outcome).Inc()
}

// DispatchCounter returns the dispatch counter for outcome.
func (m *Metrics) DispatchCounter(outcome string) prometheus.Counter {
	return m.dispatchTotal.WithLabelValues(outcome)
}

// TypedCounter returns the typed invocation counter for outcome.
func (m *Metrics) TypedCounter(outcome string) prometheus.Counter {
	return m.typedTotal.WithLabelValues(outcome)
}

// Snapshot gathers every counter, sorted by name then outcome.
func (m *Metrics) Snapshot() ([]Sample, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, err
	}

	var samples []Sample
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			samples = append(samples, Sample{
				Name:    family.GetName(),
				Outcome: labelValue(metric, "outcome"),
				Value:   metric.GetCounter().GetValue(),
			})
		}
	}

	sort.Slice(samples, func(i, j int) bool {
		if samples[i].Name != samples[j].Name {
			return samples[i].Name < samples[j].Name
		}
		return samples[i].Outcome < samples[j].Outcome
	})
	return samples, nil
}

func labelValue(metric *dto.Metric, name string) string {
	for _, pair := range metric.GetLabel() {
		if pair.GetName() == name {
			return pair.GetValue()
		}
	}
	return ""
}
