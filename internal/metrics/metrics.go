// Package metrics exposes Prometheus collectors for signup submissions.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/signup"
	"github.com/goliatone/go-signupform/pkg/state"
)

const namespace = "signupform"

const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
)

// Metrics groups the collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	submissions  *prometheus.CounterVec
	ruleFailures *prometheus.CounterVec
	inFlight     prometheus.Gauge
	resets       prometheus.Counter
	sessions     prometheus.Gauge
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Form submissions by outcome.",
		}, []string{"outcome"}),
		ruleFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rule_failures_total",
			Help:      "Validation rule failures by rule.",
		}, []string{"rule"}),
		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "submissions_in_flight",
			Help:      "Submissions currently pending validation.",
		}),
		resets: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resets_total",
			Help:      "Form resets.",
		}),
		sessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions",
			Help:      "Form instances currently held by the server.",
		}),
	}
}

// ObserveResult counts one finished submission and each failing rule.
func (m *Metrics) ObserveResult(result model.Result) {
	if m == nil {
		return
	}
	if result.OK() {
		m.submissions.WithLabelValues(OutcomeAccepted).Inc()
		return
	}
	m.submissions.WithLabelValues(OutcomeRejected).Inc()
	for _, message := range result.Errors {
		name := "unknown"
		if rule, ok := signup.RuleForMessage(message); ok {
			name = rule.Name
		}
		m.ruleFailures.WithLabelValues(name).Inc()
	}
}

// Observer returns a state.Observer tracking in-flight submissions, resets
// and finished results of a container.
func (m *Metrics) Observer() state.Observer {
	return func(t state.Transition) {
		if m == nil {
			return
		}
		switch {
		case t.To == state.StatePending:
			m.inFlight.Inc()
		case t.From == state.StatePending:
			m.inFlight.Dec()
			m.ObserveResult(t.Snapshot.Result)
		case t.From == state.StateIdle && t.To == state.StateIdle:
			m.resets.Inc()
		}
	}
}

// SetSessions records the number of live form instances.
func (m *Metrics) SetSessions(n int) {
	if m == nil {
		return
	}
	m.sessions.Set(float64(n))
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
