// Package metrics records calculator and share activity on a private Prometheus registry.
package metrics

import (
	"fmt"
	"net/http"

	"github.com/mark3labs/yavoy/internal/delay"
	"github.com/mark3labs/yavoy/internal/wizard"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultNamespace = "yavoy"

// Manager owns all yavoy metrics.
type Manager struct {
	namespace string
	registry  *prometheus.Registry

	calculations     *prometheus.CounterVec
	delayMinutes     prometheus.Histogram
	shares           *prometheus.CounterVec
	transitionErrors *prometheus.CounterVec
	discrepancies    prometheus.Counter
}

// Option configures a Manager.
type Option func(*Manager)

// WithNamespace overrides the metric namespace.
func WithNamespace(ns string) Option {
	return func(m *Manager) {
		if ns != "" {
			m.namespace = ns
		}
	}
}

// WithRegistry registers metrics on r instead of a fresh registry.
func WithRegistry(r *prometheus.Registry) Option {
	return func(m *Manager) {
		if r != nil {
			m.registry = r
		}
	}
}

// NewManager creates a manager with its own registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: defaultNamespace,
		registry:  prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.calculations = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "calculations_total",
		Help:      "Total number of delay calculations by event category and family",
	}, []string{"event", "family"})

	m.delayMinutes = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "delay_minutes",
		Help:      "Distribution of computed delays in minutes",
		Buckets:   []float64{0, 10, 20, 30, 45, 60, 90, 120, 180},
	})

	m.shares = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "shares_total",
		Help:      "Total number of share attempts by target and outcome",
	}, []string{"target", "status"})

	m.transitionErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "transition_errors_total",
		Help:      "Rejected wizard transitions by operation",
	}, []string{"op"})

	m.discrepancies = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "breakdown_discrepancies_total",
		Help:      "Results whose displayed breakdown does not add up to the computed delay",
	})
}

// RecordCalculation counts a computed result.
// All recording methods are no-ops on a nil Manager.
func (m *Manager) RecordCalculation(family delay.Family, in *delay.Input, res delay.Result) {
	if m == nil {
		return
	}
	m.calculations.WithLabelValues(in.Category().String(), family.String()).Inc()
	m.delayMinutes.Observe(float64(res.DelayMinutes))
	if res.Breakdown.Discrepancy() {
		m.discrepancies.Inc()
	}
}

// RecordShare counts a share attempt. err == nil counts as success.
func (m *Manager) RecordShare(target string, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.shares.WithLabelValues(target, status).Inc()
}

// TransitionRejected implements wizard.Observer.
func (m *Manager) TransitionRejected(op string, _ wizard.Step) {
	if m == nil {
		return
	}
	m.transitionErrors.WithLabelValues(op).Inc()
}

// Finalized implements wizard.Observer.
func (m *Manager) Finalized(family delay.Family, in *delay.Input, res delay.Result) {
	m.RecordCalculation(family, in, res)
}

// Registry exposes the underlying registry (for tests and custom handlers).
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes the registry to path in the text exposition format, for
// pickup by a node_exporter textfile collector. Nil managers write nothing.
func (m *Manager) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

var _ wizard.Observer = (*Manager)(nil)
