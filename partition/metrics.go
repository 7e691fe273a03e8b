// SPDX-License-Identifier: MIT

package partition

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "uplcp"
	metricsSubsystem = "partition"

	kindRegion     = "region"
	kindDegenerate = "degenerate"
)

// metrics holds the scheduler collectors. A nil *metrics records nothing.
type metrics struct {
	created    prometheus.Counter
	finished   prometheus.Counter
	regions    *prometheus.CounterVec // label kind: region | degenerate
	queueDepth prometheus.Gauge
}

// newMetrics registers the collectors on reg, reusing collectors a previous
// Scheduler already registered there. nil reg disables metrics.
func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	if reg == nil {
		return nil, nil
	}
	m := &metrics{
		created: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "tasks_created_total",
			Help:      "Tasks queued, seeds included.",
		}),
		finished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "tasks_finished_total",
			Help:      "Tasks fully processed.",
		}),
		regions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "regions_total",
			Help:      "Regions emitted, by kind.",
		}, []string{"kind"}),
		queueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "queue_depth",
			Help:      "Tasks waiting in the queue.",
		}),
	}

	var err error
	if m.created, err = register(reg, m.created); err != nil {
		return nil, err
	}
	if m.finished, err = register(reg, m.finished); err != nil {
		return nil, err
	}
	if m.regions, err = register(reg, m.regions); err != nil {
		return nil, err
	}
	if m.queueDepth, err = register(reg, m.queueDepth); err != nil {
		return nil, err
	}

	return m, nil
}

// register adds c to reg or returns the collector already registered under its descriptor.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing, nil
			}
		}

		return c, err
	}

	return c, nil
}

func (m *metrics) taskCreated() {
	if m != nil {
		m.created.Inc()
	}
}

func (m *metrics) taskFinished() {
	if m != nil {
		m.finished.Inc()
	}
}

func (m *metrics) regionEmitted(degenerate bool) {
	if m == nil {
		return
	}
	if degenerate {
		m.regions.WithLabelValues(kindDegenerate).Inc()
		return
	}
	m.regions.WithLabelValues(kindRegion).Inc()
}

func (m *metrics) depth(n int) {
	if m != nil {
		m.queueDepth.Set(float64(n))
	}
}
