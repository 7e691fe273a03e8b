// SPDX-License-Identifier: MIT

// Package partition: functional configuration for the Scheduler.
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper that clamps the worker count.

package partition

import (
	"math"
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the minimum width of an uncovered piece that is still queued.
	DefaultEpsilon = 1e-6

	// DefaultParallelStart seeds one task for the whole domain.
	DefaultParallelStart = false

	// DefaultShowProgress logs processed intervals at debug level only.
	DefaultShowProgress = false

	// DefaultWarmStart queues subintervals with the parent task's own basis
	// and tableau rather than the repaired pair.
	DefaultWarmStart = false
)

// ---------- Internal panic messages ----------

const (
	panicWorkersInvalid = "partition: WithWorkers: n must be positive"
	panicEpsilonInvalid = "partition: WithEpsilon: eps must be finite, non-negative"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective Scheduler configuration.
type Options struct {
	workers       int     // ≥ 1, ≤ runtime.NumCPU()
	parallelStart bool    // DefaultParallelStart
	eps           float64 // DefaultEpsilon
	logger        *zap.Logger
	progress      bool // DefaultShowProgress
	warmStart     bool // DefaultWarmStart
	registerer    prometheus.Registerer
	cpuCap        bool // clamp workers to runtime.NumCPU(); cleared only by tests
}

// WithWorkers requests n workers; the pool never exceeds runtime.NumCPU().
// Panics when n ≤ 0.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithParallelStart pre-splits the domain into workers−1 equal pieces.
// Ignored when only one worker runs.
func WithParallelStart(on bool) Option {
	return func(o *Options) { o.parallelStart = on }
}

// WithEpsilon sets the split threshold: an uncovered piece [a, b] is queued
// only when b − a > eps. Panics when eps is negative or not finite.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithLogger attaches a structured logger. nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithProgress logs every processed interval at info level.
func WithProgress(on bool) Option {
	return func(o *Options) { o.progress = on }
}

// WithWarmStart queues subintervals with the repaired basis and tableau of
// the parent task instead of the parent's input snapshot.
func WithWarmStart(on bool) Option {
	return func(o *Options) { o.warmStart = on }
}

// withoutCPUCap keeps the requested worker count on hosts with fewer CPUs.
func withoutCPUCap() Option {
	return func(o *Options) { o.cpuCap = false }
}

// WithMetrics registers the scheduler collectors on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *Options) { o.registerer = reg }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		workers:       runtime.NumCPU(),
		parallelStart: DefaultParallelStart,
		eps:           DefaultEpsilon,
		logger:        zap.NewNop(),
		progress:      DefaultShowProgress,
		warmStart:     DefaultWarmStart,
		cpuCap:        true,
	}
	for _, fn := range opts {
		fn(&o)
	}
	if cpus := runtime.NumCPU(); o.cpuCap && o.workers > cpus {
		o.workers = cpus
	}
	if o.workers <= 1 {
		o.workers = 1
		o.parallelStart = false
	}

	return o
}
