// SPDX-License-Identifier: MIT

package partition

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/uplcp/ratfunc"
	"github.com/katalvlaran/uplcp/realroot"
	"github.com/katalvlaran/uplcp/region"
	"github.com/katalvlaran/uplcp/tableau"
)

// Scheduler partitions a parameter domain into invariancy regions.
// A Scheduler may run several times; runs share no state besides metrics.
type Scheduler struct {
	repairer Repairer
	space    region.ParamSpace
	opts     Options
	metrics  *metrics
}

// New builds a Scheduler over the parameter-space restrictions space.
//
// Errors:
//   - ErrNoRepairer when repairer is nil.
//   - prometheus registration errors when WithMetrics hits a conflicting collector.
func New(repairer Repairer, space region.ParamSpace, opts ...Option) (*Scheduler, error) {
	if repairer == nil {
		return nil, partitionErrorf(opNew, ErrNoRepairer)
	}
	o := gatherOptions(opts...)
	m, err := newMetrics(o.registerer)
	if err != nil {
		return nil, partitionErrorf(opNew, err)
	}

	return &Scheduler{repairer: repairer, space: space, opts: o, metrics: m}, nil
}

// Workers returns the effective pool size after clamping.
func (s *Scheduler) Workers() int { return s.opts.workers }

// run is the shared state of one Run call.
type run struct {
	s       *Scheduler
	q       *queue
	logger  *zap.Logger
	initial Task // seed basis and tableau, used to recover warm-started tasks

	mu       sync.Mutex // guards created, finished
	created  int
	finished int

	outMu   sync.Mutex // guards regions
	regions []*region.Region
}

// Run partitions the domain of the parameter space starting from (t, basis).
//
// Implementation:
//   - Stage 1: derive the domain [lo, hi] from the restrictions; validate inputs.
//   - Stage 2: seed the queue: one task for [lo, hi], or with parallel start
//     workers−1 equal pieces lo + i·(hi−lo)/(workers−1).
//   - Stage 3: run the workers under one errgroup until every worker has
//     consumed its stop task, or one of them fails.
//
// Behavior highlights:
//   - t and basis are copied into the seed tasks; the caller's values are not mutated.
//   - A Repairer error aborts the run; Run returns it wrapped, errors.Is still matches it.
//   - Cancelling ctx stops the workers at their next Pop.
//
// Errors:
//   - ErrNilTableau, tableau.ErrBadBasis, region.ErrUnboundedDomain,
//     region.ErrEmptyDomain, ErrDegenerateDomain.
//   - The first worker error (Repairer, region engine) or ctx.Err().
func (s *Scheduler) Run(ctx context.Context, t *tableau.Tableau, basis tableau.Basis) (*Result, error) {
	if t == nil {
		return nil, partitionErrorf(opRun, ErrNilTableau)
	}
	if err := basis.Validate(t.Size()); err != nil {
		return nil, partitionErrorf(opRun, err)
	}
	lo, hi, err := s.space.Domain()
	if err != nil {
		return nil, partitionErrorf(opRun, err)
	}
	if lo.Cmp(hi) == 0 {
		return nil, partitionErrorf(opRun, fmt.Errorf("x = %s: %w", lo.RatString(), ErrDegenerateDomain))
	}
	domain := [2]realroot.Real{realroot.FromRat(lo), realroot.FromRat(hi)}

	r := &run{
		s:       s,
		q:       newQueue(),
		logger:  s.opts.logger,
		initial: Task{Interval: domain, Basis: basis.Clone(), Tableau: t.Clone()},
	}
	r.seed(lo, hi)

	workers := s.opts.workers
	r.logger.Info("partition started",
		zap.String("lo", lo.RatString()),
		zap.String("hi", hi.RatString()),
		zap.Int("workers", workers),
		zap.Int("seeds", r.created),
		zap.Float64("eps", s.opts.eps))

	g, gctx := errgroup.WithContext(ctx)
	for id := 0; id < workers; id++ {
		id := id
		g.Go(func() error { return r.work(gctx, id) })
	}
	if err = g.Wait(); err != nil {
		r.logger.Error("partition aborted", zap.Error(err))
		return nil, partitionErrorf(opRun, err)
	}

	res := &Result{
		Domain:   domain,
		Created:  r.created,
		Finished: r.finished,
		Workers:  workers,
		regions:  r.regions,
	}
	r.logger.Info("partition finished",
		zap.Int("regions", len(res.NonDegenerate())),
		zap.Int("tasks", res.Finished))

	return res, nil
}

// seed queues the initial tasks before any worker starts.
func (r *run) seed(lo, hi *big.Rat) {
	if !r.s.opts.parallelStart {
		r.push(r.initial.Interval, r.initial.Basis.Clone(), r.initial.Tableau.Clone())
		return
	}
	n := r.s.opts.workers - 1
	width := new(big.Rat).Sub(hi, lo)
	left := new(big.Rat).Set(lo)
	for i := 1; i <= n; i++ {
		right := new(big.Rat).Set(hi)
		if i < n {
			right.Mul(width, big.NewRat(int64(i), int64(n)))
			right.Add(right, lo)
		}
		iv := [2]realroot.Real{realroot.FromRat(left), realroot.FromRat(right)}
		r.push(iv, r.initial.Basis.Clone(), r.initial.Tableau.Clone())
		left = right
	}
}

// push counts a task as created, then makes it visible in the queue.
func (r *run) push(iv [2]realroot.Real, b tableau.Basis, t *tableau.Tableau) {
	r.mu.Lock()
	r.created++
	r.mu.Unlock()
	r.s.metrics.taskCreated()
	r.q.Push(Task{Interval: iv, Basis: b, Tableau: t})
	r.s.metrics.depth(r.q.Len())
}

// work is one worker: Idle → Processing → (Idle | Terminated).
func (r *run) work(ctx context.Context, id int) error {
	log := r.logger.With(zap.Int("worker", id))
	log.Debug("worker", zap.Stringer("state", stateIdle))
	defer log.Debug("worker", zap.Stringer("state", stateTerminated))

	for {
		task, err := r.q.Pop(ctx)
		if err != nil {
			return err
		}
		r.s.metrics.depth(r.q.Len())
		if task.Stop {
			return nil
		}
		if err = r.process(task, log); err != nil {
			return err
		}
		r.finish()
	}
}

// process resolves one interval and queues what it leaves uncovered.
func (r *run) process(task Task, log *zap.Logger) error {
	lo, hi := task.Interval[0], task.Interval[1]
	point, err := realroot.Midpoint(lo, hi)
	if err != nil {
		return partitionErrorf(opProcess, err)
	}
	if r.s.opts.progress {
		log.Info("processing interval", zap.Stringer("lo", lo), zap.Stringer("hi", hi))
	} else {
		log.Debug("worker", zap.Stringer("state", stateProcessing), zap.Stringer("lo", lo), zap.Stringer("hi", hi))
	}

	t, b, err := r.s.repairer.Repair(task.Tableau, task.Basis, point)
	if err != nil && r.s.opts.warmStart && errors.Is(err, ratfunc.ErrPole) {
		// A warm-started tableau may have a pole at the new point; the seed has none.
		log.Debug("warm start rejected, repairing from seed", zap.Error(err))
		t, b, err = r.s.repairer.Repair(r.initial.Tableau, r.initial.Basis, point)
	}
	if err != nil {
		return partitionErrorf(opProcess, fmt.Errorf("interval [%s, %s] at x=%s: %w", lo, hi, point.RatString(), err))
	}

	rgn, err := region.New(t, b, point, r.s.opts.eps, r.s.space, task.Interval)
	if err != nil {
		return partitionErrorf(opProcess, err)
	}
	L, R, err := rgn.GetExtremes()
	if err != nil {
		return partitionErrorf(opProcess, err)
	}
	rgn.Finalize()
	r.emit(rgn)

	nextBasis, nextTab := task.Basis, task.Tableau
	if r.s.opts.warmStart {
		nextBasis, nextTab = b, t
	}
	eps := r.s.opts.eps
	if wider(L, lo, eps) {
		r.push([2]realroot.Real{lo, L}, nextBasis.Clone(), nextTab.Clone())
	}
	if wider(hi, R, eps) {
		r.push([2]realroot.Real{R, hi}, nextBasis.Clone(), nextTab.Clone())
	}

	return nil
}

// emit appends a finished region to the output collection.
func (r *run) emit(rgn *region.Region) {
	r.outMu.Lock()
	r.regions = append(r.regions, rgn)
	r.outMu.Unlock()
	r.s.metrics.regionEmitted(rgn.Degenerate())
}

// finish counts a processed task; the worker that balances the counters stops everyone.
func (r *run) finish() {
	r.mu.Lock()
	r.finished++
	done := r.created == r.finished
	r.mu.Unlock()
	r.s.metrics.taskFinished()

	if !done {
		return
	}
	for i := 0; i < r.s.opts.workers; i++ {
		r.q.Push(Task{Stop: true})
	}
}

// wider reports b − a > eps, exactly when eps is zero.
func wider(b, a realroot.Real, eps float64) bool {
	if b.Cmp(a) <= 0 {
		return false
	}
	if eps == 0 {
		return true
	}

	return b.Float64()-a.Float64() > eps
}
