// SPDX-License-Identifier: MIT

package partition

import (
	"math/big"
	"sort"

	"github.com/katalvlaran/uplcp/realroot"
	"github.com/katalvlaran/uplcp/region"
	"github.com/katalvlaran/uplcp/tableau"
)

// Repairer returns a basis feasible at x together with its tableau, or an error
// when none exists. It must be deterministic and must not mutate its arguments.
type Repairer interface {
	Repair(t *tableau.Tableau, b tableau.Basis, x *big.Rat) (*tableau.Tableau, tableau.Basis, error)
}

// Task is one unresolved interval with the basis and tableau it starts from.
// The task owns Basis and Tableau. Stop marks the sentinel that ends a worker.
type Task struct {
	Interval [2]realroot.Real
	Basis    tableau.Basis
	Tableau  *tableau.Tableau
	Stop     bool
}

// workerState tracks a worker through Idle → Processing → (Idle | Terminated).
type workerState int

const (
	stateIdle workerState = iota
	stateProcessing
	stateTerminated
)

func (s workerState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateProcessing:
		return "processing"
	case stateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Result is the outcome of a completed Run.
type Result struct {
	Domain   [2]realroot.Real
	Created  int
	Finished int
	Workers  int
	regions  []*region.Region
}

// Regions returns every emitted region, degenerate ones included, in emission order.
func (r *Result) Regions() []*region.Region {
	out := make([]*region.Region, len(r.regions))
	copy(out, r.regions)

	return out
}

// NonDegenerate returns the regions with L < R sorted by left endpoint.
func (r *Result) NonDegenerate() []*region.Region {
	out := make([]*region.Region, 0, len(r.regions))
	for _, g := range r.regions {
		if !g.Degenerate() {
			out = append(out, g)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EndPoints()[0].Cmp(out[j].EndPoints()[0]) < 0
	})

	return out
}

// Covers reports whether the non-degenerate regions tile [lo, hi] exactly:
// sorted by left endpoint, each starts where the previous one ends.
func (r *Result) Covers(lo, hi realroot.Real) bool {
	regs := r.NonDegenerate()
	if len(regs) == 0 {
		return lo.Equal(hi)
	}
	reach := lo
	for _, g := range regs {
		ep := g.EndPoints()
		if !ep[0].Equal(reach) {
			return false
		}
		reach = ep[1]
	}

	return reach.Equal(hi)
}
