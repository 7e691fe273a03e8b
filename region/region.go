// SPDX-License-Identifier: MIT

// Package region - the Region Boundary Engine.
//
// Purpose:
//   - Turn a feasible basis into exact sign constraints g(x) ≤ 0 on x.
//   - Shrink the candidate interval [L,R] to the invariancy region of that basis.
//
// Determinism:
//   - Inequalities are scanned in row order, then restriction order; roots of
//     each inequality are scanned in ascending order. Endpoints are exact.

package region

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/uplcp/ratfunc"
	"github.com/katalvlaran/uplcp/realroot"
	"github.com/katalvlaran/uplcp/tableau"
)

// DefaultStoreGradients controls whether New stores the derivative of every inequality.
const DefaultStoreGradients = true

// Option configures a Region.
type Option func(*Options)

// Options is the resolved Region configuration.
type Options struct {
	storeGrads bool // DefaultStoreGradients
}

// WithGradients toggles derivative storage. GetExtremes does not depend on it.
func WithGradients(on bool) Option {
	return func(o *Options) { o.storeGrads = on }
}

func gatherOptions(opts ...Option) Options {
	o := Options{storeGrads: DefaultStoreGradients}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Region is one invariancy region under construction or finished.
type Region struct {
	tab       *tableau.Tableau  // released by Finalize
	basis     tableau.Basis     // owned copy
	point     *big.Rat          // representative point (first coordinate)
	eps       float64           // split tolerance carried for callers
	rhs       []ratfunc.RatFunc // right-hand-side column, captured at construction
	defIneq   []ratfunc.Poly    // g_k(x) ≤ 0, rows first, then restrictions
	grads     []ratfunc.Poly    // dg_k/dx (nil when gradients are off)
	endPoints [2]realroot.Real  // [L, R]
	space     ParamSpace        // restrictions appended after the rows
	done      bool              // GetExtremes has written the endpoints back
	opts      Options
}

// New builds a Region over a feasible (tableau, basis) at point, with candidate interval.
//
// Implementation:
//   - Stage 1: validate the tableau, the basis and point ∈ (L, R).
//   - Stage 2: copy the basis and interval, capture the RHS column.
//   - Stage 3: DeriveInequalities.
//
// Inputs:
//   - t: feasible tableau at point; the Region keeps a reference until Finalize.
//   - basis: basis matching t; copied.
//   - point: representative point, strictly inside interval.
//   - eps: tolerance the scheduler uses for splitting decisions.
//   - space: parameter-space restrictions.
//   - interval: candidate [L, R]; copied.
//
// Errors:
//   - ErrNilTableau, tableau.ErrBadBasis, ErrPointOutside (wrapped with "New").
func New(
	t *tableau.Tableau,
	basis tableau.Basis,
	point *big.Rat,
	eps float64,
	space ParamSpace,
	interval [2]realroot.Real,
	opts ...Option,
) (*Region, error) {
	if t == nil {
		return nil, regionErrorf(opNew, ErrNilTableau)
	}
	if err := basis.Validate(t.Size()); err != nil {
		return nil, regionErrorf(opNew, err)
	}
	if interval[0].CmpRat(point) >= 0 || interval[1].CmpRat(point) <= 0 {
		return nil, regionErrorf(opNew, fmt.Errorf("%s not in (%s, %s): %w",
			point.RatString(), interval[0], interval[1], ErrPointOutside))
	}

	r := &Region{
		tab:       t,
		basis:     basis.Clone(),
		point:     new(big.Rat).Set(point),
		eps:       eps,
		rhs:       t.RHS(),
		endPoints: interval,
		space:     space,
		opts:      gatherOptions(opts...),
	}
	r.DeriveInequalities()

	return r, nil
}

// DeriveInequalities rebuilds the defining inequalities and their derivatives.
//
// Implementation:
//   - Row i with RHS N_i/D_i: g_i = −N_i when D_i(point) > 0, else g_i = N_i,
//     so that f_i ≥ 0 ⇔ g_i ≤ 0 near point.
//   - Restriction k: g_{n+k} = LHS_k − RHS_k.
//   - Derivatives follow when gradients are stored.
//
// Complexity:
//   - Time O(n·d) with d the largest numerator degree.
func (r *Region) DeriveInequalities() {
	n := len(r.rhs)
	r.defIneq = make([]ratfunc.Poly, n+len(r.space))
	for i, f := range r.rhs {
		if f.Den().Sign(r.point) > 0 {
			r.defIneq[i] = f.Num().Neg()
		} else {
			r.defIneq[i] = f.Num()
		}
	}
	for k, c := range r.space {
		r.defIneq[n+k] = c.Ineq()
	}

	r.grads = nil
	if !r.opts.storeGrads {
		return
	}
	r.grads = make([]ratfunc.Poly, len(r.defIneq))
	for k, g := range r.defIneq {
		r.grads[k] = g.Deriv()
	}
}

// GetExtremes tightens [L, R] to the invariancy region and writes it back.
//
// Implementation:
//   - Skip inequalities of degree ≤ 0: a constant never crosses zero.
//   - Isolate the real roots of g in [⌊L⌋, ⌈R⌉] with multiplicities; even
//     multiplicity is a tangency and is ignored.
//   - Odd root r: L < r < start ⇒ L := r; start < r < R ⇒ R := r;
//     r == start ⇒ L := r when g'(start) < 0, else R := r.
//
// Behavior highlights:
//   - All comparisons are exact; irrational roots stay algebraic reals.
//   - The search bounds follow the current [L, R] as it tightens.
//
// Errors:
//   - ErrAlreadyFinalized on a second call.
//   - realroot errors from isolation (not expected for valid inputs).
//
// Complexity:
//   - Time O(K · isolate(d)) for K inequalities of degree ≤ d.
func (r *Region) GetExtremes() (L, R realroot.Real, err error) {
	if r.done {
		return r.endPoints[0], r.endPoints[1], regionErrorf(opExtremes, ErrAlreadyFinalized)
	}
	L, R = r.endPoints[0], r.endPoints[1]
	start := r.point

	var roots []realroot.Root
	for _, g := range r.defIneq {
		if g.Degree() <= 0 {
			continue
		}
		if roots, err = realroot.Isolate(g, L.FloorBound(), R.CeilBound()); err != nil {
			return L, R, regionErrorf(opExtremes, err)
		}
		for _, root := range roots {
			if !root.OddMultiplicity() {
				continue
			}
			v := root.Value
			side := v.CmpRat(start)
			switch {
			case side < 0 && v.Cmp(L) > 0:
				L = v
			case side > 0 && v.Cmp(R) < 0:
				R = v
			case side == 0:
				if g.Deriv().Sign(start) < 0 {
					L = v
				} else {
					R = v
				}
			}
		}
	}

	r.endPoints[0], r.endPoints[1] = L, R
	r.done = true

	return L, R, nil
}

// Finalize releases the tableau; basis, RHS and endpoints stay available.
func (r *Region) Finalize() { r.tab = nil }

// Tableau returns the tableau, or nil after Finalize.
func (r *Region) Tableau() *tableau.Tableau { return r.tab }

// Basis returns a copy of the basis.
func (r *Region) Basis() tableau.Basis { return r.basis.Clone() }

// RHS returns the right-hand-side column captured at construction.
func (r *Region) RHS() []ratfunc.RatFunc {
	out := make([]ratfunc.RatFunc, len(r.rhs))
	copy(out, r.rhs)

	return out
}

// DefIneq returns the defining inequalities g_k(x) ≤ 0.
func (r *Region) DefIneq() []ratfunc.Poly {
	out := make([]ratfunc.Poly, len(r.defIneq))
	copy(out, r.defIneq)

	return out
}

// Grads returns dg_k/dx per inequality (nil when gradients are off).
func (r *Region) Grads() []ratfunc.Poly {
	if r.grads == nil {
		return nil
	}
	out := make([]ratfunc.Poly, len(r.grads))
	copy(out, r.grads)

	return out
}

// EndPoints returns [L, R].
func (r *Region) EndPoints() [2]realroot.Real { return r.endPoints }

// Point returns a copy of the representative point.
func (r *Region) Point() *big.Rat { return new(big.Rat).Set(r.point) }

// Eps returns the split tolerance the Region was built with.
func (r *Region) Eps() float64 { return r.eps }

// Degenerate reports L == R.
func (r *Region) Degenerate() bool { return r.endPoints[0].Equal(r.endPoints[1]) }
