// SPDX-License-Identifier: MIT

package region

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/uplcp/ratfunc"
	"github.com/katalvlaran/uplcp/realroot"
)

// Constraint is one parameter-space restriction LHS(x) ≤ RHS.
type Constraint struct {
	LHS ratfunc.Poly
	RHS *big.Rat
}

// Ineq returns LHS(x) − RHS, the restriction in g(x) ≤ 0 form.
func (c Constraint) Ineq() ratfunc.Poly {
	return c.LHS.Sub(ratfunc.Const(c.rhs()))
}

func (c Constraint) rhs() *big.Rat {
	if c.RHS == nil {
		return new(big.Rat)
	}

	return c.RHS
}

// String renders the restriction as "LHS <= RHS".
func (c Constraint) String() string {
	return c.LHS.String() + " <= " + c.rhs().RatString()
}

// ParamSpace is the list of restrictions every region must satisfy.
type ParamSpace []Constraint

// Domain computes the outer interval [lo, hi] of x from the linear restrictions.
//
// Behavior highlights:
//   - a·x + c ≤ b with a > 0 bounds x from above by (b − c)/a, with a < 0 from below.
//   - Constant restrictions are checked once; a violated one empties the domain.
//   - Restrictions of degree ≥ 2 do not shape the domain; they still enter
//     every region as defining inequalities.
//
// Errors:
//   - ErrUnboundedDomain when either side stays unbounded.
//   - ErrEmptyDomain when lo > hi or a constant restriction fails.
func (s ParamSpace) Domain() (lo, hi *big.Rat, err error) {
	var bound *big.Rat
	for k, c := range s {
		switch c.LHS.Degree() {
		case -1, 0:
			if c.LHS.Coeff(0).Cmp(c.rhs()) > 0 {
				return nil, nil, regionErrorf(opDomain, fmt.Errorf("restriction %d (%s): %w", k+1, c, ErrEmptyDomain))
			}
		case 1:
			a := c.LHS.Coeff(1)
			bound = new(big.Rat).Sub(c.rhs(), c.LHS.Coeff(0))
			bound.Quo(bound, a)
			if a.Sign() > 0 {
				if hi == nil || bound.Cmp(hi) < 0 {
					hi = bound
				}
			} else if lo == nil || bound.Cmp(lo) > 0 {
				lo = bound
			}
		}
	}
	if lo == nil || hi == nil {
		return nil, nil, regionErrorf(opDomain, ErrUnboundedDomain)
	}
	if lo.Cmp(hi) > 0 {
		return nil, nil, regionErrorf(opDomain, fmt.Errorf("[%s, %s]: %w", lo.RatString(), hi.RatString(), ErrEmptyDomain))
	}

	return lo, hi, nil
}

// Interval is the [lo, hi] domain as exact reals, the form the scheduler seeds with.
func (s ParamSpace) Interval() ([2]realroot.Real, error) {
	lo, hi, err := s.Domain()
	if err != nil {
		return [2]realroot.Real{}, err
	}

	return [2]realroot.Real{realroot.FromRat(lo), realroot.FromRat(hi)}, nil
}
