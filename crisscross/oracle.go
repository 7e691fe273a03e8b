// SPDX-License-Identifier: MIT

package crisscross

import (
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/katalvlaran/uplcp/tableau"
)

// maxCapExponent bounds the exponent of the default iteration budget.
const maxCapExponent = 20

const panicMaxIterInvalid = "crisscross: WithMaxIterations: limit must be positive"

// Option configures an Oracle.
type Option func(*Oracle)

// WithMaxIterations caps the number of pivots per Repair call.
// Panics when limit ≤ 0.
func WithMaxIterations(limit int) Option {
	if limit <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Oracle) { o.maxIter = limit }
}

// WithLogger attaches a logger for pivot tracing at debug level. nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Oracle) {
		if l != nil {
			o.logger = l
		}
	}
}

// Oracle is a deterministic criss-cross basis repair procedure.
// It holds no per-call state and is safe for concurrent use.
type Oracle struct {
	maxIter int // 0 ⇒ DefaultMaxIterations(n)
	logger  *zap.Logger
}

// New returns an Oracle configured by opts.
func New(opts ...Option) *Oracle {
	o := &Oracle{logger: zap.NewNop()}
	for _, fn := range opts {
		fn(o)
	}

	return o
}

// DefaultMaxIterations is the pivot budget for an n-row tableau: 2^min(n,20)·n.
func DefaultMaxIterations(n int) int {
	e := n
	if e > maxCapExponent {
		e = maxCapExponent
	}

	return (1 << e) * n
}

// Repair returns a basis feasible at x together with its tableau.
//
// Implementation:
//   - Stage 1: validate and deep-copy the tableau and basis.
//   - Stage 2: evaluate the tableau at x; stop when every RHS value is ≥ 0.
//   - Stage 3: r := least row with a negative RHS value.
//     If the complement entry (r, comp r) is negative: diagonal pivot on it.
//     Otherwise exchange with the least row s whose complement column has a
//     negative entry in row r and whose second exchange pivot is nonzero at x.
//   - Stage 4: no such s ⇒ ErrInfeasible; budget exhausted ⇒ ErrIterationLimit.
//
// Behavior highlights:
//   - Pivots are exact; only the choice of pivot reads values at x.
//   - The arguments are never mutated.
//
// Errors:
//   - tableau.ErrNilTableau, tableau.ErrBadBasis for bad inputs.
//   - ratfunc.ErrPole when an entry is undefined at x.
//   - ErrInfeasible, ErrIterationLimit (wrapped with "Repair").
//
// Complexity:
//   - Per pivot O(n²) rational-function operations plus one O(n²·d) evaluation.
func (o *Oracle) Repair(t *tableau.Tableau, b tableau.Basis, x *big.Rat) (*tableau.Tableau, tableau.Basis, error) {
	if t == nil {
		return nil, nil, crossErrorf(opRepair, tableau.ErrNilTableau)
	}
	n := t.Size()
	if err := b.Validate(n); err != nil {
		return nil, nil, crossErrorf(opRepair, err)
	}
	limit := o.maxIter
	if limit == 0 {
		limit = DefaultMaxIterations(n)
	}

	work := t.Clone()
	basis := b.Clone()
	rhs := work.RHSCol()
	for iter := 0; ; iter++ {
		vals, err := work.EvalAt(x)
		if err != nil {
			return nil, nil, crossErrorf(opRepair, err)
		}

		r := -1
		for i := 0; i < n; i++ {
			if vals[i][rhs].Sign() < 0 {
				r = i
				break
			}
		}
		if r < 0 {
			o.logger.Debug("basis repaired",
				zap.String("x", x.RatString()),
				zap.Stringer("basis", basis),
				zap.Int("pivots", iter))
			return work, basis, nil
		}
		if iter >= limit {
			return nil, nil, crossErrorf(opRepair, fmt.Errorf("%d pivots at x=%s: %w", limit, x.RatString(), ErrIterationLimit))
		}

		cr := basis.Complement(r)
		if vals[r][cr].Sign() < 0 {
			if err = tableau.PrincipalPivot(work, r, cr); err != nil {
				return nil, nil, crossErrorf(opRepair, err)
			}
			basis[r] = cr
			o.logger.Debug("diagonal pivot", zap.Int("row", r), zap.Int("col", cr))
			continue
		}

		s, blocked := exchangeRow(vals, basis, r, cr)
		if s < 0 {
			cause := ErrInfeasible
			if blocked {
				cause = ErrNoPivot
			}
			return nil, nil, crossErrorf(opRepair, fmt.Errorf("row %d at x=%s: %w", r+1, x.RatString(), cause))
		}
		cs := basis.Complement(s)
		if err = tableau.ExchangePivot(work, r, cr, s, cs); err != nil {
			return nil, nil, crossErrorf(opRepair, err)
		}
		basis[r], basis[s] = cr, cs
		o.logger.Debug("exchange pivot", zap.Int("row", r), zap.Int("with", s))
	}
}

// exchangeRow returns the least s ≠ r usable for an exchange with row r, or -1.
// Row r must have a negative entry in s's complement column, and the entry
// (s, cr) left after pivoting on (r, cs) must be nonzero. blocked reports
// that some negative entry existed but every such s had a zero second pivot.
func exchangeRow(vals [][]*big.Rat, basis tableau.Basis, r, cr int) (s int, blocked bool) {
	var cs int
	second := new(big.Rat)
	for s = range basis {
		if s == r {
			continue
		}
		cs = basis.Complement(s)
		if vals[r][cs].Sign() >= 0 {
			continue
		}
		blocked = true
		// e' = T[s][cr] − T[s][cs]·T[r][cr] / T[r][cs]
		second.Mul(vals[s][cs], vals[r][cr])
		second.Quo(second, vals[r][cs])
		second.Sub(vals[s][cr], second)
		if second.Sign() != 0 {
			return s, false
		}
	}

	return -1, blocked
}
