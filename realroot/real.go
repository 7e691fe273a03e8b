// SPDX-License-Identifier: MIT

// Package realroot - exact real numbers.
//
// Purpose:
//   - Carry region endpoints without rounding: a rational value stays a
//     *big.Rat; an irrational root stays (square-free poly, isolating interval).
//   - Decide every comparison exactly: interval refinement separates distinct
//     numbers, a polynomial GCD test detects equal algebraic numbers.
//
// AI-Hints:
//   - Float64/String are for reporting and tolerances only; never branch on them
//     where an exact Cmp is available.

package realroot

import (
	"math/big"
	"strconv"

	"github.com/katalvlaran/uplcp/ratfunc"
)

// floatRefineSteps bounds the bisection steps used by Float64.
const floatRefineSteps = 96

// Real is an exact real number. The zero value is the rational 0.
type Real struct {
	exact *big.Rat     // non-nil for rationals (zero value handled by rat())
	poly  ratfunc.Poly // square-free defining polynomial (algebraic case)
	chain Chain        // Sturm chain of poly (algebraic case)
	lo    *big.Rat     // open isolating interval (lo, hi): exactly one root of poly
	hi    *big.Rat
}

// FromRat returns the rational real r (copied).
func FromRat(r *big.Rat) Real { return Real{exact: new(big.Rat).Set(r)} }

// FromInt returns the integer real v.
func FromInt(v int64) Real { return Real{exact: new(big.Rat).SetInt64(v)} }

// newAlgebraic wraps the unique root of sqfree in (lo, hi).
// The caller guarantees exactly one root inside and none at the ends.
func newAlgebraic(sqfree ratfunc.Poly, chain Chain, lo, hi *big.Rat) Real {
	return Real{poly: sqfree, chain: chain, lo: lo, hi: hi}
}

func (r Real) algebraic() bool { return r.exact == nil && !r.poly.IsZero() }

// rat returns the rational value; valid only when !r.algebraic().
func (r Real) rat() *big.Rat {
	if r.exact == nil {
		return new(big.Rat)
	}

	return r.exact
}

// IsRational reports whether r is known to be rational.
func (r Real) IsRational() bool { return !r.algebraic() }

// Rat returns a copy of the rational value and true, or nil and false for an
// irrational root.
func (r Real) Rat() (*big.Rat, bool) {
	if r.algebraic() {
		return nil, false
	}

	return new(big.Rat).Set(r.rat()), true
}

// Bounds returns a rational enclosure [lo, hi] of r (lo == hi for rationals).
func (r Real) Bounds() (lo, hi *big.Rat) {
	if !r.algebraic() {
		return new(big.Rat).Set(r.rat()), new(big.Rat).Set(r.rat())
	}

	return new(big.Rat).Set(r.lo), new(big.Rat).Set(r.hi)
}

// refine halves the isolating interval. It returns a rational Real when the
// midpoint is the root itself.
func (r Real) refine() Real {
	mid := new(big.Rat).Add(r.lo, r.hi)
	mid.Quo(mid, ratTwo)
	if r.poly.Sign(mid) == 0 {
		return Real{exact: mid}
	}
	if r.chain.CountHalfOpen(r.lo, mid) == 1 {
		return newAlgebraic(r.poly, r.chain, r.lo, mid)
	}

	return newAlgebraic(r.poly, r.chain, mid, r.hi)
}

// CmpRat compares r with the rational q: -1 if r < q, 0 if equal, +1 if r > q.
func (r Real) CmpRat(q *big.Rat) int {
	for r.algebraic() {
		if q.Cmp(r.lo) <= 0 {
			return 1
		}
		if q.Cmp(r.hi) >= 0 {
			return -1
		}
		if r.poly.Sign(q) == 0 {
			return 0 // q is the unique root inside (lo, hi)
		}
		r = r.refine()
	}

	return r.rat().Cmp(q)
}

// Cmp compares two reals exactly: -1 if r < o, 0 if equal, +1 if r > o.
//
// Implementation:
//   - Stage 1: rational operands delegate to CmpRat.
//   - Stage 2: equal algebraic numbers share a root of gcd(p, q) inside the
//     intersection of their isolating intervals; test it with a Sturm count.
//   - Stage 3: otherwise refine both until the intervals are disjoint.
//
// Complexity:
//   - O(d³) for the GCD test plus O(k·d²) per refinement step.
func (r Real) Cmp(o Real) int {
	if !o.algebraic() {
		return r.CmpRat(o.rat())
	}
	if !r.algebraic() {
		return -o.CmpRat(r.rat())
	}
	if g := ratfunc.GCD(r.poly, o.poly); g.Degree() > 0 {
		lo := maxRat(r.lo, o.lo)
		hi := minRat(r.hi, o.hi)
		if lo.Cmp(hi) < 0 && NewChain(g).CountOpen(lo, hi) > 0 {
			return 0
		}
	}
	for {
		if r.hi.Cmp(o.lo) <= 0 {
			return -1
		}
		if o.hi.Cmp(r.lo) <= 0 {
			return 1
		}
		r, o = r.refine(), o.refine()
		if !r.algebraic() || !o.algebraic() {
			return r.Cmp(o)
		}
	}
}

// Equal reports exact equality.
func (r Real) Equal(o Real) bool { return r.Cmp(o) == 0 }

// Float64 returns the nearest float64 approximation (for reporting and ε tests).
func (r Real) Float64() float64 {
	for k := 0; r.algebraic() && k < floatRefineSteps; k++ {
		r = r.refine()
	}
	if !r.algebraic() {
		f, _ := r.rat().Float64()
		return f
	}
	mid := new(big.Rat).Add(r.lo, r.hi)
	mid.Quo(mid, ratTwo)
	f, _ := mid.Float64()

	return f
}

// FloorBound returns an integer ≤ r; it equals ⌊r⌋ for rationals.
func (r Real) FloorBound() *big.Rat {
	lo, _ := r.Bounds()
	return floorRat(lo)
}

// CeilBound returns an integer ≥ r; it equals ⌈r⌉ for rationals.
func (r Real) CeilBound() *big.Rat {
	_, hi := r.Bounds()
	return new(big.Rat).Neg(floorRat(new(big.Rat).Neg(hi)))
}

// String renders rationals exactly and irrational roots with 15 significant digits.
func (r Real) String() string {
	if !r.algebraic() {
		return r.rat().RatString()
	}

	return strconv.FormatFloat(r.Float64(), 'g', 15, 64)
}

// Midpoint returns a rational point strictly between a and b (a < b).
// For rational endpoints it is exactly (a+b)/2; irrational endpoints are
// approximated by refining until the midpoint of the enclosures separates them.
//
// Errors:
//   - ErrBadInterval when a ≥ b.
func Midpoint(a, b Real) (*big.Rat, error) {
	if a.Cmp(b) >= 0 {
		return nil, rootErrorf(opMidpoint, ErrBadInterval)
	}
	for {
		alo, ahi := a.Bounds()
		blo, bhi := b.Bounds()
		m := new(big.Rat).Add(alo, ahi)
		m.Add(m, blo)
		m.Add(m, bhi)
		m.Quo(m, ratFour)
		if a.CmpRat(m) < 0 && b.CmpRat(m) > 0 {
			return m, nil
		}
		if a.algebraic() {
			a = a.refine()
		}
		if b.algebraic() {
			b = b.refine()
		}
	}
}

// Min returns the smaller of a and b.
func Min(a, b Real) Real {
	if a.Cmp(b) <= 0 {
		return a
	}

	return b
}

// Max returns the larger of a and b.
func Max(a, b Real) Real {
	if a.Cmp(b) >= 0 {
		return a
	}

	return b
}

func floorRat(q *big.Rat) *big.Rat {
	n := new(big.Int).Set(q.Num())
	d := q.Denom()
	fl := new(big.Int)
	// big.Int.Div is Euclidean; with a positive divisor it is floor division.
	fl.Div(n, d)

	return new(big.Rat).SetInt(fl)
}

func maxRat(a, b *big.Rat) *big.Rat {
	if a.Cmp(b) >= 0 {
		return a
	}

	return b
}

func minRat(a, b *big.Rat) *big.Rat {
	if a.Cmp(b) <= 0 {
		return a
	}

	return b
}

var (
	ratOne  = big.NewRat(1, 1)
	ratTwo  = big.NewRat(2, 1)
	ratFour = big.NewRat(4, 1)
)
