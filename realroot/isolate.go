// SPDX-License-Identifier: MIT

package realroot

import (
	"math/big"
	"sort"

	"github.com/katalvlaran/uplcp/ratfunc"
)

// Root is one real root with its multiplicity in the isolated polynomial.
type Root struct {
	Value        Real
	Multiplicity int
}

// OddMultiplicity reports whether the polynomial changes sign at the root.
func (r Root) OddMultiplicity() bool { return r.Multiplicity%2 != 0 }

// Isolate returns every real root of p in the closed interval [lo, hi],
// each with its multiplicity, in ascending order.
//
// Implementation:
//   - Stage 1: square-free decomposition p = c·∏ a_i^i (roots of distinct a_i are distinct).
//   - Stage 2: per factor, test the closed ends exactly, then bisect the open
//     interval with Sturm counts until every sub-interval holds one root;
//     linear factors are solved directly.
//   - Stage 2b: every isolated root is narrowed below 1/L, where L is the
//     leading coefficient of the factor's integer form. A rational root of
//     the factor is k/L for some integer k, and at most one such candidate
//     fits the interval, so a single exact evaluation settles it.
//   - Stage 3: merge and sort by exact comparison.
//
// Behavior highlights:
//   - Rational roots are always returned as rational Reals, whatever the
//     degree of the factor they belong to.
//   - Irrational roots carry a square-free polynomial and an isolating interval.
//
// Inputs:
//   - p: polynomial; constants have no roots.
//   - lo, hi: closed search interval, lo ≤ hi.
//
// Errors:
//   - ErrZeroPoly when p ≡ 0.
//   - ErrBadInterval when lo > hi.
//
// Complexity:
//   - Time O(d³ + R·k·d²) for R roots and k bisection steps.
func Isolate(p ratfunc.Poly, lo, hi *big.Rat) ([]Root, error) {
	if p.IsZero() {
		return nil, rootErrorf(opIsolate, ErrZeroPoly)
	}
	if lo.Cmp(hi) > 0 {
		return nil, rootErrorf(opIsolate, ErrBadInterval)
	}

	var out []Root
	for _, f := range SquareFree(p) {
		for _, v := range isolateSquareFree(f.Poly, lo, hi) {
			out = append(out, Root{Value: v, Multiplicity: f.Multiplicity})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value.Cmp(out[j].Value) < 0 })

	return out, nil
}

// isolateSquareFree returns the roots of a square-free f in [lo, hi].
func isolateSquareFree(f ratfunc.Poly, lo, hi *big.Rat) []Real {
	if f.Degree() == 1 {
		// f = c1·x + c0 ⇒ x = -c0/c1
		x := new(big.Rat).Quo(f.Coeff(0), f.Coeff(1))
		x.Neg(x)
		if x.Cmp(lo) >= 0 && x.Cmp(hi) <= 0 {
			return []Real{{exact: x}}
		}

		return nil
	}

	var out []Real
	if f.Sign(lo) == 0 {
		out = append(out, FromRat(lo))
	}
	if lo.Cmp(hi) == 0 {
		return out
	}
	chain := NewChain(f)
	den := rootDenominator(f)
	out = append(out, bisect(f, chain, den, new(big.Rat).Set(lo), new(big.Rat).Set(hi), chain.CountOpen(lo, hi))...)
	if f.Sign(hi) == 0 {
		out = append(out, FromRat(hi))
	}

	return out
}

// bisect isolates the n roots of f inside the open interval (a, b).
func bisect(f ratfunc.Poly, chain Chain, den *big.Rat, a, b *big.Rat, n int) []Real {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []Real{newAlgebraic(f, chain, a, b).rationalize(den)}
	}
	mid := new(big.Rat).Add(a, b)
	mid.Quo(mid, ratTwo)
	left := chain.CountOpen(a, mid)
	var out []Real
	out = append(out, bisect(f, chain, den, a, mid, left)...)
	if f.Sign(mid) == 0 {
		out = append(out, Real{exact: mid})
		left++
	}
	out = append(out, bisect(f, chain, den, new(big.Rat).Set(mid), b, n-left)...)

	return out
}

// rootDenominator returns L = |lead| of f scaled to integer coefficients.
// Every rational root of f has the form k/L with k an integer.
func rootDenominator(f ratfunc.Poly) *big.Rat {
	lcm := big.NewInt(1)
	g := new(big.Int)
	for _, c := range f.Coeffs() {
		d := c.Denom()
		g.GCD(nil, nil, lcm, d)
		lcm.Mul(lcm, new(big.Int).Quo(d, g))
	}
	lead := new(big.Rat).Mul(f.Lead(), new(big.Rat).SetInt(lcm))

	return lead.Abs(lead)
}

// rationalize narrows an isolating interval until it is shorter than 1/den,
// then tests the only candidate k/den inside it. A hit collapses r into a
// rational Real; a miss proves the root irrational.
func (r Real) rationalize(den *big.Rat) Real {
	width := new(big.Rat)
	for r.algebraic() {
		width.Sub(r.hi, r.lo)
		if width.Mul(width, den).Cmp(ratOne) < 0 {
			break
		}
		r = r.refine()
	}
	if !r.algebraic() {
		return r
	}

	// k = ⌊lo·den⌋ + 1 is the smallest integer above lo·den.
	k := floorRat(new(big.Rat).Mul(r.lo, den))
	k.Add(k, ratOne)
	cand := k.Quo(k, den)
	if cand.Cmp(r.hi) < 0 && r.poly.Sign(cand) == 0 {
		return Real{exact: cand}
	}

	return r
}
