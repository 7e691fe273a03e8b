// SPDX-License-Identifier: MIT

package realroot

import (
	"math/big"

	"github.com/katalvlaran/uplcp/ratfunc"
)

// Factor is one square-free factor of a polynomial with its multiplicity.
type Factor struct {
	Poly         ratfunc.Poly // monic, square-free, degree ≥ 1
	Multiplicity int          // ≥ 1
}

// SquareFree returns Yun's square-free decomposition of p: the monic
// pairwise-coprime factors a_i with p = c·∏ a_i^i. Constant polynomials
// (including zero) have no factors.
//
// Implementation:
//   - Stage 1: a0 = gcd(p, p'), b = p/a0, c = p'/a0, d = c - b'.
//   - Stage 2: repeat a = gcd(b, d); b = b/a; c = d/a; d = c - b' until deg b = 0.
//
// Complexity:
//   - Time O(d³) rational operations.
func SquareFree(p ratfunc.Poly) []Factor {
	if p.Degree() <= 0 {
		return nil
	}
	p = p.Monic()
	dp := p.Deriv()
	a0 := ratfunc.GCD(p, dp)
	b := p.Quo(a0)
	c := dp.Quo(a0)
	d := c.Sub(b.Deriv())

	var out []Factor
	for i := 1; b.Degree() > 0; i++ {
		a := ratfunc.GCD(b, d)
		b = b.Quo(a)
		c = d.Quo(a)
		d = c.Sub(b.Deriv())
		if a.Degree() > 0 {
			out = append(out, Factor{Poly: a.Monic(), Multiplicity: i})
		}
	}

	return out
}

// Chain is a Sturm sequence p, p', -rem(p, p'), ... of a square-free polynomial.
type Chain []ratfunc.Poly

// NewChain builds the Sturm sequence of p. p should be square-free for the
// counts to equal the number of distinct roots.
func NewChain(p ratfunc.Poly) Chain {
	if p.IsZero() {
		return nil
	}
	seq := Chain{p, p.Deriv()}
	for !seq[len(seq)-1].IsZero() {
		r := seq[len(seq)-2].Rem(seq[len(seq)-1])
		if r.IsZero() {
			break
		}
		seq = append(seq, r.Neg())
	}
	if seq[len(seq)-1].IsZero() {
		seq = seq[:len(seq)-1]
	}

	return seq
}

// variations counts sign changes of the chain at x, skipping zeros.
func (c Chain) variations(x *big.Rat) int {
	n, prev := 0, 0
	var s int
	for _, q := range c {
		s = q.Sign(x)
		if s == 0 {
			continue
		}
		if prev != 0 && s != prev {
			n++
		}
		prev = s
	}

	return n
}

// CountHalfOpen returns the number of distinct roots in (a, b], a < b.
func (c Chain) CountHalfOpen(a, b *big.Rat) int {
	if len(c) == 0 || a.Cmp(b) >= 0 {
		return 0
	}

	return c.variations(a) - c.variations(b)
}

// CountOpen returns the number of distinct roots in the open interval (a, b).
func (c Chain) CountOpen(a, b *big.Rat) int {
	n := c.CountHalfOpen(a, b)
	if n > 0 && c[0].Sign(b) == 0 {
		n--
	}

	return n
}
