// SPDX-License-Identifier: MIT

package ratfunc

import (
	"math/big"
	"strconv"
	"strings"
)

// DefaultVar is the variable name used by String.
const DefaultVar = "x"

// ---------- Formatting literals ----------
const (
	_fmtPlus  = " + "
	_fmtMinus = " - "
	_fmtMul   = "*"
	_fmtPow   = "^"
	_fmtDiv   = "/"
)

// String renders p in descending powers of x, e.g. "x^2 - 3*x + 1/2".
func (p Poly) String() string { return p.Format(DefaultVar) }

// Format renders p in descending powers of the named variable.
func (p Poly) Format(v string) string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	abs := new(big.Rat)
	first := true
	for k := len(p.c) - 1; k >= 0; k-- {
		c := p.c[k]
		if c.Sign() == 0 {
			continue
		}
		switch {
		case first && c.Sign() < 0:
			b.WriteString("-")
		case !first && c.Sign() < 0:
			b.WriteString(_fmtMinus)
		case !first:
			b.WriteString(_fmtPlus)
		}
		first = false
		abs.Abs(c)
		if k == 0 {
			b.WriteString(abs.RatString())
			continue
		}
		if abs.Cmp(ratOne) != 0 {
			b.WriteString(abs.RatString())
			b.WriteString(_fmtMul)
		}
		b.WriteString(v)
		if k > 1 {
			b.WriteString(_fmtPow)
			b.WriteString(strconv.Itoa(k))
		}
	}

	return b.String()
}

// terms counts nonzero coefficients.
func (p Poly) terms() int {
	n := 0
	for _, c := range p.c {
		if c.Sign() != 0 {
			n++
		}
	}

	return n
}

// needsParens reports whether p must be parenthesized as a quotient operand.
func (p Poly) needsParens() bool {
	if p.terms() > 1 {
		return true
	}

	return p.terms() == 1 && p.Degree() > 0 && !p.Lead().IsInt()
}

// String renders f as "num" or "num/den" with parentheses where needed.
func (f RatFunc) String() string { return f.Format(DefaultVar) }

// Format renders f with the named variable.
func (f RatFunc) Format(v string) string {
	if f.d().IsOne() {
		return f.num.Format(v)
	}
	var b strings.Builder
	if f.num.needsParens() {
		b.WriteString("(" + f.num.Format(v) + ")")
	} else {
		b.WriteString(f.num.Format(v))
	}
	b.WriteString(_fmtDiv)
	if f.d().needsParens() {
		b.WriteString("(" + f.d().Format(v) + ")")
	} else {
		b.WriteString(f.d().Format(v))
	}

	return b.String()
}
