// SPDX-License-Identifier: MIT

// Package ratfunc - Poly storage & exact arithmetic.
//
// Purpose:
//   - Dense ascending coefficient storage: c[k] is the coefficient of x^k.
//   - Trailing zero coefficients are always trimmed, so Degree() is O(1)
//     and the zero polynomial has no coefficients at all.
//   - Coefficients are never mutated after construction.

package ratfunc

import (
	"fmt"
	"math/big"
)

// Poly is an immutable polynomial in x with rational coefficients.
// The zero value is the zero polynomial.
type Poly struct {
	c []*big.Rat // ascending; len(c)==0 for zero; c[len-1] != 0 otherwise
}

// NewPoly builds a polynomial from ascending coefficients (c[0] + c[1]x + ...).
// Nil coefficients are treated as zero. Inputs are copied.
func NewPoly(coeffs ...*big.Rat) Poly {
	c := make([]*big.Rat, len(coeffs))
	for k, v := range coeffs {
		if v == nil {
			c[k] = new(big.Rat)
			continue
		}
		c[k] = new(big.Rat).Set(v)
	}

	return trim(c)
}

// NewPolyInt builds a polynomial from ascending integer coefficients.
func NewPolyInt(coeffs ...int64) Poly {
	c := make([]*big.Rat, len(coeffs))
	for k, v := range coeffs {
		c[k] = new(big.Rat).SetInt64(v)
	}

	return trim(c)
}

// Const returns the constant polynomial r.
func Const(r *big.Rat) Poly { return NewPoly(r) }

// ConstInt returns the constant polynomial v.
func ConstInt(v int64) Poly { return NewPolyInt(v) }

// X returns the polynomial x.
func X() Poly { return NewPolyInt(0, 1) }

// Monomial returns coef·x^deg. A negative degree panics (programmer error).
func Monomial(coef *big.Rat, deg int) Poly {
	if deg < 0 {
		panic("ratfunc: Monomial: negative degree")
	}
	c := make([]*big.Rat, deg+1)
	for k := range c {
		c[k] = new(big.Rat)
	}
	c[deg].Set(coef)

	return trim(c)
}

// trim drops trailing zero coefficients in place and wraps the slice.
func trim(c []*big.Rat) Poly {
	n := len(c)
	for n > 0 && c[n-1].Sign() == 0 {
		n--
	}
	if n == 0 {
		return Poly{}
	}

	return Poly{c: c[:n]}
}

// Degree returns the degree; the zero polynomial reports -1.
func (p Poly) Degree() int { return len(p.c) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool { return len(p.c) == 0 }

// IsConst reports whether p has degree ≤ 0.
func (p Poly) IsConst() bool { return len(p.c) <= 1 }

// IsOne reports whether p == 1.
func (p Poly) IsOne() bool { return len(p.c) == 1 && p.c[0].Cmp(ratOne) == 0 }

// Coeff returns a copy of the coefficient of x^k (zero outside the support).
func (p Poly) Coeff(k int) *big.Rat {
	if k < 0 || k >= len(p.c) {
		return new(big.Rat)
	}

	return new(big.Rat).Set(p.c[k])
}

// Lead returns a copy of the leading coefficient (zero for the zero polynomial).
func (p Poly) Lead() *big.Rat { return p.Coeff(len(p.c) - 1) }

// Coeffs returns copies of the ascending coefficients.
func (p Poly) Coeffs() []*big.Rat {
	out := make([]*big.Rat, len(p.c))
	for k, v := range p.c {
		out[k] = new(big.Rat).Set(v)
	}

	return out
}

// Equal reports exact coefficient equality.
func (p Poly) Equal(q Poly) bool {
	if len(p.c) != len(q.c) {
		return false
	}
	for k := range p.c {
		if p.c[k].Cmp(q.c[k]) != 0 {
			return false
		}
	}

	return true
}

// Add returns p + q.
func (p Poly) Add(q Poly) Poly {
	n := max(len(p.c), len(q.c))
	c := make([]*big.Rat, n)
	for k := 0; k < n; k++ {
		c[k] = new(big.Rat)
		if k < len(p.c) {
			c[k].Add(c[k], p.c[k])
		}
		if k < len(q.c) {
			c[k].Add(c[k], q.c[k])
		}
	}

	return trim(c)
}

// Sub returns p - q.
func (p Poly) Sub(q Poly) Poly { return p.Add(q.Neg()) }

// Neg returns -p.
func (p Poly) Neg() Poly {
	c := make([]*big.Rat, len(p.c))
	for k, v := range p.c {
		c[k] = new(big.Rat).Neg(v)
	}

	return Poly{c: c}
}

// Scale returns r·p.
func (p Poly) Scale(r *big.Rat) Poly {
	if r.Sign() == 0 {
		return Poly{}
	}
	c := make([]*big.Rat, len(p.c))
	for k, v := range p.c {
		c[k] = new(big.Rat).Mul(v, r)
	}

	return Poly{c: c}
}

// Mul returns p·q (schoolbook convolution).
func (p Poly) Mul(q Poly) Poly {
	if p.IsZero() || q.IsZero() {
		return Poly{}
	}
	c := make([]*big.Rat, len(p.c)+len(q.c)-1)
	for k := range c {
		c[k] = new(big.Rat)
	}
	tmp := new(big.Rat)
	var i, j int
	for i = 0; i < len(p.c); i++ {
		if p.c[i].Sign() == 0 {
			continue
		}
		for j = 0; j < len(q.c); j++ {
			tmp.Mul(p.c[i], q.c[j])
			c[i+j].Add(c[i+j], tmp)
		}
	}

	return trim(c)
}

// QuoRem performs exact Euclidean division p = quo·q + rem with deg rem < deg q.
//
// Errors:
//   - ErrDivByZero when q is the zero polynomial.
//
// Complexity:
//   - Time O(deg p · deg q), Space O(deg p).
func (p Poly) QuoRem(q Poly) (quo, rem Poly, err error) {
	if q.IsZero() {
		return Poly{}, Poly{}, fmt.Errorf("QuoRem: %w", ErrDivByZero)
	}
	quo, rem = p.quoRem(q)

	return quo, rem, nil
}

// quoRem assumes q != 0.
func (p Poly) quoRem(q Poly) (Poly, Poly) {
	if p.Degree() < q.Degree() {
		return Poly{}, p
	}
	r := p.Coeffs()
	dq := q.Degree()
	qc := make([]*big.Rat, p.Degree()-dq+1)
	for k := range qc {
		qc[k] = new(big.Rat)
	}
	lead := q.c[dq]
	tmp := new(big.Rat)
	var k, j int
	for k = p.Degree(); k >= dq; k-- {
		if r[k].Sign() == 0 {
			continue
		}
		f := new(big.Rat).Quo(r[k], lead)
		qc[k-dq] = f
		for j = 0; j <= dq; j++ {
			tmp.Mul(f, q.c[j])
			r[k-dq+j].Sub(r[k-dq+j], tmp)
		}
	}

	return trim(qc), trim(r[:dq])
}

// Quo returns the Euclidean quotient; it assumes q divides p or the
// remainder is irrelevant. A zero divisor panics (programmer error).
func (p Poly) Quo(q Poly) Poly {
	if q.IsZero() {
		panic("ratfunc: Quo: zero divisor")
	}
	quo, _ := p.quoRem(q)

	return quo
}

// Rem returns the Euclidean remainder. A zero divisor panics (programmer error).
func (p Poly) Rem(q Poly) Poly {
	if q.IsZero() {
		panic("ratfunc: Rem: zero divisor")
	}
	_, rem := p.quoRem(q)

	return rem
}

// Monic returns p scaled so its leading coefficient is 1 (zero stays zero).
func (p Poly) Monic() Poly {
	if p.IsZero() {
		return p
	}
	lead := p.c[len(p.c)-1]
	if lead.Cmp(ratOne) == 0 {
		return p
	}

	return p.Scale(new(big.Rat).Inv(lead))
}

// Deriv returns dp/dx.
func (p Poly) Deriv() Poly {
	if len(p.c) <= 1 {
		return Poly{}
	}
	c := make([]*big.Rat, len(p.c)-1)
	for k := 1; k < len(p.c); k++ {
		c[k-1] = new(big.Rat).Mul(p.c[k], new(big.Rat).SetInt64(int64(k)))
	}

	return trim(c)
}

// Eval returns p(x) exactly (Horner scheme).
func (p Poly) Eval(x *big.Rat) *big.Rat {
	acc := new(big.Rat)
	for k := len(p.c) - 1; k >= 0; k-- {
		acc.Mul(acc, x)
		acc.Add(acc, p.c[k])
	}

	return acc
}

// Sign returns the sign of p(x): -1, 0 or +1.
func (p Poly) Sign(x *big.Rat) int { return p.Eval(x).Sign() }

// GCD returns the monic greatest common divisor of a and b.
// GCD(0, 0) is the zero polynomial.
//
// Implementation:
//   - Stage 1: classical Euclid on rational coefficients.
//   - Stage 2: normalize the last nonzero remainder to monic form.
//
// Complexity:
//   - Time O(d²) rational operations per step, O(d) steps.
func GCD(a, b Poly) Poly {
	for !b.IsZero() {
		a, b = b, a.Rem(b)
	}

	return a.Monic()
}

var ratOne = big.NewRat(1, 1)
