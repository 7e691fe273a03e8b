// SPDX-License-Identifier: MIT

// Package ratfunc - rational functions Num/Den.
//
// Canonical form (enforced by every constructor and operation):
//   - gcd(Num, Den) = 1;
//   - Den is monic (leading coefficient 1), hence never zero;
//   - the zero function is 0/1.
//
// Canonical form makes Equal a plain structural comparison and keeps the
// sign of Den at a point meaningful for region inequalities.

package ratfunc

import (
	"fmt"
	"math/big"
)

// RatFunc is an immutable rational function Num(x)/Den(x).
// The zero value is the zero function.
type RatFunc struct {
	num Poly
	den Poly // zero-value Poly is read as 1 through d()
}

// New builds num/den in canonical form.
//
// Errors:
//   - ErrDivByZero when den is the zero polynomial.
func New(num, den Poly) (RatFunc, error) {
	if den.IsZero() {
		return RatFunc{}, fmt.Errorf("New: %w", ErrDivByZero)
	}

	return normalize(num, den), nil
}

// FromPoly lifts a polynomial into a rational function with denominator 1.
func FromPoly(p Poly) RatFunc { return RatFunc{num: p, den: ConstInt(1)} }

// FromRat returns the constant rational function r.
func FromRat(r *big.Rat) RatFunc { return FromPoly(Const(r)) }

// FromInt returns the constant rational function v.
func FromInt(v int64) RatFunc { return FromPoly(ConstInt(v)) }

// Zero returns the zero function.
func Zero() RatFunc { return RatFunc{} }

// One returns the constant 1.
func One() RatFunc { return FromInt(1) }

// normalize reduces num/den to canonical form; den must be nonzero.
func normalize(num, den Poly) RatFunc {
	if num.IsZero() {
		return RatFunc{num: Poly{}, den: ConstInt(1)}
	}
	if !den.IsConst() {
		if g := GCD(num, den); !g.IsOne() {
			num = num.Quo(g)
			den = den.Quo(g)
		}
	}
	if lead := den.Lead(); lead.Cmp(ratOne) != 0 {
		inv := new(big.Rat).Inv(lead)
		num = num.Scale(inv)
		den = den.Scale(inv)
	}

	return RatFunc{num: num, den: den}
}

func (f RatFunc) d() Poly {
	if f.den.IsZero() {
		return ConstInt(1)
	}

	return f.den
}

// Num returns the canonical numerator.
func (f RatFunc) Num() Poly { return f.num }

// Den returns the canonical (monic) denominator.
func (f RatFunc) Den() Poly { return f.d() }

// IsZero reports whether f is identically zero.
func (f RatFunc) IsZero() bool { return f.num.IsZero() }

// IsOne reports whether f is identically one.
func (f RatFunc) IsOne() bool { return f.num.IsOne() && f.d().IsOne() }

// IsConst reports whether f is a constant rational number.
func (f RatFunc) IsConst() bool { return f.num.IsConst() && f.d().IsConst() }

// IsPoly reports whether the denominator is 1.
func (f RatFunc) IsPoly() bool { return f.d().IsConst() }

// Equal reports exact equality (canonical forms compared structurally).
func (f RatFunc) Equal(g RatFunc) bool {
	return f.num.Equal(g.num) && f.d().Equal(g.d())
}

// Neg returns -f.
func (f RatFunc) Neg() RatFunc { return RatFunc{num: f.num.Neg(), den: f.d()} }

// Add returns f + g.
func (f RatFunc) Add(g RatFunc) RatFunc {
	fd, gd := f.d(), g.d()
	if fd.Equal(gd) {
		return normalize(f.num.Add(g.num), fd)
	}

	return normalize(f.num.Mul(gd).Add(g.num.Mul(fd)), fd.Mul(gd))
}

// Sub returns f - g.
func (f RatFunc) Sub(g RatFunc) RatFunc { return f.Add(g.Neg()) }

// Mul returns f·g.
func (f RatFunc) Mul(g RatFunc) RatFunc {
	if f.IsZero() || g.IsZero() {
		return Zero()
	}

	return normalize(f.num.Mul(g.num), f.d().Mul(g.d()))
}

// Quo returns f/g.
//
// Errors:
//   - ErrDivByZero when g is identically zero.
func (f RatFunc) Quo(g RatFunc) (RatFunc, error) {
	if g.IsZero() {
		return RatFunc{}, fmt.Errorf("Quo: %w", ErrDivByZero)
	}

	return normalize(f.num.Mul(g.d()), f.d().Mul(g.num)), nil
}

// Eval returns f(x) exactly.
//
// Errors:
//   - ErrPole when Den(x) == 0.
func (f RatFunc) Eval(x *big.Rat) (*big.Rat, error) {
	dv := f.d().Eval(x)
	if dv.Sign() == 0 {
		return nil, fmt.Errorf("Eval(%s): %w", x.RatString(), ErrPole)
	}

	return dv.Quo(f.num.Eval(x), dv), nil
}

// Sign returns the sign of f(x).
//
// Errors:
//   - ErrPole when Den(x) == 0.
func (f RatFunc) Sign(x *big.Rat) (int, error) {
	v, err := f.Eval(x)
	if err != nil {
		return 0, err
	}

	return v.Sign(), nil
}
