// Package ratfunc_test verifies exact polynomial and rational-function arithmetic.
package ratfunc_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/uplcp/ratfunc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoly_ArithmeticAndFormat(t *testing.T) {
	t.Parallel()

	p := ratfunc.NewPolyInt(-5, 1)    // x - 5
	q := ratfunc.NewPolyInt(1, -3, 1) // x^2 - 3x + 1

	assert.Equal(t, "x - 5", p.String())
	assert.Equal(t, "x^2 - 3*x + 1", q.String())
	assert.Equal(t, "x^2 - 2*x - 4", p.Add(q).String())
	assert.Equal(t, "-x^2 + 4*x - 6", p.Sub(q).String())
	assert.Equal(t, "x^3 - 8*x^2 + 16*x - 5", p.Mul(q).String())
	assert.Equal(t, "2*x - 3", q.Deriv().String())
	assert.Equal(t, -1, ratfunc.ConstInt(0).Degree())
	assert.Equal(t, "0", ratfunc.Poly{}.String())
	assert.Equal(t, "1/2*x", ratfunc.NewPoly(nil, big.NewRat(1, 2)).String())
	assert.Equal(t, "-x", ratfunc.NewPolyInt(0, -1).String())
}

func TestPoly_TrailingZerosTrimmed(t *testing.T) {
	t.Parallel()

	p := ratfunc.NewPolyInt(1, 2, 0, 0)
	assert.Equal(t, 1, p.Degree())
	assert.True(t, p.Sub(p).IsZero())
	assert.Equal(t, -1, p.Sub(p).Degree())
}

func TestPoly_QuoRem(t *testing.T) {
	t.Parallel()

	// (x^3 - 8x^2 + 16x - 5) = (x - 5)(x^2 - 3x + 1)
	p := ratfunc.NewPolyInt(-5, 16, -8, 1)
	q := ratfunc.NewPolyInt(-5, 1)
	quo, rem, err := p.QuoRem(q)
	require.NoError(t, err)
	assert.True(t, rem.IsZero())
	assert.Equal(t, "x^2 - 3*x + 1", quo.String())

	// x^2 + 1 = x·x + 1
	quo, rem, err = ratfunc.NewPolyInt(1, 0, 1).QuoRem(ratfunc.X())
	require.NoError(t, err)
	assert.Equal(t, "x", quo.String())
	assert.Equal(t, "1", rem.String())

	_, _, err = p.QuoRem(ratfunc.Poly{})
	assert.ErrorIs(t, err, ratfunc.ErrDivByZero)
}

func TestPoly_GCD(t *testing.T) {
	t.Parallel()

	a := ratfunc.NewPolyInt(-1, 0, 1)       // x^2 - 1
	b := ratfunc.NewPolyInt(2, -2)          // 2 - 2x
	c := ratfunc.NewPolyInt(6, -5, 1)       // (x-2)(x-3)
	assert.Equal(t, "x - 1", ratfunc.GCD(a, b).String())
	assert.Equal(t, "1", ratfunc.GCD(a, c).String())
	assert.True(t, ratfunc.GCD(ratfunc.Poly{}, ratfunc.Poly{}).IsZero())
	assert.Equal(t, "x^2 - 1", ratfunc.GCD(a, ratfunc.Poly{}).String())
}

func TestPoly_Eval(t *testing.T) {
	t.Parallel()

	q := ratfunc.NewPolyInt(1, -3, 1)
	assert.Equal(t, "-1", q.Eval(big.NewRat(2, 1)).RatString())
	assert.Equal(t, "-5/4", q.Eval(big.NewRat(3, 2)).RatString())
	assert.Equal(t, 0, ratfunc.NewPolyInt(-5, 1).Sign(big.NewRat(5, 1)))
}

func TestRatFunc_CanonicalForm(t *testing.T) {
	t.Parallel()

	// -1/(5 - x) == 1/(x - 5)
	f, err := ratfunc.New(ratfunc.ConstInt(-1), ratfunc.NewPolyInt(5, -1))
	require.NoError(t, err)
	assert.Equal(t, "1/(x - 5)", f.String())
	assert.Equal(t, "x - 5", f.Den().String())

	// (x^2 - 1)/(x - 1) == x + 1
	g, err := ratfunc.New(ratfunc.NewPolyInt(-1, 0, 1), ratfunc.NewPolyInt(-1, 1))
	require.NoError(t, err)
	assert.True(t, g.IsPoly())
	assert.Equal(t, "x + 1", g.String())

	// (2x)/(4x + 2) == x/(2x + 1) == (1/2*x)/(x + 1/2)
	h, err := ratfunc.New(ratfunc.NewPolyInt(0, 2), ratfunc.NewPolyInt(2, 4))
	require.NoError(t, err)
	assert.Equal(t, "(1/2*x)/(x + 1/2)", h.String())

	_, err = ratfunc.New(ratfunc.X(), ratfunc.Poly{})
	assert.ErrorIs(t, err, ratfunc.ErrDivByZero)

	assert.True(t, ratfunc.Zero().IsZero())
	assert.True(t, ratfunc.One().IsOne())
	assert.Equal(t, "0", ratfunc.RatFunc{}.String())
}

func TestRatFunc_FieldOperations(t *testing.T) {
	t.Parallel()

	x := ratfunc.FromPoly(ratfunc.X())
	one := ratfunc.One()
	f, err := one.Quo(x.Sub(ratfunc.FromInt(5))) // 1/(x-5)
	require.NoError(t, err)

	sum := f.Add(f)
	assert.Equal(t, "2/(x - 5)", sum.String())

	prod := f.Mul(x.Sub(ratfunc.FromInt(5)))
	assert.True(t, prod.IsOne())

	back := sum.Sub(f).Sub(f)
	assert.True(t, back.IsZero())

	_, err = f.Quo(ratfunc.Zero())
	assert.ErrorIs(t, err, ratfunc.ErrDivByZero)

	// mixed denominators: 1/x + 1/(x+1) = (2x+1)/(x^2+x)
	a, err := one.Quo(x)
	require.NoError(t, err)
	b, err := one.Quo(x.Add(one))
	require.NoError(t, err)
	assert.Equal(t, "(2*x + 1)/(x^2 + x)", a.Add(b).String())
	assert.True(t, a.Add(b).Equal(b.Add(a)))
}

func TestRatFunc_Eval(t *testing.T) {
	t.Parallel()

	f, err := ratfunc.New(ratfunc.ConstInt(1), ratfunc.NewPolyInt(-5, 1))
	require.NoError(t, err)

	v, err := f.Eval(big.NewRat(7, 1))
	require.NoError(t, err)
	assert.Equal(t, "1/2", v.RatString())

	sgn, err := f.Sign(big.NewRat(3, 1))
	require.NoError(t, err)
	assert.Equal(t, -1, sgn)

	_, err = f.Eval(big.NewRat(5, 1))
	assert.ErrorIs(t, err, ratfunc.ErrPole)
}
