// Package region_test contains unit tests for the Region Boundary Engine
// and the parameter-space domain computation.
package region_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/uplcp/ratfunc"
	"github.com/katalvlaran/uplcp/realroot"
	"github.com/katalvlaran/uplcp/region"
	"github.com/katalvlaran/uplcp/tableau"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withRHS builds the single-row tableau [1, 0, f] with w_1 basic.
func withRHS(t *testing.T, f ratfunc.RatFunc) *tableau.Tableau {
	t.Helper()
	tb, err := tableau.FromRows([][]ratfunc.RatFunc{{ratfunc.One(), ratfunc.Zero(), f}})
	require.NoError(t, err)

	return tb
}

func poly(c ...int64) ratfunc.RatFunc { return ratfunc.FromPoly(ratfunc.NewPolyInt(c...)) }

func interval(lo, hi int64) [2]realroot.Real {
	return [2]realroot.Real{realroot.FromInt(lo), realroot.FromInt(hi)}
}

// extremes builds a Region over [0,10] at point 5 and returns its endpoints.
func extremes(t *testing.T, f ratfunc.RatFunc, space region.ParamSpace) (realroot.Real, realroot.Real) {
	t.Helper()
	r, err := region.New(withRHS(t, f), tableau.InitialBasis(1), big.NewRat(5, 1), 1e-6, space, interval(0, 10))
	require.NoError(t, err)
	L, R, err := r.GetExtremes()
	require.NoError(t, err)

	return L, R
}

func requireRat(t *testing.T, want int64, got realroot.Real) {
	t.Helper()
	q, ok := got.Rat()
	require.True(t, ok, "expected a rational endpoint, got %s", got)
	require.Zero(t, q.Cmp(big.NewRat(want, 1)), "want %d, got %s", want, q.RatString())
}

// TestGetExtremes_Tightening covers the boundary rules on single inequalities.
func TestGetExtremes_Tightening(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		f      ratfunc.RatFunc
		lo, hi int64
	}{
		{name: "constant never tightens", f: poly(4), lo: 0, hi: 10},
		{name: "zero never tightens", f: ratfunc.Zero(), lo: 0, hi: 10},
		{name: "(x-2)^2 is a tangency", f: poly(4, -4, 1), lo: 0, hi: 10},
		{name: "x-2 tightens L", f: poly(-2, 1), lo: 2, hi: 10},
		{name: "8-x tightens R", f: poly(8, -1), lo: 0, hi: 8},
		{name: "root at start with negative slope", f: poly(-5, 1), lo: 5, hi: 10},
		{name: "root at start with positive slope", f: poly(5, -1), lo: 0, hi: 5},
		{name: "-(x-2)(x-8) tightens both", f: poly(-16, 10, -1), lo: 2, hi: 8},
		{name: "(x-2)^3 is odd", f: poly(-8, 12, -6, 1), lo: 2, hi: 10},
		{name: "x^2-144 has no root inside", f: poly(-144, 0, 1), lo: 0, hi: 10},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			L, R := extremes(t, tc.f, nil)
			requireRat(t, tc.lo, L)
			requireRat(t, tc.hi, R)
		})
	}
}

// TestGetExtremes_Denominator flips the inequality when the denominator is negative at the point.
func TestGetExtremes_Denominator(t *testing.T) {
	t.Parallel()

	// D(5) < 0, so the defining inequality is N = x - 3 ≤ 0 and L tightens to 3.
	f, err := ratfunc.New(ratfunc.NewPolyInt(-3, 1), ratfunc.NewPolyInt(-7, 1))
	require.NoError(t, err)

	r, err := region.New(withRHS(t, f), tableau.InitialBasis(1), big.NewRat(5, 1), 1e-6, nil, interval(0, 10))
	require.NoError(t, err)
	require.Len(t, r.DefIneq(), 1)
	assert.Equal(t, "x - 3", r.DefIneq()[0].String())
	assert.Equal(t, "1", r.Grads()[0].String())

	L, R, err := r.GetExtremes()
	require.NoError(t, err)
	requireRat(t, 3, L)
	requireRat(t, 10, R)
}

// TestGetExtremes_Irrational keeps an irrational boundary exact.
func TestGetExtremes_Irrational(t *testing.T) {
	t.Parallel()

	L, R := extremes(t, poly(-2, 0, 1), nil) // x^2 - 2 ≥ 0
	assert.False(t, L.IsRational())
	assert.InDelta(t, 1.4142135623730951, L.Float64(), 1e-12)
	assert.Equal(t, -1, L.CmpRat(big.NewRat(1415, 1000)))
	requireRat(t, 10, R)
}

// TestGetExtremes_ParamSpace appends the restrictions as inequalities.
func TestGetExtremes_ParamSpace(t *testing.T) {
	t.Parallel()

	space := region.ParamSpace{
		{LHS: ratfunc.NewPolyInt(0, -1), RHS: big.NewRat(0, 1)},
		{LHS: ratfunc.NewPolyInt(0, 1), RHS: big.NewRat(10, 1)},
		{LHS: ratfunc.NewPolyInt(0, 0, 1), RHS: big.NewRat(49, 1)},
	}
	r, err := region.New(withRHS(t, poly(1)), tableau.InitialBasis(1), big.NewRat(5, 1), 1e-6, space, interval(0, 10))
	require.NoError(t, err)

	ineq := r.DefIneq()
	require.Len(t, ineq, 4)
	assert.Equal(t, "-1", ineq[0].String())
	assert.Equal(t, "-x", ineq[1].String())
	assert.Equal(t, "x - 10", ineq[2].String())
	assert.Equal(t, "x^2 - 49", ineq[3].String())
	assert.Equal(t, "2*x", r.Grads()[3].String())

	L, R, err := r.GetExtremes()
	require.NoError(t, err)
	requireRat(t, 0, L)
	requireRat(t, 7, R)
}

// TestRegion_Lifecycle checks write-back once, Finalize and the getters.
func TestRegion_Lifecycle(t *testing.T) {
	t.Parallel()

	tb := withRHS(t, poly(-5, 1))
	r, err := region.New(tb, tableau.InitialBasis(1), big.NewRat(5, 1), 1e-3, nil, interval(0, 10), region.WithGradients(false))
	require.NoError(t, err)
	assert.Nil(t, r.Grads())
	assert.Equal(t, 1e-3, r.Eps())
	assert.Zero(t, r.Point().Cmp(big.NewRat(5, 1)))
	assert.False(t, r.Degenerate())

	_, _, err = r.GetExtremes()
	require.NoError(t, err)
	_, _, err = r.GetExtremes()
	require.ErrorIs(t, err, region.ErrAlreadyFinalized)

	ep := r.EndPoints()
	requireRat(t, 5, ep[0])
	requireRat(t, 10, ep[1])

	require.NotNil(t, r.Tableau())
	r.Finalize()
	assert.Nil(t, r.Tableau())
	assert.Equal(t, "x - 5", r.RHS()[0].String())
	assert.True(t, r.Basis().Equal(tableau.Basis{0}))
}

// TestRegion_Degenerate reports a region squeezed to a point.
func TestRegion_Degenerate(t *testing.T) {
	t.Parallel()

	// x - 4 ≥ 0 and 4 - x ≥ 0 hold together only at the point x = 4.
	tb, err := tableau.FromRows([][]ratfunc.RatFunc{
		{ratfunc.One(), ratfunc.Zero(), ratfunc.Zero(), ratfunc.Zero(), poly(-4, 1)},
		{ratfunc.Zero(), ratfunc.One(), ratfunc.Zero(), ratfunc.Zero(), poly(4, -1)},
	})
	require.NoError(t, err)
	r, err := region.New(tb, tableau.InitialBasis(2), big.NewRat(4, 1), 1e-6, nil, interval(0, 10))
	require.NoError(t, err)

	L, R, err := r.GetExtremes()
	require.NoError(t, err)
	requireRat(t, 4, L)
	requireRat(t, 4, R)
	assert.True(t, r.Degenerate())
}

// TestNew_Errors covers the construction preconditions.
func TestNew_Errors(t *testing.T) {
	t.Parallel()

	_, err := region.New(nil, tableau.InitialBasis(1), big.NewRat(5, 1), 0, nil, interval(0, 10))
	require.ErrorIs(t, err, region.ErrNilTableau)

	tb := withRHS(t, poly(1))
	_, err = region.New(tb, tableau.InitialBasis(1), big.NewRat(10, 1), 0, nil, interval(0, 10))
	require.ErrorIs(t, err, region.ErrPointOutside)
	_, err = region.New(tb, tableau.InitialBasis(1), big.NewRat(-1, 1), 0, nil, interval(0, 10))
	require.ErrorIs(t, err, region.ErrPointOutside)

	_, err = region.New(tb, tableau.Basis{0, 1}, big.NewRat(5, 1), 0, nil, interval(0, 10))
	require.ErrorIs(t, err, tableau.ErrBadBasis)
}
