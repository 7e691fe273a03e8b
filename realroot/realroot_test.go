// Package realroot_test verifies square-free decomposition, Sturm counting,
// exact root isolation and exact comparisons of algebraic numbers.
package realroot_test

import (
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/uplcp/ratfunc"
	"github.com/katalvlaran/uplcp/realroot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rat(a, b int64) *big.Rat { return big.NewRat(a, b) }

func TestSquareFree_Multiplicities(t *testing.T) {
	t.Parallel()

	// (x-2)^2 (x+1)^3 (x^2-2)
	x2 := ratfunc.NewPolyInt(-2, 1)
	x1 := ratfunc.NewPolyInt(1, 1)
	q := ratfunc.NewPolyInt(-2, 0, 1)
	p := x2.Mul(x2).Mul(x1).Mul(x1).Mul(x1).Mul(q)

	got := map[int]string{}
	for _, f := range realroot.SquareFree(p) {
		got[f.Multiplicity] = f.Poly.String()
	}
	want := map[int]string{1: "x^2 - 2", 2: "x - 2", 3: "x + 1"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("SquareFree mismatch (-want +got):\n%s", diff)
	}

	assert.Empty(t, realroot.SquareFree(ratfunc.ConstInt(7)))
}

func TestChain_Counts(t *testing.T) {
	t.Parallel()

	// (x-1)(x-2)(x-3) = x^3 - 6x^2 + 11x - 6
	p := ratfunc.NewPolyInt(-6, 11, -6, 1)
	c := realroot.NewChain(p)
	assert.Equal(t, 3, c.CountHalfOpen(rat(0, 1), rat(4, 1)))
	assert.Equal(t, 2, c.CountHalfOpen(rat(1, 1), rat(3, 1))) // (1,3] holds 2 and 3
	assert.Equal(t, 1, c.CountOpen(rat(1, 1), rat(3, 1)))     // (1,3) holds 2
	assert.Equal(t, 0, c.CountOpen(rat(3, 1), rat(3, 1)))
}

func TestIsolate_RationalAndIrrational(t *testing.T) {
	t.Parallel()

	// (x-2)^2 (x^2-2): roots -√2, √2 (odd), 2 (even)
	x2 := ratfunc.NewPolyInt(-2, 1)
	p := x2.Mul(x2).Mul(ratfunc.NewPolyInt(-2, 0, 1))

	roots, err := realroot.Isolate(p, rat(-10, 1), rat(10, 1))
	require.NoError(t, err)
	require.Len(t, roots, 3)

	assert.InDelta(t, -math.Sqrt2, roots[0].Value.Float64(), 1e-12)
	assert.False(t, roots[0].Value.IsRational())
	assert.True(t, roots[0].OddMultiplicity())

	assert.InDelta(t, math.Sqrt2, roots[1].Value.Float64(), 1e-12)
	assert.Equal(t, 1, roots[1].Multiplicity)

	v, ok := roots[2].Value.Rat()
	require.True(t, ok)
	assert.Equal(t, "2", v.RatString())
	assert.Equal(t, 2, roots[2].Multiplicity)
	assert.False(t, roots[2].OddMultiplicity())
}

func TestIsolate_NonDyadicRationalRoots(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		p    ratfunc.Poly
		want []string
	}{
		// (x-2)(x-8) = x^2 - 10x + 16
		{"integer roots", ratfunc.NewPolyInt(16, -10, 1), []string{"2", "8"}},
		// 9x^2 - 1
		{"thirds", ratfunc.NewPolyInt(-1, 0, 9), []string{"1/3"}},
		// (x - 7)(x^2 - 2) = x^3 - 7x^2 - 2x + 14
		{"rational beside irrational", ratfunc.NewPolyInt(14, -2, -7, 1), []string{"1.4142135623731", "7"}},
		// x^2/2 - 13x/6 + 1 = (x - 3)(x - 2/3)/2
		{"rational coefficients", ratfunc.NewPoly(rat(1, 1), rat(-13, 6), rat(1, 2)), []string{"2/3", "3"}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			roots, err := realroot.Isolate(tc.p, rat(0, 1), rat(10, 1))
			require.NoError(t, err)
			require.Len(t, roots, len(tc.want))
			for i, r := range roots {
				assert.Equal(t, tc.want[i], r.Value.String())
				_, ok := r.Value.Rat()
				assert.Equal(t, !strings.Contains(tc.want[i], "."), ok, "root %s", tc.want[i])
			}
		})
	}
}

func TestIsolate_ClosedEndsAndWindow(t *testing.T) {
	t.Parallel()

	// (x-1)(x-2)(x-3)
	p := ratfunc.NewPolyInt(-6, 11, -6, 1)
	roots, err := realroot.Isolate(p, rat(1, 1), rat(2, 1))
	require.NoError(t, err)
	require.Len(t, roots, 2)
	assert.Equal(t, "1", roots[0].Value.String())
	assert.Equal(t, "2", roots[1].Value.String())

	roots, err = realroot.Isolate(p, rat(4, 1), rat(9, 1))
	require.NoError(t, err)
	assert.Empty(t, roots)

	roots, err = realroot.Isolate(ratfunc.ConstInt(3), rat(0, 1), rat(1, 1))
	require.NoError(t, err)
	assert.Empty(t, roots)
}

func TestIsolate_Errors(t *testing.T) {
	t.Parallel()

	_, err := realroot.Isolate(ratfunc.Poly{}, rat(0, 1), rat(1, 1))
	assert.ErrorIs(t, err, realroot.ErrZeroPoly)

	_, err = realroot.Isolate(ratfunc.X(), rat(2, 1), rat(1, 1))
	assert.ErrorIs(t, err, realroot.ErrBadInterval)
}

func TestReal_ExactComparisons(t *testing.T) {
	t.Parallel()

	sqrt2 := mustRoot(t, ratfunc.NewPolyInt(-2, 0, 1), rat(0, 1), rat(2, 1))
	// √2 is also a root of x^4 - 4 = (x^2-2)(x^2+2)
	sqrt2b := mustRoot(t, ratfunc.NewPolyInt(-4, 0, 0, 0, 1), rat(1, 1), rat(3, 1))
	sqrt3 := mustRoot(t, ratfunc.NewPolyInt(-3, 0, 1), rat(0, 1), rat(2, 1))

	assert.Equal(t, 0, sqrt2.Cmp(sqrt2b))
	assert.Equal(t, -1, sqrt2.Cmp(sqrt3))
	assert.Equal(t, 1, sqrt3.Cmp(sqrt2))
	assert.Equal(t, 1, sqrt2.CmpRat(rat(141, 100)))
	assert.Equal(t, -1, sqrt2.CmpRat(rat(142, 100)))
	assert.Equal(t, -1, realroot.FromInt(1).Cmp(sqrt2))
	assert.True(t, realroot.Min(sqrt2, sqrt3).Equal(sqrt2))
	assert.True(t, realroot.Max(sqrt2, sqrt3).Equal(sqrt3))

	assert.Equal(t, "1", sqrt2.FloorBound().RatString())
	assert.Equal(t, "2", sqrt2.CeilBound().RatString())
	assert.Equal(t, "-3", realroot.FromRat(rat(-5, 2)).FloorBound().RatString())
	assert.Equal(t, "-2", realroot.FromRat(rat(-5, 2)).CeilBound().RatString())
	assert.Equal(t, "1.4142135623731", sqrt2.String())
}

func TestMidpoint(t *testing.T) {
	t.Parallel()

	m, err := realroot.Midpoint(realroot.FromInt(0), realroot.FromInt(5))
	require.NoError(t, err)
	assert.Equal(t, "5/2", m.RatString())

	sqrt2 := mustRoot(t, ratfunc.NewPolyInt(-2, 0, 1), rat(0, 1), rat(2, 1))
	m, err = realroot.Midpoint(sqrt2, realroot.FromInt(2))
	require.NoError(t, err)
	assert.Equal(t, -1, sqrt2.CmpRat(m))
	assert.Equal(t, 1, m.Cmp(rat(1, 1)))

	_, err = realroot.Midpoint(realroot.FromInt(3), realroot.FromInt(3))
	assert.ErrorIs(t, err, realroot.ErrBadInterval)
}

func mustRoot(t *testing.T, p ratfunc.Poly, lo, hi *big.Rat) realroot.Real {
	t.Helper()
	roots, err := realroot.Isolate(p, lo, hi)
	require.NoError(t, err)
	require.Len(t, roots, 1)

	return roots[0].Value
}
