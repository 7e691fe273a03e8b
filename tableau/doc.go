// SPDX-License-Identifier: MIT

// Package tableau holds the exact complementarity tableau and the Pivot Engine.
//
// The tableau provides:
//
//   - Tableau: n rows × (2n+1) columns of ratfunc.RatFunc entries. Columns
//     [0,n) belong to the w variables, [n,2n) to their complements z, and the
//     last column is the right-hand side (RHS).
//   - Basis: which column is basic in each row. Row i always carries one
//     member of the complementary pair (w_i, z_i).
//   - PrincipalPivot / ExchangePivot: exact Gauss–Jordan kernels. No rounding
//     is ever introduced; a zero pivot is reported as ErrPivotSingular.
//
// Tableaux are plain values behind a pointer: Clone is a full deep copy and
// the entries themselves are immutable, so a cloned snapshot never shares
// mutable state with its origin. Pivoting is not synchronized; each
// goroutine must own the tableau it mutates.
//
// Quick example (one row: w - z = x - 5):
//
//	t, _ := tableau.New(1)
//	_ = t.Set(0, 0, ratfunc.One())
//	_ = t.Set(0, 1, ratfunc.FromInt(-1))
//	_ = t.Set(0, 2, ratfunc.FromPoly(ratfunc.NewPolyInt(-5, 1)))
//	_ = tableau.PrincipalPivot(t, 0, 1) // -w + z = 5 - x
package tableau
