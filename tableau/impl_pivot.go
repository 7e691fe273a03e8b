// SPDX-License-Identifier: MIT

// Package tableau - Pivot Engine kernels.
//
// Purpose:
//   - PrincipalPivot: exact Gauss–Jordan step making column j the unit vector e_i.
//   - ExchangePivot: two principal pivots plus a row swap, exchanging the basic
//     status of two complementary pairs atomically.
//
// Determinism:
//   - Fixed loop orders (row i first, then rows 0..n-1, columns 0..2n).
//   - Exact arithmetic; results do not depend on evaluation order.

package tableau

import (
	"fmt"

	"github.com/katalvlaran/uplcp/ratfunc"
)

// PrincipalPivot performs an exact principal pivot on entry (i, j).
//
// Implementation:
//   - Stage 1: validate indices and the pivot entry (must not be identically zero).
//   - Stage 2: rescale row i by 1/t[i][j]; the pivot entry is set to exactly 1.
//   - Stage 3: for every other row r with t[r][j] ≠ 0: row_r ← row_r − t[r][j]·row_i,
//     using the already rescaled row i. Column j becomes e_i.
//
// Behavior highlights:
//   - No rounding: entries are exact rational functions in canonical form.
//   - Basis bookkeeping is the caller's job (typically basis[i] = j).
//   - Fails before any mutation, so the tableau is untouched on error.
//
// Inputs:
//   - t: tableau (non-nil).
//   - i: pivot row, 0 ≤ i < n.
//   - j: pivot column, 0 ≤ j < 2n+1.
//
// Errors:
//   - ErrNilTableau, ErrOutOfRange, ErrPivotSingular (all wrapped with "PrincipalPivot").
//
// Complexity:
//   - Time O(n²) rational-function operations, Space O(1) extra.
//
// AI-Hints:
//   - Pivoting twice on the same (i, j) is a no-op: the pivot is 1 and the
//     column is already a unit vector.
func PrincipalPivot(t *Tableau, i, j int) error {
	if t == nil {
		return tableauErrorf(opPrincipal, ErrNilTableau)
	}
	off, err := t.indexOf(i, j)
	if err != nil {
		return tableauErrorf(opPrincipal, fmt.Errorf("(%d,%d): %w", i, j, err))
	}
	pivot := t.data[off]
	if pivot.IsZero() {
		return tableauErrorf(opPrincipal, fmt.Errorf("(%d,%d): %w", i, j, ErrPivotSingular))
	}

	// Rescale the pivot row.
	base := i * t.c
	var k int
	if !pivot.IsOne() {
		for k = 0; k < t.c; k++ {
			if k == j {
				continue
			}
			// pivot is nonzero, Quo cannot fail
			t.data[base+k], _ = t.data[base+k].Quo(pivot)
		}
		t.data[off] = ratfunc.One()
	}

	// Eliminate column j from every other row.
	var r, rb int
	for r = 0; r < t.n; r++ {
		if r == i {
			continue
		}
		rb = r * t.c
		factor := t.data[rb+j]
		if factor.IsZero() {
			continue
		}
		for k = 0; k < t.c; k++ {
			if k == j {
				t.data[rb+k] = ratfunc.Zero()
				continue
			}
			if t.data[base+k].IsZero() {
				continue
			}
			t.data[rb+k] = t.data[rb+k].Sub(factor.Mul(t.data[base+k]))
		}
	}

	return nil
}

// ExchangePivot exchanges two complementary pairs between basic and non-basic status.
//
// Implementation:
//   - Stage 1: PrincipalPivot(i, jComp) on a working copy.
//   - Stage 2: PrincipalPivot(j, iComp) on the state produced by Stage 1.
//   - Stage 3: swap rows i and j, so row i carries pair i and row j pair j again.
//   - Stage 4: commit the working copy into t.
//
// Behavior highlights:
//   - Atomic: if either internal pivot is singular, t is left untouched.
//   - After success the caller sets basis[i] = iComp and basis[j] = jComp.
//
// Inputs:
//   - i, j: the two rows (i ≠ j).
//   - iComp, jComp: columns of the complements of the variables basic in rows i and j.
//
// Errors:
//   - ErrNilTableau, ErrOutOfRange, ErrPivotSingular (wrapped with "ExchangePivot").
//
// Complexity:
//   - Time O(n²) rational-function operations, Space O(n²) for the working copy.
func ExchangePivot(t *Tableau, i, iComp, j, jComp int) error {
	if t == nil {
		return tableauErrorf(opExchange, ErrNilTableau)
	}
	if i == j {
		return tableauErrorf(opExchange, fmt.Errorf("rows %d and %d coincide: %w", i, j, ErrOutOfRange))
	}
	work := t.Clone()
	if err := PrincipalPivot(work, i, jComp); err != nil {
		return tableauErrorf(opExchange, err)
	}
	if err := PrincipalPivot(work, j, iComp); err != nil {
		return tableauErrorf(opExchange, err)
	}
	if err := work.SwapRows(i, j); err != nil {
		return tableauErrorf(opExchange, err)
	}
	t.data = work.data

	return nil
}
