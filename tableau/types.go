// SPDX-License-Identifier: MIT

// Package tableau: Basis bookkeeping.
// Pivot kernels never touch the basis; callers update it after every pivot.

package tableau

import (
	"fmt"
	"strconv"
	"strings"
)

// Basis maps each row to the column currently basic in it.
// For an n-row tableau, basis[i] ∈ {i, n+i}: row i carries w_i or z_i.
type Basis []int

// InitialBasis returns [0, 1, ..., n-1]: every w_i basic.
func InitialBasis(n int) Basis {
	b := make(Basis, n)
	for i := range b {
		b[i] = i
	}

	return b
}

// Clone returns an independent copy.
func (b Basis) Clone() Basis {
	if b == nil {
		return nil
	}
	out := make(Basis, len(b))
	copy(out, b)

	return out
}

// Equal reports element-wise equality.
func (b Basis) Equal(o Basis) bool {
	if len(b) != len(o) {
		return false
	}
	for i := range b {
		if b[i] != o[i] {
			return false
		}
	}

	return true
}

// Complement returns the column of the complement of the variable basic in row i:
// w_i (column i) ↔ z_i (column n+i).
func (b Basis) Complement(i int) int {
	n := len(b)

	return (b[i] + n) % (2 * n)
}

// IsW reports whether row i currently carries w_i.
func (b Basis) IsW(i int) bool { return b[i] < len(b) }

// Validate checks length, range, pairwise distinctness and pair consistency.
//
// Errors:
//   - ErrBadBasis on any violation.
func (b Basis) Validate(n int) error {
	if len(b) != n {
		return tableauErrorf(opBasis, fmt.Errorf("length %d, want %d: %w", len(b), n, ErrBadBasis))
	}
	seen := make([]bool, 2*n)
	for i, col := range b {
		if col < 0 || col >= 2*n {
			return tableauErrorf(opBasis, fmt.Errorf("row %d: column %d out of range: %w", i, col, ErrBadBasis))
		}
		if seen[col] {
			return tableauErrorf(opBasis, fmt.Errorf("row %d: column %d repeated: %w", i, col, ErrBadBasis))
		}
		seen[col] = true
		if col != i && col != n+i {
			return tableauErrorf(opBasis, fmt.Errorf("row %d: column %d is not w_%d or z_%d: %w", i, col, i+1, i+1, ErrBadBasis))
		}
	}

	return nil
}

// String renders the basis with variable names, e.g. "[w_1 z_2]".
func (b Basis) String() string {
	parts := make([]string, len(b))
	for i := range b {
		if b.IsW(i) {
			parts[i] = "w_" + strconv.Itoa(i+1)
		} else {
			parts[i] = "z_" + strconv.Itoa(i+1)
		}
	}

	return "[" + strings.Join(parts, " ") + "]"
}
