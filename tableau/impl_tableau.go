// SPDX-License-Identifier: MIT

// Package tableau - row-major storage & safe accessors.
//
// Purpose:
//   - Keep the explicit row-major index formula i*cols + j over a flat buffer.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Deterministic loop orders everywhere (rows, then columns).
//
// Complexity quicksheet:
//   - New: O(n²); At/Set: O(1); Clone: O(n²) (entries are shared, they are immutable);
//     EvalAt: O(n² · d).

package tableau

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/uplcp/ratfunc"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Tableau is an n × (2n+1) matrix of exact rational functions.
type Tableau struct {
	n    int               // number of rows (complementary pairs)
	c    int               // columns == 2n+1
	data []ratfunc.RatFunc // row-major (offset = i*c + j)
}

// New creates an n × (2n+1) zero tableau.
//
// Errors:
//   - ErrBadShape when n ≤ 0.
func New(n int) (*Tableau, error) {
	if n <= 0 {
		return nil, tableauErrorf(opNew, ErrBadShape)
	}
	c := 2*n + 1

	return &Tableau{n: n, c: c, data: make([]ratfunc.RatFunc, n*c)}, nil
}

// NewStandard creates the starting tableau [I | 0 | 0]: every w_i basic in row i.
// Callers fill the z block and the RHS.
func NewStandard(n int) (*Tableau, error) {
	t, err := New(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		t.data[i*t.c+i] = ratfunc.One()
	}

	return t, nil
}

// FromRows builds a tableau from explicit rows (copied).
//
// Errors:
//   - ErrBadShape when rows is empty or any row is not 2·len(rows)+1 wide.
func FromRows(rows [][]ratfunc.RatFunc) (*Tableau, error) {
	n := len(rows)
	if n == 0 {
		return nil, tableauErrorf(opFromRows, ErrBadShape)
	}
	t, err := New(n)
	if err != nil {
		return nil, tableauErrorf(opFromRows, err)
	}
	for i, row := range rows {
		if len(row) != t.c {
			return nil, tableauErrorf(opFromRows, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), t.c, ErrBadShape))
		}
		copy(t.data[i*t.c:(i+1)*t.c], row)
	}

	return t, nil
}

// Size returns n, the number of rows and of complementary pairs.
func (t *Tableau) Size() int { return t.n }

// Cols returns the number of columns (2n+1).
func (t *Tableau) Cols() int { return t.c }

// RHSCol returns the index of the right-hand-side column (2n).
func (t *Tableau) RHSCol() int { return t.c - 1 }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (t *Tableau) indexOf(row, col int) (int, error) {
	if row < 0 || row >= t.n {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= t.c {
		return 0, ErrOutOfRange
	}

	return row*t.c + col, nil
}

// At returns the entry at (row, col).
//
// Errors:
//   - ErrOutOfRange on invalid indices.
func (t *Tableau) At(row, col int) (ratfunc.RatFunc, error) {
	off, err := t.indexOf(row, col)
	if err != nil {
		return ratfunc.RatFunc{}, tableauErrorf(opAt, fmt.Errorf("(%d,%d): %w", row, col, err))
	}

	return t.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange on invalid indices.
func (t *Tableau) Set(row, col int, v ratfunc.RatFunc) error {
	off, err := t.indexOf(row, col)
	if err != nil {
		return tableauErrorf(opSet, fmt.Errorf("(%d,%d): %w", row, col, err))
	}
	t.data[off] = v

	return nil
}

// Row returns a copy of row i (nil when out of range).
func (t *Tableau) Row(i int) []ratfunc.RatFunc {
	if i < 0 || i >= t.n {
		return nil
	}
	out := make([]ratfunc.RatFunc, t.c)
	copy(out, t.data[i*t.c:(i+1)*t.c])

	return out
}

// RHS returns a copy of the right-hand-side column.
func (t *Tableau) RHS() []ratfunc.RatFunc {
	out := make([]ratfunc.RatFunc, t.n)
	for i := 0; i < t.n; i++ {
		out[i] = t.data[i*t.c+t.c-1]
	}

	return out
}

// SwapRows exchanges rows i and j in place.
//
// Errors:
//   - ErrOutOfRange on invalid indices.
func (t *Tableau) SwapRows(i, j int) error {
	if i < 0 || i >= t.n || j < 0 || j >= t.n {
		return tableauErrorf(opSwap, fmt.Errorf("(%d,%d): %w", i, j, ErrOutOfRange))
	}
	if i == j {
		return nil
	}
	ri := t.data[i*t.c : (i+1)*t.c]
	rj := t.data[j*t.c : (j+1)*t.c]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}

	return nil
}

// Clone returns a deep copy: a new buffer holding the same immutable entries.
// Mutations of the clone (Set, pivots, swaps) never affect the original.
func (t *Tableau) Clone() *Tableau {
	cp := make([]ratfunc.RatFunc, len(t.data))
	copy(cp, t.data)

	return &Tableau{n: t.n, c: t.c, data: cp}
}

// Equal reports exact entry-wise equality (shape included).
func (t *Tableau) Equal(o *Tableau) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.n != o.n {
		return false
	}
	for k := range t.data {
		if !t.data[k].Equal(o.data[k]) {
			return false
		}
	}

	return true
}

// EvalAt evaluates every entry at the rational point x.
//
// Errors:
//   - ratfunc.ErrPole (wrapped) when an entry has a pole at x.
func (t *Tableau) EvalAt(x *big.Rat) ([][]*big.Rat, error) {
	out := make([][]*big.Rat, t.n)
	var err error
	for i := 0; i < t.n; i++ {
		out[i] = make([]*big.Rat, t.c)
		for j := 0; j < t.c; j++ {
			if out[i][j], err = t.data[i*t.c+j].Eval(x); err != nil {
				return nil, tableauErrorf(opEval, fmt.Errorf("(%d,%d): %w", i, j, err))
			}
		}
	}

	return out, nil
}

// IsNumeric reports whether every entry is a constant rational number.
func (t *Tableau) IsNumeric() bool {
	for _, v := range t.data {
		if !v.IsConst() {
			return false
		}
	}

	return true
}

// String renders the tableau row by row for diagnostics.
func (t *Tableau) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < t.n; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < t.c; j++ {
			b.WriteString(t.data[i*t.c+j].String())
			if j+1 < t.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
