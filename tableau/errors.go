// SPDX-License-Identifier: MIT
// Package tableau: sentinel error set.
// All kernels return these sentinels wrapped with an operation tag via
// tableauErrorf; callers and tests match them with errors.Is. No kernel
// panics on user-triggered conditions.

package tableau

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested or supplied shape is invalid
	// (n ≤ 0, or rows that are not n × (2n+1)).
	ErrBadShape = errors.New("tableau: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("tableau: index out of range")

	// ErrNilTableau indicates a nil *Tableau argument.
	ErrNilTableau = errors.New("tableau: nil tableau")

	// ErrPivotSingular is returned when the pivot entry is identically zero.
	// The tableau is left untouched.
	ErrPivotSingular = errors.New("tableau: pivot entry is zero")

	// ErrBadBasis indicates a basis of the wrong length, with repeated or
	// out-of-range columns, or with a row not carrying its own pair.
	ErrBadBasis = errors.New("tableau: invalid basis")
)

// Operation tags for uniform error wrapping.
const (
	opNew       = "New"
	opFromRows  = "FromRows"
	opAt        = "At"
	opSet       = "Set"
	opSwap      = "SwapRows"
	opEval      = "EvalAt"
	opPrincipal = "PrincipalPivot"
	opExchange  = "ExchangePivot"
	opBasis     = "Basis.Validate"
)

// tableauErrorf wraps err with an operation tag, preserving it for errors.Is.
// err must be non-nil.
func tableauErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
