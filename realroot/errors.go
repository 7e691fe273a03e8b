// SPDX-License-Identifier: MIT
// Package realroot: sentinel error set.

package realroot

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroPoly is returned when root isolation is requested for the zero
	// polynomial (every point is a root).
	ErrZeroPoly = errors.New("realroot: zero polynomial")

	// ErrBadInterval is returned when an interval is empty (lo > hi) or when a
	// strict ordering between two reals was required and not satisfied.
	ErrBadInterval = errors.New("realroot: invalid interval")
)

// Operation tags for uniform error wrapping.
const (
	opIsolate  = "Isolate"
	opMidpoint = "Midpoint"
)

// rootErrorf wraps err with an operation tag; err must be non-nil.
func rootErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
