// SPDX-License-Identifier: MIT
// Package problem: sentinel error set.

package problem

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed indicates a data file that does not follow the format:
	// missing sizes, short data lines, unknown keywords or indices out of range.
	ErrMalformed = errors.New("problem: malformed data file")

	// ErrMultiParam is returned for a parameter index other than 0 (constant)
	// or 1 (x). Only one parameter is supported.
	ErrMultiParam = errors.New("problem: more than one parameter")
)

const (
	opLoad     = "Load"
	opLoadFile = "LoadFile"
)

// problemErrorf wraps err with an operation tag, preserving it for errors.Is.
func problemErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// lineErrorf reports err at the 1-based line number.
func lineErrorf(line int, err error, format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", line, fmt.Sprintf(format, args...), err)
}
