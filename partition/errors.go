// SPDX-License-Identifier: MIT

package partition

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRepairer indicates New was called without a basis repair oracle.
	ErrNoRepairer = errors.New("partition: nil repairer")

	// ErrNilTableau indicates Run was called with a nil tableau.
	ErrNilTableau = errors.New("partition: nil tableau")

	// ErrDegenerateDomain indicates a parameter domain reduced to one point.
	ErrDegenerateDomain = errors.New("partition: degenerate parameter domain")
)

const (
	opNew     = "New"
	opRun     = "Run"
	opProcess = "process"
)

func partitionErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
