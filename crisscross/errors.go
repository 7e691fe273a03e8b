// SPDX-License-Identifier: MIT

package crisscross

import (
	"errors"
	"fmt"
)

var (
	// ErrInfeasible is returned when no feasible complementary basis exists at the point.
	ErrInfeasible = errors.New("crisscross: no feasible basis at point")

	// ErrNoPivot is returned when row r has candidate exchange columns but
	// every one of them leaves a zero second pivot at the point. Feasibility
	// is undecided in that case.
	ErrNoPivot = errors.New("crisscross: no usable exchange pivot at point")

	// ErrIterationLimit is returned when the pivot budget is exhausted.
	ErrIterationLimit = errors.New("crisscross: iteration limit reached")
)

const opRepair = "Repair"

func crossErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
