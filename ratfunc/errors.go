// SPDX-License-Identifier: MIT
// Package ratfunc: sentinel error set.
// All exported operations return these sentinels (optionally wrapped with an
// operation tag); tests match them via errors.Is.

package ratfunc

import "errors"

var (
	// ErrDivByZero is returned when dividing by the zero polynomial or the
	// zero rational function, or when building a RatFunc with a zero denominator.
	ErrDivByZero = errors.New("ratfunc: division by zero")

	// ErrPole is returned by RatFunc.Eval when the denominator vanishes at the
	// evaluation point.
	ErrPole = errors.New("ratfunc: pole at evaluation point")
)
