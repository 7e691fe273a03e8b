// SPDX-License-Identifier: MIT

// Package ratfunc provides exact univariate polynomials and rational
// functions over the rationals (math/big.Rat) in the single scalar
// parameter x.
//
// What is here?
//
//   - Poly: immutable dense polynomial, ascending coefficients, trimmed.
//   - RatFunc: Num/Den in lowest terms with a monic denominator.
//   - Exact Euclidean division, GCD, derivatives and evaluation at rational points.
//
// Every value is immutable once built: arithmetic always allocates fresh
// coefficients, so Poly and RatFunc values may be shared freely between
// goroutines and between tableau snapshots.
//
// Rendering follows the usual computer-algebra shape, highest degree first:
//
//	x^2 - 3*x + 1/2
//	(x + 1)/(x - 5)
//
// Complexity quicksheet (d = degree):
//   - Add/Sub: O(d); Mul: O(d²); QuoRem/GCD: O(d²) rational operations.
package ratfunc
