// SPDX-License-Identifier: MIT

// Package realroot isolates the real roots of rational polynomials exactly,
// together with their multiplicities, and represents them as exact real
// numbers.
//
// What is here?
//
//   - SquareFree: Yun's square-free decomposition p = c·∏ a_i^i.
//   - Chain: Sturm sequences counting distinct roots in half-open intervals.
//   - Isolate: every real root of p inside a closed rational interval, with
//     its multiplicity, in ascending order.
//   - Real: an exact real number, either rational or the unique root of a
//     square-free polynomial inside a rational isolating interval.
//
// Real values are immutable: comparisons refine private copies of the
// isolating interval, so one Real may be read by many goroutines.
//
// Parity of the multiplicity tells whether p changes sign at the root:
// odd multiplicities are sign changes, even multiplicities are tangencies.
//
// Complexity quicksheet (d = degree, k = refinement steps):
//   - SquareFree: O(d³); NewChain: O(d³); Isolate: O(d³ + roots·k·d²).
package realroot
