// SPDX-License-Identifier: MIT

// Package region implements the Region Boundary Engine.
//
// Given a feasible basis (tableau, basis, representative point) and a
// candidate interval [L,R] of the scalar parameter x, a Region
//
//   - derives one defining inequality g(x) ≤ 0 per basic row from the sign of
//     the row's right-hand side, plus one per parameter-space restriction;
//   - stores the derivative of every inequality;
//   - tightens [L,R] to the exact invariancy region with real-root isolation:
//     roots of even multiplicity are tangencies and never tighten, a root at
//     the representative point is resolved by the sign of the derivative.
//
// Endpoints are realroot.Real values, so a boundary at an irrational root is
// carried exactly. GetExtremes writes the endpoints back once; Finalize drops
// the tableau and keeps basis, right-hand sides and endpoints.
//
// ParamSpace describes the parameter-space restrictions LHS(x) ≤ RHS and
// derives the outer domain from its linear members.
package region
