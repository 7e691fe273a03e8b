// SPDX-License-Identifier: MIT

// Package crisscross repairs a basis at a fixed parameter value.
//
// Oracle.Repair implements the least-index criss-cross method for the
// complementarity tableau [I | -M | q]: starting from any complementary
// basis it performs diagonal and exchange pivots until every basic variable
// is nonnegative at the requested point x, or proves that no feasible
// complementary basis is reachable (ErrInfeasible). When the only exchange
// candidates of the failing row have a zero second pivot at x, Repair stops
// with ErrNoPivot instead; that outcome says nothing about feasibility.
//
// Pivot decisions are taken on the tableau evaluated at x; the pivots
// themselves are the exact tableau.PrincipalPivot / tableau.ExchangePivot
// kernels, so the repaired tableau stays a tableau of rational functions and
// can be handed to the Region Boundary Engine directly. The input tableau is
// never mutated. For a fixed input the pivot sequence is fully determined.
package crisscross
