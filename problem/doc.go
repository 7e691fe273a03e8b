// SPDX-License-Identifier: MIT

// Package problem reads uni-parametric LCP, LP and QP instances from the
// plain-text data format and turns them into a starting complementarity
// tableau.
//
// The file starts with the problem type (LCP, LP or QP), followed by the
// size keywords and then data sections. Keywords are case-insensitive and
// blank lines are ignored between sections:
//
//	LCP
//	h
//	2
//	k
//	1
//	M_DATA
//	1, 1, 0, 1        row, column, parameter, coefficient
//	Q_DATA
//	1, 1, 1           row, parameter, coefficient
//	PARAM_SPACE
//	1, 1, -1          restriction row, parameter, coefficient
//	PARAM_SPACE_RHS
//	0                 one value per restriction row
//	END
//
// Parameter index 0 denotes a constant and 1 the scalar parameter x.
// Decimal coefficients are converted to rationals exactly.
//
// An LCP yields the tableau [I | -M(x) | q(x)]. LP and QP instances
// (num_col, num_row, num_param; A_DATA, B_DATA, C_DATA and, for QP, Q_DATA)
// are embedded through their KKT conditions: the first num_row rows hold the
// slack rows of A(x)y ≤ b(x), the remaining num_col rows the dual rows of y.
package problem
