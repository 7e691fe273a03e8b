// SPDX-License-Identifier: MIT

// Package report renders a computed partition as the plain-text solution file.
//
// The file opens with the problem in its original form (LCP, LP or QP data
// and the parameter-space restrictions), followed by one block per
// non-degenerate invariancy region, sorted by left endpoint:
//
//	Region 1:
//
//		z_1 = -x + 5 >= 0
//
//		Valid over:	0 <= x <= 5
//
// Basic variables are named after the complementary pair of their row:
// w_i / z_i for an LCP; for LP and QP the slack rows carry s_i / u_i and the
// dual rows of the original variables v_j / y_j. Omitted variables are zero.
package report
