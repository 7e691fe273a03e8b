// Package uplcp partitions the parameter interval of a uni-parametric linear
// complementarity problem into invariancy regions, exactly.
//
// 🚀 What is uplcp?
//
//	An exact-arithmetic solver for LCP(q(x), M(x)) with one scalar parameter x:
//		• Rational functions: big.Rat polynomials and quotients in x
//		• Real roots: Sturm isolation and exact algebraic comparisons
//		• Pivot Engine: principal and exchange pivots on the tableau [I | -M | q]
//		• Region Boundary Engine: the interval where one basis stays feasible
//		• Basis repair: least-index criss-cross at a rational point
//		• Partition Scheduler: a worker pool that tiles the whole interval
//
// ✨ Why uplcp?
//
//   - No rounding anywhere: region endpoints are exact algebraic numbers
//   - LP and QP instances through their KKT embedding
//   - Parallel by default, deterministic results regardless of worker count
//
// Packages:
//
//	ratfunc/    : exact polynomials and rational functions in x
//	realroot/   : square-free factors, Sturm chains, exact real roots
//	tableau/    : the complementarity tableau, Basis and the pivot kernels
//	region/     : invariancy region of one basis, parameter-space restrictions
//	crisscross/ : basis repair oracle
//	partition/  : the scheduler, its queue and Prometheus metrics
//	problem/    : data file loader (LCP, LP, QP)
//	report/     : solution file writer
//	config/     : defaults, YAML file and legacy flag handling
//	cmd/uplcp/  : the command-line tool
//
// Quick example (w − z = x − 5 over 0 ≤ x ≤ 10):
//
//	p, _ := problem.LoadFile("problem.txt")
//	s, _ := partition.New(crisscross.New(), p.Space)
//	res, _ := s.Run(ctx, p.Tableau, p.Basis)
//	// res.NonDegenerate(): z basic on [0, 5], w basic on [5, 10]
//
//	go install github.com/katalvlaran/uplcp/cmd/uplcp@latest
package uplcp
