// SPDX-License-Identifier: MIT

// Package partition implements the Partition Scheduler.
//
// A Scheduler splits the parameter domain [lo, hi] into invariancy regions
// with a fixed pool of workers sharing one blocking task queue:
//
//	pop task → midpoint → Repairer.Repair → region.New → GetExtremes
//	        → emit region → push [lo, L] and [R, hi] when wider than ε
//	        → finished++; the worker that sees created == finished
//	          pushes one stop task per worker.
//
// Termination is decentralized: no coordinator goroutine exists, the last
// worker to finish a task detects completion from the created/finished
// counters. Both counters live behind one mutex and created is incremented
// before the task it counts becomes visible in the queue.
//
// Every task owns a deep copy of its tableau and basis, so pivoting needs no
// locks. A Repairer failure is fatal for the whole run: the worker returns the
// error, the errgroup cancels the shared context and the remaining workers
// leave their blocking Pop.
//
// Regions are emitted in no particular order; Result.NonDegenerate sorts them.
package partition
