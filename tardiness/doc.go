// Package tardiness solves the single-machine total-tardiness problem
// 1||ΣTⱼ: order n jobs, each with a processing time p and a due date d, so
// that Σ max(0, Cⱼ − dⱼ) is minimal, where Cⱼ is job j's completion time.
//
// 🚀 What is provided?
//
//	Exact           memoized Lawler decomposition; optimum value only.
//	Reconstructor   the same traversal plus split recording; optimum order.
//	Approx          FPTAS: reconstruct on an instance scaled by
//	                K = Tmax·2ε/(n(n+1)), evaluate on the original.
//	EDD, Greedy     earliest due date and modified due date baselines.
//	BranchAndBound  prefix DFS with an admissible bound.
//	Exhaustive      all n! orders, the oracle for n ≤ MaxExhaustive.
//	Solve           dispatcher over Options.Algo.
//
// ✨ Indexing
//
//	Jobs are sorted once by non-decreasing due date (stable). All internal
//	indices, and Result.Sequence, refer to that view; Result.Order maps the
//	same order back to input positions.
//
// ⚙️ Numeric model
//
//	Processing and anchor times are int64. Due dates and tardiness values
//	are a type parameter: int64 for the exact solvers, float64 on the scaled
//	FPTAS instance.
//
// Concurrency: solvers are single-threaded, deterministic and single-use;
// each owns its memo table and cell pool, so distinct solvers may run in
// parallel on distinct instance copies. Long solves honor context
// cancellation, checked every 1024 recursive calls.
package tardiness
