// Package lvsched is a toolkit for single-machine total tardiness scheduling
// (1||ΣTⱼ): exact and approximate solvers, baselines, an instance generator
// and a benchmark harness.
//
// Packages:
//
//	job/        instances, the due-date view, parsing, evaluation, generator
//	sequence/   ordered job sequences over a shared cell arena
//	memo/       state tables for the decomposition (hash, dense, tree)
//	tardiness/  Lawler decomposition, reconstruction, FPTAS, baselines, Solve
//	bench/      YAML plans, concurrent runner, CSV and Prometheus output
//
// The lvsched command (cmd/lvsched) exposes solve, gen, hardness and bench.
//
// Quick start:
//
//	inst, _ := job.ReadFile("random_RDD=0.2_TF=0.6_#10.dat")
//	opts := tardiness.DefaultOptions()
//	opts.Algo = tardiness.AlgoSequence
//	res, _ := tardiness.Solve(ctx, inst, opts)
//	fmt.Println(res.Tardiness, res.Order)
package lvsched
