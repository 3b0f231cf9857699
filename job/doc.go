// Package job defines the problem model for single-machine total tardiness
// scheduling (1||ΣTⱼ): jobs, instances, the due-date view every solver works
// on, and the utilities around them.
//
// What lives here:
//
//   - Job / Instance: immutable (processing time, due date) pairs with a
//     deep Copy, so every algorithm run can own its data.
//   - Sorted: the earliest-due-date (EDD) view. Solvers index jobs by their
//     position in this view; Order maps a position back to the input.
//   - Read / Write: the whitespace instance format:
//     "n p₁ d₁ p₂ d₂ … pₙ dₙ".
//   - TotalTardiness / MaxTardiness: objective evaluation of a permutation.
//   - Generate: RDD/TF random instances (the classic benchmark generator),
//     with FileName / ParseFileName for the benchmark naming scheme.
//   - Hardness: squared rank displacement between EDD and SPT orders.
//
// Errors:
//
//   - ErrMalformedInput: the instance stream is not n well-formed pairs.
//   - ErrInvalidJob: a job with a non-positive processing time.
//   - ErrInvalidPermutation: a permutation that is not a bijection on [0,n).
//   - ErrBadSize: a negative generator size.
//
// The package is pure: no logging, no global state, no panics on user input.
package job
