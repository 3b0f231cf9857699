// Package memo provides the state cache of the exact tardiness solver.
//
// A state is identified by Key{I, J, K, T}: the head and tail job indices of
// the active subsequence, the job extracted one recursion level up (the
// filter, −1 at the root) and the anchor time. Table[E] maps keys to any
// entry type; the tardiness solvers store {value, split offset} pairs.
//
// Backends:
//
//	HashBackend   one Go map keyed by Key (default)
//	DenseBackend  n×n×(n+1) slots of lazily allocated maps keyed by T,
//	              n ≤ MaxDenseJobs
//	TreeBackend   ordered red-black tree (github.com/emirpasic/gods)
//
// All backends are interchangeable; they trade memory layout for speed and
// are benchmarked against each other in bench_test.go. Tables are not safe
// for concurrent use.
package memo
