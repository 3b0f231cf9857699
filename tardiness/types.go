// Package tardiness defines the options, results and sentinel errors shared
// by the single-machine total-tardiness solvers.
//
// Options:
//
//	– Algo:      which solver Solve dispatches to (default AlgoExact).
//	– Epsilon:   FPTAS accuracy, must lie in (0, 1] (default 0.1).
//	– Prune:     enable the due-date domination rule in the exact recursion
//	             (default true; disabling it only costs time, never accuracy).
//	– Backend:   memo table layout (default memo.HashBackend).
//	– NodeLimit: cap on branch-and-bound nodes; 0 means unlimited.
//
// Errors (sentinel):
//
//	– ErrInvariantViolation   internal consistency check failed (a bug, never retried).
//	– ErrBadEpsilon           Epsilon outside (0, 1].
//	– ErrSolverUsed           Solve called twice on a single-use solver.
//	– ErrCanceled             the context was canceled or its deadline passed.
//	– ErrTooLarge             Exhaustive on more than MaxExhaustive jobs.
//	– ErrNodeLimit            BranchAndBound exhausted NodeLimit.
//	– ErrUnsupportedAlgorithm unknown Algo or algorithm name.
package tardiness

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsched/memo"
)

// Sentinel errors returned by the tardiness solvers.
var (
	// ErrInvariantViolation indicates the recursion went deeper than n, a
	// state value fell outside [0, in-order tardiness], or a reconstructed
	// permutation disagreed with its value.
	ErrInvariantViolation = errors.New("tardiness: invariant violation")

	// ErrBadEpsilon indicates an approximation parameter outside (0, 1].
	ErrBadEpsilon = errors.New("tardiness: epsilon must be in (0, 1]")

	// ErrSolverUsed indicates a second Solve on a single-use solver.
	ErrSolverUsed = errors.New("tardiness: solver already used")

	// ErrCanceled wraps the context error when a solve is interrupted.
	ErrCanceled = errors.New("tardiness: canceled")

	// ErrTooLarge indicates Exhaustive was asked to enumerate more than MaxExhaustive jobs.
	ErrTooLarge = errors.New("tardiness: instance too large for exhaustive search")

	// ErrNodeLimit indicates BranchAndBound hit Options.NodeLimit before proving optimality.
	ErrNodeLimit = errors.New("tardiness: node limit reached")

	// ErrUnsupportedAlgorithm indicates an unknown Algo value or name.
	ErrUnsupportedAlgorithm = errors.New("tardiness: unsupported algorithm")
)

// MaxExhaustive is the largest n Exhaustive accepts (10! permutations).
const MaxExhaustive = 10

// Algo selects the solver Solve dispatches to.
type Algo int

const (
	// AlgoExact runs the memoized decomposition and reports the optimum value.
	AlgoExact Algo = iota
	// AlgoSequence runs the decomposition and reconstructs an optimal order.
	AlgoSequence
	// AlgoApprox runs the FPTAS on a scaled instance.
	AlgoApprox
	// AlgoEDD returns the earliest-due-date order.
	AlgoEDD
	// AlgoGreedy applies the modified-due-date rule.
	AlgoGreedy
	// AlgoBranchAndBound runs the depth-first prefix search.
	AlgoBranchAndBound
	// AlgoExhaustive enumerates every permutation.
	AlgoExhaustive
)

var algoNames = [...]string{
	AlgoExact:          "exact",
	AlgoSequence:       "sequence",
	AlgoApprox:         "approx",
	AlgoEDD:            "edd",
	AlgoGreedy:         "greedy",
	AlgoBranchAndBound: "bnb",
	AlgoExhaustive:     "exhaustive",
}

// String returns the CLI spelling of a.
func (a Algo) String() string {
	if a >= 0 && int(a) < len(algoNames) {
		return algoNames[a]
	}

	return fmt.Sprintf("Algo(%d)", int(a))
}

// ParseAlgo maps a CLI or plan name to an Algo.
//
// Errors: ErrUnsupportedAlgorithm.
func ParseAlgo(s string) (Algo, error) {
	for i, name := range algoNames {
		if name == s {
			return Algo(i), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnsupportedAlgorithm)
}

// Options configures the solvers. Start from DefaultOptions.
type Options struct {
	Algo      Algo         // solver selected by Solve
	Epsilon   float64      // FPTAS accuracy in (0, 1]
	Prune     bool         // due-date domination rule in the exact recursion
	Backend   memo.Backend // memo table layout
	NodeLimit int64        // branch-and-bound node cap, 0 = unlimited
}

// DefaultOptions returns the exact solver with pruning, a hash memo and ε = 0.1.
func DefaultOptions() Options {
	return Options{
		Algo:    AlgoExact,
		Epsilon: 0.1,
		Prune:   true,
		Backend: memo.HashBackend,
	}
}

// Stats counts the work of one solve.
type Stats struct {
	Calls       int64 // recursive calls (or search nodes for BranchAndBound/Exhaustive)
	Computed    int64 // states evaluated by sweeping split offsets
	MemoHits    int64 // states answered from the memo table
	MaxDepth    int   // deepest recursion level reached
	MemoEntries int   // entries held by the memo table at the end
}

// Result is the outcome of a solve.
type Result struct {
	Algo Algo

	// Tardiness is the total tardiness of Order on the input instance.
	// AlgoExact reports the optimum without an order.
	Tardiness int64

	// Sequence lists positions in the due-date sorted view, in processing order.
	Sequence []int

	// Order lists input positions, in processing order.
	Order []int

	// Scale is the FPTAS scaling factor K; 0 for other algorithms.
	Scale float64

	Stats Stats
}
