package tardiness

import (
	"context"

	"github.com/katalvlaran/lvsched/job"
)

// Exact computes the optimal total tardiness with the memoized Lawler
// decomposition.
//
// Each state (subsequence, filter job k, anchor time t) extracts the
// leftmost longest job k′ of the subsequence and tries every split offset δ:
// the δ jobs after k′ in due-date order move in front of it, the job
// completes at t + ΣP(left) + p(k′), and both sides recurse. With pruning
// enabled an offset is only tried when the next right job is due after the
// left block ends (Lawler's decomposition theorem guarantees an optimum
// among those offsets). States are memoized under the caller's k.
//
// An Exact is single-use: build a new one per solve.
type Exact struct {
	inst *job.Instance
	opts Options
	used bool

	stats Stats
}

// NewExact prepares a solver over inst. inst is not retained beyond Solve
// and is never modified.
func NewExact(inst *job.Instance, opts Options) *Exact {
	return &Exact{inst: inst, opts: opts}
}

// Solve returns the minimum total tardiness.
//
// Errors: ErrSolverUsed, ErrCanceled, ErrInvariantViolation, memo.ErrUnknownBackend.
//
// Complexity: pseudo-polynomial, O(n⁴·ΣP) time in the worst case,
// O(n³·ΣP) memo entries.
func (x *Exact) Solve(ctx context.Context) (int64, error) {
	if x.used {
		return 0, ErrSolverUsed
	}
	x.used = true

	s := x.inst.SortByDueDate()
	e, err := newEngine(ctx, s.Processing(), s.DueDates(), x.opts, false)
	if err != nil {
		return 0, err
	}
	v, err := e.run()
	x.stats = e.stats

	return v, err
}

// Stats reports the counters of the last Solve.
func (x *Exact) Stats() Stats { return x.stats }

// SolveExact is NewExact with DefaultOptions and a background context.
func SolveExact(inst *job.Instance) (int64, error) {
	return NewExact(inst, DefaultOptions()).Solve(context.Background())
}
