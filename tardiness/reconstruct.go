package tardiness

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvsched/job"
)

// Reconstructor runs the same decomposition as Exact while recording the
// winning split offset of every state, then replays those offsets from the
// root to emit an optimal processing order. Ties are broken exactly as in
// Exact because both run the same engine.
//
// A Reconstructor is single-use.
type Reconstructor struct {
	inst *job.Instance
	opts Options
	used bool
}

// NewReconstructor prepares a reconstruction over inst.
func NewReconstructor(inst *job.Instance, opts Options) *Reconstructor {
	return &Reconstructor{inst: inst, opts: opts}
}

// Sequence returns the optimal value together with an order attaining it.
// The order's evaluation on the instance is checked against the value.
//
// Errors: ErrSolverUsed, ErrCanceled, ErrInvariantViolation, memo.ErrUnknownBackend.
func (r *Reconstructor) Sequence(ctx context.Context) (Result, error) {
	if r.used {
		return Result{}, ErrSolverUsed
	}
	r.used = true

	s := r.inst.SortByDueDate()
	e, err := newEngine(ctx, s.Processing(), s.DueDates(), r.opts, true)
	if err != nil {
		return Result{}, err
	}
	perm, v, err := e.reconstruct()
	if err != nil {
		return Result{Algo: AlgoSequence, Stats: e.stats}, err
	}

	total, err := job.TotalTardiness(s.Jobs, perm)
	if err != nil {
		return Result{}, fmt.Errorf("replayed order: %v: %w", err, ErrInvariantViolation)
	}
	if total != v {
		return Result{}, fmt.Errorf("replayed order evaluates to %d, optimum %d: %w", total, v, ErrInvariantViolation)
	}

	return Result{
		Algo:      AlgoSequence,
		Tardiness: total,
		Sequence:  perm,
		Order:     s.ToInput(perm),
		Stats:     e.stats,
	}, nil
}

// SequenceOf returns an optimal order as input positions, using DefaultOptions.
func SequenceOf(inst *job.Instance) ([]int, error) {
	res, err := NewReconstructor(inst, DefaultOptions()).Sequence(context.Background())
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}
