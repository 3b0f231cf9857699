// Package tardiness - unified dispatcher for the tardiness solvers.
//
// Solve routes an instance to the algorithm named by Options.Algo. Every
// algorithm except AlgoExact returns an order; every order is checked to be
// a permutation of the input before it is returned.

package tardiness

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvsched/job"
)

// Solve runs opts.Algo on inst.
//
// Errors: ErrUnsupportedAlgorithm plus the errors of the selected solver.
func Solve(ctx context.Context, inst *job.Instance, opts Options) (Result, error) {
	var (
		res Result
		err error
	)
	switch opts.Algo {
	case AlgoExact:
		x := NewExact(inst, opts)
		res.Algo = AlgoExact
		res.Tardiness, err = x.Solve(ctx)
		res.Stats = x.Stats()

		return res, err

	case AlgoSequence:
		res, err = NewReconstructor(inst, opts).Sequence(ctx)

	case AlgoApprox:
		res, err = NewApprox(inst, opts.Epsilon, opts).Solve(ctx)

	case AlgoEDD:
		res = EDD(inst)

	case AlgoGreedy:
		res = Greedy(inst)

	case AlgoBranchAndBound:
		res, err = BranchAndBound(ctx, inst, opts)

	case AlgoExhaustive:
		res, err = Exhaustive(ctx, inst)

	default:
		return Result{}, fmt.Errorf("%v: %w", opts.Algo, ErrUnsupportedAlgorithm)
	}
	if err != nil {
		return res, err
	}
	if verr := job.ValidatePermutation(res.Order, inst.NumJobs()); verr != nil {
		return Result{}, fmt.Errorf("%v order: %v: %w", opts.Algo, verr, ErrInvariantViolation)
	}

	return res, nil
}
