package tardiness

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvsched/job"
)

// Exhaustive evaluates all n! orders with Heap's algorithm and returns the
// first one attaining the minimum. It is the reference oracle for small n.
//
// Errors: ErrTooLarge (n > MaxExhaustive), ErrCanceled.
//
// Complexity: O(n·n!).
func Exhaustive(ctx context.Context, inst *job.Instance) (Result, error) {
	n := inst.NumJobs()
	if n > MaxExhaustive {
		return Result{}, fmt.Errorf("%d jobs > %d: %w", n, MaxExhaustive, ErrTooLarge)
	}

	var (
		s     = inst.SortByDueDate()
		perm  = make([]int, n)
		best  = make([]int, n)
		stack = make([]int, n)
		count int64
	)
	for i := range perm {
		perm[i] = i
	}
	bestCost := job.InOrderTardiness(s.Jobs)
	copy(best, perm)
	count++

	for i := 0; i < n; {
		if stack[i] >= i {
			stack[i] = 0
			i++
			continue
		}
		if i%2 == 0 {
			perm[0], perm[i] = perm[i], perm[0]
		} else {
			perm[stack[i]], perm[i] = perm[i], perm[stack[i]]
		}
		stack[i]++
		i = 1

		count++
		if count&4095 == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, fmt.Errorf("%w: %w", ErrCanceled, err)
			}
		}
		if c := evalOrder(s.Jobs, perm); c < bestCost {
			bestCost = c
			copy(best, perm)
		}
	}

	return Result{
		Algo:      AlgoExhaustive,
		Tardiness: bestCost,
		Sequence:  best,
		Order:     s.ToInput(best),
		Stats:     Stats{Calls: count},
	}, nil
}

// evalOrder is job.TotalTardiness without the permutation check.
func evalOrder(jobs []job.Job, perm []int) int64 {
	var c, total int64
	for _, x := range perm {
		c += jobs[x].P
		total += jobs[x].Tardiness(c)
	}

	return total
}
