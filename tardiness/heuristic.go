package tardiness

import (
	"github.com/katalvlaran/lvsched/job"
)

// EDD returns the earliest-due-date order, optimal for maximum tardiness and
// the ordering every other solver indexes jobs by.
//
// Complexity: O(n log n).
func EDD(inst *job.Instance) Result {
	s := inst.SortByDueDate()
	perm := make([]int, len(s.Jobs))
	for i := range perm {
		perm[i] = i
	}

	return Result{
		Algo:      AlgoEDD,
		Tardiness: job.InOrderTardiness(s.Jobs),
		Sequence:  perm,
		Order:     s.ToInput(perm),
	}
}

// Greedy applies the modified-due-date rule: at completion time C the next
// job is the unscheduled one minimizing max(C + p, d); ties go to the
// earliest due date.
//
// Complexity: O(n²).
func Greedy(inst *job.Instance) Result {
	s := inst.SortByDueDate()
	perm, total := greedyMDD(s.Jobs)

	return Result{
		Algo:      AlgoGreedy,
		Tardiness: total,
		Sequence:  perm,
		Order:     s.ToInput(perm),
	}
}

// greedyMDD runs the rule over the sorted view and returns view indices.
func greedyMDD(jobs []job.Job) ([]int, int64) {
	var (
		n     = len(jobs)
		done  = make([]bool, n)
		perm  = make([]int, 0, n)
		c     int64
		total int64
	)
	for len(perm) < n {
		best, bestMDD := -1, int64(0)
		for j := 0; j < n; j++ {
			if done[j] {
				continue
			}
			mdd := max(c+jobs[j].P, jobs[j].D)
			if best < 0 || mdd < bestMDD {
				best, bestMDD = j, mdd
			}
		}
		done[best] = true
		perm = append(perm, best)
		c += jobs[best].P
		total += jobs[best].Tardiness(c)
	}

	return perm, total
}
