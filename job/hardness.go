package job

import "sort"

// Hardness measures how much the due-date order disagrees with the
// shortest-processing-time order: Σ (eddRank(j) − sptRank(j))².
//
// Zero means the two orders coincide, in which case EDD is optimal for
// total tardiness. Large values indicate instances where long jobs have early
// due dates, the regime in which the decomposition branches the most.
//
// Both sorts are stable: EDD ties keep input order, SPT ties keep EDD order.
//
// Complexity: O(n log n).
func Hardness(inst *Instance) int64 {
	var (
		n    = len(inst.jobs)
		edd  = make([]int, n)
		rank = make([]int, n)
		i    int
	)
	for i = 0; i < n; i++ {
		edd[i] = i
	}
	sort.SliceStable(edd, func(a, b int) bool {
		return inst.jobs[edd[a]].D < inst.jobs[edd[b]].D
	})
	for i = 0; i < n; i++ {
		rank[edd[i]] = i
	}

	spt := append([]int(nil), edd...)
	sort.SliceStable(spt, func(a, b int) bool {
		return inst.jobs[spt[a]].P < inst.jobs[spt[b]].P
	})

	var sum int64
	for i = 0; i < n; i++ {
		d := int64(rank[spt[i]] - i)
		sum += d * d
	}

	return sum
}
