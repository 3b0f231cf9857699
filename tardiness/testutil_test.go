package tardiness_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsched/job"
)

// lcgInstance builds a reproducible instance from a 64-bit LCG:
// p ~ [1, maxP], d ~ [0, Σp).
func lcgInstance(tb testing.TB, seed uint64, n int, maxP int64) *job.Instance {
	tb.Helper()
	x := seed
	next := func(m int64) int64 {
		x = x*6364136223846793005 + 1442695040888963407
		return int64((x >> 33) % uint64(m))
	}
	var (
		jobs  = make([]job.Job, n)
		total int64
	)
	for i := range jobs {
		jobs[i].P = next(maxP) + 1
		total += jobs[i].P
	}
	for i := range jobs {
		jobs[i].D = next(total)
	}
	inst, err := job.NewInstance(jobs)
	require.NoError(tb, err)

	return inst
}

// fiveJobs is the 5-job reference instance; its due-date order is optimal at 44.
func fiveJobs(tb testing.TB) *job.Instance {
	tb.Helper()
	inst, err := job.NewInstance([]job.Job{
		{P: 98, D: 314},
		{P: 26, D: 287},
		{P: 82, D: 285},
		{P: 67, D: 253},
		{P: 85, D: 256},
	})
	require.NoError(tb, err)

	return inst
}

// evalOrder evaluates an order of input positions on inst.
func evalOrder(tb testing.TB, inst *job.Instance, order []int) int64 {
	tb.Helper()
	v, err := job.TotalTardiness(inst.Jobs(), order)
	require.NoError(tb, err)

	return v
}

// sixJobs has EDD 44, greedy 43 and optimum 42.
func sixJobs(tb testing.TB) *job.Instance {
	tb.Helper()
	inst, err := job.NewInstance([]job.Job{
		{P: 13, D: 35},
		{P: 14, D: 33},
		{P: 15, D: 22},
		{P: 6, D: 4},
		{P: 16, D: 71},
		{P: 12, D: 38},
	})
	require.NoError(tb, err)

	return inst
}
