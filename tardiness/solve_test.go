package tardiness_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsched/job"
	"github.com/katalvlaran/lvsched/tardiness"
)

func TestSolve_Dispatch(t *testing.T) {
	want := map[tardiness.Algo]int64{
		tardiness.AlgoExact:          42,
		tardiness.AlgoSequence:       42,
		tardiness.AlgoApprox:         42,
		tardiness.AlgoEDD:            44,
		tardiness.AlgoGreedy:         43,
		tardiness.AlgoBranchAndBound: 42,
		tardiness.AlgoExhaustive:     42,
	}
	for algo, v := range want {
		t.Run(algo.String(), func(t *testing.T) {
			inst := sixJobs(t)
			opts := tardiness.DefaultOptions()
			opts.Algo = algo
			res, err := tardiness.Solve(context.Background(), inst, opts)
			require.NoError(t, err)
			assert.Equal(t, algo, res.Algo)
			assert.Equal(t, v, res.Tardiness)
			if algo != tardiness.AlgoExact {
				require.NoError(t, job.ValidatePermutation(res.Order, inst.NumJobs()))
				assert.Equal(t, v, evalOrder(t, inst, res.Order))
			}
		})
	}
}

func TestSolve_Unsupported(t *testing.T) {
	opts := tardiness.DefaultOptions()
	opts.Algo = tardiness.Algo(99)
	_, err := tardiness.Solve(context.Background(), sixJobs(t), opts)
	require.ErrorIs(t, err, tardiness.ErrUnsupportedAlgorithm)
	assert.Equal(t, "Algo(99)", opts.Algo.String())
}

func TestParseAlgo(t *testing.T) {
	for _, a := range []tardiness.Algo{
		tardiness.AlgoExact, tardiness.AlgoSequence, tardiness.AlgoApprox, tardiness.AlgoEDD,
		tardiness.AlgoGreedy, tardiness.AlgoBranchAndBound, tardiness.AlgoExhaustive,
	} {
		got, err := tardiness.ParseAlgo(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	_, err := tardiness.ParseAlgo("simplex")
	require.ErrorIs(t, err, tardiness.ErrUnsupportedAlgorithm)
}

func TestDefaultOptions(t *testing.T) {
	opts := tardiness.DefaultOptions()
	assert.Equal(t, tardiness.AlgoExact, opts.Algo)
	assert.InDelta(t, 0.1, opts.Epsilon, 0)
	assert.True(t, opts.Prune)
	assert.Zero(t, opts.NodeLimit)
}
