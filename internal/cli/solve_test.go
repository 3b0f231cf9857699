package cli

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsched/job"
	"github.com/katalvlaran/lvsched/memo"
	"github.com/katalvlaran/lvsched/tardiness"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestSolve_Golden(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"solve_exact_text", []string{"solve", "testdata/six.dat"}},
		{"solve_sequence_text", []string{"solve", "--algo", "sequence", "testdata/five.dat"}},
		{"solve_sequence_json", []string{"--format", "json", "solve", "--algo", "sequence", "--memo", "tree", "testdata/six.dat"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := execute(t, tc.args...)
			require.NoError(t, err)
			newGoldie(t).Assert(t, tc.name, []byte(out))
		})
	}
}

func TestSolve_Algorithms(t *testing.T) {
	for algo, want := range map[string]int64{
		"exact": 42, "sequence": 42, "approx": 42, "edd": 44, "greedy": 43, "bnb": 42, "exhaustive": 42,
	} {
		t.Run(algo, func(t *testing.T) {
			out, _, err := execute(t, "--format", "json", "solve", "--algo", algo, "--eps", "0.2", "testdata/six.dat")
			require.NoError(t, err)

			var got solveOutput
			require.NoError(t, json.Unmarshal([]byte(out), &got))
			assert.Equal(t, algo, got.Algo)
			assert.Equal(t, want, got.Tardiness)
			if algo != "exact" {
				require.NoError(t, job.ValidatePermutation(got.Order, 6))
			}
		})
	}
}

func TestSolve_NoPruneAgrees(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "solve", "--no-prune", "--memo", "dense", "testdata/six.dat")
	require.NoError(t, err)

	var got solveOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, int64(42), got.Tardiness)
	assert.GreaterOrEqual(t, got.Stats.Calls, int64(53))
}

func TestSolve_Errors(t *testing.T) {
	_, _, err := execute(t, "solve", "--algo", "simplex", "testdata/six.dat")
	require.ErrorIs(t, err, tardiness.ErrUnsupportedAlgorithm)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, _, err = execute(t, "solve", "--memo", "btree", "testdata/six.dat")
	require.ErrorIs(t, err, memo.ErrUnknownBackend)

	_, _, err = execute(t, "solve", "testdata/missing.dat")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, _, err = execute(t, "solve", "--algo", "approx", "--eps", "0", "testdata/six.dat")
	require.ErrorIs(t, err, tardiness.ErrBadEpsilon)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	_, _, err = execute(t, "solve")
	require.Error(t, err)
}

func TestSolve_VerboseLogsToStderr(t *testing.T) {
	out, errOut, err := execute(t, "-v", "solve", "testdata/five.dat")
	require.NoError(t, err)
	assert.Contains(t, out, "tardiness  44")
	assert.Contains(t, errOut, "level=debug")
	assert.Contains(t, errOut, "msg=solving")
	assert.NotContains(t, out, "level=")
}

func TestHardness_Golden(t *testing.T) {
	out, _, err := execute(t, "hardness", "testdata/five.dat", "testdata/six.dat")
	require.NoError(t, err)
	newGoldie(t).Assert(t, "hardness_text", []byte(out))

	out, _, err = execute(t, "--format", "json", "hardness", "testdata/six.dat")
	require.NoError(t, err)
	var rows []hardnessOutput
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	assert.Equal(t, []hardnessOutput{{File: "six.dat", Jobs: 6, Hardness: 20}}, rows)
}
