package cli

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsched/bench"
)

// writePlan writes a plan over testdata/*.dat with the given answers file
// contents and returns the plan path.
func writePlan(t *testing.T, answers string) string {
	t.Helper()
	dir := t.TempDir()
	glob, err := filepath.Abs(filepath.Join("testdata", "*.dat"))
	require.NoError(t, err)

	plan := fmt.Sprintf(`workers: 2
timeout: 30s
algorithms:
  - algo: exact
  - algo: sequence
    memo: dense
  - name: fptas
    algo: approx
    epsilon: 0.5
  - algo: edd
instances:
  - %q
answers: answers.txt
`, glob)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plan.yaml"), []byte(plan), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "answers.txt"), []byte(answers), 0o644))

	return filepath.Join(dir, "plan.yaml")
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	return rows
}

func TestBench_WritesCSVAndSummary(t *testing.T) {
	plan := writePlan(t, "five.dat 44\nsix.dat 42\n")
	dir := filepath.Dir(plan)
	csvPath := filepath.Join(dir, "out", "results.csv")
	promPath := filepath.Join(dir, "bench.prom")

	out, errOut, err := execute(t, "bench", "--plan", plan, "--out", csvPath, "--metrics", promPath, "--run-id", "fixed")
	require.NoError(t, err)

	rows := readCSV(t, csvPath)
	require.Len(t, rows, 1+2*4)
	assert.Equal(t, bench.Header, rows[0])
	for _, row := range rows[1:] {
		assert.Equal(t, "fixed", row[0])
		assert.Equal(t, bench.StatusOK, row[8], strings.Join(row, ","))
	}
	// five.dat/exact and six.dat/exact
	assert.Equal(t, "44", rows[1][7])
	assert.Equal(t, "true", rows[1][10])
	assert.Equal(t, "42", rows[5][7])

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1+4)
	assert.True(t, strings.HasPrefix(lines[0], "algo"))
	assert.True(t, strings.HasPrefix(lines[1], "edd "))
	assert.True(t, strings.HasPrefix(lines[2], "exact "))

	prom, err := os.ReadFile(promPath)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `lvsched_bench_tardiness{algo="sequence",instance="six.dat"} 42`)
	assert.Contains(t, errOut, "bench summary")
}

func TestBench_MismatchExitsNonZero(t *testing.T) {
	plan := writePlan(t, "six.dat 40\n")
	csvPath := filepath.Join(filepath.Dir(plan), "results.csv")

	out, _, err := execute(t, "--format", "json", "bench", "--plan", plan, "--out", csvPath)
	require.Error(t, err)
	assert.ErrorIs(t, err, bench.ErrMismatch)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, `"Algo": "exact"`)

	rows := readCSV(t, csvPath)
	require.Len(t, rows, 1+2*4)
	assert.Equal(t, "false", rows[5][10])
}

func TestBench_BadPlan(t *testing.T) {
	_, _, err := execute(t, "bench")
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("algorithms: []\n"), 0o644))
	_, _, err = execute(t, "bench", "--plan", path)
	require.ErrorIs(t, err, bench.ErrBadPlan)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
