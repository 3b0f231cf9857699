package sequence_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsched/sequence"
)

// newPool builds a pool whose processing times follow p.
func newPool(t *testing.T, p ...int64) *sequence.Pool {
	t.Helper()

	return sequence.NewPool(p)
}

func TestFull_CachesLengthAndTotal(t *testing.T) {
	pl := newPool(t, 3, 1, 4, 1, 5)
	s := pl.Full()
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, int64(14), s.TotalP())
	assert.Equal(t, 0, s.Head())
	assert.Equal(t, 4, s.Tail())
	assert.Equal(t, "[0 1 2 3 4]", s.String())
	require.NoError(t, pl.Verify(s))
}

func TestEmpty_HeadTailSentinel(t *testing.T) {
	s := newPool(t, 1, 2).Empty()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, -1, s.Head())
	assert.Equal(t, -1, s.Tail())
	assert.Equal(t, "[]", s.String())
	assert.Empty(t, s.Indices())
}

func TestAppend_RejectsOutOfOrder(t *testing.T) {
	pl := newPool(t, 1, 2, 3)
	s := pl.Empty()
	require.NoError(t, s.Append(1))
	require.ErrorIs(t, s.Append(1), sequence.ErrOrder)
	require.ErrorIs(t, s.Append(0), sequence.ErrOrder)
	require.ErrorIs(t, s.Append(3), sequence.ErrIndexOutOfRange)
	require.ErrorIs(t, s.Append(-1), sequence.ErrIndexOutOfRange)
	require.NoError(t, s.Append(2))
	assert.Equal(t, []int{1, 2}, s.Indices())
	assert.Equal(t, int64(5), s.TotalP())
}

// TestJobListScenario walks the classic removal/insertion script: remove the
// max twice, re-insert both, check order and totals at each step.
func TestJobListScenario(t *testing.T) {
	pl := newPool(t, 98, 26, 82, 67, 85)
	s := pl.Full()

	k, err := s.ExtractMax()
	require.NoError(t, err)
	assert.Equal(t, 0, k)
	assert.Equal(t, []int{1, 2, 3, 4}, s.Indices())
	assert.Equal(t, int64(260), s.TotalP())

	k2, err := s.ExtractMax()
	require.NoError(t, err)
	assert.Equal(t, 4, k2)
	assert.Equal(t, []int{1, 2, 3}, s.Indices())

	require.NoError(t, s.SortedInsert(k2))
	require.NoError(t, s.SortedInsert(k))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, s.Indices())
	assert.Equal(t, int64(358), s.TotalP())
	require.NoError(t, pl.Verify(s))

	require.ErrorIs(t, s.SortedInsert(2), sequence.ErrAlreadyLinked)
	require.ErrorIs(t, s.SortedInsert(0), sequence.ErrAlreadyLinked)
	require.ErrorIs(t, s.SortedInsert(4), sequence.ErrAlreadyLinked)
}

func TestExtractMax_LeftmostOnTies(t *testing.T) {
	pl := newPool(t, 2, 7, 3, 7, 7)
	s := pl.Full()
	k, err := s.ExtractMax()
	require.NoError(t, err)
	assert.Equal(t, 1, k)
	k, err = s.ExtractMax()
	require.NoError(t, err)
	assert.Equal(t, 3, k)
	assert.Equal(t, 4, s.Tail())
}

func TestExtractMax_TailAndSingle(t *testing.T) {
	pl := newPool(t, 1, 2, 9)
	s := pl.Full()
	k, err := s.ExtractMax()
	require.NoError(t, err)
	assert.Equal(t, 2, k)
	assert.Equal(t, 1, s.Tail())
	require.NoError(t, s.Verify())

	one := newPool(t, 5).Full()
	k, err = one.ExtractMax()
	require.NoError(t, err)
	assert.Equal(t, 0, k)
	assert.Equal(t, -1, one.Head())
	assert.Equal(t, -1, one.Tail())

	_, err = one.ExtractMax()
	require.ErrorIs(t, err, sequence.ErrEmptySequence)
	_, err = one.RemoveFirst()
	require.ErrorIs(t, err, sequence.ErrEmptySequence)
}

func TestSplitBefore_Concat(t *testing.T) {
	tests := []struct {
		name        string
		at          int
		left, right []int
	}{
		{"before head", 0, []int{}, []int{0, 1, 2, 3}},
		{"middle", 2, []int{0, 1}, []int{2, 3}},
		{"past tail", 9, []int{0, 1, 2, 3}, []int{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pl := newPool(t, 1, 2, 3, 4)
			s := pl.Full()
			r := s.SplitBefore(tc.at)
			if diff := cmp.Diff(tc.left, s.Indices()); diff != "" {
				t.Fatalf("left mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.right, r.Indices()); diff != "" {
				t.Fatalf("right mismatch (-want +got):\n%s", diff)
			}
			require.NoError(t, pl.Verify(s, r))
			assert.Equal(t, int64(10), s.TotalP()+r.TotalP())

			require.NoError(t, s.Concat(r))
			assert.Equal(t, []int{0, 1, 2, 3}, s.Indices())
			assert.Equal(t, 0, r.Len())
			require.NoError(t, pl.Verify(s, r))
		})
	}
}

func TestConcat_Rejects(t *testing.T) {
	pl := newPool(t, 1, 2, 3)
	s := pl.Full()
	r := s.SplitBefore(1)
	require.ErrorIs(t, r.Concat(s), sequence.ErrOrder)
	require.ErrorIs(t, s.Concat(newPool(t, 1).Empty()), sequence.ErrForeignPool)
}

func TestShiftFrom(t *testing.T) {
	pl := newPool(t, 4, 5, 6)
	left := pl.Full()
	right := left.SplitBefore(0)
	require.NoError(t, left.ShiftFrom(right))
	require.NoError(t, left.ShiftFrom(right))
	assert.Equal(t, []int{0, 1}, left.Indices())
	assert.Equal(t, []int{2}, right.Indices())
	assert.Equal(t, int64(9), left.TotalP())
	assert.Equal(t, int64(6), right.TotalP())
	require.NoError(t, left.ShiftFrom(right))
	require.ErrorIs(t, left.ShiftFrom(right), sequence.ErrEmptySequence)
	require.NoError(t, pl.Verify(left, right))
}

func TestEqualAndEach(t *testing.T) {
	pl := newPool(t, 1, 1, 1, 1)
	a := pl.Full()
	b := a.SplitBefore(2)
	assert.False(t, a.Equal(b))

	other := newPool(t, 1, 1, 1, 1).Full()
	other.SplitBefore(2)
	assert.True(t, a.Equal(other))

	var seen []int
	a.Each(func(i int) bool {
		seen = append(seen, i)
		return false
	})
	assert.Equal(t, []int{0}, seen)
}

func TestPoolVerify_DetectsSharedCells(t *testing.T) {
	pl := newPool(t, 1, 2)
	a := pl.Full()
	require.ErrorIs(t, pl.Verify(a, a), sequence.ErrCorrupt)
	require.ErrorIs(t, newPool(t, 1).Verify(a), sequence.ErrForeignPool)
}

func TestProbe_AdvanceAndRestore(t *testing.T) {
	pl := newPool(t, 3, 9, 2, 5, 1)
	s := pl.Full()
	pr, err := s.Open()
	require.NoError(t, err)
	assert.Equal(t, 1, pr.K())
	assert.Equal(t, 3, pr.Width())
	assert.Equal(t, []int{0}, pr.Left().Indices())
	assert.Equal(t, []int{2, 3, 4}, pr.Right().Indices())

	var lefts [][]int
	for {
		lefts = append(lefts, pr.Left().Indices())
		require.NoError(t, pl.Verify(pr.Left(), pr.Right()))
		if !pr.Advance() {
			break
		}
	}
	want := [][]int{{0}, {0, 2}, {0, 2, 3}, {0, 2, 3, 4}}
	if diff := cmp.Diff(want, lefts); diff != "" {
		t.Fatalf("left views mismatch (-want +got):\n%s", diff)
	}

	pr.Close()
	pr.Close()
	assert.Equal(t, []int{0, 1, 2, 3, 4}, s.Indices())
	assert.Equal(t, int64(20), s.TotalP())
	assert.False(t, pr.Advance())
	require.NoError(t, pl.Verify(s))
}

func TestProbe_EarlyClose(t *testing.T) {
	pl := newPool(t, 1, 2, 8, 1, 1)
	s := pl.Full()
	func() {
		pr, err := s.Open()
		require.NoError(t, err)
		defer pr.Close()
		pr.Advance()
	}()
	assert.Equal(t, []int{0, 1, 2, 3, 4}, s.Indices())
	require.NoError(t, pl.Verify(s))

	_, err := pl.Empty().Open()
	require.ErrorIs(t, err, sequence.ErrEmptySequence)
}

// TestRandomScript applies random operations and checks invariants after
// each one against a plain slice model.
func TestRandomScript(t *testing.T) {
	const (
		n     = 24
		steps = 2000
	)
	rng := rand.New(rand.NewSource(42))
	p := make([]int64, n)
	for i := range p {
		p[i] = int64(rng.Intn(10) + 1)
	}
	pl := sequence.NewPool(p)
	left := pl.Full()
	right := pl.Empty()
	var detached []int
	model := func() []int {
		out := make([]int, 0, n)
		for i := 0; i < n; i++ {
			if !contains(detached, i) {
				out = append(out, i)
			}
		}
		return out
	}

	for step := 0; step < steps; step++ {
		switch rng.Intn(5) {
		case 0:
			if left.Len() > 0 {
				k, err := left.ExtractMax()
				require.NoError(t, err)
				detached = append(detached, k)
			}
		case 1:
			if len(detached) > 0 {
				i := rng.Intn(len(detached))
				// Right must be merged first so the insert sees the full view.
				require.NoError(t, left.Concat(right))
				require.NoError(t, left.SortedInsert(detached[i]))
				detached = append(detached[:i], detached[i+1:]...)
			}
		case 2:
			require.NoError(t, left.Concat(right))
			right = left.SplitBefore(rng.Intn(n + 1))
		case 3:
			if right.Len() > 0 {
				require.NoError(t, left.ShiftFrom(right))
			}
		case 4:
			require.NoError(t, left.Concat(right))
		}
		require.NoError(t, pl.Verify(left, right), "step %d", step)
		assert.Equal(t, len(model()), left.Len()+right.Len(), "step %d", step)
	}

	require.NoError(t, left.Concat(right))
	if diff := cmp.Diff(model(), left.Indices()); diff != "" {
		t.Fatalf("final membership mismatch (-want +got):\n%s", diff)
	}
}

func contains(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}

	return false
}
