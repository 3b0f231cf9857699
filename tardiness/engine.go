package tardiness

import (
	"context"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvsched/memo"
	"github.com/katalvlaran/lvsched/sequence"
)

// number is the due-date and tardiness domain: int64 for the exact solver,
// float64 for the scaled FPTAS instance. Processing and anchor times stay int64.
type number interface {
	constraints.Signed | constraints.Float
}

// entry is one memoized state: its optimal value and the split offset that
// achieved it.
type entry[V number] struct {
	Value V
	Delta int32
}

// cancelEvery is the number of recursive calls between context checks.
const cancelEvery = 1024

// engine holds the read-only sorted instance, the cell pool and the memo
// table of one decomposition run. The value pass and the reconstruction
// share it so both calculate splits with the same code.
type engine[V number] struct {
	ctx context.Context
	n   int
	p   []int64
	d   []V

	pool  *sequence.Pool
	root  *sequence.Sequence
	table memo.Table[entry[V]]
	prune bool

	// storeRoot also memoizes the K = −1 root state; the replay reads its delta.
	storeRoot bool

	stats Stats
}

func newEngine[V number](ctx context.Context, p []int64, d []V, opts Options, storeRoot bool) (*engine[V], error) {
	table, err := memo.New[entry[V]](opts.Backend, len(p))
	if err != nil {
		return nil, err
	}

	pool := sequence.NewPool(p)

	return &engine[V]{
		ctx:       ctx,
		n:         len(p),
		p:         p,
		d:         d,
		pool:      pool,
		root:      pool.Full(),
		table:     table,
		prune:     opts.Prune,
		storeRoot: storeRoot,
	}, nil
}

// tardy returns max(0, c − due).
func tardy[V number](c int64, due V) V {
	if v := V(c) - due; v > 0 {
		return v
	}

	return 0
}

// run solves the whole instance from time 0.
func (e *engine[V]) run() (V, error) {
	v, err := e.solve(e.root, -1, 0, 0)
	e.stats.MemoEntries = e.table.Len()

	return v, err
}

// inOrder is Σ tardiness of seq processed in index order from t, the upper
// bound every state value must respect.
func (e *engine[V]) inOrder(seq *sequence.Sequence, t int64) V {
	var total V
	seq.Each(func(x int) bool {
		t += e.p[x]
		total += tardy(t, e.d[x])
		return true
	})

	return total
}

// exceeds reports v > bound with a relative tolerance for float domains.
func exceeds[V number](v, bound V) bool {
	fv, fb := float64(v), float64(bound)

	return fv > fb*(1+1e-12)+1e-9
}

// solve returns the minimum total tardiness of seq started at time t, where
// k is the job extracted by the caller (−1 at the root). On return seq holds
// exactly the membership and order it had on entry.
func (e *engine[V]) solve(seq *sequence.Sequence, k int32, t int64, depth int) (V, error) {
	e.stats.Calls++
	if depth > e.stats.MaxDepth {
		e.stats.MaxDepth = depth
	}
	if e.stats.Calls%cancelEvery == 0 {
		if err := e.ctx.Err(); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrCanceled, err)
		}
	}
	if depth > e.n {
		return 0, fmt.Errorf("depth %d exceeds %d jobs: %w", depth, e.n, ErrInvariantViolation)
	}

	switch seq.Len() {
	case 0:
		return 0, nil
	case 1:
		x := seq.Head()
		return tardy(t+e.p[x], e.d[x]), nil
	}

	key := memo.Key{I: int32(seq.Head()), J: int32(seq.Tail()), K: k, T: t}
	if k >= 0 {
		if ent, ok := e.table.Get(key); ok {
			e.stats.MemoHits++
			return ent.Value, nil
		}
	}
	bound := e.inOrder(seq, t)

	pr, err := seq.Open()
	if err != nil {
		return 0, err
	}
	defer pr.Close()

	var (
		kp    = pr.K()
		best  V
		delta int32 = -1
		off   int32
	)
	for off = 0; ; off++ {
		left, right := pr.Left(), pr.Right()
		if !e.prune || right.Len() == 0 || e.d[right.Head()] > V(t+left.TotalP()) {
			mid := t + left.TotalP() + e.p[kp]
			lv, err := e.solve(left, int32(kp), t, depth+1)
			if err != nil {
				return 0, err
			}
			rv, err := e.solve(right, int32(kp), mid, depth+1)
			if err != nil {
				return 0, err
			}
			if total := lv + tardy(mid, e.d[kp]) + rv; delta < 0 || total < best {
				best, delta = total, off
			}
		}
		if !pr.Advance() {
			break
		}
	}
	e.stats.Computed++

	if float64(best) < -1e-9 || exceeds(best, bound) {
		return 0, fmt.Errorf("state %+v: value %v outside [0, %v]: %w", key, best, bound, ErrInvariantViolation)
	}
	if k >= 0 || e.storeRoot {
		e.table.Set(key, entry[V]{Value: best, Delta: delta})
	}

	return best, nil
}

// replay writes the optimal order of seq into out[offset:offset+seq.Len()]
// by following the stored split offsets. k and t must match the solve call
// that computed the state.
func (e *engine[V]) replay(seq *sequence.Sequence, k int32, t int64, offset int, out []int, depth int) error {
	if depth > e.n {
		return fmt.Errorf("replay depth %d exceeds %d jobs: %w", depth, e.n, ErrInvariantViolation)
	}
	switch seq.Len() {
	case 0:
		return nil
	case 1:
		out[offset] = seq.Head()
		return nil
	}

	key := memo.Key{I: int32(seq.Head()), J: int32(seq.Tail()), K: k, T: t}
	ent, ok := e.table.Get(key)
	if !ok {
		return fmt.Errorf("state %+v not memoized: %w", key, ErrInvariantViolation)
	}

	pr, err := seq.Open()
	if err != nil {
		return err
	}
	defer pr.Close()

	for i := int32(0); i < ent.Delta; i++ {
		if !pr.Advance() {
			return fmt.Errorf("state %+v: delta %d beyond width %d: %w", key, ent.Delta, pr.Width(), ErrInvariantViolation)
		}
	}

	var (
		kp    = pr.K()
		left  = pr.Left()
		right = pr.Right()
		pos   = offset + left.Len()
		mid   = t + left.TotalP() + e.p[kp]
	)
	out[pos] = kp
	if err = e.replay(left, int32(kp), t, offset, out, depth+1); err != nil {
		return err
	}

	return e.replay(right, int32(kp), mid, pos+1, out, depth+1)
}

// reconstruct runs the value pass with every state stored, then replays the
// root to recover an order attaining the value.
func (e *engine[V]) reconstruct() ([]int, V, error) {
	v, err := e.run()
	if err != nil {
		return nil, 0, err
	}
	out := make([]int, e.n)
	if err = e.replay(e.root, -1, 0, 0, out, 0); err != nil {
		return nil, 0, err
	}

	return out, v, nil
}
