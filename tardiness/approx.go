package tardiness

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/lvsched/job"
)

// Approx is Lawler's FPTAS: scale the instance by K = Tmax·2ε/(n(n+1)),
// reconstruct an optimal order of the scaled instance and report that order's
// tardiness on the original one. Tmax is the maximum tardiness of the
// due-date order.
//
// An Approx is single-use.
type Approx struct {
	inst *job.Instance
	eps  float64
	opts Options
	used bool
}

// NewApprox prepares an approximation with accuracy eps over inst.
// eps is checked by Solve.
func NewApprox(inst *job.Instance, eps float64, opts Options) *Approx {
	return &Approx{inst: inst, eps: eps, opts: opts}
}

// Solve returns the scaled-optimal order evaluated on the input instance.
// Result.Scale carries K (0 when the due-date order is already on time).
//
// Errors: ErrBadEpsilon, ErrSolverUsed, ErrCanceled, ErrInvariantViolation.
//
// Complexity: O(n⁷/ε) in the worst case.
func (a *Approx) Solve(ctx context.Context) (Result, error) {
	if !(a.eps > 0 && a.eps <= 1) {
		return Result{}, fmt.Errorf("epsilon %v: %w", a.eps, ErrBadEpsilon)
	}
	if a.used {
		return Result{}, ErrSolverUsed
	}
	a.used = true

	var (
		s    = a.inst.SortByDueDate()
		n    = len(s.Jobs)
		tmax = job.MaxTardiness(s.Jobs)
	)
	if tmax == 0 {
		perm := make([]int, n)
		for i := range perm {
			perm[i] = i
		}

		return Result{Algo: AlgoApprox, Sequence: perm, Order: s.ToInput(perm)}, nil
	}

	k := float64(tmax) * 2 * a.eps / float64(n*(n+1))
	p, d := scale(s.Jobs, k)

	e, err := newEngine(ctx, p, d, a.opts, true)
	if err != nil {
		return Result{}, err
	}
	perm, _, err := e.reconstruct()
	if err != nil {
		return Result{Algo: AlgoApprox, Scale: k, Stats: e.stats}, err
	}
	total, err := job.TotalTardiness(s.Jobs, perm)
	if err != nil {
		return Result{}, fmt.Errorf("scaled order: %v: %w", err, ErrInvariantViolation)
	}

	return Result{
		Algo:      AlgoApprox,
		Tardiness: total,
		Sequence:  perm,
		Order:     s.ToInput(perm),
		Scale:     k,
		Stats:     e.stats,
	}, nil
}

// scale returns p' = max(1, ⌊p/k⌋) and d' = d/k, freshly allocated.
func scale(jobs []job.Job, k float64) ([]int64, []float64) {
	p := make([]int64, len(jobs))
	d := make([]float64, len(jobs))
	for i, j := range jobs {
		p[i] = int64(math.Floor(float64(j.P) / k))
		if p[i] < 1 {
			p[i] = 1
		}
		d[i] = float64(j.D) / k
	}

	return p, d
}

// Approximate runs the FPTAS with DefaultOptions and returns the tardiness
// of the approximate order on inst.
func Approximate(inst *job.Instance, eps float64) (int64, error) {
	res, err := NewApprox(inst, eps, DefaultOptions()).Solve(context.Background())
	if err != nil {
		return 0, err
	}

	return res.Tardiness, nil
}
