package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvsched/tardiness"
)

// ErrMismatch indicates an exact algorithm disagreed with a known optimum.
var ErrMismatch = errors.New("bench: result differs from known optimum")

// Run status values.
const (
	StatusOK      = "ok"
	StatusTimeout = "timeout"
	StatusError   = "error"
	StatusSkipped = "skipped"
)

// Record is one CSV row.
type Record struct {
	RunID     string
	Instance  string
	RDD, TF   float64
	Size      int
	Algo      string
	Runtime   time.Duration
	Tardiness int64
	Status    string
	Expected  *int64 // known optimum, nil when unknown
	Matches   *bool  // Tardiness == Expected, nil when unknown or not ok
	Err       error
}

// Runner executes a Plan. Log and Metrics are optional.
type Runner struct {
	Plan    *Plan
	Answers map[string]int64
	Log     logrus.FieldLogger
	Metrics *Metrics

	// RunID stamps every record; a fresh UUID when empty.
	RunID string
}

// exactAlgos always reach the optimum, so a differing answer is an error.
var exactAlgos = map[tardiness.Algo]bool{
	tardiness.AlgoExact:          true,
	tardiness.AlgoSequence:       true,
	tardiness.AlgoBranchAndBound: true,
	tardiness.AlgoExhaustive:     true,
}

// Run benchmarks every (case, algorithm) pair with at most Plan.Workers
// concurrent runs (runtime.NumCPU() when Workers <= 0). Records come back in case-major, algorithm-minor order.
// Per-run failures are aggregated into the returned *multierror.Error; the
// records are complete either way.
func (r *Runner) Run(ctx context.Context, cases []Case) ([]Record, error) {
	if r.RunID == "" {
		r.RunID = uuid.NewString()
	}
	log := r.Log
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	log = log.WithField("run_id", r.RunID)

	var (
		algos   = r.Plan.Algorithms
		records = make([]Record, len(cases)*len(algos))
		mu      sync.Mutex
		merr    *multierror.Error
		g       errgroup.Group
	)
	workers := r.Plan.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	g.SetLimit(workers)

	for ci := range cases {
		for ai := range algos {
			g.Go(func() error {
				rec := r.runOne(ctx, log, cases[ci], algos[ai])
				records[ci*len(algos)+ai] = rec
				if r.Metrics != nil {
					r.Metrics.Observe(rec)
				}
				if rec.Err != nil {
					mu.Lock()
					merr = multierror.Append(merr, fmt.Errorf("%s/%s: %w", rec.Instance, rec.Algo, rec.Err))
					mu.Unlock()
				}
				return nil
			})
		}
	}
	_ = g.Wait()

	return records, merr.ErrorOrNil()
}

func (r *Runner) runOne(ctx context.Context, log logrus.FieldLogger, c Case, a AlgoSpec) Record {
	rec := Record{
		RunID:    r.RunID,
		Instance: c.Name,
		RDD:      c.Meta.RDD,
		TF:       c.Meta.TF,
		Size:     c.Inst.NumJobs(),
		Algo:     a.Name,
	}
	if want, ok := r.Answers[c.Name]; ok {
		rec.Expected = &want
	}
	fields := logrus.Fields{"instance": c.Name, "algo": a.Name, "size": rec.Size}

	if a.MaxJobs > 0 && rec.Size > a.MaxJobs {
		rec.Status = StatusSkipped
		log.WithFields(fields).Debug("skipped")

		return rec
	}
	opts, err := a.Options()
	if err != nil {
		rec.Status, rec.Err = StatusError, err
		return rec
	}

	runCtx, cancel := ctx, context.CancelFunc(func() {})
	if r.Plan.Timeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, r.Plan.Timeout)
	}
	start := time.Now()
	res, err := tardiness.Solve(runCtx, c.Inst.Copy(), opts)
	rec.Runtime = time.Since(start)
	cancel()

	fields["runtime"] = rec.Runtime
	switch {
	case err != nil && errors.Is(err, context.DeadlineExceeded):
		rec.Status = StatusTimeout
		log.WithFields(fields).Warn("timed out")

		return rec
	case err != nil:
		rec.Status, rec.Err = StatusError, err
		log.WithFields(fields).WithError(err).Error("run failed")

		return rec
	}

	rec.Status, rec.Tardiness = StatusOK, res.Tardiness
	fields["tardiness"] = res.Tardiness
	if rec.Expected != nil {
		m := res.Tardiness == *rec.Expected
		rec.Matches = &m
		if !m && exactAlgos[opts.Algo] {
			rec.Err = fmt.Errorf("got %d, want %d: %w", res.Tardiness, *rec.Expected, ErrMismatch)
			log.WithFields(fields).WithField("expected", *rec.Expected).Error("answer mismatch")

			return rec
		}
	}
	log.WithFields(fields).Debug("done")

	return rec
}
