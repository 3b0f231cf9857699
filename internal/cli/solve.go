package cli

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsched/job"
	"github.com/katalvlaran/lvsched/memo"
	"github.com/katalvlaran/lvsched/tardiness"
)

// SolveOptions holds the flags of the solve command.
type SolveOptions struct {
	Algo      string
	Epsilon   float64
	NoPrune   bool
	Memo      string
	NodeLimit int64
	Timeout   time.Duration
}

// solveOutput is the JSON shape of a solve result.
type solveOutput struct {
	File      string      `json:"file"`
	Algo      string      `json:"algo"`
	Jobs      int         `json:"jobs"`
	Tardiness int64       `json:"tardiness"`
	Order     []int       `json:"order,omitempty"`
	Scale     float64     `json:"scale,omitempty"`
	Stats     statsOutput `json:"stats"`
}

type statsOutput struct {
	Calls       int64 `json:"calls"`
	Computed    int64 `json:"computed"`
	MemoHits    int64 `json:"memo_hits"`
	MaxDepth    int   `json:"max_depth"`
	MemoEntries int   `json:"memo_entries"`
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{}

	cmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Solve one instance file",
		Long: `Solve a total tardiness instance: n on the first token, then n pairs of
processing time and due date. Prints the tardiness, the processing order
(input positions, when the algorithm produces one) and solver statistics.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd.Context(), rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Algo, "algo", "exact", "algorithm (exact|sequence|approx|edd|greedy|bnb|exhaustive)")
	cmd.Flags().Float64Var(&opts.Epsilon, "eps", 0.1, "FPTAS accuracy in (0, 1]")
	cmd.Flags().BoolVar(&opts.NoPrune, "no-prune", false, "disable the due-date domination rule")
	cmd.Flags().StringVar(&opts.Memo, "memo", "hash", "memo backend (hash|dense|tree)")
	cmd.Flags().Int64Var(&opts.NodeLimit, "node-limit", 0, "branch-and-bound node cap (0 = unlimited)")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 0, "abort the solve after this long (0 = never)")

	return cmd
}

// options converts the flags into solver options.
func (o *SolveOptions) options() (tardiness.Options, error) {
	var err error
	opts := tardiness.DefaultOptions()
	if opts.Algo, err = tardiness.ParseAlgo(o.Algo); err != nil {
		return opts, err
	}
	if opts.Backend, err = memo.ParseBackend(o.Memo); err != nil {
		return opts, err
	}
	opts.Epsilon = o.Epsilon
	opts.Prune = !o.NoPrune
	opts.NodeLimit = o.NodeLimit

	return opts, nil
}

func runSolve(ctx context.Context, rootOpts *RootOptions, opts *SolveOptions, path string, cmd *cobra.Command) error {
	sopts, err := opts.options()
	if err != nil {
		return WrapExitError(ExitCommandError, "solve", err)
	}
	inst, err := job.ReadFile(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "read instance", err)
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}
	log := rootOpts.Log.WithFields(logrus.Fields{"file": path, "algo": sopts.Algo, "jobs": inst.NumJobs()})
	log.Debug("solving")

	start := time.Now()
	res, err := tardiness.Solve(ctx, inst, sopts)
	if err != nil {
		return WrapExitError(ExitFailure, "solve "+filepath.Base(path), err)
	}
	log.WithFields(logrus.Fields{"runtime": time.Since(start), "tardiness": res.Tardiness}).Debug("solved")

	out := solveOutput{
		File:      filepath.Base(path),
		Algo:      res.Algo.String(),
		Jobs:      inst.NumJobs(),
		Tardiness: res.Tardiness,
		Order:     res.Order,
		Scale:     res.Scale,
		Stats: statsOutput{
			Calls:       res.Stats.Calls,
			Computed:    res.Stats.Computed,
			MemoHits:    res.Stats.MemoHits,
			MaxDepth:    res.Stats.MaxDepth,
			MemoEntries: res.Stats.MemoEntries,
		},
	}

	p := newPrinter(rootOpts, cmd.OutOrStdout())
	if p.json() {
		return p.encode(out)
	}
	p.field("file", out.File)
	p.field("algo", out.Algo)
	p.field("jobs", out.Jobs)
	p.field("tardiness", out.Tardiness)
	if out.Order != nil {
		p.field("order", joinInts(out.Order))
	}
	if out.Scale != 0 {
		p.field("scale", strconv.FormatFloat(out.Scale, 'g', 6, 64))
	}
	p.field("calls", out.Stats.Calls)
	p.field("computed", out.Stats.Computed)
	p.field("memo_hits", out.Stats.MemoHits)
	p.field("max_depth", out.Stats.MaxDepth)
	p.field("memo", out.Stats.MemoEntries)

	return nil
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, " ")
}
