package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsched/bench"
)

// BenchOptions holds the flags of the bench command.
type BenchOptions struct {
	Plan    string
	Out     string
	Metrics string
	RunID   string
}

// NewBenchCommand creates the bench command.
func NewBenchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BenchOptions{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run a benchmark plan",
		Long: `Run every algorithm of a YAML plan on every instance it names or
generates, write one CSV row per run and print a per-algorithm summary.

Exits non-zero when a run fails or an exact algorithm disagrees with a known
optimum; the CSV is written either way.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Plan, "plan", "p", "", "plan file (required)")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "results.csv", "CSV output path")
	cmd.Flags().StringVar(&opts.Metrics, "metrics", "", "write Prometheus text-format metrics to this file")
	cmd.Flags().StringVar(&opts.RunID, "run-id", "", "id stamped on every row (default: random UUID)")
	_ = cmd.MarkFlagRequired("plan")

	return cmd
}

func runBench(rootOpts *RootOptions, opts *BenchOptions, cmd *cobra.Command) error {
	plan, err := bench.ReadPlan(opts.Plan)
	if err != nil {
		return WrapExitError(ExitCommandError, "read plan", err)
	}
	cases, err := plan.Cases()
	if err != nil {
		return WrapExitError(ExitCommandError, "load instances", err)
	}
	answers, err := plan.LoadAnswers()
	if err != nil {
		return WrapExitError(ExitCommandError, "load answers", err)
	}

	r := &bench.Runner{Plan: plan, Answers: answers, Log: rootOpts.Log, RunID: opts.RunID}
	if opts.Metrics != "" {
		r.Metrics = bench.NewMetrics()
	}
	rootOpts.Log.WithFields(logrus.Fields{
		"instances":  len(cases),
		"algorithms": len(plan.Algorithms),
		"workers":    plan.Workers,
	}).Info("bench started")

	records, runErr := r.Run(cmd.Context(), cases)

	if err = bench.WriteCSVFile(opts.Out, records); err != nil {
		return WrapExitError(ExitCommandError, "write csv", err)
	}
	if r.Metrics != nil {
		if err = r.Metrics.WriteFile(opts.Metrics); err != nil {
			return WrapExitError(ExitCommandError, "write metrics", err)
		}
	}

	summaries := bench.Summarize(records)
	for _, s := range summaries {
		rootOpts.Log.WithFields(logrus.Fields{
			"run_id":  r.RunID,
			"algo":    s.Algo,
			"ok":      s.OK,
			"failed":  s.Failed,
			"skipped": s.Skipped,
			"mean_ms": s.Runtime.Mean,
		}).Info("bench summary")
	}
	if err = printSummaries(newPrinter(rootOpts, cmd.OutOrStdout()), summaries); err != nil {
		return err
	}

	if runErr != nil {
		return WrapExitError(ExitFailure, "bench", runErr)
	}
	return nil
}

func printSummaries(p *printer, summaries []bench.Summary) error {
	if p.json() {
		return p.encode(summaries)
	}
	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "algo\truns\tok\tfailed\tskipped\tmatched\tmean_ms\tmean_tardiness")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%.3f\t%.1f\n",
			s.Algo, s.Runs, s.OK, s.Failed, s.Skipped, s.Matched, s.Runtime.Mean, s.Tardiness.Mean)
	}
	return tw.Flush()
}
