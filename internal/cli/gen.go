package cli

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsched/job"
)

// GenOptions holds the flags of the gen command.
type GenOptions struct {
	N     int
	RDD   float64
	TF    float64
	MaxP  int64
	Seed  int64
	Count int
	Out   string
}

// NewGenCommand creates the gen command.
func NewGenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenOptions{}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate random instance files",
		Long: `Generate random instances with processing times in [1, max-p] and due
dates controlled by the relative range (rdd) and tardiness factor (tf).

With --out, files are written to that directory using the benchmark naming
scheme and their paths are printed. Without it a single instance is written
to stdout.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.N, "n", 10, "number of jobs")
	cmd.Flags().Float64Var(&opts.RDD, "rdd", 0.6, "relative range of due dates")
	cmd.Flags().Float64Var(&opts.TF, "tf", 0.6, "tardiness factor")
	cmd.Flags().Int64Var(&opts.MaxP, "max-p", 100, "largest processing time")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 1, "seed of the first instance; later ones use seed+1, seed+2, ...")
	cmd.Flags().IntVar(&opts.Count, "count", 1, "number of instances")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "output directory")

	return cmd
}

func runGen(rootOpts *RootOptions, opts *GenOptions, cmd *cobra.Command) error {
	if opts.Count < 1 || (opts.Out == "" && opts.Count != 1) {
		return &ExitError{Code: ExitCommandError, Message: "gen: --count above 1 needs --out"}
	}
	// The generator options panic on out-of-range values.
	if !(opts.RDD > 0 && opts.RDD <= 1) || !(opts.TF >= 0 && opts.TF <= 1) || opts.MaxP < 1 {
		return &ExitError{Code: ExitCommandError, Message: "gen: need rdd in (0, 1], tf in [0, 1] and max-p >= 1"}
	}

	if opts.Out != "" {
		if err := os.MkdirAll(opts.Out, 0o755); err != nil {
			return WrapExitError(ExitCommandError, "gen", err)
		}
	}
	p := newPrinter(rootOpts, cmd.OutOrStdout())
	var paths []string
	for k := 0; k < opts.Count; k++ {
		seed := opts.Seed + int64(k)
		inst, err := job.Generate(opts.N,
			job.WithSeed(seed), job.WithRDD(opts.RDD), job.WithTF(opts.TF), job.WithMaxP(opts.MaxP))
		if err != nil {
			return WrapExitError(ExitCommandError, "gen", err)
		}
		if opts.Out == "" {
			return job.Write(cmd.OutOrStdout(), inst)
		}

		meta := job.FileMeta{RDD: opts.RDD, TF: opts.TF, Size: opts.N}
		if opts.Count > 1 {
			meta.Seq = k + 1
		}
		path := filepath.Join(opts.Out, job.FileName(meta))
		if err = job.WriteFile(path, inst); err != nil {
			return WrapExitError(ExitCommandError, "gen", err)
		}
		rootOpts.Log.WithFields(logrus.Fields{"path": path, "seed": seed, "jobs": opts.N}).Debug("wrote instance")
		paths = append(paths, path)
	}

	if p.json() {
		return p.encode(paths)
	}
	for _, path := range paths {
		p.field("wrote", path)
	}
	return nil
}
