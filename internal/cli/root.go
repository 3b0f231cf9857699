package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// Log is configured by the root command before any subcommand runs.
	Log *logrus.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the lvsched CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{Log: logrus.New()}

	cmd := &cobra.Command{
		Use:   "lvsched",
		Short: "lvsched - single-machine total tardiness",
		Long: `Solve, generate and benchmark single-machine total tardiness instances
with Lawler's decomposition, its FPTAS and baseline heuristics.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			opts.Log.SetOutput(cmd.ErrOrStderr())
			opts.Log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
			opts.Log.SetLevel(logrus.InfoLevel)
			if opts.Verbose {
				opts.Log.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output (debug logging)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewSolveCommand(opts))
	cmd.AddCommand(NewGenCommand(opts))
	cmd.AddCommand(NewHardnessCommand(opts))
	cmd.AddCommand(NewBenchCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
