package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsched/job"
)

type hardnessOutput struct {
	File     string `json:"file"`
	Jobs     int    `json:"jobs"`
	Hardness int64  `json:"hardness"`
}

// NewHardnessCommand creates the hardness command.
func NewHardnessCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "hardness <file>...",
		Short: "Print the EDD/SPT disagreement of instance files",
		Long: `Print Σ (eddRank − sptRank)² for each instance. Zero means the due-date
order is also the shortest-processing-time order and EDD is optimal.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows []hardnessOutput
			for _, path := range args {
				inst, err := job.ReadFile(path)
				if err != nil {
					return WrapExitError(ExitCommandError, "read instance", err)
				}
				rows = append(rows, hardnessOutput{
					File:     filepath.Base(path),
					Jobs:     inst.NumJobs(),
					Hardness: job.Hardness(inst),
				})
			}

			p := newPrinter(rootOpts, cmd.OutOrStdout())
			if p.json() {
				return p.encode(rows)
			}
			for _, r := range rows {
				p.field(r.File, r.Hardness)
			}
			return nil
		},
	}
}
