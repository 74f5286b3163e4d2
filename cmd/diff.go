package cmd

import (
	"github.com/spf13/cobra"

	"cleanarch.dev/pkg/cleanarch/internal/domain"
	m "cleanarch.dev/pkg/cleanarch/internal/model"
)

// diffCmd represents the diff command.
var diffCmd = newDiffCmd()

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <old> <new>",
		Short: "Compare two saved architecture reports",
		Long: `Show a unified diff between the text renderings of two saved reports.
Each argument is a report file or a directory holding one.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Diff(cmd.Context(), domain.DiffArgs{
				From: m.FilePath(args[0]),
				To:   m.FilePath(args[1]),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
