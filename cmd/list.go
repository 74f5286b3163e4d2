package cmd

import (
	"github.com/spf13/cobra"

	"cleanarch.dev/pkg/cleanarch/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List modules and their unit counts",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := sourceArgs(args)
			if err != nil {
				return err
			}

			return workflow.List(cmd.Context(), domain.ListArgs{SourceArgs: source})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
