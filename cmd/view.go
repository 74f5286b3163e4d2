package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cleanarch.dev/pkg/cleanarch/internal/domain"
	m "cleanarch.dev/pkg/cleanarch/internal/model"
)

var viewModulesFlag []string

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [report]",
		Short: "View a previously saved architecture report",
		Long: `View a saved architecture report. The report is read from the given file or
directory, or from the output directory when no argument is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reportsPath := m.FilePath(viper.GetString(outputFlagName))
			if len(args) == 1 {
				reportsPath = m.FilePath(args[0])
			}

			return workflow.View(cmd.Context(), domain.ViewArgs{
				Reports: reportsPath,
				Modules: viewModulesFlag,
			})
		},
	}

	cmd.Flags().StringArrayVarP(&viewModulesFlag, moduleFlagName, "m", nil, "only show the named module (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
