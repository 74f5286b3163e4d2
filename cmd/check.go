package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cleanarch.dev/pkg/cleanarch/internal/domain"
)

var parallelFlag int
var formatFlag string
var failOnViolationFlag bool
var testsFlag bool

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check the architecture of a Go module",
		Long:  checkLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := sourceArgs(args)
			if err != nil {
				return err
			}

			// Violations are not usage errors.
			cmd.SilenceUsage = true

			return workflow.Check(cmd.Context(), domain.CheckArgs{
				SourceArgs:      source,
				Format:          viper.GetString(formatConfigKey),
				FailOnViolation: viper.GetBool(failOnViolationConfigKey),
			})
		},
	}

	configureCheckFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func configureCheckFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&parallelFlag, parallelFlagName, "p", defaultParallel, "number of parallel workers parsing files (0: one per CPU)")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)

	cmd.Flags().StringVar(&formatFlag, formatFlagName, defaultFormat, "report format: yaml or json")
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), formatConfigKey)

	cmd.Flags().BoolVar(&failOnViolationFlag, failOnViolationFlagName, defaultFailOnViolation, "exit with an error when a violation is found")
	bindFlagToConfig(cmd.Flags().Lookup(failOnViolationFlagName), failOnViolationConfigKey)

	cmd.Flags().BoolVar(&testsFlag, testsFlagName, defaultTests, "scan _test.go files too")
	bindFlagToConfig(cmd.Flags().Lookup(testsFlagName), testsConfigKey)
}
