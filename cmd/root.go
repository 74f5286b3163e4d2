// Package cmd provides the root command and CLI setup for cleanarch.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"cleanarch.dev/pkg/cleanarch/internal/adapter"
	"cleanarch.dev/pkg/cleanarch/internal/controller"
	"cleanarch.dev/pkg/cleanarch/internal/domain"
	m "cleanarch.dev/pkg/cleanarch/internal/model"
)

var goFileAdapter adapter.GoFileAdapter
var sourceFSAdapter adapter.SourceFSAdapter
var moduleFileAdapter adapter.ModuleFileAdapter
var reportStore adapter.ReportStore
var scanCache adapter.ScanCache
var scanner domain.Scanner
var workflow domain.Workflow
var ui controller.UI

// configFlag names an explicit configuration file.
var configFlag string

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// noCacheFlag disables the incremental scan cache when set.
var noCacheFlag bool

// excludePatterns is a root-level flag that filters files for applicable commands.
var excludePatterns []string

var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	cache, err := adapter.NewLRUScanCache(adapter.DefaultScanCacheSize)
	cobra.CheckErr(err)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	goFileAdapter = adapter.NewLocalGoFileAdapter()
	sourceFSAdapter = adapter.NewLocalSourceFSAdapter()
	moduleFileAdapter = adapter.NewLocalModuleFileAdapter()
	reportStore = adapter.NewLocalReportStore()
	scanCache = cache
	scanner = domain.NewScanner(sourceFSAdapter, goFileAdapter, moduleFileAdapter, scanCache)
	workflow = domain.NewWorkflow(scanner, reportStore, scanCache, ui)
}

const pathPatternsHelp = `Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./pkg/...      recursively scan pkg directory
  - ./cmd ./pkg    scan multiple directories`

const rootLongDescription = `Cleanarch checks the architecture of a Go module. Every top-level
declaration becomes a unit of code, units are grouped into the modules
declared in cleanarch.yaml, and each module is checked against its
dependency rules, visibility rules, cycles and main-sequence distance.

` + pathPatternsHelp

const checkLongDescription = `Check the architecture of the given paths (default: current module).

The report is saved to the output directory and printed. The command fails
when a violation is found unless --fail-on-violation=false is given.

` + pathPatternsHelp

const listLongDescription = `List the configured modules with the number of units they hold.

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cleanarch",
		Short: "Go architecture linter",
		Long:  rootLongDescription,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := readConfigFile(configFlag); err != nil {
				return err
			}

			return configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd returns a fresh root command with its persistent flags.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&configFlag, configFlagName, "", "config file (default ./"+configFileName+")")

	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			defaultReportsDir,
			"output directory for reports and the scan cache",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVar(&noCacheFlag, noCacheFlagName, defaultNoCache, "disable the scan cache (re-parse every file)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(noCacheFlagName), noCacheFlagName)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", nil, "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, defaultLogFilename, "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.FilePath {
	paths := make([]m.FilePath, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.FilePath(arg))
	}

	return paths
}

// sourceArgs collects the scan settings shared by check and list.
func sourceArgs(args []string) (domain.SourceArgs, error) {
	architecture, err := loadArchitecture()
	if err != nil {
		return domain.SourceArgs{}, err
	}

	return domain.SourceArgs{
		Root:         ".",
		Paths:        parsePaths(args),
		Exclude:      viper.GetStringSlice(excludeConfigKey),
		IncludeTests: viper.GetBool(testsConfigKey),
		Threads:      viper.GetInt(parallelConfigKey),
		Output:       m.FilePath(viper.GetString(outputFlagName)),
		UseCache:     !viper.GetBool(noCacheFlagName),
		Architecture: architecture,
	}, nil
}
