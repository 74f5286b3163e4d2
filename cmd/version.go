package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

const unknownVersion = "unknown"

// buildVersion returns the module version and VCS revision baked into the
// binary, or unknownVersion when the build carries no module information.
func buildVersion(info *debug.BuildInfo) (version, revision string) {
	if info == nil || info.Main.Version == "" {
		return unknownVersion, ""
	}

	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			revision = setting.Value
		}
	}

	return info.Main.Version, revision
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the cleanarch build version, its revision and the Go version used to build it.",
		Run: func(cmd *cobra.Command, _ []string) {
			info, _ := debug.ReadBuildInfo()

			version, revision := buildVersion(info)
			if version == unknownVersion {
				cmd.Println("version: unknown")
				return
			}

			cmd.Println("cleanarch version\t", version)

			if revision != "" {
				cmd.Println("revision\t", revision)
			}

			cmd.Println("go version\t", info.GoVersion)
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
