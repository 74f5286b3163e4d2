package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"cleanarch.dev/pkg/cleanarch/internal/domain"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default cleanarch.yaml configuration file",
		Long: `Create a cleanarch.yaml in the current working directory populated with the
current CLI defaults and a starter architecture so it can be edited manually.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			if err := writeDefaultConfig(targetPath); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			cmd.Println("Wrote", targetPath)

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// defaultConfig returns the settings written by init.
func defaultConfig() map[string]any {
	return map[string]any{
		configVersionKey: currentConfigVersion,
		outputFlagName:   viper.GetString(outputFlagName),
		noCacheFlagName:  viper.GetBool(noCacheFlagName),
		"paths": map[string]any{
			"exclude": viper.GetStringSlice(excludeConfigKey),
			"tests":   viper.GetBool(testsConfigKey),
		},
		"check": map[string]any{
			"parallel":          viper.GetInt(parallelConfigKey),
			"format":            viper.GetString(formatConfigKey),
			"fail_on_violation": viper.GetBool(failOnViolationConfigKey),
		},
		"log": map[string]any{
			"filename":    viper.GetString(logFilenameKey),
			"level":       viper.GetString(logLevelKey),
			"max_size":    viper.GetInt(logMaxSizeKey),
			"max_backups": viper.GetInt(logMaxBackupsKey),
			"max_age":     viper.GetInt(logMaxAgeKey),
			"compress":    viper.GetBool(logCompressKey),
		},
		architectureConfigKey: defaultArchitecture(),
	}
}

// defaultArchitecture adds a catch-all module for the current Go module, so
// project code outside the starter modules does not share *undefined* with
// the standard library.
func defaultArchitecture() domain.ArchitectureConfig {
	cfg := domain.DefaultArchitectureConfig()

	modulePath, err := moduleFileAdapter.ModulePath(configFolderPath)
	if err != nil {
		slog.Debug("no go.mod for the project module", "error", err)
		return cfg
	}

	return cfg.WithProjectModule(modulePath)
}

// writeDefaultConfig creates path and fails if it already exists.
func writeDefaultConfig(path string) (err error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}

	defer func() {
		err = errors.Join(err, file.Close())
	}()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)

	if err := encoder.Encode(defaultConfig()); err != nil {
		return err
	}

	return encoder.Close()
}
