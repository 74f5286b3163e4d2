package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleanarch.dev/pkg/cleanarch/internal/domain"
	m "cleanarch.dev/pkg/cleanarch/internal/model"
)

const layeredConfig = `version: 1
architecture:
  modules:
    - name: core
      roots:
        - namespace: example.com/layered/core
        - path: core
      excluded:
        - path: core/testutil
      restrictions:
        dependencies:
          - allow: infra
          - deny: "*"
        max_allowable_distance: 0.5
    - name: api
      roots:
        - path: api
      enabled: false
      restrictions:
        private: ["**/internal/**"]
        exported_only: true
`

// useConfigFile loads content as the configuration for the rest of the test.
func useConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	require.NoError(t, readConfigFile(path))

	t.Cleanup(func() {
		empty := filepath.Join(os.TempDir(), "cleanarch-empty-config.yaml")
		if err := os.WriteFile(empty, []byte("version: 1\n"), 0o600); err == nil {
			_ = readConfigFile(empty)
			_ = os.Remove(empty)
		}
	})

	return path
}

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "cleanarch", configBaseName)
	assert.Equal(t, "cleanarch.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "output", outputFlagName)
	assert.Equal(t, "no-cache", noCacheFlagName)
	assert.Equal(t, "exclude", excludeFlagName)
	assert.Equal(t, "parallel", parallelFlagName)
	assert.Equal(t, "check.parallel", parallelConfigKey)
	assert.Equal(t, "paths.exclude", excludeConfigKey)
	assert.Equal(t, ".cleanarch", defaultReportsDir)
	assert.Equal(t, "yaml", defaultFormat)
	assert.True(t, defaultFailOnViolation)
	assert.Equal(t, "CLEANARCH", envPrefix)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestLoadArchitecture(t *testing.T) {
	useConfigFile(t, layeredConfig)

	cfg, err := loadArchitecture()
	require.NoError(t, err)
	require.Len(t, cfg.Modules, 2)

	core := cfg.Modules[0]
	assert.Equal(t, "core", core.Name)
	assert.Equal(t, []m.Path{m.NamespacePath("example.com/layered/core"), m.DirectoryPath("core")}, core.Roots)
	assert.Equal(t, []m.Path{m.DirectoryPath("core/testutil")}, core.Excluded)
	assert.Nil(t, core.Enabled)
	assert.Equal(t, []domain.RuleConfig{{Allow: "infra"}, {Deny: "*"}}, core.Restrictions.Dependencies)
	require.NotNil(t, core.Restrictions.MaxAllowableDistance)
	assert.InDelta(t, 0.5, *core.Restrictions.MaxAllowableDistance, 1e-9)

	api := cfg.Modules[1]
	require.NotNil(t, api.Enabled)
	assert.False(t, *api.Enabled)
	assert.Equal(t, []string{"**/internal/**"}, api.Restrictions.Private)
	assert.True(t, api.Restrictions.ExportedOnly)
}

func TestLoadArchitecture_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "rule with both effects",
			content: "architecture:\n  modules:\n    - name: core\n      roots: [{path: core}]\n      restrictions:\n        dependencies: [{allow: a, deny: b}]\n",
			want:    "sets both allow and deny",
		},
		{
			name:    "unknown default",
			content: "architecture:\n  modules:\n    - name: core\n      roots: [{path: core}]\n      restrictions:\n        default: sometimes\n",
			want:    "default must be",
		},
		{
			name:    "newer config version",
			content: "version: 9\n",
			want:    "unsupported config version 9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useConfigFile(t, tt.content)

			_, err := loadArchitecture()
			require.ErrorIs(t, err, domain.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestConfigureLogger(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	logPath := filepath.Join(t.TempDir(), "logs", "cleanarch.log")

	require.NoError(t, configureLogger(logPath, true))
	assert.True(t, slog.Default().Enabled(t.Context(), slog.LevelDebug))

	slog.Debug("logger configured")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "logger configured")

	require.NoError(t, configureLogger(logPath, false))
	assert.False(t, slog.Default().Enabled(t.Context(), slog.LevelDebug))
}

func TestEnvOverridesDefaults(t *testing.T) {
	t.Setenv("CLEANARCH_LOG_MAX_AGE", "7")

	assert.Equal(t, 7, viper.GetInt(logMaxAgeKey))
}
