package domain

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	m "cleanarch.dev/pkg/cleanarch/internal/model"
)

const layeredExampleDir = "../../examples/layered"

func loadExampleConfig(t *testing.T, dir string) ArchitectureConfig {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(dir, "cleanarch.yaml"))
	require.NoError(t, err)

	var file struct {
		Architecture ArchitectureConfig `yaml:"architecture"`
	}
	require.NoError(t, yaml.Unmarshal(data, &file))

	return file.Architecture
}

func findModuleReport(t *testing.T, report m.Report, name string) m.ModuleReport {
	t.Helper()

	for _, module := range report.Modules {
		if module.Name == name {
			return module
		}
	}

	require.Failf(t, "module not in report", "%s", name)

	return m.ModuleReport{}
}

func violationTargets(violations []m.UnitViolation) []string {
	targets := make([]string, 0, len(violations))
	for _, v := range violations {
		targets = append(targets, v.From.Name+" -> "+v.To.Name)
	}

	return targets
}

func TestLayeredExample(t *testing.T) {
	cfg := loadExampleConfig(t, layeredExampleDir)

	scan, err := newLocalScanner(nil).Scan(context.Background(), ScanArgs{Root: layeredExampleDir})
	require.NoError(t, err)
	assert.Equal(t, "example.com/layered", scan.ModulePath)
	assert.Zero(t, scan.Skipped)

	graph, err := BuildGraph(cfg, scan.Files)
	require.NoError(t, err)

	report := BuildReport(graph, ReportMeta{Root: string(scan.ProjectRoot)})
	require.True(t, report.Failed())

	core := findModuleReport(t, report, "core")
	assert.Equal(t, []string{"api"}, core.IllegalModules)
	assert.Contains(t, violationTargets(core.ForbiddenDependencies),
		"example.com/layered/core.Service -> example.com/layered/api.Handler")
	assert.Contains(t, core.Cycles, []string{"core", "infra", "core"})

	infra := findModuleReport(t, report, "infra")
	assert.Empty(t, infra.IllegalModules)
	assert.Contains(t, violationTargets(infra.PrivateLeaks),
		"example.com/layered/infra.DB -> example.com/layered/api/private.Secret")

	api := findModuleReport(t, report, "api")
	assert.False(t, api.HasViolations())
	assert.Equal(t, 2, api.Units)
}
