package domain

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleanarch.dev/pkg/cleanarch/internal/adapter"
	m "cleanarch.dev/pkg/cleanarch/internal/model"
)

func writeModuleFile(t *testing.T, root, rel, content string) {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func newScanProject(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	writeModuleFile(t, root, "go.mod", "module example.com/app\n\ngo 1.22\n")
	writeModuleFile(t, root, "core/service.go", `package core

import "example.com/app/api"

type Service struct {
	handler api.Handler
}
`)
	writeModuleFile(t, root, "api/handler.go", `package api

type Handler interface {
	Serve() error
}
`)
	writeModuleFile(t, root, "api/handler_test.go", `package api

type fakeHandler struct{}
`)
	writeModuleFile(t, root, "broken/broken.go", "package broken\n\nfunc {\n")

	return root
}

func newLocalScanner(cache adapter.ScanCache) Scanner {
	return NewScanner(
		adapter.NewLocalSourceFSAdapter(),
		adapter.NewLocalGoFileAdapter(),
		adapter.NewLocalModuleFileAdapter(),
		cache,
	)
}

func scannedUnitNames(files []m.ScannedFile) []string {
	var names []string

	for _, file := range files {
		for _, unit := range file.Units {
			names = append(names, unit.Name)
		}
	}

	return names
}

func TestScanner_Scan(t *testing.T) {
	root := newScanProject(t)

	result, err := newLocalScanner(nil).Scan(context.Background(), ScanArgs{Root: m.FilePath(root), Threads: 2})
	require.NoError(t, err)

	assert.Equal(t, m.FilePath(root), result.ProjectRoot)
	assert.Equal(t, "example.com/app", result.ModulePath)
	assert.Equal(t, 1, result.Skipped, "unparseable file is skipped")
	assert.Zero(t, result.Cached)

	require.Len(t, result.Files, 2)
	assert.Equal(t, m.FilePath("api/handler.go"), result.Files[0].Source.Origin.ShortPath)
	assert.Equal(t, "example.com/app/api", result.Files[0].Source.Package)
	assert.Equal(t, m.FilePath("core/service.go"), result.Files[1].Source.Origin.ShortPath)

	names := scannedUnitNames(result.Files)
	assert.Contains(t, names, "example.com/app/api.Handler")
	assert.Contains(t, names, "example.com/app/core.Service")
	assert.NotContains(t, names, "example.com/app/api.fakeHandler")
}

func TestScanner_Scan_IncludeTestsAndExclude(t *testing.T) {
	root := newScanProject(t)

	result, err := newLocalScanner(nil).Scan(context.Background(), ScanArgs{
		Root:         m.FilePath(root),
		Paths:        []m.FilePath{"./api/...", "./broken"},
		Exclude:      []string{`^broken/`},
		IncludeTests: true,
	})
	require.NoError(t, err)

	assert.Zero(t, result.Skipped)
	assert.Contains(t, scannedUnitNames(result.Files), "example.com/app/api.fakeHandler")
	assert.NotContains(t, scannedUnitNames(result.Files), "example.com/app/core.Service")
}

func TestScanner_Scan_UsesCache(t *testing.T) {
	root := newScanProject(t)

	cache, err := adapter.NewLRUScanCache(0)
	require.NoError(t, err)

	scanner := newLocalScanner(cache)

	first, err := scanner.Scan(context.Background(), ScanArgs{Root: m.FilePath(root)})
	require.NoError(t, err)
	assert.Zero(t, first.Cached)

	writeModuleFile(t, root, "api/handler.go", `package api

type Handler interface {
	Serve(name string) error
}
`)

	second, err := scanner.Scan(context.Background(), ScanArgs{Root: m.FilePath(root)})
	require.NoError(t, err)
	assert.Equal(t, 1, second.Cached, "only the unchanged file comes from the cache")
	assert.Equal(t, scannedUnitNames(first.Files), scannedUnitNames(second.Files))
}

func TestScanner_Scan_CachedFileRenamed(t *testing.T) {
	root := newScanProject(t)

	cache, err := adapter.NewLRUScanCache(0)
	require.NoError(t, err)

	scanner := newLocalScanner(cache)

	_, err = scanner.Scan(context.Background(), ScanArgs{Root: m.FilePath(root)})
	require.NoError(t, err)

	require.NoError(t, os.Rename(
		filepath.Join(root, "core", "service.go"),
		filepath.Join(root, "core", "renamed.go"),
	))

	result, err := scanner.Scan(context.Background(), ScanArgs{Root: m.FilePath(root)})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Cached)

	for _, file := range result.Files {
		for _, unit := range file.Units {
			if unit.Path != "" {
				assert.Equal(t, file.Source.Origin.ShortPath, unit.Path, unit.Name)
			}
		}
	}

	service := findScannedUnit(t, result.Files, "example.com/app/core.Service")
	assert.Equal(t, m.FilePath("core/renamed.go"), service.Path)
}

func findScannedUnit(t *testing.T, files []m.ScannedFile, name string) m.UnitSpec {
	t.Helper()

	for _, file := range files {
		for _, unit := range file.Units {
			if unit.Name == name {
				return unit
			}
		}
	}

	require.Failf(t, "unit not scanned", "%s", name)

	return m.UnitSpec{}
}

func TestScanner_Scan_Errors(t *testing.T) {
	t.Run("no go.mod", func(t *testing.T) {
		_, err := newLocalScanner(nil).Scan(context.Background(), ScanArgs{Root: m.FilePath(t.TempDir())})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "find project root")
	})

	t.Run("no sources", func(t *testing.T) {
		root := t.TempDir()
		writeModuleFile(t, root, "go.mod", "module example.com/empty\n")

		_, err := newLocalScanner(nil).Scan(context.Background(), ScanArgs{Root: m.FilePath(root)})
		require.ErrorIs(t, err, ErrNoSources)
	})

	t.Run("cancelled", func(t *testing.T) {
		root := newScanProject(t)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := newLocalScanner(nil).Scan(ctx, ScanArgs{Root: m.FilePath(root)})
		require.ErrorIs(t, err, context.Canceled)
	})
}
