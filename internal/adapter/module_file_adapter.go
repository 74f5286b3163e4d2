package adapter

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"golang.org/x/mod/modfile"

	m "cleanarch.dev/pkg/cleanarch/internal/model"
)

// ModuleFileAdapter reads go.mod files.
type ModuleFileAdapter interface {
	// ModulePath returns the module path declared by root/go.mod.
	ModulePath(root m.FilePath) (string, error)
}

// LocalModuleFileAdapter implements ModuleFileAdapter with x/mod.
type LocalModuleFileAdapter struct{}

// NewLocalModuleFileAdapter constructs a LocalModuleFileAdapter.
func NewLocalModuleFileAdapter() *LocalModuleFileAdapter {
	return &LocalModuleFileAdapter{}
}

// ModulePath implements ModuleFileAdapter.
func (a *LocalModuleFileAdapter) ModulePath(root m.FilePath) (string, error) {
	goModPath := filepath.Join(string(root), "go.mod")

	data, err := os.ReadFile(goModPath)
	if err != nil {
		return "", fmt.Errorf("read go.mod: %w", err)
	}

	file, err := modfile.ParseLax(goModPath, data, nil)
	if err != nil {
		return "", fmt.Errorf("parse go.mod: %w", err)
	}

	if file.Module == nil || file.Module.Mod.Path == "" {
		return "", fmt.Errorf("%s declares no module path", goModPath)
	}

	return file.Module.Mod.Path, nil
}

// ImportPath returns the import path of the package holding the file at
// shortPath, a slash separated path relative to the module root.
func ImportPath(modulePath string, shortPath m.FilePath) string {
	dir := path.Dir(string(shortPath))
	if dir == "." {
		return modulePath
	}

	return modulePath + "/" + dir
}
