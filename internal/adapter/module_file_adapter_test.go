package adapter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "cleanarch.dev/pkg/cleanarch/internal/model"
)

func TestLocalModuleFileAdapter_ModulePath(t *testing.T) {
	tests := []struct {
		name    string
		gomod   string
		want    string
		wantErr string
	}{
		{
			name:  "module with requirements",
			gomod: "module example.com/app\n\ngo 1.24\n\nrequire github.com/spf13/cobra v1.10.2\n",
			want:  "example.com/app",
		},
		{
			name:    "no module directive",
			gomod:   "go 1.24\n",
			wantErr: "declares no module path",
		},
		{
			name:    "malformed",
			gomod:   "module\n",
			wantErr: "parse go.mod",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeTestFile(t, filepath.Join(root, "go.mod"), tt.gomod)

			got, err := NewLocalModuleFileAdapter().ModulePath(m.FilePath(root))
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocalModuleFileAdapter_ModulePath_Missing(t *testing.T) {
	_, err := NewLocalModuleFileAdapter().ModulePath(m.FilePath(t.TempDir()))
	require.ErrorContains(t, err, "read go.mod")
}

func TestImportPath(t *testing.T) {
	assert.Equal(t, "example.com/app", ImportPath("example.com/app", "main.go"))
	assert.Equal(t, "example.com/app/internal/core", ImportPath("example.com/app", "internal/core/service.go"))
}
