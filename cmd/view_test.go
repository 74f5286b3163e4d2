package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleanarch.dev/pkg/cleanarch/internal/domain"
	m "cleanarch.dev/pkg/cleanarch/internal/model"
)

func TestViewCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want domain.ViewArgs
	}{
		{
			name: "output directory",
			args: []string{"view"},
			want: domain.ViewArgs{Reports: m.FilePath(".cleanarch")},
		},
		{
			name: "custom output directory",
			args: []string{"--output", "./reports-dir", "view"},
			want: domain.ViewArgs{Reports: m.FilePath("./reports-dir")},
		},
		{
			name: "explicit report and modules",
			args: []string{"view", "old/report.json", "-m", "core", "--module", "api"},
			want: domain.ViewArgs{Reports: m.FilePath("old/report.json"), Modules: []string{"core", "api"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWorkflow := useMockWorkflow(t)
			mockWorkflow.EXPECT().View(mockContext, tt.want).Return(nil).Once()

			_, err := executeCmd(t, newViewCmd(), tt.args...)
			require.NoError(t, err)
		})
	}
}

func TestViewCmd_TooManyArgs(t *testing.T) {
	useMockWorkflow(t)

	_, err := executeCmd(t, newViewCmd(), "view", "a", "b")
	require.Error(t, err)
}

func TestNewViewCmd(t *testing.T) {
	cmd := newViewCmd()

	assert.Equal(t, "view [report]", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup(moduleFlagName))
}
