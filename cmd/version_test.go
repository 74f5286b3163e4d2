package cmd

import (
	"bytes"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildVersion(t *testing.T) {
	tests := []struct {
		name         string
		info         *debug.BuildInfo
		wantVersion  string
		wantRevision string
	}{
		{
			name:        "no build info",
			info:        nil,
			wantVersion: unknownVersion,
		},
		{
			name:        "empty main version",
			info:        &debug.BuildInfo{},
			wantVersion: unknownVersion,
		},
		{
			name: "version and revision",
			info: &debug.BuildInfo{
				Main: debug.Module{Version: "v0.3.0"},
				Settings: []debug.BuildSetting{
					{Key: "vcs", Value: "git"},
					{Key: "vcs.revision", Value: "4f2a9c1"},
				},
			},
			wantVersion:  "v0.3.0",
			wantRevision: "4f2a9c1",
		},
		{
			name:        "devel build without vcs",
			info:        &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			wantVersion: "(devel)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			version, revision := buildVersion(tt.info)
			assert.Equal(t, tt.wantVersion, version)
			assert.Equal(t, tt.wantRevision, revision)
		})
	}
}

func TestVersionCmd_Output(t *testing.T) {
	cmd := newVersionCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	output := out.String()
	if strings.Contains(output, "version: unknown") {
		return
	}

	assert.Contains(t, output, "cleanarch version")
	assert.Contains(t, output, "go version")
}
