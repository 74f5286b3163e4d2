package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cleanarch.dev/pkg/cleanarch/internal/domain"
)

// mockContext matches the context cobra hands to commands.
var mockContext = mock.Anything

func TestDiffCmd(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.EXPECT().Diff(mockContext, domain.DiffArgs{From: "old", To: "new/report.yaml"}).Return(nil).Once()

	_, err := executeCmd(t, newDiffCmd(), "diff", "old", "new/report.yaml")
	require.NoError(t, err)
}

func TestDiffCmd_RequiresTwoReports(t *testing.T) {
	useMockWorkflow(t)

	_, err := executeCmd(t, newDiffCmd(), "diff", "old")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}
