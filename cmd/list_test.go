package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cleanarch.dev/pkg/cleanarch/internal/domain"
	m "cleanarch.dev/pkg/cleanarch/internal/model"
)

func TestListCmd(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.EXPECT().List(mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return args.Root == "." &&
			assert.ObjectsAreEqual([]m.FilePath{"./pkg/..."}, args.Paths) &&
			args.Output == m.FilePath(".cleanarch")
	})).Return(nil).Once()

	_, err := executeCmd(t, newListCmd(), "list", "./pkg/...")
	require.NoError(t, err)
}

func TestListCmd_WorkflowError(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.EXPECT().List(mock.Anything, mock.Anything).Return(domain.ErrNoSources).Once()

	_, err := executeCmd(t, newListCmd(), "list")
	require.ErrorIs(t, err, domain.ErrNoSources)
}

func TestNewListCmd(t *testing.T) {
	cmd := newListCmd()

	assert.Equal(t, "list [paths...]", cmd.Use)
	assert.Equal(t, listLongDescription, cmd.Long)
}
