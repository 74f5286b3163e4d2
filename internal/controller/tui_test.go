package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUI_WaitPrintsShortOutput(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)
	ctx := context.Background()

	require.NoError(t, tui.Start(ctx, WithViewMode()))
	require.NoError(t, tui.DisplayReport(ctx, failingReport(), "infra"))
	tui.DisplayReportSaved(ctx, ".cleanarch/report.yaml")

	assert.Empty(t, buf.String(), "output is held until Wait")

	tui.Wait(ctx)
	tui.Close(ctx)

	got := buf.String()
	assert.Contains(t, got, "Saved report")
	assert.Contains(t, got, "report saved to .cleanarch/report.yaml")
	assert.Contains(t, got, "private:")
}

func TestTUI_StartResetsOutput(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)
	ctx := context.Background()

	require.NoError(t, tui.Start(ctx, WithCheckMode()))
	require.NoError(t, tui.DisplayReport(ctx, failingReport()))
	require.NoError(t, tui.Start(ctx, WithDiffMode()))
	require.NoError(t, tui.DisplayDiff(ctx, failingReport(), failingReport(), "a", "b"))
	tui.Wait(ctx)

	got := buf.String()
	assert.Contains(t, got, "Report diff")
	assert.Contains(t, got, "Reports are identical")
	assert.NotContains(t, got, "cycle:")
}

func TestPagerModel(t *testing.T) {
	content := strings.Repeat("line\n", 50)

	model := newPagerModel("Architecture check", "3 file(s) scanned", content).resize(80, 20)
	assert.True(t, model.needsPagination())
	assert.False(t, newPagerModel("t", "", "one line\n").resize(80, 20).needsPagination())
	assert.False(t, newPagerModel("t", "", content).resize(0, 0).needsPagination(), "unknown terminal size never pages")

	view := model.View()
	assert.Contains(t, view, "Architecture check")
	assert.Contains(t, view, "q: quit")

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Empty(t, updated.View())

	resized, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 200})
	assert.False(t, resized.(pagerModel).needsPagination())
}

func TestColorDiff(t *testing.T) {
	diff := "--- a\n+++ b\n@@ -1 +1 @@\n-old\n+new\n same"

	colored := colorDiff(diff)

	for _, line := range []string{"-old", "+new", " same", "@@ -1 +1 @@"} {
		assert.Contains(t, colored, line)
	}
}
