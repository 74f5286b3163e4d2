// Package controller provides output adapters for displaying architecture
// reports.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "cleanarch.dev/pkg/cleanarch/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeCheck StartMode = iota
	ModeList
	ModeView
	ModeDiff
)

// String returns the title used for the mode.
func (s StartMode) String() string {
	switch s {
	case ModeList:
		return "Modules"
	case ModeView:
		return "Saved report"
	case ModeDiff:
		return "Report diff"
	default:
		return "Architecture check"
	}
}

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithCheckMode sets the UI to check mode.
func WithCheckMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeCheck
	}
}

// WithListMode sets the UI to module listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithViewMode sets the UI to saved report mode.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

// WithDiffMode sets the UI to report comparison mode.
func WithDiffMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeDiff
	}
}

func newStartConfig(options []StartOption) StartConfig {
	var config StartConfig
	for _, option := range options {
		option(&config)
	}

	return config
}

// ScanInfo describes a finished scan.
type ScanInfo struct {
	Files   int
	Cached  int
	Skipped int
	Threads int
}

// UI defines the interface for displaying architecture results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayScanInfo(ctx context.Context, info ScanInfo)
	DisplayReport(ctx context.Context, report m.Report, modules ...string) error
	DisplayReportSaved(ctx context.Context, path m.FilePath)
	DisplayModules(ctx context.Context, modules []m.ModuleSummary) error
	DisplayDiff(ctx context.Context, from, to m.Report, fromName, toName string) error
}

// NewUI returns the pager UI on terminals and the plain text UI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
