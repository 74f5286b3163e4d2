package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	m "cleanarch.dev/pkg/cleanarch/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayScanInfo prints how many files were scanned.
func (s *SimpleUI) DisplayScanInfo(ctx context.Context, info ScanInfo) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Scanned %d file(s) with %d worker(s), %d from cache", info.Files, info.Threads, info.Cached)

	if info.Skipped > 0 {
		s.printf(", %d skipped", info.Skipped)
	}

	s.printf("\n")
}

// DisplayReport prints the report tables and findings.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.Report, modules ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", RenderReport(report, modules...))

	return nil
}

// DisplayReportSaved prints where the report was written.
func (s *SimpleUI) DisplayReportSaved(ctx context.Context, path m.FilePath) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Report saved to %s\n", path)
}

// DisplayModules prints the module listing.
func (s *SimpleUI) DisplayModules(ctx context.Context, modules []m.ModuleSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", RenderModules(modules))

	return nil
}

// DisplayDiff prints the unified diff of two reports.
func (s *SimpleUI) DisplayDiff(ctx context.Context, from, to m.Report, fromName, toName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	diff, err := RenderDiff(from, to, fromName, toName)
	if err != nil {
		return err
	}

	if diff == "" {
		s.printf("Reports are identical\n")
		return nil
	}

	s.printf("%s", diff)

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
