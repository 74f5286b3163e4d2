package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/sahilm/fuzzy"

	"cleanarch.dev/pkg/cleanarch/internal/adapter"
	"cleanarch.dev/pkg/cleanarch/internal/controller"
	m "cleanarch.dev/pkg/cleanarch/internal/model"
)

var (
	// ErrViolationsFound is returned by Check when the report fails.
	ErrViolationsFound = errors.New("architecture violations found")
	// ErrUnknownModule is returned when a requested module is not in the report.
	ErrUnknownModule = errors.New("unknown module")
)

// SourceArgs selects and scans the sources of a project.
type SourceArgs struct {
	Root         m.FilePath
	Paths        []m.FilePath
	Exclude      []string
	IncludeTests bool
	Threads      int
	Output       m.FilePath // report and scan cache directory
	UseCache     bool
	Architecture ArchitectureConfig
}

// CheckArgs contains the arguments for an architecture check.
type CheckArgs struct {
	SourceArgs
	Format          string
	FailOnViolation bool
}

// ListArgs contains the arguments for listing modules.
type ListArgs struct {
	SourceArgs
}

// ViewArgs contains the arguments for showing a saved report.
type ViewArgs struct {
	Reports m.FilePath
	Modules []string
}

// DiffArgs contains the arguments for comparing two saved reports.
type DiffArgs struct {
	From m.FilePath
	To   m.FilePath
}

// Workflow defines the use cases of the CLI.
type Workflow interface {
	Check(ctx context.Context, args CheckArgs) error
	List(ctx context.Context, args ListArgs) error
	View(ctx context.Context, args ViewArgs) error
	Diff(ctx context.Context, args DiffArgs) error
}

type workflow struct {
	adapter.ReportStore
	controller.UI
	Scanner
	cache adapter.ScanCache
	now   func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	scanner Scanner,
	reportStore adapter.ReportStore,
	cache adapter.ScanCache,
	ui controller.UI,
) Workflow {
	if cache == nil {
		cache = adapter.NoScanCache{}
	}

	return &workflow{
		Scanner:     scanner,
		ReportStore: reportStore,
		UI:          ui,
		cache:       cache,
		now:         time.Now,
	}
}

// Check scans the sources, builds the graph and reports every violation.
// The report is saved to the output directory when one is set.
func (w *workflow) Check(ctx context.Context, args CheckArgs) error {
	if err := w.Start(ctx, controller.WithCheckMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	report, err := w.check(ctx, args)
	if err != nil {
		w.Close(ctx)
		return err
	}

	w.Wait(ctx)
	w.Close(ctx)

	if args.FailOnViolation && report.Failed() {
		return fmt.Errorf("%w: %d", ErrViolationsFound, report.Summary.Violations())
	}

	return nil
}

func (w *workflow) check(ctx context.Context, args CheckArgs) (m.Report, error) {
	scan, graph, err := w.analyze(ctx, args.SourceArgs)
	if err != nil {
		return m.Report{}, err
	}

	report := BuildReport(graph, ReportMeta{
		Root:        string(scan.ProjectRoot),
		GeneratedAt: w.now().UTC(),
	})

	slog.Info("architecture checked",
		"modules", report.Summary.Modules,
		"units", report.Summary.Units,
		"violations", report.Summary.Violations(),
	)

	if args.Output != "" {
		path, err := w.SaveReport(args.Output, report, args.Format)
		if err != nil {
			return m.Report{}, fmt.Errorf("save report: %w", err)
		}

		w.DisplayReportSaved(ctx, path)
	}

	if err := w.DisplayReport(ctx, report); err != nil {
		return m.Report{}, fmt.Errorf("display: %w", err)
	}

	return report, nil
}

// List scans the sources and shows every module with its member count.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	if err := w.Start(ctx, controller.WithListMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	_, graph, err := w.analyze(ctx, args.SourceArgs)
	if err != nil {
		w.Close(ctx)
		return err
	}

	if err := w.DisplayModules(ctx, moduleSummaries(graph)); err != nil {
		w.Close(ctx)
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)
	w.Close(ctx)

	return nil
}

func moduleSummaries(graph *Graph) []m.ModuleSummary {
	var summaries []m.ModuleSummary

	for _, module := range graph.Modules() {
		if module.IsGlobal() || module.IsPrimitives() {
			continue
		}

		summaries = append(summaries, m.ModuleSummary{
			Name:     module.Name(),
			Enabled:  module.IsEnabledForAnalysis(),
			Units:    module.Len(),
			Roots:    module.RootPaths(),
			Excluded: module.ExcludedPaths(),
		})
	}

	return summaries
}

// analyze runs the scan, keeping the scan cache in the output directory
// current, and builds the sealed graph.
func (w *workflow) analyze(ctx context.Context, args SourceArgs) (ScanResult, *Graph, error) {
	useCache := args.UseCache && args.Output != ""

	if useCache {
		if err := w.cache.Load(args.Output); err != nil {
			slog.Warn("ignoring unreadable scan cache", "error", err)
		}
	}

	scan, err := w.Scan(ctx, ScanArgs{
		Root:         args.Root,
		Paths:        args.Paths,
		Exclude:      args.Exclude,
		IncludeTests: args.IncludeTests,
		Threads:      args.Threads,
	})
	if err != nil {
		return ScanResult{}, nil, fmt.Errorf("scan: %w", err)
	}

	w.DisplayScanInfo(ctx, controller.ScanInfo{
		Files:   len(scan.Files) + scan.Skipped,
		Cached:  scan.Cached,
		Skipped: scan.Skipped,
		Threads: args.Threads,
	})

	if useCache {
		if err := w.cache.Save(args.Output); err != nil {
			slog.Warn("failed to save scan cache", "error", err)
		}
	}

	graph, err := BuildGraph(args.Architecture, scan.Files)
	if err != nil {
		return ScanResult{}, nil, err
	}

	return scan, graph, nil
}

// View shows a saved report, optionally restricted to some modules.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	report, err := w.LoadReport(args.Reports)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	if err := checkModuleNames(report, args.Modules); err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithViewMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	if err := w.DisplayReport(ctx, report, args.Modules...); err != nil {
		w.Close(ctx)
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)
	w.Close(ctx)

	return nil
}

// checkModuleNames reports every requested module missing from the report,
// with the closest known names as suggestions.
func checkModuleNames(report m.Report, names []string) error {
	known := make([]string, 0, len(report.Modules))
	for _, module := range report.Modules {
		known = append(known, module.Name)
	}

	var errs []error

	for _, name := range names {
		if slices.Contains(known, name) {
			continue
		}

		err := fmt.Errorf("%w %q", ErrUnknownModule, name)
		if suggestions := suggestModules(name, known); len(suggestions) > 0 {
			err = fmt.Errorf("%w (did you mean %s?)", err, strings.Join(suggestions, ", "))
		}

		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

const maxSuggestions = 3

func suggestModules(name string, known []string) []string {
	matches := fuzzy.Find(name, known)

	suggestions := make([]string, 0, maxSuggestions)
	for _, match := range matches {
		if len(suggestions) == maxSuggestions {
			break
		}

		suggestions = append(suggestions, match.Str)
	}

	return suggestions
}

// Diff compares two saved reports.
func (w *workflow) Diff(ctx context.Context, args DiffArgs) error {
	from, err := w.LoadReport(args.From)
	if err != nil {
		return fmt.Errorf("load report %s: %w", args.From, err)
	}

	to, err := w.LoadReport(args.To)
	if err != nil {
		return fmt.Errorf("load report %s: %w", args.To, err)
	}

	if err := w.Start(ctx, controller.WithDiffMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	if err := w.DisplayDiff(ctx, from, to, string(args.From), string(args.To)); err != nil {
		w.Close(ctx)
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)
	w.Close(ctx)

	return nil
}
