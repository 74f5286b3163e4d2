package controller

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"

	m "cleanarch.dev/pkg/cleanarch/internal/model"
)

const (
	maxCellWidth  = 48
	truncatedTail = "…"
	disabledLabel = "-"
)

// RenderReport renders a report as text tables followed by the findings of
// each module. When modules are given only those are rendered.
func RenderReport(report m.Report, modules ...string) string {
	selected := selectModules(report.Modules, modules)

	var b strings.Builder

	if report.Root != "" {
		fmt.Fprintf(&b, "Architecture of %s\n\n", report.Root)
	}

	b.WriteString(renderMetricsTable(selected))

	for _, module := range selected {
		renderFindings(&b, module)
	}

	renderSummary(&b, report.Summary)

	return b.String()
}

func selectModules(all []m.ModuleReport, names []string) []m.ModuleReport {
	if len(names) == 0 {
		return all
	}

	var selected []m.ModuleReport

	for _, module := range all {
		if slices.Contains(names, module.Name) {
			selected = append(selected, module)
		}
	}

	return selected
}

func renderMetricsTable(modules []m.ModuleReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Module", "Units", "A", "I", "D", "Overage", "Primitiveness", "Violations"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	units := 0

	for _, module := range modules {
		units += module.Units
		row := []string{truncate(module.Name), fmt.Sprintf("%d", module.Units)}

		if !module.Enabled {
			row = append(row, disabledLabel, disabledLabel, disabledLabel, disabledLabel, disabledLabel, disabledLabel)
			table.Append(row)

			continue
		}

		row = append(row,
			formatRate(module.Metrics.Abstractness),
			formatRate(module.Metrics.Instability),
			formatRate(module.Metrics.Distance),
			formatRate(module.Metrics.DistanceOverage),
			formatRate(module.Metrics.Primitiveness),
			fmt.Sprintf("%d", moduleViolations(module)),
		)
		table.Append(row)
	}

	table.SetFooter([]string{fmt.Sprintf("Modules %d", len(modules)), fmt.Sprintf("%d", units), "", "", "", "", "", ""})
	table.Render()

	return tableBuffer.String()
}

func moduleViolations(module m.ModuleReport) int {
	count := len(module.IllegalModules) + len(module.ForbiddenDependencies) + len(module.PrivateLeaks) + len(module.Cycles)
	if module.Metrics.DistanceOverage > 0 {
		count++
	}

	return count
}

func renderFindings(b *strings.Builder, module m.ModuleReport) {
	if !module.Enabled || !module.HasViolations() {
		return
	}

	fmt.Fprintf(b, "\n%s\n", module.Name)

	for _, name := range module.IllegalModules {
		fmt.Fprintf(b, "  illegal dependency on module %s\n", name)
	}

	for _, violation := range module.ForbiddenDependencies {
		fmt.Fprintf(b, "  forbidden: %s\n", formatViolation(violation))
	}

	for _, violation := range module.PrivateLeaks {
		fmt.Fprintf(b, "  private:   %s\n", formatViolation(violation))
	}

	for _, cycle := range module.Cycles {
		fmt.Fprintf(b, "  cycle: %s\n", strings.Join(cycle, " -> "))
	}

	if module.Metrics.DistanceOverage > 0 && module.MaxAllowableDistance != nil {
		fmt.Fprintf(b, "  distance %s exceeds %s by %s\n",
			formatRate(module.Metrics.Distance),
			formatRate(*module.MaxAllowableDistance),
			formatRate(module.Metrics.DistanceOverage),
		)
	}
}

func formatViolation(violation m.UnitViolation) string {
	to := violation.To.Name
	if violation.To.Path != "" {
		to += " (" + violation.To.Path + ")"
	}

	return fmt.Sprintf("%s -> %s", violation.From.Name, to)
}

func renderSummary(b *strings.Builder, summary m.Summary) {
	if summary.Violations() == 0 {
		fmt.Fprintf(b, "\nNo violations in %d module(s), %d unit(s)\n", summary.Modules, summary.Units)
		return
	}

	fmt.Fprintf(b, "\n%d violation(s): %d illegal module dependencies, %d forbidden units, %d private leaks, %d cycles, %d distance overages\n",
		summary.Violations(),
		summary.IllegalModules,
		summary.ForbiddenDependencies,
		summary.PrivateLeaks,
		summary.Cycles,
		summary.DistanceOverages,
	)
}

// RenderModules renders the configured modules and their sizes.
func RenderModules(modules []m.ModuleSummary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Module", "Enabled", "Units", "Roots", "Excluded"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})

	units := 0

	for _, module := range modules {
		units += module.Units
		enabled := "yes"

		if !module.Enabled {
			enabled = "no"
		}

		table.Append([]string{
			truncate(module.Name),
			enabled,
			fmt.Sprintf("%d", module.Units),
			truncate(joinPaths(module.Roots)),
			truncate(joinPaths(module.Excluded)),
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(modules)), "", fmt.Sprintf("%d", units), "", ""})
	table.Render()

	return tableBuffer.String()
}

func joinPaths(paths []m.Path) string {
	parts := make([]string, 0, len(paths))
	for _, path := range paths {
		parts = append(parts, path.String())
	}

	return strings.Join(parts, ", ")
}

// RenderDiff returns the unified diff between the text renderings of two
// reports; empty when they render the same.
func RenderDiff(from, to m.Report, fromName, toName string) (string, error) {
	// the root differs between checkouts and would drown the diff
	from.Root, to.Root = "", ""

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(RenderReport(from)),
		B:        difflib.SplitLines(RenderReport(to)),
		FromFile: fromName,
		ToFile:   toName,
		Context:  2,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("diff reports: %w", err)
	}

	return text, nil
}

func formatRate(v float64) string {
	return fmt.Sprintf("%.3f", v)
}

func truncate(s string) string {
	return runewidth.Truncate(s, maxCellWidth, truncatedTail)
}
