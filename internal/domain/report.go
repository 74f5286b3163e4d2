package domain

import (
	"time"

	m "cleanarch.dev/pkg/cleanarch/internal/model"
)

// ReportVersion is bumped whenever the saved report layout changes.
const ReportVersion = 1

// ReportMeta carries what the graph does not know about a check.
type ReportMeta struct {
	Root        string
	GeneratedAt time.Time
}

// BuildReport collects the findings of every module of a sealed graph.
//
// Modules keep their creation order and the global and primitives
// sentinels are left out. Disabled modules are listed with their size only.
func BuildReport(graph *Graph, meta ReportMeta) m.Report {
	report := m.Report{
		Version:     ReportVersion,
		Root:        meta.Root,
		GeneratedAt: meta.GeneratedAt,
	}

	for _, module := range graph.Modules() {
		if module.IsGlobal() || module.IsPrimitives() {
			continue
		}

		entry := m.ModuleReport{
			Name:    module.Name(),
			Enabled: module.IsEnabledForAnalysis(),
			Units:   module.Len(),
		}

		report.Summary.Modules++
		report.Summary.Units += entry.Units

		if entry.Enabled {
			fillModuleReport(graph, module, &entry)

			report.Summary.IllegalModules += len(entry.IllegalModules)
			report.Summary.ForbiddenDependencies += len(entry.ForbiddenDependencies)
			report.Summary.PrivateLeaks += len(entry.PrivateLeaks)

			if entry.Metrics.DistanceOverage > 0 {
				report.Summary.DistanceOverages++
			}
		}

		report.Modules = append(report.Modules, entry)
	}

	report.Summary.Cycles = len(graph.Cycles())

	return report
}

func fillModuleReport(graph *Graph, module *Module, entry *m.ModuleReport) {
	entry.Metrics = m.Metrics{
		Abstractness:    module.AbstractnessRate(),
		Instability:     module.InstabilityRate(),
		Distance:        module.DistanceRate(),
		DistanceOverage: module.DistanceRateOverage(),
		Primitiveness:   module.PrimitivenessRate(),
	}
	entry.MaxAllowableDistance = module.Restrictions().MaxAllowableDistance
	entry.DependencyModules = moduleNames(module.DependencyModules())
	entry.DependentModules = moduleNames(module.DependentModules())
	entry.IllegalModules = moduleNames(module.IllegalDependencyModules())

	leaks := make(map[m.UnitID]struct{})
	for _, unit := range module.IllegalDependencyUnits(true) {
		leaks[unit.ID] = struct{}{}
	}

	for _, target := range module.IllegalDependencyUnits(false) {
		violations := unitViolations(graph, module, target)

		if _, ok := leaks[target.ID]; ok {
			entry.PrivateLeaks = append(entry.PrivateLeaks, violations...)
		} else {
			entry.ForbiddenDependencies = append(entry.ForbiddenDependencies, violations...)
		}
	}

	for _, cycle := range module.CyclicDependencies() {
		entry.Cycles = append(entry.Cycles, moduleNames(cycle))
	}
}

// unitViolations pairs target with every unit of module that uses it.
func unitViolations(graph *Graph, module *Module, target *m.UnitOfCode) []m.UnitViolation {
	var violations []m.UnitViolation

	for _, id := range target.Inputs.Sorted() {
		source := graph.Unit(id)
		if !module.Contains(source) {
			continue
		}

		violations = append(violations, m.UnitViolation{
			From: unitRef(source),
			To:   unitRef(target),
		})
	}

	return violations
}

func unitRef(unit *m.UnitOfCode) m.UnitRef {
	return m.UnitRef{Name: unit.Name, Path: string(unit.Path), Module: unit.Module}
}

func moduleNames(modules []*Module) []string {
	if len(modules) == 0 {
		return nil
	}

	names := make([]string, 0, len(modules))
	for _, module := range modules {
		names = append(names, module.Name())
	}

	return names
}
