package domain

import (
	"slices"

	m "cleanarch.dev/pkg/cleanarch/internal/model"
)

// DependentModules returns the modules whose units depend on this module's
// units, in creation order.
func (mod *Module) DependentModules() []*Module {
	seen := make(map[*Module]struct{})

	for _, unit := range mod.Units() {
		for _, id := range unit.Inputs.Sorted() {
			dependent := mod.universe.unit(id)
			if dependent.BelongsTo(mod.name) {
				continue
			}

			if owner := mod.universe.moduleOf(dependent); owner != nil {
				seen[owner] = struct{}{}
			}
		}
	}

	return sortModules(seen)
}

// DependencyModules returns the modules this module's units depend on, in
// creation order. Dependencies on global-scope and primitive units are not
// architectural dependencies and are left out.
func (mod *Module) DependencyModules() []*Module {
	if mod.sealed && mod.dependencies != nil {
		return slices.Clone(mod.dependencies)
	}

	seen := make(map[*Module]struct{})

	for _, unit := range mod.Units() {
		for _, id := range unit.Outputs.Sorted() {
			dependency := mod.universe.unit(id)
			if !isArchitecturalDependency(dependency, mod) {
				continue
			}

			if owner := mod.universe.moduleOf(dependency); owner != nil {
				seen[owner] = struct{}{}
			}
		}
	}

	dependencies := sortModules(seen)
	if mod.sealed {
		mod.dependencies = dependencies
		return slices.Clone(dependencies)
	}

	return dependencies
}

// DependentUnits returns this module's units that depend on units of other.
func (mod *Module) DependentUnits(other *Module) []*m.UnitOfCode {
	var units []*m.UnitOfCode

	for _, unit := range mod.Units() {
		for _, id := range unit.Outputs.Sorted() {
			if mod.universe.unit(id).BelongsTo(other.name) {
				units = append(units, unit)
				break
			}
		}
	}

	return units
}

// DependencyUnits returns the units of other that this module's units depend
// on, in ID order.
func (mod *Module) DependencyUnits(other *Module) []*m.UnitOfCode {
	var ids m.IDSet

	for _, unit := range mod.Units() {
		for _, id := range unit.Outputs.Sorted() {
			if mod.universe.unit(id).BelongsTo(other.name) {
				ids.Add(id)
			}
		}
	}

	units := make([]*m.UnitOfCode, 0, ids.Len())
	for _, id := range ids.Sorted() {
		units = append(units, mod.universe.unit(id))
	}

	return units
}

func isArchitecturalDependency(dependency *m.UnitOfCode, mod *Module) bool {
	return !dependency.BelongsTo(mod.name) &&
		!dependency.BelongsToGlobalScope() &&
		!dependency.IsPrimitive()
}

func sortModules(set map[*Module]struct{}) []*Module {
	modules := make([]*Module, 0, len(set))
	for module := range set {
		modules = append(modules, module)
	}

	slices.SortFunc(modules, func(a, b *Module) int {
		return a.order - b.order
	})

	return modules
}
