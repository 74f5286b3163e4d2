// Package domain contains the architecture graph and the checks run on it.
package domain

import (
	"slices"

	m "cleanarch.dev/pkg/cleanarch/internal/model"
)

// Names of the sentinel modules.
const (
	// UndefinedModuleName receives units no configured module claims.
	UndefinedModuleName = "*undefined*"
	// PrimitivesModuleName receives built-in types.
	PrimitivesModuleName = "*primitives*"
	// GlobalModuleName receives units without a qualified-name scope.
	GlobalModuleName = "*global*"
)

// Module is a named partition of the units of code, with its own dependency
// and visibility policy.
//
// Modules are created through a Registry. Their query methods are meaningful
// once the registry has been sealed into a Graph.
type Module struct {
	universe      *universe
	order         int
	name          string
	enabled       bool
	rootPaths     []m.Path
	excludedPaths []m.Path
	restrictions  *Restrictions
	units         m.IDSet

	// memoised after sealing
	sealed       bool
	dependencies []*Module
}

func newModule(u *universe, order int, name string) *Module {
	return &Module{
		universe:     u,
		order:        order,
		name:         name,
		enabled:      true,
		restrictions: NewRestrictions(),
	}
}

// Name returns the unique module name.
func (mod *Module) Name() string {
	return mod.name
}

// IsEnabledForAnalysis reports whether the module's findings are reported.
func (mod *Module) IsEnabledForAnalysis() bool {
	return mod.enabled
}

// ExcludeFromAnalysis keeps the module in the graph but drops its findings.
func (mod *Module) ExcludeFromAnalysis() *Module {
	mod.enabled = false
	return mod
}

// IsUndefined reports whether this is the fallback module.
func (mod *Module) IsUndefined() bool {
	return mod.name == UndefinedModuleName
}

// IsGlobal reports whether this is the module of unscoped symbols.
func (mod *Module) IsGlobal() bool {
	return mod.name == GlobalModuleName
}

// IsPrimitives reports whether this is the module of built-in types.
func (mod *Module) IsPrimitives() bool {
	return mod.name == PrimitivesModuleName
}

// RootPaths returns the paths that place units inside the module.
func (mod *Module) RootPaths() []m.Path {
	return slices.Clone(mod.rootPaths)
}

// ExcludedPaths returns the paths carved out of the root paths.
func (mod *Module) ExcludedPaths() []m.Path {
	return slices.Clone(mod.excludedPaths)
}

// Restrictions returns the module's policy.
func (mod *Module) Restrictions() *Restrictions {
	return mod.restrictions
}

// IsExcluded reports whether a filesystem path lies under one of the
// module's excluded paths, e.g. for excluded "internal/core/testutil":
// "internal/core/testutil", "internal/core/testutil/" and everything below.
func (mod *Module) IsExcluded(path string) bool {
	for _, excluded := range mod.excludedPaths {
		if excluded.ContainsPath(path) {
			return true
		}
	}

	return false
}

// Contains reports whether the unit is a member of the module.
func (mod *Module) Contains(unit *m.UnitOfCode) bool {
	return mod.units.Has(unit.ID)
}

// Len returns the number of member units.
func (mod *Module) Len() int {
	return mod.units.Len()
}

// Units returns the member units in ID order.
func (mod *Module) Units() []*m.UnitOfCode {
	ids := mod.units.Sorted()

	units := make([]*m.UnitOfCode, 0, len(ids))
	for _, id := range ids {
		units = append(units, mod.universe.unit(id))
	}

	return units
}

// IsDependencyAllowed reports whether this module may depend on dependency.
func (mod *Module) IsDependencyAllowed(dependency *Module) bool {
	return mod.restrictions.IsDependencyAllowed(dependency, mod)
}

// IsUnitAccessibleFromOutside reports whether one of this module's units is
// public.
func (mod *Module) IsUnitAccessibleFromOutside(unit *m.UnitOfCode) bool {
	return mod.restrictions.IsUnitAccessibleFromOutside(unit, mod)
}

// IllegalDependencyModules returns the modules this module depends on
// although its rules forbid it.
func (mod *Module) IllegalDependencyModules() []*Module {
	return mod.restrictions.IllegalDependencyModules(mod)
}

// IllegalDependencyUnits returns units of other modules this module must not
// use. See Restrictions.IllegalDependencyUnits for the two modes.
func (mod *Module) IllegalDependencyUnits(onlyFromAllowedModules bool) []*m.UnitOfCode {
	return mod.restrictions.IllegalDependencyUnits(mod, onlyFromAllowedModules)
}

func (mod *Module) addRootPath(path m.Path) {
	if !slices.Contains(mod.rootPaths, path) {
		mod.rootPaths = append(mod.rootPaths, path)
	}
}

func (mod *Module) addExcludedPath(path m.Path) {
	if !slices.Contains(mod.excludedPaths, path) {
		mod.excludedPaths = append(mod.excludedPaths, path)
	}
}

func (mod *Module) addUnit(unit *m.UnitOfCode) {
	mod.units.Add(unit.ID)
	mod.dependencies = nil
}

func (mod *Module) contains(loc m.Location) bool {
	return isLocatedIn(loc, mod.rootPaths) && !isLocatedIn(loc, mod.excludedPaths)
}

func isLocatedIn(loc m.Location, paths []m.Path) bool {
	for _, path := range paths {
		if path.IsPartOf(loc) {
			return true
		}
	}

	return false
}
