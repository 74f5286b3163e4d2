package domain

import (
	m "cleanarch.dev/pkg/cleanarch/internal/model"
)

// Graph is a sealed architecture graph. It only exposes queries; the
// modules it returns must not be mutated.
type Graph struct {
	u *universe
}

// Modules returns all modules in creation order, sentinels included.
func (g *Graph) Modules() []*Module {
	return append([]*Module(nil), g.u.modules...)
}

// EnabledModules returns the modules whose findings are reported: enabled
// and neither the global nor the primitives sentinel.
func (g *Graph) EnabledModules() []*Module {
	var modules []*Module

	for _, module := range g.u.modules {
		if module.IsEnabledForAnalysis() && !module.IsGlobal() && !module.IsPrimitives() {
			modules = append(modules, module)
		}
	}

	return modules
}

// FindByName returns the module registered under name.
func (g *Graph) FindByName(name string) (*Module, bool) {
	module, ok := g.u.moduleIndex[name]
	return module, ok
}

// Units returns all units in ID order.
func (g *Graph) Units() []*m.UnitOfCode {
	return append([]*m.UnitOfCode(nil), g.u.units...)
}

// Unit returns the unit with the given ID.
func (g *Graph) Unit(id m.UnitID) *m.UnitOfCode {
	return g.u.unit(id)
}

// UnitByName returns the unit declared under a qualified name.
func (g *Graph) UnitByName(name string) (*m.UnitOfCode, bool) {
	id, ok := g.u.unitsByName[name]
	if !ok {
		return nil, false
	}

	return g.u.unit(id), true
}

// ModuleOf returns the module a unit was resolved to.
func (g *Graph) ModuleOf(unit *m.UnitOfCode) *Module {
	return g.u.moduleOf(unit)
}

// Cycles runs the cycle search from every enabled module and returns each
// distinct cycle once, as found from its first module in creation order.
func (g *Graph) Cycles() [][]*Module {
	seen := make(map[string]struct{})

	var cycles [][]*Module

	for _, module := range g.EnabledModules() {
		for _, cycle := range module.CyclicDependencies() {
			key := cycleKey(cycle)
			if _, ok := seen[key]; ok {
				continue
			}

			seen[key] = struct{}{}
			cycles = append(cycles, cycle)
		}
	}

	return cycles
}
