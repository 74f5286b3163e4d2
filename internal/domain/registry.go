package domain

import (
	"log/slog"
	"strings"

	m "cleanarch.dev/pkg/cleanarch/internal/model"
)

// universe is the arena shared by a registry, its modules and, once sealed,
// the graph.
type universe struct {
	units       []*m.UnitOfCode
	unitsByName map[string]m.UnitID
	modules     []*Module
	moduleIndex map[string]*Module
}

func newUniverse() *universe {
	return &universe{
		unitsByName: make(map[string]m.UnitID),
		moduleIndex: make(map[string]*Module),
	}
}

func (u *universe) unit(id m.UnitID) *m.UnitOfCode {
	return u.units[id]
}

func (u *universe) moduleOf(unit *m.UnitOfCode) *Module {
	return u.moduleIndex[unit.Module]
}

// Resolution is the outcome of placing a unit in a module. Matched is false
// when no configured module claimed the unit and Module is the undefined
// fallback.
type Resolution struct {
	Module  *Module
	Matched bool
}

// Registry builds the architecture graph: modules are registered, units are
// declared and linked, then Seal hands the result over to a read-only Graph.
//
// A Registry is not safe for concurrent use; concurrent scanners must funnel
// their results through a single writer.
type Registry struct {
	u *universe
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{u: newUniverse()}
}

// GetOrCreate returns the module registered under name, creating it on first
// use. Paths are merged into the existing module without duplicates; a
// non-nil restrictions replaces the current policy.
func (r *Registry) GetOrCreate(name string, rootPaths, excludedPaths []m.Path, restrictions *Restrictions) *Module {
	module, ok := r.u.moduleIndex[name]
	if !ok {
		module = newModule(r.u, len(r.u.modules), name)
		r.u.modules = append(r.u.modules, module)
		r.u.moduleIndex[name] = module
	}

	for _, path := range rootPaths {
		module.addRootPath(path)
	}

	for _, path := range excludedPaths {
		module.addExcludedPath(path)
	}

	if restrictions != nil {
		module.restrictions = restrictions
	}

	return module
}

// FindByName returns the module registered under name.
func (r *Registry) FindByName(name string) (*Module, bool) {
	module, ok := r.u.moduleIndex[name]
	return module, ok
}

// Modules returns the registered modules in creation order.
func (r *Registry) Modules() []*Module {
	return append([]*Module(nil), r.u.modules...)
}

// Unit returns the unit declared under a qualified name.
func (r *Registry) Unit(name string) (*m.UnitOfCode, bool) {
	id, ok := r.u.unitsByName[name]
	if !ok {
		return nil, false
	}

	return r.u.unit(id), true
}

// DeclareUnit registers a discovered unit. Declaring a known name merges the
// new metadata into the existing unit and returns it.
func (r *Registry) DeclareUnit(spec m.UnitSpec) *m.UnitOfCode {
	name := strings.TrimSpace(spec.Name)

	if id, ok := r.u.unitsByName[name]; ok {
		unit := r.u.unit(id)
		mergeSpec(unit, spec)

		return unit
	}

	short := spec.Short
	if short == "" {
		short = m.ShortName(name)
	}

	kind := spec.Kind
	if kind == "" {
		kind = m.KindUnknown
	}

	unit := &m.UnitOfCode{
		ID:       m.UnitID(len(r.u.units)),
		Package:  spec.Package,
		Name:     name,
		Short:    short,
		Path:     spec.Path,
		Kind:     kind,
		Abstract: spec.Abstract,
		Exported: spec.Exported,
	}

	r.u.units = append(r.u.units, unit)
	r.u.unitsByName[name] = unit.ID

	return unit
}

func mergeSpec(unit *m.UnitOfCode, spec m.UnitSpec) {
	if spec.Package != "" {
		unit.Package = spec.Package
	}

	if spec.Path != "" {
		unit.Path = spec.Path
	}

	if spec.Kind != "" && spec.Kind != m.KindUnknown {
		unit.Kind = spec.Kind
		unit.Abstract = spec.Abstract
		unit.Exported = spec.Exported
	}
}

// Link records that the unit from depends on the unit called name, declaring
// the latter when it was never seen. Self references are ignored.
func (r *Registry) Link(from m.UnitID, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}

	target, ok := r.Unit(name)
	if !ok {
		kind := m.KindUnknown
		if m.IsPredeclared(name) {
			kind = m.KindPrimitive
		}

		short := m.ShortName(name)
		target = r.DeclareUnit(m.UnitSpec{
			Name:     name,
			Short:    short,
			Kind:     kind,
			Exported: m.IsExportedName(short),
		})
	}

	if target.ID == from {
		return
	}

	source := r.u.unit(from)
	source.Outputs.Add(target.ID)
	target.Inputs.Add(from)
}

// Resolve places a unit in a module. Primitives and unscoped symbols go to
// their sentinel modules; otherwise the first module, in creation order,
// whose root paths contain the unit and whose excluded paths do not wins.
// Registration order therefore matters. Unclaimed units resolve to the
// undefined module with Matched unset.
func (r *Registry) Resolve(unit *m.UnitOfCode) Resolution {
	if unit.IsPrimitive() {
		return Resolution{Module: r.GetOrCreate(PrimitivesModuleName, nil, nil, nil), Matched: true}
	}

	if unit.BelongsToGlobalScope() {
		return Resolution{Module: r.GetOrCreate(GlobalModuleName, nil, nil, nil), Matched: true}
	}

	for _, module := range r.u.modules {
		if module.contains(unit) {
			return Resolution{Module: module, Matched: true}
		}
	}

	return Resolution{Module: r.GetOrCreate(UndefinedModuleName, nil, nil, nil)}
}

// Seal resolves every unit to its module, computes per-unit primitiveness
// and returns the finished graph. The registry is left empty and can be
// reused for another build; the graph shares nothing with it.
func (r *Registry) Seal() *Graph {
	u := r.u

	for _, unit := range u.units {
		if unit.Module != "" {
			continue
		}

		resolution := r.Resolve(unit)
		if !resolution.Matched {
			slog.Debug("unit matched no module", "unit", unit.Name, "path", unit.Path)
		}

		unit.Module = resolution.Module.name
		resolution.Module.addUnit(unit)
	}

	for _, unit := range u.units {
		unit.Primitiveness = primitiveness(u, unit)
	}

	for _, module := range u.modules {
		module.sealed = true
	}

	r.u = newUniverse()

	return &Graph{u: u}
}

// primitiveness is the share of a unit's dependencies that are primitives.
func primitiveness(u *universe, unit *m.UnitOfCode) float64 {
	total := unit.Outputs.Len()
	if total == 0 {
		return 0
	}

	primitives := 0
	for _, id := range unit.Outputs.Sorted() {
		if u.unit(id).IsPrimitive() {
			primitives++
		}
	}

	return round3(float64(primitives) / float64(total))
}
