package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "cleanarch.dev/pkg/cleanarch/internal/model"
)

func boolPtr(v bool) *bool {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}

// declare registers a unit with the given abstractness and links it to deps.
func declare(r *Registry, name, path string, abstract *bool, deps ...string) *m.UnitOfCode {
	kind := m.KindStruct
	if abstract != nil && *abstract {
		kind = m.KindInterface
	}

	unit := r.DeclareUnit(m.UnitSpec{
		Name:     name,
		Path:     m.FilePath(path),
		Kind:     kind,
		Abstract: abstract,
		Exported: m.IsExportedName(m.ShortName(name)),
	})

	for _, dep := range deps {
		r.Link(unit.ID, dep)
	}

	return unit
}

func unitNames(units []*m.UnitOfCode) []string {
	names := make([]string, 0, len(units))
	for _, unit := range units {
		names = append(names, unit.Name)
	}

	return names
}

func TestRegistry_GetOrCreate(t *testing.T) {
	t.Run("returns the same module for the same name", func(t *testing.T) {
		r := NewRegistry()

		first := r.GetOrCreate("core", []m.Path{m.NamespacePath("app/core")}, nil, nil)
		second := r.GetOrCreate("core", []m.Path{m.NamespacePath("app/core"), m.DirectoryPath("core")}, nil, nil)

		assert.Same(t, first, second)
		assert.Equal(t, []m.Path{m.NamespacePath("app/core"), m.DirectoryPath("core")}, first.RootPaths())
		assert.Len(t, r.Modules(), 1)
	})

	t.Run("keeps restrictions unless new ones are given", func(t *testing.T) {
		r := NewRegistry()
		restrictions := &Restrictions{Default: EffectDeny}

		module := r.GetOrCreate("core", nil, nil, restrictions)
		r.GetOrCreate("core", nil, []m.Path{m.DirectoryPath("core/gen")}, nil)

		assert.Same(t, restrictions, module.Restrictions())
		assert.Equal(t, []m.Path{m.DirectoryPath("core/gen")}, module.ExcludedPaths())
	})

	t.Run("new modules are enabled and permissive", func(t *testing.T) {
		module := NewRegistry().GetOrCreate("core", nil, nil, nil)

		assert.True(t, module.IsEnabledForAnalysis())
		assert.Equal(t, EffectAllow, module.Restrictions().Default)
		assert.False(t, module.ExcludeFromAnalysis().IsEnabledForAnalysis())
	})
}

func TestRegistry_DeclareUnit(t *testing.T) {
	r := NewRegistry()

	first := r.DeclareUnit(m.UnitSpec{Name: " app/core.Service "})
	assert.Equal(t, "app/core.Service", first.Name)
	assert.Equal(t, "Service", first.Short)
	assert.Equal(t, m.KindUnknown, first.Kind)

	second := r.DeclareUnit(m.UnitSpec{
		Name:     "app/core.Service",
		Path:     "core/service.go",
		Kind:     m.KindInterface,
		Abstract: boolPtr(true),
		Exported: true,
	})

	assert.Same(t, first, second)
	assert.Equal(t, m.FilePath("core/service.go"), second.Path)
	assert.Equal(t, m.KindInterface, second.Kind)
	require.NotNil(t, second.Abstract)
	assert.True(t, *second.Abstract)

	// a later reference without metadata does not erase it
	r.DeclareUnit(m.UnitSpec{Name: "app/core.Service"})
	assert.Equal(t, m.KindInterface, second.Kind)
	assert.Equal(t, m.FilePath("core/service.go"), second.Path)
}

func TestRegistry_Link(t *testing.T) {
	r := NewRegistry()
	service := declare(r, "app/core.Service", "core/service.go", boolPtr(false))

	r.Link(service.ID, "app/core.Service")
	r.Link(service.ID, "string")
	r.Link(service.ID, "app/infra.DB")
	r.Link(service.ID, "app/infra.DB")
	r.Link(service.ID, "  ")

	assert.Equal(t, 2, service.Outputs.Len())
	assert.False(t, service.Inputs.Has(service.ID))

	str, ok := r.Unit("string")
	require.True(t, ok)
	assert.True(t, str.IsPrimitive())
	assert.True(t, str.Inputs.Has(service.ID))

	db, ok := r.Unit("app/infra.DB")
	require.True(t, ok)
	assert.Equal(t, m.KindUnknown, db.Kind)
	assert.True(t, db.Exported)
	assert.True(t, db.Inputs.Has(service.ID))
}

func TestRegistry_Resolve(t *testing.T) {
	tests := []struct {
		name    string
		unit    m.UnitSpec
		want    string
		matched bool
	}{
		{
			name:    "first matching module wins",
			unit:    m.UnitSpec{Name: "app/internal/core.Service", Path: "internal/core/service.go"},
			want:    "internal",
			matched: true,
		},
		{
			name:    "excluded paths fall through to the next module",
			unit:    m.UnitSpec{Name: "app/internal/gen/core.Model", Path: "internal/gen/core/model.go"},
			want:    "generated",
			matched: true,
		},
		{
			name:    "namespace roots match qualified names",
			unit:    m.UnitSpec{Name: "example.com/lib.Client"},
			want:    "lib",
			matched: true,
		},
		{
			name:    "primitives go to their sentinel",
			unit:    m.UnitSpec{Name: "int", Kind: m.KindPrimitive},
			want:    PrimitivesModuleName,
			matched: true,
		},
		{
			name:    "unscoped names go to the global sentinel",
			unit:    m.UnitSpec{Name: "Helper"},
			want:    GlobalModuleName,
			matched: true,
		},
		{
			name: "unclaimed units are undefined",
			unit: m.UnitSpec{Name: "github.com/other/pkg.Thing", Path: "vendor/other/thing.go"},
			want: UndefinedModuleName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			r.GetOrCreate("internal", []m.Path{m.DirectoryPath("internal")}, []m.Path{m.DirectoryPath("internal/gen")}, nil)
			r.GetOrCreate("core", []m.Path{m.DirectoryPath("internal/core")}, nil, nil)
			r.GetOrCreate("generated", []m.Path{m.DirectoryPath("internal/gen")}, nil, nil)
			r.GetOrCreate("lib", []m.Path{m.NamespacePath("example.com/lib")}, nil, nil)

			unit := r.DeclareUnit(tt.unit)
			resolution := r.Resolve(unit)

			require.NotNil(t, resolution.Module)
			assert.Equal(t, tt.want, resolution.Module.Name())
			assert.Equal(t, tt.matched, resolution.Matched)
		})
	}
}

func TestRegistry_Seal(t *testing.T) {
	r := NewRegistry()
	core := r.GetOrCreate("core", []m.Path{m.NamespacePath("app/core")}, nil, nil)

	service := declare(r, "app/core.Service", "core/service.go", boolPtr(false), "app/core.Repository", "int", "github.com/x/y.Z")
	declare(r, "app/core.Repository", "core/repository.go", boolPtr(true))

	graph := r.Seal()

	assert.Empty(t, r.Modules(), "sealing hands the state over to the graph")

	assert.Equal(t, "core", service.Module)
	assert.True(t, core.Contains(service))
	assert.Equal(t, 2, core.Len())
	assert.InDelta(t, 0.333, service.Primitiveness, 1e-9)

	zed, ok := graph.UnitByName("github.com/x/y.Z")
	require.True(t, ok)
	assert.Equal(t, UndefinedModuleName, graph.ModuleOf(zed).Name())

	undefined, ok := graph.FindByName(UndefinedModuleName)
	require.True(t, ok)
	assert.True(t, undefined.IsUndefined())

	assert.Equal(t, []string{"core", UndefinedModuleName}, moduleNames(graph.EnabledModules()))
	assert.Equal(t, []string{"core", PrimitivesModuleName, UndefinedModuleName}, moduleNames(graph.Modules()))
	assert.Len(t, graph.Units(), 4)
	assert.Same(t, service, graph.Unit(service.ID))
}
