package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitQualifiedName(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		wantScope  string
		wantSymbol string
	}{
		{"go symbol", "example.com/app/core.Service", "example.com/app/core", "Service"},
		{"go method", "example.com/app/core.Service.Run", "example.com/app/core", "Service.Run"},
		{"stdlib", "fmt.Stringer", "fmt", "Stringer"},
		{"unqualified", "Foo", "", "Foo"},
		{"backslash namespace", `App\Core\Foo`, `App\Core`, "Foo"},
		{"leading separator", `\App\Foo`, "App", "Foo"},
		{"versioned package", "gopkg.in/yaml.v3.Node", "gopkg.in/yaml.v3", "Node"},
		{"versioned package method", "gopkg.in/yaml.v3.Node.Decode", "gopkg.in/yaml.v3", "Node.Decode"},
		{"versioned package without slash", "yaml.v2.MapSlice", "yaml.v2", "MapSlice"},
		{"method named like a version", "example.com/app/core.Client.v2", "example.com/app/core", "Client.v2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope, symbol := SplitQualifiedName(tt.in)
			assert.Equal(t, tt.wantScope, scope)
			assert.Equal(t, tt.wantSymbol, symbol)
		})
	}
}

func TestUnitOfCode_Scopes(t *testing.T) {
	global := &UnitOfCode{Name: "Foo", Kind: KindStruct}
	primitive := &UnitOfCode{Name: "int", Kind: KindPrimitive}
	scoped := &UnitOfCode{Name: "example.com/app/core.Service.Run", Kind: KindFunc}

	assert.True(t, global.BelongsToGlobalScope())
	assert.False(t, primitive.BelongsToGlobalScope())
	assert.True(t, primitive.IsPrimitive())
	assert.False(t, scoped.BelongsToGlobalScope())
	assert.Equal(t, "example.com/app/core", scoped.Scope())
	assert.Equal(t, "example.com/app/core/Service/Run", scoped.SlashName())
	assert.Equal(t, "Foo", global.SlashName())
}

func TestUnitOfCode_RecordedPackage(t *testing.T) {
	tests := []struct {
		name      string
		unit      UnitOfCode
		wantScope string
		wantSlash string
	}{
		{
			name:      "dotted package name",
			unit:      UnitOfCode{Package: "example.com/app/weird.pkg", Name: "example.com/app/weird.pkg.Thing.Run"},
			wantScope: "example.com/app/weird.pkg",
			wantSlash: "example.com/app/weird.pkg/Thing/Run",
		},
		{
			name:      "versioned package",
			unit:      UnitOfCode{Name: "gopkg.in/yaml.v3.Node"},
			wantScope: "gopkg.in/yaml.v3",
			wantSlash: "gopkg.in/yaml.v3/Node",
		},
		{
			name:      "package not a prefix of the name",
			unit:      UnitOfCode{Package: "example.com/other", Name: "example.com/app/core.Service"},
			wantScope: "example.com/app/core",
			wantSlash: "example.com/app/core/Service",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantScope, tt.unit.Scope())
			assert.Equal(t, tt.wantSlash, tt.unit.SlashName())
		})
	}
}

func TestShortNameAndExported(t *testing.T) {
	assert.Equal(t, "Run", ShortName("example.com/app/core.Service.Run"))
	assert.Equal(t, "Foo", ShortName("Foo"))
	assert.Equal(t, "Node", ShortName("gopkg.in/yaml.v3.Node"))
	assert.True(t, IsExportedName("Service"))
	assert.False(t, IsExportedName("service"))
	assert.False(t, IsExportedName(""))
}

func TestIDSet(t *testing.T) {
	var s IDSet

	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Has(1))

	s.Add(3)
	s.Add(1)
	s.Add(3)

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has(3))
	assert.Equal(t, []UnitID{1, 3}, s.Sorted())

	s.Remove(3)
	assert.Equal(t, []UnitID{1}, s.Sorted())
}

func TestIsPredeclared(t *testing.T) {
	for _, name := range []string{"int", "string", "error", "any", "bool"} {
		assert.True(t, IsPredeclared(name), name)
	}

	assert.False(t, IsPredeclared("Service"))
}

func TestIsPredeclaredType(t *testing.T) {
	assert.True(t, IsPredeclaredType("error"))
	assert.False(t, IsPredeclaredType("nil"))
	assert.True(t, IsPredeclared("nil"))
}
