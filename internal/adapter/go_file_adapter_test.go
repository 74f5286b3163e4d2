package adapter

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "cleanarch.dev/pkg/cleanarch/internal/model"
)

const serviceSource = `package core

import (
	"context"
	"fmt"

	api "example.com/app/api"
	"example.com/app/infra/db"
	_ "embed"
)

// Repository stores orders.
type Repository interface {
	Find(ctx context.Context, id string) (*Order, error)
}

type Order struct {
	ID    string
	Items []Item
	raw   db.Row
}

type Status int

const (
	StatusNew Status = iota
	statusDone
)

var defaultService = NewService(nil)

// NewService builds a service.
//
// @param Repository repo
// @return *Service|api.Error
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Handle(ctx context.Context, h api.Handler) error {
	order, err := s.repo.Find(ctx, "1")
	if err != nil {
		return fmt.Errorf("find: %w", err)
	}

	for _, item := range order.Items {
		_ = Item{Name: item.Name}
	}

	return nil
}

func external() int
`

func scanUnits(t *testing.T, src string) map[string]m.UnitSpec {
	t.Helper()

	adapter := NewLocalGoFileAdapter()

	units, err := adapter.ScanFile(token.NewFileSet(), "core/service.go", "example.com/app/core", []byte(src))
	require.NoError(t, err)

	byName := make(map[string]m.UnitSpec, len(units))
	for _, unit := range units {
		byName[unit.Name] = unit
	}

	return byName
}

func TestLocalGoFileAdapter_ScanFile_Units(t *testing.T) {
	units := scanUnits(t, serviceSource)

	tests := []struct {
		name     string
		kind     m.UnitKind
		abstract *bool
		exported bool
		path     m.FilePath
	}{
		{name: "example.com/app/core.Repository", kind: m.KindInterface, abstract: boolPtr(true), exported: true, path: "core/service.go"},
		{name: "example.com/app/core.Order", kind: m.KindStruct, abstract: boolPtr(false), exported: true, path: "core/service.go"},
		{name: "example.com/app/core.Status", kind: m.KindType, exported: true, path: "core/service.go"},
		{name: "example.com/app/core.StatusNew", kind: m.KindConst, exported: true, path: "core/service.go"},
		{name: "example.com/app/core.statusDone", kind: m.KindConst, path: "core/service.go"},
		{name: "example.com/app/core.defaultService", kind: m.KindVar, path: "core/service.go"},
		{name: "example.com/app/core.NewService", kind: m.KindFunc, exported: true, path: "core/service.go"},
		{name: "example.com/app/core.external", kind: m.KindFunc, path: "core/service.go"},
		{name: "example.com/app/core.Service", kind: "", exported: true, path: ""},
	}

	require.Len(t, units, len(tests))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit, ok := units[tt.name]
			require.True(t, ok)
			assert.Equal(t, tt.kind, unit.Kind)
			assert.Equal(t, tt.abstract, unit.Abstract)
			assert.Equal(t, tt.exported, unit.Exported)
			assert.Equal(t, tt.path, unit.Path)
		})
	}
}

func TestLocalGoFileAdapter_ScanFile_Dependencies(t *testing.T) {
	units := scanUnits(t, serviceSource)

	tests := []struct {
		name string
		want []string
	}{
		{
			name: "example.com/app/core.Repository",
			want: []string{"context.Context", "string", "example.com/app/core.Order", "error"},
		},
		{
			name: "example.com/app/core.Order",
			want: []string{"string", "example.com/app/core.Item", "example.com/app/infra/db.Row"},
		},
		{
			name: "example.com/app/core.StatusNew",
			want: []string{"example.com/app/core.Status"},
		},
		{
			name: "example.com/app/core.defaultService",
			want: []string{"example.com/app/core.NewService"},
		},
		{
			name: "example.com/app/core.NewService",
			want: []string{
				"example.com/app/core.Repository",
				"example.com/app/core.Service",
				"example.com/app/core.repo",
				"example.com/app/api.Error",
			},
		},
		{
			name: "example.com/app/core.Service",
			want: []string{
				"example.com/app/core.Service",
				"context.Context",
				"example.com/app/api.Handler",
				"error",
				"example.com/app/core.s",
				"example.com/app/core.ctx",
				"example.com/app/core.err",
				"fmt.Errorf",
				"example.com/app/core.order",
				"example.com/app/core.Item",
				"example.com/app/core.item",
			},
		},
		{
			name: "example.com/app/core.external",
			want: []string{"int"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, units[tt.name].Dependencies)
		})
	}
}

func TestLocalGoFileAdapter_ScanFile_InvalidSource(t *testing.T) {
	adapter := NewLocalGoFileAdapter()

	_, err := adapter.ScanFile(token.NewFileSet(), "broken.go", "example.com/broken", []byte("package foo\n func"))
	require.Error(t, err)
}

func TestDefaultImportName(t *testing.T) {
	tests := map[string]string{
		"fmt":                              "fmt",
		"net/http":                         "http",
		"gopkg.in/yaml.v3":                 "yaml",
		"github.com/go-chi/chi/v5":         "chi",
		"github.com/pmezard/go-difflib":    "difflib",
		"github.com/hashicorp/golang-lru":  "golanglru",
		"gopkg.in/natefinch/lumberjack.v2": "lumberjack",
	}

	for importPath, want := range tests {
		t.Run(importPath, func(t *testing.T) {
			assert.Equal(t, want, defaultImportName(importPath))
		})
	}
}
