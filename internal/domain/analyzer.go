package domain

import (
	"slices"
	"strings"

	m "cleanarch.dev/pkg/cleanarch/internal/model"
)

type pendingLinks struct {
	from  m.UnitID
	scope string
	names []string
}

// BuildGraph registers the configured modules, declares every scanned unit,
// links the raw dependency names and seals the result.
//
// Files are processed in path order so unit IDs, and everything ordered by
// them, do not depend on scan scheduling. Names that were never declared
// but share the package scope of the referencing unit are local variables,
// parameters or type parameters and are not linked.
func BuildGraph(cfg ArchitectureConfig, files []m.ScannedFile) (*Graph, error) {
	registry := NewRegistry()
	if err := cfg.Apply(registry); err != nil {
		return nil, err
	}

	files = slices.Clone(files)
	slices.SortStableFunc(files, func(a, b m.ScannedFile) int {
		return strings.Compare(shortPathOf(a), shortPathOf(b))
	})

	var pending []pendingLinks

	for _, file := range files {
		for _, spec := range file.Units {
			unit := registry.DeclareUnit(spec)
			if len(spec.Dependencies) == 0 {
				continue
			}

			pending = append(pending, pendingLinks{
				from:  unit.ID,
				scope: unit.Scope(),
				names: spec.Dependencies,
			})
		}
	}

	for _, links := range pending {
		for _, name := range links.names {
			if isLinkable(registry, links.scope, name) {
				registry.Link(links.from, name)
			}
		}
	}

	return registry.Seal(), nil
}

func isLinkable(registry *Registry, scope, name string) bool {
	if _, ok := registry.Unit(name); ok {
		return true
	}

	dependencyScope, _ := m.SplitQualifiedName(name)

	return dependencyScope != scope
}

func shortPathOf(file m.ScannedFile) string {
	if file.Source.Origin == nil {
		return ""
	}

	return string(file.Source.Origin.ShortPath)
}
