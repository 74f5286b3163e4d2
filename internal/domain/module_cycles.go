package domain

import "slices"

// CyclicDependencies returns the dependency cycles that start and end at
// this module, e.g. [[A B C A] [A D A]].
//
// The search is a depth-first walk over the module graph without a global
// visited set. A revisited module closes a cycle only when it is the module
// the search started from, so a cycle B->C->B reachable from A is reported
// by B and C but not by A. Run the search from every module to enumerate all
// cycles of the graph.
func (mod *Module) CyclicDependencies() [][]*Module {
	return mod.cyclicDependencies(nil, nil)
}

func (mod *Module) cyclicDependencies(path []*Module, result [][]*Module) [][]*Module {
	path = append(slices.Clip(path), mod)

	for _, dependency := range mod.DependencyModules() {
		if slices.Contains(path, dependency) {
			if path[0] == dependency {
				cycle := append(slices.Clone(path), dependency)
				result = append(result, cycle)
			}

			continue
		}

		result = dependency.cyclicDependencies(path, result)
	}

	return result
}

// cycleKey identifies a cycle independently of the module it starts from.
func cycleKey(cycle []*Module) string {
	if len(cycle) < 2 {
		return ""
	}

	ring := cycle[:len(cycle)-1]

	start := 0
	for i, module := range ring {
		if module.order < ring[start].order {
			start = i
		}
	}

	key := make([]byte, 0, len(ring)*8)
	for i := range ring {
		key = append(key, ring[(start+i)%len(ring)].name...)
		key = append(key, 0)
	}

	return string(key)
}
