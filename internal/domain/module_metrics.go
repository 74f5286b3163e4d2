package domain

import "math"

// AbstractnessRate returns A = Na / (Na + Nc) over the units whose
// abstractness is known; 0 when none is.
//
// 0 means the module is entirely concrete, 1 entirely abstract.
func (mod *Module) AbstractnessRate() float64 {
	var abstract, concrete int

	for _, unit := range mod.Units() {
		if unit.Abstract == nil {
			continue
		}

		if *unit.Abstract {
			abstract++
		} else {
			concrete++
		}
	}

	total := abstract + concrete
	if total == 0 {
		return 0
	}

	return round3(float64(abstract) / float64(total))
}

// InstabilityRate returns I = FanOut / (FanIn + FanOut); 0 without any
// external dependency.
//
// FanIn counts distinct external units depending on the module, FanOut
// distinct external units the module depends on, global-scope and primitive
// units excluded. Both count unit names.
func (mod *Module) InstabilityRate() float64 {
	fanIn := make(map[string]struct{})
	fanOut := make(map[string]struct{})

	for _, unit := range mod.Units() {
		for _, id := range unit.Inputs.Sorted() {
			dependent := mod.universe.unit(id)
			if !dependent.BelongsTo(mod.name) {
				fanIn[dependent.Name] = struct{}{}
			}
		}

		for _, id := range unit.Outputs.Sorted() {
			dependency := mod.universe.unit(id)
			if isArchitecturalDependency(dependency, mod) {
				fanOut[dependency.Name] = struct{}{}
			}
		}
	}

	total := len(fanIn) + len(fanOut)
	if total == 0 {
		return 0
	}

	return round3(float64(len(fanOut)) / float64(total))
}

// DistanceRate returns D = |A + I - 1|, the distance from the main sequence.
func (mod *Module) DistanceRate() float64 {
	return round3(math.Abs(mod.AbstractnessRate() + mod.InstabilityRate() - 1))
}

// DistanceRateOverage returns how far D exceeds the module's
// max_allowable_distance.
func (mod *Module) DistanceRateOverage() float64 {
	return mod.restrictions.DistanceRateOverage(mod)
}

// PrimitivenessRate returns the mean primitiveness of the member units; 0
// for an empty module.
func (mod *Module) PrimitivenessRate() float64 {
	units := mod.Units()
	if len(units) == 0 {
		return 0
	}

	var sum float64
	for _, unit := range units {
		sum += unit.Primitiveness
	}

	return round3(sum / float64(len(units)))
}
