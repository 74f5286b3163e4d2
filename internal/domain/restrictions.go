package domain

import (
	"log/slog"
	"math"

	"github.com/bmatcuk/doublestar"

	m "cleanarch.dev/pkg/cleanarch/internal/model"
)

// Effect is the outcome of a dependency rule.
type Effect string

const (
	// EffectAllow permits a dependency.
	EffectAllow Effect = "allow"
	// EffectDeny forbids a dependency.
	EffectDeny Effect = "deny"
)

// DependencyRule allows or denies dependencies on modules whose name matches
// a doublestar glob.
type DependencyRule struct {
	Effect Effect
	Module string
}

// Allow returns a rule permitting dependencies on modules matching pattern.
func Allow(pattern string) DependencyRule {
	return DependencyRule{Effect: EffectAllow, Module: pattern}
}

// Deny returns a rule forbidding dependencies on modules matching pattern.
func Deny(pattern string) DependencyRule {
	return DependencyRule{Effect: EffectDeny, Module: pattern}
}

func (r DependencyRule) matches(module string) bool {
	return globMatch(r.Module, module)
}

// Restrictions is the policy of one module: which modules it may depend on,
// which of its units are public and how far it may drift from the main
// sequence.
type Restrictions struct {
	// Rules are evaluated in order against the dependency module's name; the
	// first match wins.
	Rules []DependencyRule
	// Default applies when no rule matches. Empty means allow.
	Default Effect
	// Public lists globs over unit slash names; when non-empty only matching
	// units are public.
	Public []string
	// Private lists globs over unit slash names that are never public.
	Private []string
	// ExportedOnly restricts public units to exported Go identifiers.
	ExportedOnly bool
	// MaxAllowableDistance is the distance threshold; nil disables it.
	MaxAllowableDistance *float64
}

// NewRestrictions returns a permissive policy: every dependency allowed,
// every unit public, no distance threshold.
func NewRestrictions() *Restrictions {
	return &Restrictions{Default: EffectAllow}
}

// IsDependencyAllowed reports whether dependent may depend on dependency.
func (r *Restrictions) IsDependencyAllowed(dependency, dependent *Module) bool {
	if dependency == dependent {
		return true
	}

	for _, rule := range r.Rules {
		if rule.matches(dependency.Name()) {
			return rule.Effect != EffectDeny
		}
	}

	return r.Default != EffectDeny
}

// IsUnitAccessibleFromOutside reports whether unit, owned by owner, may be
// used by other modules.
func (r *Restrictions) IsUnitAccessibleFromOutside(unit *m.UnitOfCode, owner *Module) bool {
	if !unit.BelongsTo(owner.Name()) {
		return true
	}

	if r.ExportedOnly && !unit.Exported {
		return false
	}

	subject := unit.SlashName()

	for _, pattern := range r.Private {
		if globMatch(pattern, subject) {
			return false
		}
	}

	if len(r.Public) == 0 {
		return true
	}

	for _, pattern := range r.Public {
		if globMatch(pattern, subject) {
			return true
		}
	}

	return false
}

// IllegalDependencyModules returns the dependency modules of module that its
// rules forbid.
func (r *Restrictions) IllegalDependencyModules(module *Module) []*Module {
	var illegal []*Module

	for _, dependency := range module.DependencyModules() {
		if !r.IsDependencyAllowed(dependency, module) {
			illegal = append(illegal, dependency)
		}
	}

	return illegal
}

// IllegalDependencyUnits returns the units of other modules that module must
// not use. With onlyFromAllowedModules set only private units of otherwise
// allowed modules are returned; without it units of forbidden modules are
// included as well.
func (r *Restrictions) IllegalDependencyUnits(module *Module, onlyFromAllowedModules bool) []*m.UnitOfCode {
	var illegal []*m.UnitOfCode

	for _, dependency := range module.DependencyModules() {
		allowed := r.IsDependencyAllowed(dependency, module)
		if !allowed && onlyFromAllowedModules {
			continue
		}

		for _, unit := range module.DependencyUnits(dependency) {
			if !allowed || !dependency.IsUnitAccessibleFromOutside(unit) {
				illegal = append(illegal, unit)
			}
		}
	}

	return illegal
}

// DistanceRateOverage returns how far module's distance exceeds the
// threshold, or 0 when it does not or no threshold is set.
func (r *Restrictions) DistanceRateOverage(module *Module) float64 {
	if r.MaxAllowableDistance == nil {
		return 0
	}

	overage := round3(module.DistanceRate() - *r.MaxAllowableDistance)
	if overage <= 0 {
		return 0
	}

	return overage
}

// globMatch treats malformed patterns as non-matching.
func globMatch(pattern, name string) bool {
	ok, err := doublestar.Match(pattern, name)
	if err != nil {
		slog.Debug("invalid glob pattern", "pattern", pattern, "error", err)
		return false
	}

	return ok
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
