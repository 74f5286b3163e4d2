package model

import "time"

// Metrics are the main-sequence metrics of one module, rounded to three
// decimal places.
type Metrics struct {
	Abstractness    float64 `yaml:"abstractness" json:"abstractness"`
	Instability     float64 `yaml:"instability" json:"instability"`
	Distance        float64 `yaml:"distance" json:"distance"`
	DistanceOverage float64 `yaml:"distance_overage" json:"distance_overage"`
	Primitiveness   float64 `yaml:"primitiveness" json:"primitiveness"`
}

// UnitRef identifies a unit of code in a report.
type UnitRef struct {
	Name   string `yaml:"name" json:"name"`
	Path   string `yaml:"path,omitempty" json:"path,omitempty"`
	Module string `yaml:"module" json:"module"`
}

// UnitViolation is a dependency from a unit of the reporting module onto a
// unit it must not use.
type UnitViolation struct {
	From UnitRef `yaml:"from" json:"from"`
	To   UnitRef `yaml:"to" json:"to"`
}

// ModuleReport holds the findings for one module.
type ModuleReport struct {
	Name                  string          `yaml:"name" json:"name"`
	Enabled               bool            `yaml:"enabled" json:"enabled"`
	Units                 int             `yaml:"units" json:"units"`
	Metrics               Metrics         `yaml:"metrics" json:"metrics"`
	MaxAllowableDistance  *float64        `yaml:"max_allowable_distance,omitempty" json:"max_allowable_distance,omitempty"`
	DependencyModules     []string        `yaml:"dependency_modules,omitempty" json:"dependency_modules,omitempty"`
	DependentModules      []string        `yaml:"dependent_modules,omitempty" json:"dependent_modules,omitempty"`
	IllegalModules        []string        `yaml:"illegal_modules,omitempty" json:"illegal_modules,omitempty"`
	ForbiddenDependencies []UnitViolation `yaml:"forbidden_dependencies,omitempty" json:"forbidden_dependencies,omitempty"`
	PrivateLeaks          []UnitViolation `yaml:"private_leaks,omitempty" json:"private_leaks,omitempty"`
	Cycles                [][]string      `yaml:"cycles,omitempty" json:"cycles,omitempty"`
}

// HasViolations reports whether the module breaks any of its restrictions.
func (r ModuleReport) HasViolations() bool {
	return len(r.IllegalModules) > 0 ||
		len(r.ForbiddenDependencies) > 0 ||
		len(r.PrivateLeaks) > 0 ||
		len(r.Cycles) > 0 ||
		r.Metrics.DistanceOverage > 0
}

// Summary aggregates counters over all modules of a report.
type Summary struct {
	Modules               int `yaml:"modules" json:"modules"`
	Units                 int `yaml:"units" json:"units"`
	IllegalModules        int `yaml:"illegal_modules" json:"illegal_modules"`
	ForbiddenDependencies int `yaml:"forbidden_dependencies" json:"forbidden_dependencies"`
	PrivateLeaks          int `yaml:"private_leaks" json:"private_leaks"`
	Cycles                int `yaml:"cycles" json:"cycles"`
	DistanceOverages      int `yaml:"distance_overages" json:"distance_overages"`
}

// Violations returns the total number of findings.
func (s Summary) Violations() int {
	return s.IllegalModules + s.ForbiddenDependencies + s.PrivateLeaks + s.Cycles + s.DistanceOverages
}

// Report is the serialisable result of one architecture check.
type Report struct {
	Version     int            `yaml:"version" json:"version"`
	Root        string         `yaml:"root" json:"root"`
	GeneratedAt time.Time      `yaml:"generated_at" json:"generated_at"`
	Modules     []ModuleReport `yaml:"modules" json:"modules"`
	Summary     Summary        `yaml:"summary" json:"summary"`
}

// Failed reports whether the check found at least one violation.
func (r Report) Failed() bool {
	return r.Summary.Violations() > 0
}

// ModuleSummary is a light listing entry used by the list command.
type ModuleSummary struct {
	Name     string
	Enabled  bool
	Units    int
	Roots    []Path
	Excluded []Path
}
