package domain

import (
	"errors"
	"fmt"
	"strings"

	m "cleanarch.dev/pkg/cleanarch/internal/model"
)

// ErrInvalidConfig wraps every architecture configuration error.
var ErrInvalidConfig = errors.New("invalid architecture config")

// ArchitectureConfig is the architecture section of the configuration file.
type ArchitectureConfig struct {
	Modules []ModuleConfig `mapstructure:"modules" yaml:"modules"`
}

// ModuleConfig declares one module.
type ModuleConfig struct {
	Name         string             `mapstructure:"name" yaml:"name"`
	Roots        []m.Path           `mapstructure:"roots" yaml:"roots"`
	Excluded     []m.Path           `mapstructure:"excluded" yaml:"excluded,omitempty"`
	Enabled      *bool              `mapstructure:"enabled" yaml:"enabled,omitempty"`
	Restrictions RestrictionsConfig `mapstructure:"restrictions" yaml:"restrictions,omitempty"`
}

// RuleConfig is one dependency rule; exactly one of Allow and Deny is set.
type RuleConfig struct {
	Allow string `mapstructure:"allow" yaml:"allow,omitempty"`
	Deny  string `mapstructure:"deny" yaml:"deny,omitempty"`
}

// RestrictionsConfig is the policy of one module.
type RestrictionsConfig struct {
	Dependencies         []RuleConfig `mapstructure:"dependencies" yaml:"dependencies,omitempty"`
	Default              string       `mapstructure:"default" yaml:"default,omitempty"`
	Public               []string     `mapstructure:"public" yaml:"public,omitempty"`
	Private              []string     `mapstructure:"private" yaml:"private,omitempty"`
	ExportedOnly         bool         `mapstructure:"exported_only" yaml:"exported_only,omitempty"`
	MaxAllowableDistance *float64     `mapstructure:"max_allowable_distance" yaml:"max_allowable_distance,omitempty"`
}

// Validate reports every problem found in the configuration at once.
func (c ArchitectureConfig) Validate() error {
	var errs []error

	for i, module := range c.Modules {
		label := fmt.Sprintf("modules[%d]", i)
		if strings.TrimSpace(module.Name) == "" {
			errs = append(errs, fmt.Errorf("%w: %s: name is required", ErrInvalidConfig, label))
		} else {
			label = fmt.Sprintf("module %q", module.Name)
		}

		if strings.HasPrefix(module.Name, "*") && strings.HasSuffix(module.Name, "*") {
			errs = append(errs, fmt.Errorf("%w: %s: names wrapped in '*' are reserved", ErrInvalidConfig, label))
		}

		for j, path := range module.Roots {
			if path.IsZero() {
				errs = append(errs, fmt.Errorf("%w: %s: roots[%d] needs a namespace or a path", ErrInvalidConfig, label, j))
			}
		}

		if _, err := module.Restrictions.build(); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, label, err))
		}
	}

	return errors.Join(errs...)
}

// Apply registers the configured modules, in file order, on the registry.
func (c ArchitectureConfig) Apply(registry *Registry) error {
	if err := c.Validate(); err != nil {
		return err
	}

	for _, cfg := range c.Modules {
		restrictions, _ := cfg.Restrictions.build()

		module := registry.GetOrCreate(cfg.Name, cfg.Roots, cfg.Excluded, restrictions)
		if cfg.Enabled != nil && !*cfg.Enabled {
			module.ExcludeFromAnalysis()
		}
	}

	return nil
}

func (c RestrictionsConfig) build() (*Restrictions, error) {
	restrictions := NewRestrictions()

	switch Effect(strings.ToLower(strings.TrimSpace(c.Default))) {
	case "", EffectAllow:
	case EffectDeny:
		restrictions.Default = EffectDeny
	default:
		return nil, fmt.Errorf("default must be %q or %q, got %q", EffectAllow, EffectDeny, c.Default)
	}

	for i, rule := range c.Dependencies {
		switch {
		case rule.Allow != "" && rule.Deny != "":
			return nil, fmt.Errorf("dependencies[%d] sets both allow and deny", i)
		case rule.Allow != "":
			restrictions.Rules = append(restrictions.Rules, Allow(rule.Allow))
		case rule.Deny != "":
			restrictions.Rules = append(restrictions.Rules, Deny(rule.Deny))
		default:
			return nil, fmt.Errorf("dependencies[%d] sets neither allow nor deny", i)
		}
	}

	if d := c.MaxAllowableDistance; d != nil && (*d < 0 || *d > 1) {
		return nil, fmt.Errorf("max_allowable_distance must be within [0, 1], got %v", *d)
	}

	restrictions.Public = c.Public
	restrictions.Private = c.Private
	restrictions.ExportedOnly = c.ExportedOnly
	restrictions.MaxAllowableDistance = c.MaxAllowableDistance

	return restrictions, nil
}

// DefaultArchitectureConfig is written by the init command.
func DefaultArchitectureConfig() ArchitectureConfig {
	maxDistance := 0.5

	return ArchitectureConfig{
		Modules: []ModuleConfig{
			{
				Name:  "domain",
				Roots: []m.Path{m.DirectoryPath("internal/domain")},
				Restrictions: RestrictionsConfig{
					Dependencies:         []RuleConfig{{Allow: "model"}, {Allow: UndefinedModuleName}, {Deny: "*"}},
					MaxAllowableDistance: &maxDistance,
				},
			},
			{
				Name:  "model",
				Roots: []m.Path{m.DirectoryPath("internal/model")},
				Restrictions: RestrictionsConfig{
					Dependencies: []RuleConfig{{Allow: UndefinedModuleName}, {Deny: "*"}},
				},
			},
			{
				Name:  "cmd",
				Roots: []m.Path{m.DirectoryPath("cmd")},
				Restrictions: RestrictionsConfig{
					ExportedOnly: true,
				},
			},
		},
	}
}

// ProjectModuleName names the module that WithProjectModule appends.
const ProjectModuleName = "project"

// WithProjectModule appends a module rooted at modulePath after the
// configured ones. Resolution is first match, so it only claims project
// units no other module claims and leaves *undefined* to code from outside
// the project. An empty modulePath returns c unchanged.
func (c ArchitectureConfig) WithProjectModule(modulePath string) ArchitectureConfig {
	if modulePath == "" {
		return c
	}

	modules := make([]ModuleConfig, 0, len(c.Modules)+1)
	modules = append(modules, c.Modules...)
	modules = append(modules, ModuleConfig{
		Name:  ProjectModuleName,
		Roots: []m.Path{m.NamespacePath(modulePath)},
	})

	return ArchitectureConfig{Modules: modules}
}
