package core

import (
	"sort"

	"fxpath/internal/types"
)

// defaultModules is declared in dependency order; that order is also the
// tie-breaker when classpath patterns overlap and the order of emitted
// declarations.
var defaultModules = []types.Module{
	{Name: "base"},
	{Name: "graphics", Dependents: []string{"base"}},
	{Name: "controls", Dependents: []string{"base", "graphics"}},
	{Name: "fxml", Dependents: []string{"base", "graphics"}},
	{Name: "media", Dependents: []string{"base", "graphics"}},
	{Name: "swing", Dependents: []string{"base", "graphics"}},
	{Name: "web", Dependents: []string{"base", "controls", "graphics", "media"}},
}

var defaultRegistry = NewModuleRegistryFrom(defaultModules)

// ModuleRegistry is an immutable lookup table of known modules keyed by
// canonical dotted name.
type ModuleRegistry struct {
	modules []types.Module
	index   map[string]int
	short   map[string]int
}

func NewModuleRegistry() ModuleRegistry {
	return defaultRegistry
}

// NewModuleRegistryFrom builds a registry over an explicit table. Dependents
// reference other entries by short name.
func NewModuleRegistryFrom(modules []types.Module) ModuleRegistry {
	registry := ModuleRegistry{
		modules: make([]types.Module, 0, len(modules)),
		index:   make(map[string]int, len(modules)),
		short:   make(map[string]int, len(modules)),
	}
	for _, module := range modules {
		module.Dependents = append([]string(nil), module.Dependents...)
		registry.index[module.ModuleName()] = len(registry.modules)
		registry.short[module.Name] = len(registry.modules)
		registry.modules = append(registry.modules, module)
	}
	return registry
}

// Modules returns the table in declaration order.
func (r ModuleRegistry) Modules() []types.Module {
	return append([]types.Module(nil), r.modules...)
}

func (r ModuleRegistry) ModuleNames() []string {
	names := make([]string, 0, len(r.modules))
	for _, module := range r.modules {
		names = append(names, module.ModuleName())
	}
	return names
}

func (r ModuleRegistry) Lookup(name string) (types.Module, error) {
	idx, ok := r.index[name]
	if !ok {
		return types.Module{}, &UnknownModuleError{Name: name}
	}
	return r.modules[idx], nil
}

// Validate fails with an InvalidModuleNamesError naming every unknown entry.
func (r ModuleRegistry) Validate(names []string) error {
	var offenders []string
	for _, name := range names {
		if _, ok := r.index[name]; !ok {
			offenders = append(offenders, name)
		}
	}
	if len(offenders) > 0 {
		return &InvalidModuleNamesError{Offenders: offenders}
	}
	return nil
}

// Closure returns every requested module plus its dependents, deduplicated
// and in declaration order.
func (r ModuleRegistry) Closure(names []string) ([]types.Module, error) {
	if err := r.Validate(names); err != nil {
		return nil, err
	}
	seen := map[int]struct{}{}
	for _, name := range names {
		idx := r.index[name]
		seen[idx] = struct{}{}
		for _, dep := range r.modules[idx].Dependents {
			if depIdx, ok := r.short[dep]; ok {
				seen[depIdx] = struct{}{}
			}
		}
	}
	return r.ordered(seen), nil
}

// ExpandDependents unions the given modules with the declared dependents of
// each of them. With a fully flattened table this returns its input.
func (r ModuleRegistry) ExpandDependents(modules []types.Module) []types.Module {
	seen := map[int]struct{}{}
	for _, module := range modules {
		idx, ok := r.short[module.Name]
		if !ok {
			continue
		}
		seen[idx] = struct{}{}
		for _, dep := range r.modules[idx].Dependents {
			if depIdx, ok := r.short[dep]; ok {
				seen[depIdx] = struct{}{}
			}
		}
	}
	return r.ordered(seen)
}

func (r ModuleRegistry) ordered(set map[int]struct{}) []types.Module {
	indexes := make([]int, 0, len(set))
	for idx := range set {
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)
	out := make([]types.Module, 0, len(indexes))
	for _, idx := range indexes {
		out = append(out, r.modules[idx])
	}
	return out
}

func ModuleNamesOf(modules []types.Module) []string {
	names := make([]string, 0, len(modules))
	for _, module := range modules {
		names = append(names, module.ModuleName())
	}
	return names
}
