package core

import (
	"fxpath/internal/types"
)

// DependencyClosure turns requested module names into the declarations a
// build tool needs.
type DependencyClosure struct {
	Registry ModuleRegistry
}

func NewDependencyClosure(registry ModuleRegistry) DependencyClosure {
	return DependencyClosure{Registry: registry}
}

// Remote returns one group:artifact:version:classifier declaration per
// module of the closure.
func (c DependencyClosure) Remote(names []string, version string, platform types.Platform) ([]types.Declaration, error) {
	modules, err := c.Registry.Closure(names)
	if err != nil {
		return nil, err
	}
	decls := make([]types.Declaration, 0, len(modules))
	for _, module := range modules {
		decls = append(decls, NewArtifactNaming(module, version, platform).RemoteDeclaration())
	}
	return decls, nil
}

// Local returns name-only declarations for resolution against an SDK lib
// directory. A local SDK carries no transitive metadata, so the dependents
// of every closure member are added explicitly as well.
func (c DependencyClosure) Local(names []string) ([]types.Declaration, error) {
	modules, err := c.Registry.Closure(names)
	if err != nil {
		return nil, err
	}
	modules = c.Registry.ExpandDependents(modules)
	decls := make([]types.Declaration, 0, len(modules))
	for _, module := range modules {
		decls = append(decls, NewArtifactNaming(module, "", types.Platform{}).LocalDeclaration())
	}
	return decls, nil
}
