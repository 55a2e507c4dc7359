package adapters

import (
	"fxpath/internal/ports"
	"fxpath/internal/types"
)

// ModuleOptions is the module-aware collaborator of a launch target: it owns
// the --add-modules list and emits the module flags itself.
type ModuleOptions struct {
	modules []string
	seen    map[string]struct{}
}

func NewModuleOptions(initial ...string) *ModuleOptions {
	options := &ModuleOptions{seen: map[string]struct{}{}}
	options.AddModules(initial...)
	return options
}

// ModuleOptionsFromFile returns nil when the launch file has no
// module_options block.
func ModuleOptionsFromFile(file *types.ModuleOptionsFile) *ModuleOptions {
	if file == nil {
		return nil
	}
	return NewModuleOptions(file.AddModules...)
}

func (o *ModuleOptions) AddModules(names ...string) {
	for _, name := range names {
		if _, ok := o.seen[name]; ok {
			continue
		}
		o.seen[name] = struct{}{}
		o.modules = append(o.modules, name)
	}
}

func (o *ModuleOptions) Modules() []string {
	return append([]string(nil), o.modules...)
}

func (o *ModuleOptions) File() *types.ModuleOptionsFile {
	return &types.ModuleOptionsFile{AddModules: o.Modules()}
}

var _ ports.ModuleAwarePort = (*ModuleOptions)(nil)
