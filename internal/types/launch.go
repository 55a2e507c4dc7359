package types

// LaunchSpec describes a process that has not been started yet.
type LaunchSpec struct {
	Classpath []string
	ExtraArgs []string
}

func (s LaunchSpec) Clone() LaunchSpec {
	return LaunchSpec{
		Classpath: append([]string(nil), s.Classpath...),
		ExtraArgs: append([]string(nil), s.ExtraArgs...),
	}
}

type ModuleOptionsFile struct {
	AddModules []string `yaml:"add_modules"`
}

// LaunchSpecFile is the on-disk form of a launch target.
type LaunchSpecFile struct {
	Target        string             `yaml:"target,omitempty"`
	NamedModule   bool               `yaml:"named_module,omitempty"`
	Classpath     []string           `yaml:"classpath"`
	JvmArgs       []string           `yaml:"jvm_args"`
	ModuleOptions *ModuleOptionsFile `yaml:"module_options,omitempty"`
}

type RewriteResult struct {
	Outcome      RewriteOutcome
	Spec         LaunchSpec
	AddedModules []string
}
