package app

import "fxpath/internal/types"

// ProjectOverrides replace values of the project file. Empty fields keep the
// project value.
type ProjectOverrides struct {
	Modules        []string
	Version        string
	Platform       string
	SDK            string
	Configurations []string
}

type ValidateRequest struct {
	ProjectPath string
}

type ValidateResult struct {
	ProjectName string
	Platform    types.Platform
	Version     string
	Closure     []string
	Warnings    []string
}

type ResolveRequest struct {
	ProjectPath string
	Overrides   ProjectOverrides
	OutputDir   string
}

type ResolveResult struct {
	Resolution types.Resolution
	OutputDir  string
	Hints      []string
}

type RewriteRequest struct {
	ProjectPath string
	Overrides   ProjectOverrides
	LaunchPath  string
	OutputPath  string
	Separator   string
	// PinVersion restricts platform jars to the project version.
	PinVersion    bool
	RequireFiles  bool
	StripBareJars bool
}

type RewriteResult struct {
	Target       string
	Outcome      types.RewriteOutcome
	Launch       types.LaunchSpecFile
	AddedModules []string
	Versions     types.VersionReport
	OutputPath   string
	Warnings     []string
}

type PartitionRequest struct {
	LaunchPath   string
	Classpath    []string
	Platform     string
	Version      string
	RequireFiles bool
}

type PartitionResult struct {
	Platform   types.Platform
	Entries    []types.Classification
	ModulePath []string
	Classpath  []string
	Filtered   []string
	Versions   types.VersionReport
}

type PlatformsResult struct {
	HostClassifier string
	Detected       *types.Platform
	DetectError    string
	Platforms      []types.Platform
}
