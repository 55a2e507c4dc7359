package policies

import (
	"path/filepath"
	"regexp"

	"fxpath/internal/core"
	"fxpath/internal/ports"
	"fxpath/internal/types"
)

// ClasspathPolicy decides which classpath entries are JavaFX module jars
// for one platform. Entries are matched by base name.
type ClasspathPolicy struct {
	Platform types.Platform
	Version  string
	FileInfo ports.FileInfoPort
	patterns []modulePattern
}

type modulePattern struct {
	module   string
	platform *regexp.Regexp
	pinned   string
	bare     map[string]struct{}
}

// NewClasspathPolicy compiles one pattern per module. With an empty version
// any version matches; otherwise only the exact platform file name does.
func NewClasspathPolicy(modules []types.Module, platform types.Platform, version string) ClasspathPolicy {
	policy := ClasspathPolicy{
		Platform: platform,
		Version:  version,
	}
	policy.compile(modules)
	return policy
}

// WithFileInfo makes entries that are not regular files ineligible.
func (p ClasspathPolicy) WithFileInfo(info ports.FileInfoPort) ClasspathPolicy {
	p.FileInfo = info
	return p
}

func (p *ClasspathPolicy) compile(modules []types.Module) {
	p.patterns = make([]modulePattern, 0, len(modules))
	for _, module := range modules {
		naming := core.NewArtifactNaming(module, p.Version, p.Platform)
		pattern := modulePattern{
			module: module.ModuleName(),
			platform: regexp.MustCompile(
				"^" + regexp.QuoteMeta(module.ArtifactID()) + "-(.+)-" + regexp.QuoteMeta(p.Platform.Classifier) + `\.jar$`,
			),
			bare: map[string]struct{}{
				naming.ModuleFileName(): {},
				naming.LocalFileName():  {},
			},
		}
		if p.Version != "" {
			pattern.pinned = naming.PlatformFileName()
		}
		p.patterns = append(p.patterns, pattern)
	}
}

// Classify matches a single entry. The first module in declaration order
// wins.
func (p ClasspathPolicy) Classify(file string) types.Classification {
	result := types.Classification{File: file}
	if p.FileInfo != nil && !p.FileInfo.IsRegularFile(file) {
		return result
	}
	name := filepath.Base(file)
	for _, pattern := range p.patterns {
		if kind, version := pattern.match(name); kind != types.MatchKindNone {
			result.Module = pattern.module
			result.Kind = kind
			result.Version = version
			return result
		}
	}
	return result
}

// Partition splits files into module-path and classpath entries, keeping
// input order in both.
func (p ClasspathPolicy) Partition(files []string) types.Partition {
	partition := types.Partition{
		Entries: make([]types.Classification, 0, len(files)),
	}
	for _, file := range files {
		entry := p.Classify(file)
		partition.Entries = append(partition.Entries, entry)
		if entry.Kind == types.MatchKindNone {
			partition.Classpath = append(partition.Classpath, file)
			continue
		}
		partition.ModulePath = append(partition.ModulePath, file)
	}
	return partition
}

func (m modulePattern) match(name string) (types.MatchKind, string) {
	if _, ok := m.bare[name]; ok {
		return types.MatchKindBare, ""
	}
	groups := m.platform.FindStringSubmatch(name)
	if groups == nil {
		return types.MatchKindNone, ""
	}
	if m.pinned != "" && name != m.pinned {
		return types.MatchKindNone, ""
	}
	return types.MatchKindPlatform, groups[1]
}

var _ ports.ClasspathPort = ClasspathPolicy{}
