package types

// Classification records how a single classpath entry was matched.
type Classification struct {
	File    string
	Module  string
	Kind    MatchKind
	Version string
}

type Partition struct {
	Entries    []Classification
	ModulePath []string
	Classpath  []string
}

// FilterEmptyJars returns the classpath with bare (metadata-only) module
// jars removed and platform jars kept, in input order.
func (p Partition) FilterEmptyJars() []string {
	var out []string
	for _, entry := range p.Entries {
		if entry.Kind == MatchKindBare {
			continue
		}
		out = append(out, entry.File)
	}
	return out
}

type VersionReport struct {
	Versions []string
	Mixed    bool
}
