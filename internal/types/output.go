package types

import "strings"

// Declaration is one dependency a host build tool must declare.
type Declaration struct {
	Kind       DeclarationKind `yaml:"kind"`
	Group      string          `yaml:"group,omitempty"`
	Artifact   string          `yaml:"artifact,omitempty"`
	Version    string          `yaml:"version,omitempty"`
	Classifier string          `yaml:"classifier,omitempty"`
	Name       string          `yaml:"name,omitempty"`
}

// Notation renders the declaration the way a build script would write it.
func (d Declaration) Notation() string {
	if d.Kind == DeclarationKindLocal {
		return d.Name
	}
	return strings.Join([]string{d.Group, d.Artifact, d.Version, d.Classifier}, ":")
}

type ConfigurationDeclarations struct {
	Configuration string        `yaml:"configuration"`
	Dependencies  []Declaration `yaml:"dependencies"`
}

type RepositoryRegistration struct {
	Name string `yaml:"name"`
	Dir  string `yaml:"dir"`
}

type Resolution struct {
	Platform       string                      `yaml:"platform"`
	Version        string                      `yaml:"version"`
	Modules        []string                    `yaml:"modules"`
	Configurations []ConfigurationDeclarations `yaml:"configurations"`
	Repositories   []RepositoryRegistration    `yaml:"repositories,omitempty"`
}
