package adapters

import (
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"fxpath/internal/ports"
	"fxpath/internal/types"
)

const (
	DependenciesFileName = "dependencies.yaml"
	RepositoriesFileName = "repositories.yaml"
)

type DeclarationsFileAdapter struct {
	Fs  afero.Fs
	Dir string
}

func NewDeclarationsFileAdapter(fs afero.Fs, dir string) DeclarationsFileAdapter {
	return DeclarationsFileAdapter{Fs: fs, Dir: dir}
}

type dependenciesDocument struct {
	Platform       string                 `yaml:"platform"`
	Version        string                 `yaml:"version,omitempty"`
	Modules        []string               `yaml:"modules"`
	Configurations []configurationSection `yaml:"configurations"`
}

type configurationSection struct {
	Name         string   `yaml:"name"`
	Dependencies []string `yaml:"dependencies"`
}

type repositoriesDocument struct {
	Repositories []types.RepositoryRegistration `yaml:"repositories"`
}

// WriteDeclarations writes one section per configuration with the
// declarations in build script notation.
func (a DeclarationsFileAdapter) WriteDeclarations(resolution types.Resolution) error {
	doc := dependenciesDocument{
		Platform: resolution.Platform,
		Version:  resolution.Version,
		Modules:  append([]string{}, resolution.Modules...),
	}
	for _, conf := range resolution.Configurations {
		section := configurationSection{Name: conf.Configuration, Dependencies: []string{}}
		for _, decl := range conf.Dependencies {
			section.Dependencies = append(section.Dependencies, decl.Notation())
		}
		doc.Configurations = append(doc.Configurations, section)
	}
	return a.writeYAML(DependenciesFileName, doc)
}

func (a DeclarationsFileAdapter) WriteRepositories(repos []types.RepositoryRegistration) error {
	doc := repositoriesDocument{Repositories: append([]types.RepositoryRegistration{}, repos...)}
	return a.writeYAML(RepositoriesFileName, doc)
}

func (a DeclarationsFileAdapter) writeYAML(filename string, doc any) error {
	path, err := a.ensurePath(filename)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode " + filename).
			WithCause(err)
	}
	if err := afero.WriteFile(a.Fs, path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write " + filename).
			WithCause(err)
	}
	return nil
}

func (a DeclarationsFileAdapter) ensurePath(filename string) (string, error) {
	if a.Dir == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is empty")
	}
	if err := a.Fs.MkdirAll(a.Dir, 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	return filepath.Join(a.Dir, filename), nil
}

var _ ports.DeclarationOutputPort = DeclarationsFileAdapter{}
