package adapters

import (
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"fxpath/internal/ports"
	"fxpath/internal/types"
)

type ProjectFileAdapter struct {
	Fs afero.Fs
}

func NewProjectFileAdapter(fs afero.Fs) ProjectFileAdapter {
	return ProjectFileAdapter{Fs: fs}
}

func (a ProjectFileAdapter) LoadProject(path string) (types.Project, error) {
	if path == "" {
		return types.Project{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("project file path is empty")
	}
	data, err := afero.ReadFile(a.Fs, path)
	if err != nil {
		return types.Project{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("project file not found").
			WithCause(err)
	}
	var project types.Project
	if err := yaml.Unmarshal(data, &project); err != nil {
		return types.Project{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse project yaml").
			WithCause(err)
	}
	return project, nil
}

var _ ports.ProjectSpecPort = ProjectFileAdapter{}
