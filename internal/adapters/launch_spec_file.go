package adapters

import (
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"fxpath/internal/ports"
	"fxpath/internal/types"
)

type LaunchSpecFileAdapter struct {
	Fs afero.Fs
}

func NewLaunchSpecFileAdapter(fs afero.Fs) LaunchSpecFileAdapter {
	return LaunchSpecFileAdapter{Fs: fs}
}

func (a LaunchSpecFileAdapter) ReadLaunch(path string) (types.LaunchSpecFile, error) {
	data, err := afero.ReadFile(a.Fs, path)
	if err != nil {
		return types.LaunchSpecFile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("launch spec file not found").
			WithCause(err)
	}
	var launch types.LaunchSpecFile
	if err := yaml.Unmarshal(data, &launch); err != nil {
		return types.LaunchSpecFile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse launch spec yaml").
			WithCause(err)
	}
	return launch, nil
}

func (a LaunchSpecFileAdapter) WriteLaunch(path string, launch types.LaunchSpecFile) error {
	if path == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("launch spec output path is empty")
	}
	if err := a.Fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create launch spec directory").
			WithCause(err)
	}
	data, err := yaml.Marshal(launch)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode launch spec").
			WithCause(err)
	}
	if err := afero.WriteFile(a.Fs, path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write launch spec").
			WithCause(err)
	}
	return nil
}

var _ ports.LaunchSpecPort = LaunchSpecFileAdapter{}
