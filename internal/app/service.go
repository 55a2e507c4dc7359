package app

import (
	"github.com/spf13/afero"

	"fxpath/internal/adapters"
	"fxpath/internal/core"
	"fxpath/internal/ports"
)

type Service struct {
	ProjectLoader ports.ProjectSpecPort
	LaunchSpecs   ports.LaunchSpecPort
	FileInfo      ports.FileInfoPort
	SDKDir        ports.SDKDirPort
	Host          ports.HostProbePort
	Outputs       func(dir string) ports.DeclarationOutputPort
	Registry      core.ModuleRegistry
	Platforms     core.PlatformResolver
}

func NewService() Service {
	return NewServiceWithFs(afero.NewOsFs())
}

// NewServiceWithFs wires every file adapter to fs.
func NewServiceWithFs(fs afero.Fs) Service {
	return Service{
		ProjectLoader: adapters.NewProjectFileAdapter(fs),
		LaunchSpecs:   adapters.NewLaunchSpecFileAdapter(fs),
		FileInfo:      adapters.NewFileInfoAdapter(fs),
		SDKDir:        adapters.NewSDKDirAdapter(fs),
		Host:          adapters.NewHostOSAdapter(),
		Outputs: func(dir string) ports.DeclarationOutputPort {
			return adapters.NewDeclarationsFileAdapter(fs, dir)
		},
		Registry:  core.NewModuleRegistry(),
		Platforms: core.NewPlatformResolver(),
	}
}
