package ports

import "fxpath/internal/types"

// ModuleAwarePort is an optional collaborator that composes --module-path
// and --add-modules itself.
type ModuleAwarePort interface {
	AddModules(names ...string)
	Modules() []string
}

type FileInfoPort interface {
	IsRegularFile(path string) bool
}

type LaunchSpecPort interface {
	ReadLaunch(path string) (types.LaunchSpecFile, error)
	WriteLaunch(path string, launch types.LaunchSpecFile) error
}

// ClasspathPort splits a classpath into module-path and classpath entries.
type ClasspathPort interface {
	Partition(files []string) types.Partition
}
