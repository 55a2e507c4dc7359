package ports

import "fxpath/internal/types"

type ProjectSpecPort interface {
	LoadProject(path string) (types.Project, error)
}

// SDKDirPort lists the jars of a local SDK.
type SDKDirPort interface {
	ListJars(sdk string) ([]string, error)
}
