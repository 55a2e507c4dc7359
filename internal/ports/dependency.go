package ports

import "fxpath/internal/types"

// DependencySinkPort receives the declarations for one configuration.
type DependencySinkPort interface {
	Declare(configuration string, decls []types.Declaration) error
}

// RepositoryPort manages named flat-directory artifact sources.
type RepositoryPort interface {
	ReplaceFlatDir(name string, dir string) error
	Remove(name string) error
}
