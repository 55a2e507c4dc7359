package adapters

import (
	"github.com/ZanzyTHEbar/errbuilder-go"

	"fxpath/internal/ports"
	"fxpath/internal/types"
)

// FlatDirRepositories is an ordered set of named flat-directory artifact
// sources. Replacing an absent name adds it and removing one is a no-op.
type FlatDirRepositories struct {
	entries []types.RepositoryRegistration
}

func NewFlatDirRepositories() *FlatDirRepositories {
	return &FlatDirRepositories{}
}

func (r *FlatDirRepositories) ReplaceFlatDir(name string, dir string) error {
	if name == "" || dir == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("flat directory repository needs a name and a directory")
	}
	_ = r.Remove(name)
	r.entries = append(r.entries, types.RepositoryRegistration{Name: name, Dir: dir})
	return nil
}

func (r *FlatDirRepositories) Remove(name string) error {
	kept := r.entries[:0]
	for _, entry := range r.entries {
		if entry.Name != name {
			kept = append(kept, entry)
		}
	}
	r.entries = kept
	return nil
}

func (r *FlatDirRepositories) Registrations() []types.RepositoryRegistration {
	return append([]types.RepositoryRegistration(nil), r.entries...)
}

var _ ports.RepositoryPort = (*FlatDirRepositories)(nil)
