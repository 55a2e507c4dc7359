package ports

import "fxpath/internal/types"

type DeclarationOutputPort interface {
	WriteDeclarations(resolution types.Resolution) error
	WriteRepositories(repos []types.RepositoryRegistration) error
}
