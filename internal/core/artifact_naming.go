package core

import (
	"fmt"

	"fxpath/internal/types"
)

// ArtifactNaming derives coordinates and file names for one module at a
// given version and platform.
type ArtifactNaming struct {
	Module   types.Module
	Version  string
	Platform types.Platform
}

func NewArtifactNaming(module types.Module, version string, platform types.Platform) ArtifactNaming {
	return ArtifactNaming{
		Module:   module,
		Version:  version,
		Platform: platform,
	}
}

// RemoteCoordinate is the group:artifact:version:classifier notation.
func (n ArtifactNaming) RemoteCoordinate() string {
	return n.RemoteDeclaration().Notation()
}

func (n ArtifactNaming) RemoteDeclaration() types.Declaration {
	return types.Declaration{
		Kind:       types.DeclarationKindRemote,
		Group:      types.ArtifactGroupID,
		Artifact:   n.Module.ArtifactID(),
		Version:    n.Version,
		Classifier: n.Platform.Classifier,
	}
}

// LocalName is the name-only reference resolved against a local SDK lib
// directory.
func (n ArtifactNaming) LocalName() string {
	return n.Module.ModuleName()
}

func (n ArtifactNaming) LocalDeclaration() types.Declaration {
	return types.Declaration{
		Kind: types.DeclarationKindLocal,
		Name: n.LocalName(),
	}
}

// LocalFileName is the jar shipped in an SDK lib directory, e.g.
// "javafx.base.jar".
func (n ArtifactNaming) LocalFileName() string {
	return n.LocalName() + ".jar"
}

func (n ArtifactNaming) PlatformFileName() string {
	return fmt.Sprintf("%s-%s-%s.jar", n.Module.ArtifactID(), n.Version, n.Platform.Classifier)
}

// ModuleFileName is the classifier-less, metadata-only jar.
func (n ArtifactNaming) ModuleFileName() string {
	return n.Module.ArtifactID() + ".jar"
}
