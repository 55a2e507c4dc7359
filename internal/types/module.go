package types

// Module is a JavaFX platform module. Dependents is fully flattened: it
// already holds every module reachable from this one.
type Module struct {
	Name       string
	Dependents []string
}

const (
	ModuleNamePrefix   = "javafx."
	ArtifactNamePrefix = "javafx-"
	ArtifactGroupID    = "org.openjfx"
)

// ModuleName returns the canonical dotted name, e.g. "javafx.base".
func (m Module) ModuleName() string {
	return ModuleNamePrefix + m.Name
}

// ArtifactID returns the published artifact id, e.g. "javafx-base".
func (m Module) ArtifactID() string {
	return ArtifactNamePrefix + m.Name
}
