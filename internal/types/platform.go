package types

// Platform is one of the operating system and architecture combinations
// JavaFX ships native artifacts for.
type Platform struct {
	Name       string
	Classifier string
	OSFamily   OSFamily
	Arch       Arch
	// ProbeIDs are the host detector outputs that select this platform.
	ProbeIDs []string
}

func (p Platform) IsZero() bool {
	return p.Classifier == ""
}
