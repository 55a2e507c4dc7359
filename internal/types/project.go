package types

// Project is the user-facing configuration of a JavaFX build, the input a
// ResolutionRequest is built from.
type Project struct {
	Name           string   `yaml:"name,omitempty"`
	Modules        []string `yaml:"modules"`
	Version        string   `yaml:"version,omitempty"`
	Platform       string   `yaml:"platform,omitempty"`
	SDK            string   `yaml:"sdk,omitempty"`
	Configurations []string `yaml:"configurations,omitempty"`
}

const (
	DefaultVersion       = "17"
	DefaultConfiguration = "implementation"
)
