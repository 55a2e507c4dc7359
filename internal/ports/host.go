package ports

// HostProbePort reports the host in os-detector classifier form, e.g.
// "linux-x86_64" or "osx-aarch_64".
type HostProbePort interface {
	Classifier() string
}
