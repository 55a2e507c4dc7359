package adapters

import (
	"runtime"

	"fxpath/internal/ports"
)

// HostOSAdapter reports the running host in the classifier form produced by
// the os-maven-plugin style detectors ("linux-x86_64", "osx-aarch_64", ...).
type HostOSAdapter struct {
	GOOS   string
	GOARCH string
}

func NewHostOSAdapter() HostOSAdapter {
	return HostOSAdapter{GOOS: runtime.GOOS, GOARCH: runtime.GOARCH}
}

var detectorOS = map[string]string{
	"linux":   "linux",
	"darwin":  "osx",
	"windows": "windows",
	"freebsd": "freebsd",
}

var detectorArch = map[string]string{
	"amd64":   "x86_64",
	"arm64":   "aarch_64",
	"386":     "x86_32",
	"arm":     "arm_32",
	"ppc64le": "ppcle_64",
	"s390x":   "s390_64",
	"riscv64": "riscv64",
}

// Classifier returns "<os>-<arch>". Unknown values are passed through so the
// platform resolver can report them.
func (a HostOSAdapter) Classifier() string {
	osName, ok := detectorOS[a.GOOS]
	if !ok {
		osName = a.GOOS
	}
	arch, ok := detectorArch[a.GOARCH]
	if !ok {
		arch = a.GOARCH
	}
	return osName + "-" + arch
}

var _ ports.HostProbePort = HostOSAdapter{}
