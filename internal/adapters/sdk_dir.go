package adapters

import (
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/afero"

	"fxpath/internal/core"
	"fxpath/internal/ports"
)

// SDKDirAdapter reads the lib folder of an unpacked JavaFX SDK.
type SDKDirAdapter struct {
	Fs afero.Fs
}

func NewSDKDirAdapter(fs afero.Fs) SDKDirAdapter {
	return SDKDirAdapter{Fs: fs}
}

// ListJars returns the base names of the regular *.jar files in <sdk>/lib,
// sorted.
func (a SDKDirAdapter) ListJars(sdk string) ([]string, error) {
	if sdk == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("sdk directory is empty")
	}
	lib := core.SDKLibDir(sdk)
	entries, err := afero.ReadDir(a.Fs, lib)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("sdk lib directory not found: " + lib).
			WithCause(err)
	}
	var jars []string
	for _, entry := range entries {
		if !entry.Mode().IsRegular() || !strings.HasSuffix(entry.Name(), ".jar") {
			continue
		}
		jars = append(jars, entry.Name())
	}
	sort.Strings(jars)
	return jars, nil
}

var _ ports.SDKDirPort = SDKDirAdapter{}
