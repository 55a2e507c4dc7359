package app

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

type fixedHost string

func (h fixedHost) Classifier() string {
	return string(h)
}

func newTestService(t *testing.T, host string, files map[string]string) (Service, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
	}
	service := NewServiceWithFs(fs)
	service.Host = fixedHost(host)
	return service, fs
}

const helloProject = `name: hello
modules: [javafx.controls]
version: "17"
`

const runLaunch = `target: run
classpath:
  - libs/javafx-base-17-linux.jar
  - libs/javafx-graphics-17-linux.jar
  - libs/app.jar
jvm_args: [-Xmx64m]
`
