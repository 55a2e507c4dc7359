package app

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"fxpath/internal/core"
	"fxpath/internal/types"
)

func notations(decls []types.Declaration) []string {
	var out []string
	for _, decl := range decls {
		out = append(out, decl.Notation())
	}
	return out
}

func TestResolveWritesDeclarations(t *testing.T) {
	service, fs := newTestService(t, "windows-x86_64", map[string]string{
		"project.yaml": helloProject,
	})

	result, err := service.Resolve(t.Context(), ResolveRequest{
		ProjectPath: "project.yaml",
		OutputDir:   "out",
	})
	require.NoError(t, err)

	require.Len(t, result.Resolution.Configurations, 1)
	want := []string{
		"org.openjfx:javafx-base:17:win",
		"org.openjfx:javafx-graphics:17:win",
		"org.openjfx:javafx-controls:17:win",
	}
	if diff := cmp.Diff(want, notations(result.Resolution.Configurations[0].Dependencies)); diff != "" {
		t.Fatalf("unexpected declarations (-want +got):\n%s", diff)
	}

	exists, err := afero.Exists(fs, "out/dependencies.yaml")
	require.NoError(t, err)
	assert.True(t, exists)

	data, err := afero.ReadFile(fs, "out/repositories.yaml")
	require.NoError(t, err)
	var repos struct {
		Repositories []types.RepositoryRegistration `yaml:"repositories"`
	}
	require.NoError(t, yaml.Unmarshal(data, &repos))
	assert.Empty(t, repos.Repositories)
}

func TestResolveOverridesAndHints(t *testing.T) {
	service, _ := newTestService(t, "linux-x86_64", map[string]string{
		"project.yaml": helloProject,
	})

	result, err := service.Resolve(t.Context(), ResolveRequest{
		ProjectPath: "project.yaml",
		OutputDir:   "out",
		Overrides: ProjectOverrides{
			Modules:        []string{"javafx.media"},
			Version:        "17",
			Platform:       "osx",
			Configurations: []string{"implementation", "testImplementation"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "mac", result.Resolution.Platform)
	require.Len(t, result.Resolution.Configurations, 2)
	assert.Equal(t, "testImplementation", result.Resolution.Configurations[1].Configuration)
	want := []string{
		"org.openjfx:javafx-base:17:mac",
		"org.openjfx:javafx-graphics:17:mac",
		"org.openjfx:javafx-media:17:mac",
	}
	if diff := cmp.Diff(want, notations(result.Resolution.Configurations[1].Dependencies)); diff != "" {
		t.Fatalf("unexpected declarations (-want +got):\n%s", diff)
	}
	require.Len(t, result.Hints, 1)
	assert.Contains(t, result.Hints[0], "--version")
}

func TestResolveLocalSDK(t *testing.T) {
	service, _ := newTestService(t, "linux-x86_64", map[string]string{
		"project.yaml": "modules: [javafx.fxml]\nsdk: /opt/javafx-sdk-21/\n",
	})

	result, err := service.Resolve(t.Context(), ResolveRequest{ProjectPath: "project.yaml", OutputDir: "out"})
	require.NoError(t, err)

	want := []string{"javafx.base", "javafx.graphics", "javafx.fxml"}
	if diff := cmp.Diff(want, notations(result.Resolution.Configurations[0].Dependencies)); diff != "" {
		t.Fatalf("unexpected declarations (-want +got):\n%s", diff)
	}
	wantRepos := []types.RepositoryRegistration{
		{Name: core.CustomSDKRepositoryName, Dir: "/opt/javafx-sdk-21/lib"},
	}
	if diff := cmp.Diff(wantRepos, result.Resolution.Repositories); diff != "" {
		t.Fatalf("unexpected repositories (-want +got):\n%s", diff)
	}
}

func TestResolveRequiresOutput(t *testing.T) {
	service, fs := newTestService(t, "linux-x86_64", map[string]string{
		"project.yaml": "modules: [javafx.bogus]\n",
	})

	_, err := service.Resolve(t.Context(), ResolveRequest{ProjectPath: "project.yaml"})
	if diff := cmp.Diff(errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err)); diff != "" {
		t.Fatalf("unexpected error code (-want +got):\n%s", diff)
	}

	_, err = service.Resolve(t.Context(), ResolveRequest{ProjectPath: "project.yaml", OutputDir: "out"})
	var invalid *core.InvalidModuleNamesError
	require.ErrorAs(t, err, &invalid)
	exists, err := afero.DirExists(fs, "out")
	require.NoError(t, err)
	assert.False(t, exists, "nothing is written when validation fails")
}
