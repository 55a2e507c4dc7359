package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"fxpath/internal/types"
)

func notations(decls []types.Declaration) []string {
	out := make([]string, 0, len(decls))
	for _, decl := range decls {
		out = append(out, decl.Notation())
	}
	return out
}

func TestDependencyClosureRemote(t *testing.T) {
	closure := NewDependencyClosure(NewModuleRegistry())

	decls, err := closure.Remote([]string{"javafx.controls"}, "17", PlatformLinux)
	require.NoError(t, err)
	want := []string{
		"org.openjfx:javafx-base:17:linux",
		"org.openjfx:javafx-graphics:17:linux",
		"org.openjfx:javafx-controls:17:linux",
	}
	if diff := cmp.Diff(want, notations(decls)); diff != "" {
		t.Fatalf("unexpected declarations (-want +got):\n%s", diff)
	}
}

func TestDependencyClosureLocal(t *testing.T) {
	closure := NewDependencyClosure(NewModuleRegistry())

	decls, err := closure.Local([]string{"javafx.web"})
	require.NoError(t, err)
	want := []string{
		"javafx.base",
		"javafx.graphics",
		"javafx.controls",
		"javafx.media",
		"javafx.web",
	}
	if diff := cmp.Diff(want, notations(decls)); diff != "" {
		t.Fatalf("unexpected declarations (-want +got):\n%s", diff)
	}
	for _, decl := range decls {
		require.Equal(t, types.DeclarationKindLocal, decl.Kind)
	}
}

func TestDependencyClosureLocalUsesDependentsOfPartialTable(t *testing.T) {
	registry := NewModuleRegistryFrom([]types.Module{
		{Name: "base"},
		{Name: "graphics", Dependents: []string{"base"}},
		{Name: "controls", Dependents: []string{"graphics"}},
	})
	closure := NewDependencyClosure(registry)

	decls, err := closure.Local([]string{"javafx.controls"})
	require.NoError(t, err)
	want := []string{"javafx.base", "javafx.graphics", "javafx.controls"}
	if diff := cmp.Diff(want, notations(decls)); diff != "" {
		t.Fatalf("unexpected declarations (-want +got):\n%s", diff)
	}
}
