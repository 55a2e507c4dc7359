package adapters

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"fxpath/internal/types"
)

func TestModuleOptionsDeduplicates(t *testing.T) {
	options := NewModuleOptions("com.example.app")
	options.AddModules("javafx.base", "javafx.controls")
	options.AddModules("javafx.base")

	want := []string{"com.example.app", "javafx.base", "javafx.controls"}
	if diff := cmp.Diff(want, options.Modules()); diff != "" {
		t.Fatalf("unexpected modules (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(&types.ModuleOptionsFile{AddModules: want}, options.File()); diff != "" {
		t.Fatalf("unexpected file form (-want +got):\n%s", diff)
	}
}

func TestModuleOptionsFromFile(t *testing.T) {
	assert.Nil(t, ModuleOptionsFromFile(nil))

	options := ModuleOptionsFromFile(&types.ModuleOptionsFile{AddModules: []string{"a", "a", "b"}})
	assert.Equal(t, []string{"a", "b"}, options.Modules())
}
