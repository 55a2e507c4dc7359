package policies

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"fxpath/internal/core"
	"fxpath/internal/types"
)

type regularFiles map[string]bool

func (r regularFiles) IsRegularFile(path string) bool {
	return r[path]
}

func linuxPolicy(version string) ClasspathPolicy {
	return NewClasspathPolicy(core.NewModuleRegistry().Modules(), core.PlatformLinux, version)
}

func TestClasspathPolicyPartition(t *testing.T) {
	tests := []struct {
		name       string
		policy     ClasspathPolicy
		files      []string
		modulePath []string
		classpath  []string
	}{
		{
			name:       "platform jars are split out in input order",
			policy:     linuxPolicy(""),
			files:      []string{"javafx-base-17-linux.jar", "app.jar", "javafx-graphics-17-linux.jar"},
			modulePath: []string{"javafx-base-17-linux.jar", "javafx-graphics-17-linux.jar"},
			classpath:  []string{"app.jar"},
		},
		{
			name:       "matching uses the base name",
			policy:     linuxPolicy(""),
			files:      []string{"/cache/org.openjfx/javafx-controls-21.0.1-linux.jar", "/work/build/classes"},
			modulePath: []string{"/cache/org.openjfx/javafx-controls-21.0.1-linux.jar"},
			classpath:  []string{"/work/build/classes"},
		},
		{
			name:       "other platform classifiers stay on the classpath",
			policy:     linuxPolicy(""),
			files:      []string{"javafx-base-17-win.jar", "javafx-base-17-linux-aarch64.jar", "javafx-base-17-mac.jar"},
			modulePath: nil,
			classpath:  []string{"javafx-base-17-win.jar", "javafx-base-17-linux-aarch64.jar", "javafx-base-17-mac.jar"},
		},
		{
			name:       "bare and sdk jars are module path entries",
			policy:     linuxPolicy(""),
			files:      []string{"javafx-base.jar", "sdk/lib/javafx.graphics.jar", "javafx.unknown.jar"},
			modulePath: []string{"javafx-base.jar", "sdk/lib/javafx.graphics.jar"},
			classpath:  []string{"javafx.unknown.jar"},
		},
		{
			name:       "pinned version only matches that version",
			policy:     linuxPolicy("17"),
			files:      []string{"javafx-base-17-linux.jar", "javafx-graphics-17.0.6-linux.jar"},
			modulePath: []string{"javafx-base-17-linux.jar"},
			classpath:  []string{"javafx-graphics-17.0.6-linux.jar"},
		},
		{
			name:      "lookalike names do not match",
			policy:    linuxPolicy(""),
			files:     []string{"javafx-basement-17-linux.jar", "my-javafx-base-17-linux.jar", "javafx-base-17-linux.zip"},
			classpath: []string{"javafx-basement-17-linux.jar", "my-javafx-base-17-linux.jar", "javafx-base-17-linux.zip"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			partition := tt.policy.Partition(tt.files)
			if diff := cmp.Diff(tt.modulePath, partition.ModulePath); diff != "" {
				t.Fatalf("unexpected module path (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.classpath, partition.Classpath); diff != "" {
				t.Fatalf("unexpected classpath (-want +got):\n%s", diff)
			}
			assert.Len(t, partition.Entries, len(tt.files))
		})
	}
}

func TestClasspathPolicyClassify(t *testing.T) {
	policy := linuxPolicy("")

	got := policy.Classify("javafx-media-17.0.6-linux.jar")
	want := types.Classification{
		File:    "javafx-media-17.0.6-linux.jar",
		Module:  "javafx.media",
		Kind:    types.MatchKindPlatform,
		Version: "17.0.6",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected classification (-want +got):\n%s", diff)
	}

	bare := policy.Classify("javafx-swing.jar")
	assert.Equal(t, types.MatchKindBare, bare.Kind)
	assert.Equal(t, "javafx.swing", bare.Module)
}

func TestClasspathPolicyFirstModuleWins(t *testing.T) {
	modules := []types.Module{
		{Name: "base"},
		{Name: "base-extra"},
	}
	policy := NewClasspathPolicy(modules, core.PlatformLinux, "")

	got := policy.Classify("javafx-base-extra-17-linux.jar")
	assert.Equal(t, "javafx.base", got.Module)
	assert.Equal(t, "extra-17", got.Version)
}

func TestClasspathPolicyFilterEmptyJars(t *testing.T) {
	partition := linuxPolicy("").Partition([]string{
		"javafx-base.jar",
		"javafx-base-17-linux.jar",
		"app.jar",
		"sdk/lib/javafx.controls.jar",
		"javafx-controls-17-linux.jar",
	})

	want := []string{"javafx-base-17-linux.jar", "app.jar", "javafx-controls-17-linux.jar"}
	if diff := cmp.Diff(want, partition.FilterEmptyJars()); diff != "" {
		t.Fatalf("unexpected filtered classpath (-want +got):\n%s", diff)
	}
}

func TestClasspathPolicyRequiresRegularFiles(t *testing.T) {
	policy := linuxPolicy("").WithFileInfo(regularFiles{
		"lib/javafx-base-17-linux.jar": true,
	})

	partition := policy.Partition([]string{"lib/javafx-base-17-linux.jar", "lib/javafx-graphics-17-linux.jar"})
	if diff := cmp.Diff([]string{"lib/javafx-base-17-linux.jar"}, partition.ModulePath); diff != "" {
		t.Fatalf("unexpected module path (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"lib/javafx-graphics-17-linux.jar"}, partition.Classpath); diff != "" {
		t.Fatalf("unexpected classpath (-want +got):\n%s", diff)
	}
}
