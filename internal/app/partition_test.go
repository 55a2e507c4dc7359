package app

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionClasspath(t *testing.T) {
	service, _ := newTestService(t, "linux-x86_64", nil)

	result, err := service.Partition(t.Context(), PartitionRequest{
		Classpath: []string{"javafx-base-17-linux.jar", "app.jar", "javafx-graphics-17-linux.jar"},
	})
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"javafx-base-17-linux.jar", "javafx-graphics-17-linux.jar"}, result.ModulePath); diff != "" {
		t.Fatalf("unexpected module path (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"app.jar"}, result.Classpath); diff != "" {
		t.Fatalf("unexpected classpath (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"17"}, result.Versions.Versions)
}

func TestPartitionFromLaunchFile(t *testing.T) {
	service, _ := newTestService(t, "linux-x86_64", map[string]string{
		"run.yaml": "classpath: [lib/javafx-base-17-win.jar, lib/javafx-base.jar, lib/app.jar]\njvm_args: []\n",
	})

	result, err := service.Partition(t.Context(), PartitionRequest{LaunchPath: "run.yaml", Platform: "windows"})
	require.NoError(t, err)
	assert.Equal(t, "win", result.Platform.Classifier)
	if diff := cmp.Diff([]string{"lib/javafx-base-17-win.jar", "lib/app.jar"}, result.Filtered); diff != "" {
		t.Fatalf("unexpected filtered view (-want +got):\n%s", diff)
	}
	assert.Len(t, result.ModulePath, 2)
}

func TestPartitionRequiresInput(t *testing.T) {
	service, _ := newTestService(t, "linux-x86_64", nil)

	_, err := service.Partition(t.Context(), PartitionRequest{})
	if diff := cmp.Diff(errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err)); diff != "" {
		t.Fatalf("unexpected error code (-want +got):\n%s", diff)
	}
	_, err = service.Partition(t.Context(), PartitionRequest{Classpath: []string{"a.jar"}, Version: "1 7"})
	if diff := cmp.Diff(errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err)); diff != "" {
		t.Fatalf("unexpected error code (-want +got):\n%s", diff)
	}
}
