package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"fxpath/internal/types"
)

func TestApplyProjectDefaults(t *testing.T) {
	got := ApplyProjectDefaults(types.Project{Modules: []string{"javafx.base"}})
	want := types.Project{
		Modules:        []string{"javafx.base"},
		Version:        "17",
		Configurations: []string{"implementation"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected defaults (-want +got):\n%s", diff)
	}

	sdk := ApplyProjectDefaults(types.Project{SDK: "/opt/javafx-sdk"})
	require.Empty(t, sdk.Version)
}

func TestProjectValidatorValidate(t *testing.T) {
	validator := NewProjectValidator()

	tests := []struct {
		name    string
		project types.Project
		check   func(t *testing.T, err error)
	}{
		{
			name:    "valid defaults",
			project: types.Project{Name: "hello", Modules: []string{"javafx.controls"}},
		},
		{
			name:    "valid local sdk without version",
			project: types.Project{Modules: []string{"javafx.fxml"}, SDK: "/opt/javafx-sdk-17"},
		},
		{
			name: "valid platform override",
			project: types.Project{
				Modules:  []string{"javafx.base"},
				Platform: "osx-aarch64",
				Version:  "21.0.1",
			},
		},
		{
			name:    "unknown module",
			project: types.Project{Modules: []string{"javafx.base", "javafx.nope"}},
			check: func(t *testing.T, err error) {
				var invalid *InvalidModuleNamesError
				require.ErrorAs(t, err, &invalid)
			},
		},
		{
			name:    "bad platform",
			project: types.Project{Modules: []string{"javafx.base"}, Platform: "plan9"},
			check: func(t *testing.T, err error) {
				var invalid *InvalidPlatformStringError
				require.ErrorAs(t, err, &invalid)
			},
		},
		{
			name:    "version with whitespace",
			project: types.Project{Modules: []string{"javafx.base"}, Version: "17 .0"},
			check:   wantCode(errbuilder.CodeInvalidArgument),
		},
		{
			name: "duplicate configuration",
			project: types.Project{
				Modules:        []string{"javafx.base"},
				Configurations: []string{"implementation", "implementation"},
			},
			check: wantCode(errbuilder.CodeInvalidArgument),
		},
		{
			name: "blank configuration",
			project: types.Project{
				Modules:        []string{"javafx.base"},
				Configurations: []string{" "},
			},
			check: wantCode(errbuilder.CodeInvalidArgument),
		},
		{
			name: "empty configuration",
			project: types.Project{
				Modules:        []string{"javafx.base"},
				Configurations: []string{""},
			},
			check: wantCode(errbuilder.CodeInvalidArgument),
		},
		{
			name: "empty configuration after a valid one",
			project: types.Project{
				Modules:        []string{"javafx.base"},
				Configurations: []string{"implementation", ""},
			},
			check: wantCode(errbuilder.CodeInvalidArgument),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Validate(t.Context(), tt.project)
			if tt.check == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func wantCode(code errbuilder.ErrCode) func(t *testing.T, err error) {
	return func(t *testing.T, err error) {
		t.Helper()
		if diff := cmp.Diff(code, errbuilder.CodeOf(err)); diff != "" {
			t.Fatalf("unexpected error code (-want +got):\n%s", diff)
		}
	}
}
