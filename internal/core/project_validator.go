package core

import (
	"context"
	"fmt"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"fxpath/internal/types"
)

type ProjectValidator struct {
	Registry  ModuleRegistry
	Platforms PlatformResolver
}

func NewProjectValidator() ProjectValidator {
	return ProjectValidator{
		Registry:  NewModuleRegistry(),
		Platforms: NewPlatformResolver(),
	}
}

// ApplyProjectDefaults fills the version and configuration list. A project
// pointing at a local SDK keeps an empty version since the SDK dictates it.
func ApplyProjectDefaults(project types.Project) types.Project {
	project.Modules = append([]string(nil), project.Modules...)
	project.Configurations = append([]string(nil), project.Configurations...)
	if strings.TrimSpace(project.Version) == "" && project.SDK == "" {
		project.Version = types.DefaultVersion
	}
	if len(project.Configurations) == 0 {
		project.Configurations = []string{types.DefaultConfiguration}
	}
	return project
}

// Validate checks a project after defaults have been applied. Module name
// errors are returned unwrapped so callers can match them.
func (v ProjectValidator) Validate(ctx context.Context, project types.Project) error {
	project = ApplyProjectDefaults(project)
	seen := map[string]struct{}{}
	for _, conf := range project.Configurations {
		if strings.TrimSpace(conf) == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("configuration names must not be empty")
		}
		if _, ok := seen[conf]; ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("configuration %s listed more than once", conf))
		}
		seen[conf] = struct{}{}
	}
	assert.NotEmpty(ctx, project.Configurations[0], "default configuration must be set")

	if err := v.Registry.Validate(project.Modules); err != nil {
		return err
	}
	if project.Platform != "" {
		if _, err := v.Platforms.FromUserString(project.Platform); err != nil {
			return err
		}
	}
	if project.SDK == "" || project.Version != "" {
		if err := ValidateVersion(project.Version); err != nil {
			return err
		}
	}
	if project.SDK != "" && strings.TrimSpace(project.SDK) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("sdk must not be blank")
	}
	log.Ctx(ctx).Debug().
		Str("project", project.Name).
		Strs("modules", project.Modules).
		Msg("project validated")
	return nil
}
