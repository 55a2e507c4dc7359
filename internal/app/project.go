package app

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"fxpath/internal/core"
	"fxpath/internal/shared"
	"fxpath/internal/types"
)

// loadProject reads the project file when a path is given, applies the
// overrides, fills defaults and validates the result.
func (s Service) loadProject(ctx context.Context, path string, overrides ProjectOverrides) (types.Project, types.Project, error) {
	var fromFile types.Project
	path = strings.TrimSpace(path)
	if path != "" {
		loaded, err := s.ProjectLoader.LoadProject(path)
		if err != nil {
			return types.Project{}, types.Project{}, err
		}
		fromFile = loaded
		log.Ctx(ctx).Debug().Str("path", path).Msg("project loaded")
	}
	project := applyOverrides(fromFile, overrides)
	project = core.ApplyProjectDefaults(project)
	validator := core.ProjectValidator{Registry: s.Registry, Platforms: s.Platforms}
	if err := validator.Validate(ctx, project); err != nil {
		return types.Project{}, types.Project{}, err
	}
	return project, fromFile, nil
}

func applyOverrides(project types.Project, overrides ProjectOverrides) types.Project {
	if modules := shared.CompactStrings(overrides.Modules); len(modules) > 0 {
		project.Modules = modules
	}
	if v := strings.TrimSpace(overrides.Version); v != "" {
		project.Version = v
	}
	if p := strings.TrimSpace(overrides.Platform); p != "" {
		project.Platform = p
	}
	if sdk := strings.TrimSpace(overrides.SDK); sdk != "" {
		project.SDK = sdk
	}
	if configurations := shared.CompactStrings(overrides.Configurations); len(configurations) > 0 {
		project.Configurations = configurations
	}
	return project
}

// resolvePlatform honours an explicit platform string and otherwise detects
// the host.
func (s Service) resolvePlatform(ctx context.Context, value string) (types.Platform, error) {
	if strings.TrimSpace(value) != "" {
		return s.Platforms.FromUserString(value)
	}
	probe := s.Host.Classifier()
	platform, err := s.Platforms.Detect(probe)
	if err != nil {
		return types.Platform{}, err
	}
	log.Ctx(ctx).Debug().Str("probe", probe).Str("platform", platform.Classifier).Msg("host platform detected")
	return platform, nil
}
