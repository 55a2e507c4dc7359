package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"fxpath/internal/core"
	"fxpath/internal/types"
)

func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	if strings.TrimSpace(req.ProjectPath) == "" {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("project file path is required")
	}
	project, _, err := s.loadProject(ctx, req.ProjectPath, ProjectOverrides{})
	if err != nil {
		return ValidateResult{}, err
	}
	platform, err := s.resolvePlatform(ctx, project.Platform)
	if err != nil {
		return ValidateResult{}, err
	}
	closure, err := s.Registry.Closure(project.Modules)
	if err != nil {
		return ValidateResult{}, err
	}

	result := ValidateResult{
		ProjectName: project.Name,
		Platform:    platform,
		Version:     project.Version,
		Closure:     core.ModuleNamesOf(closure),
	}
	if project.Version != "" && !core.IsSemanticVersion(project.Version) {
		result.Warnings = append(result.Warnings, fmt.Sprintf("version %s is not a semantic version", project.Version))
	}
	if len(project.Modules) == 0 {
		result.Warnings = append(result.Warnings, "no JavaFX modules requested")
	}
	if project.SDK != "" {
		warnings, err := s.checkSDK(project.SDK, closure)
		if err != nil {
			return ValidateResult{}, err
		}
		result.Warnings = append(result.Warnings, warnings...)
	}
	for _, warning := range result.Warnings {
		log.Ctx(ctx).Warn().Msg(warning)
	}
	return result, nil
}

// checkSDK reports closure modules whose jar is missing from <sdk>/lib.
func (s Service) checkSDK(sdk string, closure []types.Module) ([]string, error) {
	jars, err := s.SDKDir.ListJars(sdk)
	if err != nil {
		return nil, err
	}
	present := map[string]struct{}{}
	for _, jar := range jars {
		present[jar] = struct{}{}
	}
	var warnings []string
	for _, module := range closure {
		name := core.NewArtifactNaming(module, "", types.Platform{}).LocalFileName()
		if _, ok := present[name]; !ok {
			warnings = append(warnings, fmt.Sprintf("%s not found in %s", name, core.SDKLibDir(sdk)))
		}
	}
	return warnings, nil
}
