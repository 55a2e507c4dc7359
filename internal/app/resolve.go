package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"fxpath/internal/adapters"
	"fxpath/internal/core"
)

// Resolve computes the declarations for the project and writes them to the
// output directory.
func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}
	project, fromFile, err := s.loadProject(ctx, req.ProjectPath, req.Overrides)
	if err != nil {
		return ResolveResult{}, err
	}
	platform, err := s.resolvePlatform(ctx, project.Platform)
	if err != nil {
		return ResolveResult{}, err
	}

	request := core.NewResolutionRequest(s.Registry, platform)
	request.SetModules(project.Modules...)
	request.SetVersion(project.Version)
	request.SetSDK(project.SDK)
	request.SetConfigurations(project.Configurations...)

	sink := adapters.NewDependencySet()
	repos := adapters.NewFlatDirRepositories()
	resolution, err := request.Resolve(ctx, sink, repos)
	if err != nil {
		return ResolveResult{}, err
	}

	output := s.Outputs(outputDir)
	if err := output.WriteDeclarations(resolution); err != nil {
		return ResolveResult{}, err
	}
	if err := output.WriteRepositories(repos.Registrations()); err != nil {
		return ResolveResult{}, err
	}

	logger := log.Ctx(ctx)
	hints := checkOverrideHints(req.Overrides, fromFile)
	emitHints(logger, hints)
	logger.Debug().
		Str("platform", platform.Classifier).
		Strs("configurations", sink.Configurations()).
		Msg("resolution written")
	return ResolveResult{
		Resolution: resolution,
		OutputDir:  outputDir,
		Hints:      hints,
	}, nil
}
