package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"fxpath/internal/adapters"
	"fxpath/internal/core"
	"fxpath/internal/policies"
	"fxpath/internal/types"
)

// Rewrite applies the project's modules to a launch spec file. The rewritten
// spec is written to OutputPath when one is given.
func (s Service) Rewrite(ctx context.Context, req RewriteRequest) (RewriteResult, error) {
	launchPath := strings.TrimSpace(req.LaunchPath)
	if launchPath == "" {
		return RewriteResult{}, &core.MissingLaunchTargetError{}
	}
	project, _, err := s.loadProject(ctx, req.ProjectPath, req.Overrides)
	if err != nil {
		return RewriteResult{}, err
	}
	platform, err := s.resolvePlatform(ctx, project.Platform)
	if err != nil {
		return RewriteResult{}, err
	}
	launch, err := s.LaunchSpecs.ReadLaunch(launchPath)
	if err != nil {
		if errbuilder.CodeOf(err) == errbuilder.CodeNotFound {
			return RewriteResult{}, &core.MissingLaunchTargetError{Target: launchPath}
		}
		return RewriteResult{}, err
	}

	policy := s.classpathPolicy(platform, pinned(req.PinVersion, project.Version), req.RequireFiles)
	rewriter := core.NewInvocationRewriter(s.Registry, policy)
	if req.Separator != "" {
		rewriter.Options.Separator = req.Separator
	}
	rewriter.Options.StripBareJars = req.StripBareJars || project.SDK != ""

	target := &core.LaunchTarget{
		Name:        launch.Target,
		Spec:        types.LaunchSpec{Classpath: launch.Classpath, ExtraArgs: launch.JvmArgs},
		NamedModule: launch.NamedModule,
	}
	options := adapters.ModuleOptionsFromFile(launch.ModuleOptions)
	if options != nil {
		target.ModuleAware = options
	}

	rewritten, err := rewriter.Rewrite(ctx, target, project.Modules)
	if err != nil {
		return RewriteResult{}, err
	}

	out := types.LaunchSpecFile{
		Target:      launch.Target,
		NamedModule: launch.NamedModule,
		Classpath:   rewritten.Spec.Classpath,
		JvmArgs:     rewritten.Spec.ExtraArgs,
	}
	if options != nil {
		out.ModuleOptions = options.File()
	}
	result := RewriteResult{
		Target:       launch.Target,
		Outcome:      rewritten.Outcome,
		Launch:       out,
		AddedModules: rewritten.AddedModules,
		Versions:     core.InspectVersions(policy.Partition(launch.Classpath)),
	}
	if result.Versions.Mixed {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"module path mixes JavaFX versions %s",
			strings.Join(result.Versions.Versions, ", "),
		))
	}

	if outputPath := strings.TrimSpace(req.OutputPath); outputPath != "" {
		if err := s.LaunchSpecs.WriteLaunch(outputPath, out); err != nil {
			return RewriteResult{}, err
		}
		result.OutputPath = outputPath
	}

	logger := log.Ctx(ctx)
	for _, warning := range result.Warnings {
		logger.Warn().Msg(warning)
	}
	logger.Debug().
		Str("target", launch.Target).
		Str("outcome", string(rewritten.Outcome)).
		Msg("launch spec processed")
	return result, nil
}

func (s Service) classpathPolicy(platform types.Platform, version string, requireFiles bool) policies.ClasspathPolicy {
	policy := policies.NewClasspathPolicy(s.Registry.Modules(), platform, version)
	if requireFiles {
		policy = policy.WithFileInfo(s.FileInfo)
	}
	return policy
}

func pinned(pin bool, version string) string {
	if !pin {
		return ""
	}
	return version
}
