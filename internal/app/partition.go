package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"fxpath/internal/core"
)

// Partition classifies a classpath taken either from a launch spec file or
// from the request.
func (s Service) Partition(ctx context.Context, req PartitionRequest) (PartitionResult, error) {
	classpath := append([]string(nil), req.Classpath...)
	if path := strings.TrimSpace(req.LaunchPath); path != "" {
		launch, err := s.LaunchSpecs.ReadLaunch(path)
		if err != nil {
			return PartitionResult{}, err
		}
		classpath = append(classpath, launch.Classpath...)
	}
	if len(classpath) == 0 {
		return PartitionResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("a launch spec file or a classpath is required")
	}
	version := strings.TrimSpace(req.Version)
	if version != "" {
		if err := core.ValidateVersion(version); err != nil {
			return PartitionResult{}, err
		}
	}
	platform, err := s.resolvePlatform(ctx, req.Platform)
	if err != nil {
		return PartitionResult{}, err
	}

	partition := s.classpathPolicy(platform, version, req.RequireFiles).Partition(classpath)
	log.Ctx(ctx).Debug().
		Int("module_path", len(partition.ModulePath)).
		Int("classpath", len(partition.Classpath)).
		Msg("classpath partitioned")
	return PartitionResult{
		Platform:   platform,
		Entries:    partition.Entries,
		ModulePath: partition.ModulePath,
		Classpath:  partition.Classpath,
		Filtered:   partition.FilterEmptyJars(),
		Versions:   core.InspectVersions(partition),
	}, nil
}
