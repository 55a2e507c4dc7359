package core

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"fxpath/internal/ports"
	"fxpath/internal/types"
)

const (
	CustomSDKRepositoryName = "customSDKArtifactRepository"
	sdkLibFolder            = "lib"
)

// ResolutionRequest accumulates module, version, platform, SDK and
// configuration settings. Nothing is declared until Resolve, which reads the
// final state once.
type ResolutionRequest struct {
	closure        DependencyClosure
	platforms      PlatformResolver
	modules        []string
	version        string
	platform       types.Platform
	sdk            string
	configurations []string
	seen           map[string]struct{}
	wired          []string
	declared       map[string][]types.Declaration
	resolved       bool
}

func NewResolutionRequest(registry ModuleRegistry, platform types.Platform) *ResolutionRequest {
	req := &ResolutionRequest{
		closure:   NewDependencyClosure(registry),
		platforms: NewPlatformResolver(),
		version:   types.DefaultVersion,
		platform:  platform,
		seen:      map[string]struct{}{},
		declared:  map[string][]types.Declaration{},
	}
	req.SetConfigurations(types.DefaultConfiguration)
	return req
}

func (r *ResolutionRequest) SetModules(names ...string) {
	r.modules = append([]string(nil), names...)
}

func (r *ResolutionRequest) SetVersion(version string) {
	r.version = version
}

func (r *ResolutionRequest) SetPlatform(platform types.Platform) {
	r.platform = platform
}

// SetPlatformString overrides the detected platform with a user spelling.
func (r *ResolutionRequest) SetPlatformString(value string) error {
	platform, err := r.platforms.FromUserString(value)
	if err != nil {
		return err
	}
	r.platform = platform
	return nil
}

// SetSDK switches resolution to a local SDK directory. An empty value goes
// back to remote coordinates.
func (r *ResolutionRequest) SetSDK(dir string) {
	r.sdk = dir
}

func (r *ResolutionRequest) SetConfiguration(name string) {
	r.SetConfigurations(name)
}

// SetConfigurations replaces the target configuration list. Each distinct
// name is wired for declaration the first time it is seen and never again.
func (r *ResolutionRequest) SetConfigurations(names ...string) {
	r.configurations = append([]string(nil), names...)
	for _, name := range names {
		if _, ok := r.seen[name]; ok {
			continue
		}
		r.seen[name] = struct{}{}
		r.wired = append(r.wired, name)
	}
}

func (r *ResolutionRequest) Modules() []string {
	return append([]string(nil), r.modules...)
}

func (r *ResolutionRequest) Version() string {
	return r.version
}

func (r *ResolutionRequest) Platform() types.Platform {
	return r.platform
}

func (r *ResolutionRequest) SDK() string {
	return r.sdk
}

// Configuration returns the first configuration name.
func (r *ResolutionRequest) Configuration() string {
	if len(r.configurations) == 0 {
		return ""
	}
	return r.configurations[0]
}

func (r *ResolutionRequest) Configurations() []string {
	return append([]string(nil), r.configurations...)
}

// Resolve validates the final state and emits declarations for every wired
// configuration still listed. It succeeds at most once. After a failed call
// the request can be resolved again; configurations the sink already
// accepted are not declared a second time.
func (r *ResolutionRequest) Resolve(ctx context.Context, sink ports.DependencySinkPort, repos ports.RepositoryPort) (types.Resolution, error) {
	if r.resolved {
		return types.Resolution{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("resolution request already resolved")
	}
	if sink == nil {
		return types.Resolution{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("resolution requires a dependency sink")
	}
	if err := r.closure.Registry.Validate(r.modules); err != nil {
		return types.Resolution{}, err
	}
	if r.platform.IsZero() {
		return types.Resolution{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("target platform is not set")
	}
	if strings.TrimSpace(r.version) == "" && r.sdk == "" {
		return types.Resolution{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("JavaFX version is required")
	}

	decls, err := r.declarations()
	if err != nil {
		return types.Resolution{}, err
	}

	result := types.Resolution{
		Platform: r.platform.Classifier,
		Version:  r.version,
		Modules:  r.Modules(),
	}
	if repos != nil {
		registration, err := r.applyRepository(repos)
		if err != nil {
			return types.Resolution{}, err
		}
		if registration != nil {
			result.Repositories = append(result.Repositories, *registration)
		}
	}

	for _, conf := range r.wired {
		if !slices.Contains(r.configurations, conf) {
			log.Ctx(ctx).Debug().Str("configuration", conf).Msg("configuration removed, skipping declarations")
			continue
		}
		copied, ok := r.declared[conf]
		if !ok {
			copied = append([]types.Declaration(nil), decls...)
			if err := sink.Declare(conf, copied); err != nil {
				return types.Resolution{}, errbuilder.New().
					WithCode(errbuilder.CodeInternal).
					WithMsg(fmt.Sprintf("failed to declare dependencies for %s", conf)).
					WithCause(err)
			}
			r.declared[conf] = copied
			log.Ctx(ctx).Debug().
				Str("configuration", conf).
				Int("dependencies", len(copied)).
				Msg("dependencies declared")
		}
		result.Configurations = append(result.Configurations, types.ConfigurationDeclarations{
			Configuration: conf,
			Dependencies:  append([]types.Declaration(nil), copied...),
		})
	}
	r.resolved = true
	return result, nil
}

func (r *ResolutionRequest) declarations() ([]types.Declaration, error) {
	if r.sdk != "" {
		return r.closure.Local(r.modules)
	}
	return r.closure.Remote(r.modules, r.version, r.platform)
}

func (r *ResolutionRequest) applyRepository(repos ports.RepositoryPort) (*types.RepositoryRegistration, error) {
	if r.sdk == "" {
		if err := repos.Remove(CustomSDKRepositoryName); err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to remove local SDK repository").
				WithCause(err)
		}
		return nil, nil
	}
	dir := SDKLibDir(r.sdk)
	if err := repos.ReplaceFlatDir(CustomSDKRepositoryName, dir); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to register local SDK repository").
			WithCause(err)
	}
	return &types.RepositoryRegistration{Name: CustomSDKRepositoryName, Dir: dir}, nil
}

// SDKLibDir returns the lib folder of an SDK root.
func SDKLibDir(sdk string) string {
	return filepath.Join(sdk, sdkLibFolder)
}
