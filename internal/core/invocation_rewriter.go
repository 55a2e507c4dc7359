package core

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"fxpath/internal/ports"
	"fxpath/internal/types"
)

const (
	ArgModulePath = "--module-path"
	ArgAddModules = "--add-modules"
)

// LaunchTarget is a process about to be started. ModuleAware is nil when no
// module-aware collaborator manages the launch.
type LaunchTarget struct {
	Name        string
	Spec        types.LaunchSpec
	NamedModule bool
	ModuleAware ports.ModuleAwarePort
}

type RewriteOptions struct {
	// Separator joins module path entries. Defaults to the host path list
	// separator.
	Separator string
	// StripBareJars drops metadata-only module jars from the classpath when
	// a collaborator handles the module path.
	StripBareJars bool
}

type InvocationRewriter struct {
	Registry  ModuleRegistry
	Classpath ports.ClasspathPort
	Options   RewriteOptions
}

func NewInvocationRewriter(registry ModuleRegistry, classpath ports.ClasspathPort) InvocationRewriter {
	return InvocationRewriter{
		Registry:  registry,
		Classpath: classpath,
		Options: RewriteOptions{
			Separator: string(os.PathListSeparator),
		},
	}
}

func (r InvocationRewriter) Rewrite(ctx context.Context, target *LaunchTarget, modules []string) (types.RewriteResult, error) {
	if target == nil {
		return types.RewriteResult{}, &MissingLaunchTargetError{}
	}
	if r.Classpath == nil {
		return types.RewriteResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("rewriter requires a classpath policy")
	}
	if err := r.Registry.Validate(modules); err != nil {
		return types.RewriteResult{}, err
	}
	logger := log.Ctx(ctx).With().Str("target", target.Name).Logger()

	if target.NamedModule {
		logger.Debug().Msg("launch target is a named module, nothing to rewrite")
		return types.RewriteResult{
			Outcome: types.RewriteOutcomeNamedModule,
			Spec:    target.Spec.Clone(),
		}, nil
	}

	names := sortedUnique(modules)
	if len(names) == 0 {
		logger.Debug().Msg("no JavaFX modules requested")
		return types.RewriteResult{
			Outcome: types.RewriteOutcomeSkipped,
			Spec:    target.Spec.Clone(),
		}, nil
	}

	if target.ModuleAware != nil {
		logger.Info().Msg("modular JavaFX application found")
		spec := target.Spec.Clone()
		if r.Options.StripBareJars {
			spec.Classpath = r.Classpath.Partition(spec.Classpath).FilterEmptyJars()
		}
		target.ModuleAware.AddModules(names...)
		return types.RewriteResult{
			Outcome:      types.RewriteOutcomeDelegated,
			Spec:         spec,
			AddedModules: names,
		}, nil
	}

	logger.Info().Msg("non-modular JavaFX application found")
	partition := r.Classpath.Partition(target.Spec.Classpath)
	spec := types.LaunchSpec{
		Classpath: append([]string(nil), partition.Classpath...),
		ExtraArgs: append([]string(nil), target.Spec.ExtraArgs...),
	}
	spec.ExtraArgs = append(spec.ExtraArgs,
		ArgModulePath, strings.Join(partition.ModulePath, r.separator()),
		ArgAddModules, strings.Join(names, ","),
	)
	logger.Debug().
		Int("module_path", len(partition.ModulePath)).
		Int("classpath", len(partition.Classpath)).
		Msg("launch rewritten")
	return types.RewriteResult{
		Outcome:      types.RewriteOutcomeRewritten,
		Spec:         spec,
		AddedModules: names,
	}, nil
}

func (r InvocationRewriter) separator() string {
	if r.Options.Separator == "" {
		return string(os.PathListSeparator)
	}
	return r.Options.Separator
}

func sortedUnique(values []string) []string {
	set := map[string]struct{}{}
	for _, value := range values {
		set[value] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for value := range set {
		out = append(out, value)
	}
	sort.Strings(out)
	return out
}
