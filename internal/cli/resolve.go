package cli

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fxpath/internal/adapters"
	"fxpath/internal/app"
)

type overrideOptions struct {
	Modules        []string
	Version        string
	Platform       string
	SDK            string
	Configurations []string
}

type resolveOptions struct {
	Project   string
	OutputDir string
	Overrides overrideOptions
}

func newResolveCommand() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Compute the JavaFX module closure and write dependency declarations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResolve(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Project, "project", "", "Project file path")
	cmd.Flags().StringVar(&opts.OutputDir, "output", "out", "Output directory")
	addOverrideFlags(cmd, &opts.Overrides, true)

	_ = viper.BindPFlag("project", cmd.Flags().Lookup("project"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

func addOverrideFlags(cmd *cobra.Command, opts *overrideOptions, withResolution bool) {
	cmd.Flags().StringSliceVar(&opts.Modules, "module", nil, "JavaFX module names (replaces the project list)")
	cmd.Flags().StringVar(&opts.Version, "version", "", "JavaFX version")
	cmd.Flags().StringVar(&opts.Platform, "platform", "", "Target platform (linux, linux-aarch64, win, mac, mac-aarch64)")
	cmd.Flags().StringVar(&opts.SDK, "sdk", "", "Local JavaFX SDK directory")
	_ = viper.BindPFlag("modules", cmd.Flags().Lookup("module"))
	_ = viper.BindPFlag("version", cmd.Flags().Lookup("version"))
	_ = viper.BindPFlag("platform", cmd.Flags().Lookup("platform"))
	_ = viper.BindPFlag("sdk", cmd.Flags().Lookup("sdk"))
	if withResolution {
		cmd.Flags().StringSliceVar(&opts.Configurations, "configuration", nil, "Configurations to declare dependencies in")
		_ = viper.BindPFlag("configurations", cmd.Flags().Lookup("configuration"))
	}
}

func resolveOverrides(cmd *cobra.Command, opts overrideOptions) app.ProjectOverrides {
	return app.ProjectOverrides{
		Modules:        resolveStrings(cmd, opts.Modules, "modules", "module"),
		Version:        resolveString(cmd, opts.Version, "version", "version"),
		Platform:       resolveString(cmd, opts.Platform, "platform", "platform"),
		SDK:            resolveString(cmd, opts.SDK, "sdk", "sdk"),
		Configurations: resolveStrings(cmd, opts.Configurations, "configurations", "configuration"),
	}
}

func runResolve(ctx context.Context, cmd *cobra.Command, opts resolveOptions) error {
	service := newAppService()
	result, err := service.Resolve(ctx, app.ResolveRequest{
		ProjectPath: resolveString(cmd, opts.Project, "project", "project"),
		OutputDir:   resolveString(cmd, opts.OutputDir, "output", "output"),
		Overrides:   resolveOverrides(cmd, opts.Overrides),
	})
	if err != nil {
		return err
	}
	resolution := result.Resolution
	r := newReport(cmd.OutOrStdout(), "resolved")
	r.field("platform", resolution.Platform)
	r.field("version", resolution.Version)
	for _, conf := range resolution.Configurations {
		var notations []string
		for _, decl := range conf.Dependencies {
			notations = append(notations, decl.Notation())
		}
		r.list(conf.Configuration, notations)
	}
	for _, repo := range resolution.Repositories {
		r.field("repository", repo.Name+" -> "+repo.Dir)
	}
	r.field("written", filepath.Join(result.OutputDir, adapters.DependenciesFileName))
	return nil
}
