package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fxpath/internal/app"
)

type rewriteOptions struct {
	Project       string
	Launch        string
	Out           string
	Separator     string
	PinVersion    bool
	RequireFiles  bool
	StripBareJars bool
	Overrides     overrideOptions
}

func newRewriteCommand() *cobra.Command {
	opts := rewriteOptions{}
	cmd := &cobra.Command{
		Use:   "rewrite",
		Short: "Move JavaFX jars of a launch spec from the classpath to the module path",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRewrite(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Project, "project", "", "Project file path")
	cmd.Flags().StringVar(&opts.Launch, "launch", "", "Launch spec file")
	cmd.Flags().StringVar(&opts.Out, "out", "", "Write the rewritten launch spec here")
	cmd.Flags().StringVar(&opts.Separator, "separator", string(os.PathListSeparator), "Module path separator")
	cmd.Flags().BoolVar(&opts.PinVersion, "pin-version", false, "Only treat jars of the project version as JavaFX jars")
	cmd.Flags().BoolVar(&opts.RequireFiles, "require-files", false, "Ignore classpath entries that are not existing files")
	cmd.Flags().BoolVar(&opts.StripBareJars, "strip-bare-jars", false, "Drop classifier-less JavaFX jars when delegating")
	addOverrideFlags(cmd, &opts.Overrides, false)

	_ = viper.BindPFlag("project", cmd.Flags().Lookup("project"))
	_ = viper.BindPFlag("launch", cmd.Flags().Lookup("launch"))
	_ = viper.BindPFlag("out", cmd.Flags().Lookup("out"))
	_ = viper.BindPFlag("separator", cmd.Flags().Lookup("separator"))
	_ = viper.BindPFlag("pin_version", cmd.Flags().Lookup("pin-version"))
	_ = viper.BindPFlag("require_files", cmd.Flags().Lookup("require-files"))
	_ = viper.BindPFlag("strip_bare_jars", cmd.Flags().Lookup("strip-bare-jars"))
	return cmd
}

func runRewrite(ctx context.Context, cmd *cobra.Command, opts rewriteOptions) error {
	service := newAppService()
	result, err := service.Rewrite(ctx, app.RewriteRequest{
		ProjectPath:   resolveString(cmd, opts.Project, "project", "project"),
		Overrides:     resolveOverrides(cmd, opts.Overrides),
		LaunchPath:    resolveString(cmd, opts.Launch, "launch", "launch"),
		OutputPath:    resolveString(cmd, opts.Out, "out", "out"),
		Separator:     resolveString(cmd, opts.Separator, "separator", "separator"),
		PinVersion:    resolveBool(cmd, opts.PinVersion, "pin_version", "pin-version"),
		RequireFiles:  resolveBool(cmd, opts.RequireFiles, "require_files", "require-files"),
		StripBareJars: resolveBool(cmd, opts.StripBareJars, "strip_bare_jars", "strip-bare-jars"),
	})
	if err != nil {
		return err
	}
	r := newReport(cmd.OutOrStdout(), "rewrite: "+orDefault(result.Target, "launch"))
	r.field("outcome", string(result.Outcome))
	r.field("modules", joinOrDash(result.AddedModules, ","))
	r.list("classpath", result.Launch.Classpath)
	r.list("jvm args", result.Launch.JvmArgs)
	if result.Launch.ModuleOptions != nil {
		r.list("add modules", result.Launch.ModuleOptions.AddModules)
	}
	r.warnings(result.Warnings)
	if result.OutputPath != "" {
		r.success("written: " + result.OutputPath)
	}
	return nil
}
