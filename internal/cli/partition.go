package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fxpath/internal/app"
	"fxpath/internal/shared"
)

type partitionOptions struct {
	Launch       string
	Classpath    string
	Separator    string
	Platform     string
	Version      string
	RequireFiles bool
}

func newPartitionCommand() *cobra.Command {
	opts := partitionOptions{}
	cmd := &cobra.Command{
		Use:   "partition",
		Short: "Show which classpath entries belong on the module path",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPartition(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Launch, "launch", "", "Launch spec file")
	cmd.Flags().StringVar(&opts.Classpath, "classpath", "", "Classpath to classify")
	cmd.Flags().StringVar(&opts.Separator, "separator", string(os.PathListSeparator), "Classpath separator")
	cmd.Flags().StringVar(&opts.Platform, "platform", "", "Target platform")
	cmd.Flags().StringVar(&opts.Version, "version", "", "Only match jars of this JavaFX version")
	cmd.Flags().BoolVar(&opts.RequireFiles, "require-files", false, "Ignore classpath entries that are not existing files")

	_ = viper.BindPFlag("launch", cmd.Flags().Lookup("launch"))
	_ = viper.BindPFlag("classpath", cmd.Flags().Lookup("classpath"))
	return cmd
}

func runPartition(ctx context.Context, cmd *cobra.Command, opts partitionOptions) error {
	service := newAppService()
	result, err := service.Partition(ctx, app.PartitionRequest{
		LaunchPath:   resolveString(cmd, opts.Launch, "launch", "launch"),
		Classpath:    splitClasspath(resolveString(cmd, opts.Classpath, "classpath", "classpath"), opts.Separator),
		Platform:     opts.Platform,
		Version:      opts.Version,
		RequireFiles: opts.RequireFiles,
	})
	if err != nil {
		return err
	}
	r := newReport(cmd.OutOrStdout(), "partition: "+result.Platform.Classifier)
	r.list("module path", result.ModulePath)
	r.list("classpath", result.Classpath)
	r.list("without bare jars", result.Filtered)
	r.field("versions", joinOrDash(result.Versions.Versions, ", "))
	if result.Versions.Mixed {
		r.warnings([]string{"module path mixes JavaFX versions"})
	}
	return nil
}

func splitClasspath(value string, separator string) []string {
	if separator == "" {
		separator = string(os.PathListSeparator)
	}
	return shared.SplitList(value, separator)
}
