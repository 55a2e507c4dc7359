package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
)

func newPlatformsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "platforms",
		Short: "List supported JavaFX platforms and the detected host",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlatforms(cmd.Context(), cmd)
		},
	}
}

func runPlatforms(ctx context.Context, cmd *cobra.Command) error {
	result := newAppService().ListPlatforms(ctx)
	r := newReport(cmd.OutOrStdout(), "platforms")
	r.field("host", result.HostClassifier)
	if result.Detected != nil {
		r.field("detected", result.Detected.Classifier)
	} else {
		r.warnings([]string{result.DetectError})
	}
	rows := make([]string, 0, len(result.Platforms))
	for _, platform := range result.Platforms {
		rows = append(rows, platform.Classifier+" ("+string(platform.OSFamily)+"/"+string(platform.Arch)+") probes: "+strings.Join(platform.ProbeIDs, ", "))
	}
	r.list("supported", rows)
	return nil
}
