package app

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"fxpath/internal/types"
)

// overrideHint pairs a flag name with the project file key it shadows.
type overrideHint struct {
	FlagName   string
	ProjectKey string
}

// checkOverrideHints returns hints for flags that repeat a value already
// present in the project file.
func checkOverrideHints(overrides ProjectOverrides, project types.Project) []string {
	checks := []struct {
		hint     overrideHint
		provided bool
		same     bool
	}{
		{
			hint:     overrideHint{"--module", "modules"},
			provided: len(overrides.Modules) > 0,
			same:     slices.Equal(overrides.Modules, project.Modules),
		},
		{
			hint:     overrideHint{"--version", "version"},
			provided: strings.TrimSpace(overrides.Version) != "",
			same:     strings.TrimSpace(overrides.Version) == project.Version,
		},
		{
			hint:     overrideHint{"--platform", "platform"},
			provided: strings.TrimSpace(overrides.Platform) != "",
			same:     strings.EqualFold(strings.TrimSpace(overrides.Platform), project.Platform),
		},
		{
			hint:     overrideHint{"--sdk", "sdk"},
			provided: strings.TrimSpace(overrides.SDK) != "",
			same:     strings.TrimSpace(overrides.SDK) == project.SDK,
		},
		{
			hint:     overrideHint{"--configuration", "configurations"},
			provided: len(overrides.Configurations) > 0,
			same:     slices.Equal(overrides.Configurations, project.Configurations),
		},
	}

	var hints []string
	for _, c := range checks {
		if c.provided && c.same {
			hints = append(hints, fmt.Sprintf(
				"hint: %s repeats the project file (%s); you can omit the flag",
				c.hint.FlagName, c.hint.ProjectKey,
			))
		}
	}
	return hints
}

func emitHints(logger *zerolog.Logger, hints []string) {
	for _, h := range hints {
		logger.Info().Msg(h)
	}
}
