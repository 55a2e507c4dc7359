package core

import (
	"strings"

	"fxpath/internal/types"
)

var (
	PlatformLinux = types.Platform{
		Name:       "linux",
		Classifier: "linux",
		OSFamily:   types.OSFamilyLinux,
		Arch:       types.ArchX8664,
		ProbeIDs:   []string{"linux-x86_64", "linux"},
	}
	PlatformLinuxAarch64 = types.Platform{
		Name:       "linux-aarch64",
		Classifier: "linux-aarch64",
		OSFamily:   types.OSFamilyLinux,
		Arch:       types.ArchAarch64,
		ProbeIDs:   []string{"linux-aarch_64"},
	}
	PlatformWindows = types.Platform{
		Name:       "windows",
		Classifier: "win",
		OSFamily:   types.OSFamilyWindows,
		Arch:       types.ArchX8664,
		ProbeIDs:   []string{"windows-x86_64", "windows"},
	}
	PlatformMacOS = types.Platform{
		Name:       "macos",
		Classifier: "mac",
		OSFamily:   types.OSFamilyMacOS,
		Arch:       types.ArchX8664,
		ProbeIDs:   []string{"osx-x86_64", "osx"},
	}
	PlatformMacOSAarch64 = types.Platform{
		Name:       "macos-aarch64",
		Classifier: "mac-aarch64",
		OSFamily:   types.OSFamilyMacOS,
		Arch:       types.ArchAarch64,
		ProbeIDs:   []string{"osx-aarch_64"},
	}
)

var defaultPlatforms = []types.Platform{
	PlatformLinux,
	PlatformLinuxAarch64,
	PlatformWindows,
	PlatformMacOS,
	PlatformMacOSAarch64,
}

// platformAliases maps lower-cased user spellings onto a classifier.
var platformAliases = map[string]string{
	"win":           "win",
	"windows":       "win",
	"osx":           "mac",
	"mac":           "mac",
	"macos":         "mac",
	"osx-aarch64":   "mac-aarch64",
	"mac-aarch64":   "mac-aarch64",
	"macos-aarch64": "mac-aarch64",
	"linux":         "linux",
	"linux-aarch64": "linux-aarch64",
}

type PlatformResolver struct {
	platforms []types.Platform
}

func NewPlatformResolver() PlatformResolver {
	return PlatformResolver{platforms: defaultPlatforms}
}

func (r PlatformResolver) Platforms() []types.Platform {
	return append([]types.Platform(nil), r.platforms...)
}

// SupportedProbeIDs lists every probe id in table order.
func (r PlatformResolver) SupportedProbeIDs() []string {
	var ids []string
	for _, platform := range r.platforms {
		ids = append(ids, platform.ProbeIDs...)
	}
	return ids
}

// Detect maps a raw host detector string onto a platform. Matching is exact.
func (r PlatformResolver) Detect(probeID string) (types.Platform, error) {
	for _, platform := range r.platforms {
		for _, id := range platform.ProbeIDs {
			if id == probeID {
				return platform, nil
			}
		}
	}
	return types.Platform{}, &UnsupportedPlatformError{
		ProbeID:   probeID,
		Supported: r.SupportedProbeIDs(),
	}
}

// FromUserString accepts a classifier or one of its aliases, ignoring case.
func (r PlatformResolver) FromUserString(value string) (types.Platform, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	classifier, ok := platformAliases[normalized]
	if !ok {
		classifier = normalized
	}
	for _, platform := range r.platforms {
		if platform.Classifier == classifier {
			return platform, nil
		}
	}
	return types.Platform{}, &InvalidPlatformStringError{Value: value}
}
