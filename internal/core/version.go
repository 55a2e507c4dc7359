package core

import (
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"fxpath/internal/types"
)

// versionCache memoizes parsed versions while sorting a report. Values that
// do not parse as semver are remembered as invalid and compared as raw
// strings after every parseable version.
type versionCache struct {
	parsed  map[string]*semver.Version
	invalid map[string]struct{}
}

func newVersionCache() *versionCache {
	return &versionCache{
		parsed:  map[string]*semver.Version{},
		invalid: map[string]struct{}{},
	}
}

func (c *versionCache) version(value string) (*semver.Version, bool) {
	if parsed, ok := c.parsed[value]; ok {
		return parsed, true
	}
	if _, ok := c.invalid[value]; ok {
		return nil, false
	}
	parsed, err := semver.NewVersion(value)
	if err != nil {
		c.invalid[value] = struct{}{}
		return nil, false
	}
	c.parsed[value] = parsed
	return parsed, true
}

// compare returns -1, 0, or 1.
func (c *versionCache) compare(a string, b string) int {
	v1, ok1 := c.version(a)
	v2, ok2 := c.version(b)
	switch {
	case ok1 && ok2:
		if cmp := v1.Compare(v2); cmp != 0 {
			return cmp
		}
		return strings.Compare(a, b)
	case ok1:
		return -1
	case ok2:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// InspectVersions collects the distinct versions of the platform jars found
// in a partition, lowest first. Mixed is set when more than one version is on
// the module path, which happens when transitive dependencies pull in a newer
// release than the one requested.
func InspectVersions(partition types.Partition) types.VersionReport {
	seen := map[string]struct{}{}
	var versions []string
	for _, entry := range partition.Entries {
		if entry.Kind != types.MatchKindPlatform || entry.Version == "" {
			continue
		}
		if _, ok := seen[entry.Version]; ok {
			continue
		}
		seen[entry.Version] = struct{}{}
		versions = append(versions, entry.Version)
	}
	cache := newVersionCache()
	sort.SliceStable(versions, func(i, j int) bool {
		return cache.compare(versions[i], versions[j]) < 0
	})
	return types.VersionReport{
		Versions: versions,
		Mixed:    len(versions) > 1,
	}
}

// ValidateVersion rejects versions that cannot appear in a coordinate or a
// file name.
func ValidateVersion(version string) error {
	if version == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("version must be set")
	}
	if strings.ContainsAny(version, " \t\r\n/\\:") {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("version must not contain whitespace, separators or colons: " + version)
	}
	return nil
}

// IsSemanticVersion reports whether version parses as a (possibly partial)
// semantic version such as "17" or "17.0.6".
func IsSemanticVersion(version string) bool {
	_, err := semver.NewVersion(version)
	return err == nil
}
