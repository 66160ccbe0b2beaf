package badge

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// StatusColor maps a status keyword to a badge hex color.
func StatusColor(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "passed", "passing", "success":
		return namedColors["brightgreen"]
	case "warning", "warn":
		return namedColors["yellow"]
	case "critical", "failed", "failing", "error":
		return namedColors["red"]
	case "unknown", "skipped", "inactive":
		return namedColors["lightgrey"]
	default:
		return namedColors["brightgreen"]
	}
}

// VersionColor picks a message color for a version string: orange for
// pre-releases and 0.x, blue for stable releases, light grey when the
// version does not parse.
func VersionColor(version string) string {
	v, err := semver.NewVersion(strings.TrimSpace(version))
	if err != nil {
		return namedColors["lightgrey"]
	}
	if v.Prerelease() != "" || v.Major() == 0 {
		return namedColors["orange"]
	}
	return namedColors["blue"]
}
