// Package version holds build information injected with -ldflags.
package version

import (
	"fmt"
	"runtime"
)

// Set at build time, e.g. -X github.com/sofmeright/shieldsvg/src/version.Version=1.2.0.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// String returns the version line printed by `shieldsvg version`.
func String() string {
	return fmt.Sprintf("shieldsvg %s (commit %s, built %s, %s)", Version, Commit, BuildDate, runtime.Version())
}
