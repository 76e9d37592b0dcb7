package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

var (
	// Version is the current version of the application
	Version = "0.2.0"

	// GitCommit is the git commit hash (set during build)
	GitCommit = "unknown"

	// BuildDate is the build date (set during build)
	BuildDate = "unknown"
)

// Info returns formatted version information
func Info() string {
	if GitCommit == "unknown" && BuildDate == "unknown" {
		return fmt.Sprintf("xn version %s", Short())
	}
	return fmt.Sprintf("xn version %s (commit: %s, built: %s)",
		Short(), GitCommit, BuildDate)
}

// Short returns just the version number, normalized when it parses as semver
func Short() string {
	sv, err := semver.NewVersion(Version)
	if err != nil {
		return Version
	}
	return sv.String()
}
