// Package version exposes build version information for appbrowser.
package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Build metadata, overridden via -ldflags at release time.
//
//nolint:gochecknoglobals // Set by the linker.
var (
	version   = "0.1.0-dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// GetVersion returns the raw version string.
func GetVersion() string {
	return version
}

// GetGitCommit returns the commit the binary was built from.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build timestamp.
func GetBuildDate() string {
	return buildDate
}

// Parse returns the build version as a semantic version.
func Parse() (*semver.Version, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return nil, fmt.Errorf("parsing build version %q: %w", version, err)
	}
	return v, nil
}

// IsRelease reports whether the build version is a release (no prerelease suffix).
func IsRelease() bool {
	v, err := Parse()
	if err != nil {
		return false
	}
	return v.Prerelease() == ""
}

// UserAgent returns the User-Agent sent with outbound API requests.
// Unparseable versions are reported as "0.0.0".
func UserAgent() string {
	v, err := Parse()
	if err != nil {
		return "appbrowser/0.0.0"
	}
	return "appbrowser/" + v.String()
}
