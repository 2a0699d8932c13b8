// Package version reports the carboncalc build version.
package version

// Set at build time with -ldflags "-X github.com/rshade/carboncalc/pkg/version.version=...".
//
//nolint:gochecknoglobals // Populated by the linker.
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

// GetVersion returns the release version, or "dev" for local builds.
func GetVersion() string {
	return version
}

// GetCommit returns the git commit the binary was built from.
func GetCommit() string {
	return commit
}

// GetBuildDate returns the build timestamp.
func GetBuildDate() string {
	return buildDate
}

// String returns the version with its commit and build date.
func String() string {
	return version + " (commit " + commit + ", built " + buildDate + ")"
}
