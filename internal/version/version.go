// Package version holds relver's own version, set at build time via
// -ldflags.
package version

var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// GetVersion returns the version string for CLI output.
func GetVersion() string {
	return Version
}
