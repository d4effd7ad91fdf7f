// Package version exposes the build-stamped tool version.
package version

// version is overridden at build time via
// -ldflags "-X github.com/indaco/tauripack/internal/version.version=x.y.z".
var version = "0.0.0-dev"

// GetVersion returns the tool version.
func GetVersion() string {
	return version
}
