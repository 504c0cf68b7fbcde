// Package version reports the build version.
package version

import "runtime/debug"

// Version is overridden at link time with -ldflags "-X .../version.Version=...".
var Version = "dev"

// String returns the version, falling back to the module version recorded
// in the build info for `go install` builds.
func String() string {
	if Version != "dev" {
		return Version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return Version
}
