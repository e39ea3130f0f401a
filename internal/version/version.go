package version

import (
	"fmt"
	"runtime/debug"
)

// Set at build time via -ldflags "-X bennypowers.dev/tuc/internal/version.Version=..."
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// GetVersion returns the ldflags version, falling back to the module
// version recorded in the binary's build info
func GetVersion() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return "dev"
}

// GetFullVersion returns the version with commit and build time when known
func GetFullVersion() string {
	v := GetVersion()
	if GitCommit != "unknown" {
		commit := GitCommit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		v = fmt.Sprintf("%s (commit: %s)", v, commit)
	}
	if BuildTime != "unknown" {
		v = fmt.Sprintf("%s built %s", v, BuildTime)
	}
	return v
}
