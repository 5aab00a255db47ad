// Package version exposes build metadata for the jlv binary.
package version

import (
	"runtime"
	"runtime/debug"
)

// Version is the release version, set via ldflags. Empty for source builds.
var Version string

// String assembles a human-readable version line from ldflags metadata and
// whatever the Go toolchain embedded at build time.
func String() string {
	v := Version
	if v == "" {
		v = "devel"
	}

	return v + " (" + revision() + ", " + runtime.Version() + ", " +
		runtime.GOOS + "/" + runtime.GOARCH + ")"
}

func revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	rev := "unknown"
	modified := false

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
			if len(rev) > 12 {
				rev = rev[:12]
			}

		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if modified {
		rev += "-dirty"
	}

	return rev
}
