// Package version reports the statscmd build version.
package version

import (
	"runtime"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/crazywolf132/fstr"
)

// Version is set at release time with
// -ldflags "-X github.com/crazywolf132/statscmd/internal/version.Version=1.2.3".
var Version string

const devVersion = "0.0.0-dev"

var (
	once     sync.Once
	resolved string
)

// replaced in tests
var readBuildInfo = debug.ReadBuildInfo

// Get returns the version, resolving it on first use.
func Get() string {
	once.Do(func() {
		resolved = resolve()
	})
	return resolved
}

// String is the line printed by `statscmd version`.
func String() string {
	return fstr.F("statscmd {} ({} {}/{})", Get(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// resolve prefers the ldflags version, then the module version recorded by
// `go install`, then the VCS revision of a local build.
func resolve() string {
	if Version != "" {
		return strings.TrimPrefix(Version, "v")
	}

	info, ok := readBuildInfo()
	if !ok || info == nil {
		return devVersion
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return strings.TrimPrefix(v, "v")
	}

	var revision string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if revision == "" {
		return devVersion
	}
	if len(revision) > 7 {
		revision = revision[:7]
	}
	v := devVersion + "+" + revision
	if dirty {
		v += ".dirty"
	}
	return v
}
