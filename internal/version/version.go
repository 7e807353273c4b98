// Package version reports how the kpalette binary was built. Release builds
// set the variables below through ldflags; other builds fall back to the
// module and VCS data the Go toolchain embeds.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

const unknown = "unknown"

// Set with -ldflags "-X github.com/jmylchreest/kpalette/internal/version.<Name>=<value>".
var (
	Version = "dev"
	Commit  = unknown
	Date    = unknown // RFC3339
)

// Info describes a build.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	Modified  bool   `json:"modified,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo returns the build description, preferring ldflags values.
func GetInfo() Info {
	bi, _ := debug.ReadBuildInfo()
	return resolve(bi)
}

func resolve(bi *debug.BuildInfo) Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if bi == nil {
		return info
	}

	// go install module@version records the module version.
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == unknown {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == unknown {
				info.Date = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// String renders info on one line, commit shortened to 8 characters.
func (info Info) String() string {
	if info.Commit == unknown || info.Date == unknown {
		return fmt.Sprintf("kpalette version %s (%s, %s)", info.Version, info.GoVersion, info.Platform)
	}

	commit := info.Commit
	if len(commit) > 8 {
		commit = commit[:8]
	}
	if info.Modified {
		commit += "+dirty"
	}
	return fmt.Sprintf("kpalette version %s (commit: %s, built: %s, %s, %s)",
		info.Version, commit, info.Date, info.GoVersion, info.Platform)
}

// String returns GetInfo().String().
func String() string {
	return GetInfo().String()
}

// Short returns just the version, for cobra's --version.
func Short() string {
	return GetInfo().Version
}
