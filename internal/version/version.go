// Package version reports the build identity of the inputshowcase binary.
//
// Release builds stamp the values through ldflags:
//
//	go build -ldflags="-X github.com/muurk/inputshowcase/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/inputshowcase/internal/version.Commit=1a2b3c4"
//
// Local builds fall back to the VCS stamp Go embeds in the binary, then to
// a dev version.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// Version is the release tag, e.g. v0.3.0
	Version = ""
	// Commit is the short git revision
	Commit = ""
)

// shortCommitLen is the number of revision characters shown
const shortCommitLen = 7

// Info is the resolved build identity.
type Info struct {
	Version   string
	Commit    string
	Dirty     bool
	BuiltAt   string
	GoVersion string
	Platform  string
}

var current = resolve(Version, Commit, readSettings())

// readSettings returns the vcs.* build settings, or nil when the binary
// carries no build info.
func readSettings() map[string]string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	settings := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}
	return settings
}

// resolve merges ldflags values with VCS build settings.
func resolve(version, commit string, vcs map[string]string) Info {
	info := Info{
		Version:   version,
		Commit:    commit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		BuiltAt:   vcs["vcs.time"],
		Dirty:     vcs["vcs.modified"] == "true",
	}

	if info.Commit == "" {
		rev := vcs["vcs.revision"]
		if len(rev) > shortCommitLen {
			rev = rev[:shortCommitLen]
		}
		info.Commit = rev
	}
	if info.Commit == "" {
		info.Commit = "unknown"
	}

	if info.Version == "" {
		info.Version = "dev"
		if len(info.BuiltAt) >= len("2006-01-02") {
			// vcs.time is RFC 3339; keep the date only
			d := info.BuiltAt[:len("2006-01-02")]
			info.Version = "dev-" + d[:4] + d[5:7] + d[8:10]
		}
	}
	return info
}

// Get returns the build identity of the running binary.
func Get() Info {
	return current
}

// String is the one-line form: "v0.3.0 (commit: 1a2b3c4)".
func (i Info) String() string {
	commit := i.Commit
	if i.Dirty {
		commit += "-dirty"
	}
	return fmt.Sprintf("%s (commit: %s)", i.Version, commit)
}

// Short returns the version tag alone.
func Short() string {
	return current.Version
}

// Full returns the version with its commit.
func Full() string {
	return current.String()
}
