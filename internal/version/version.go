// Package version reports the build metadata stamped into the binary.
package version

import (
	"runtime"
	"runtime/debug"
)

// Overridden with -ldflags at release time. A plain `go build` keeps
// the defaults and Get falls back to the module's VCS build info.
var (
	version = "dev"
	commit  = ""
	date    = ""
)

// Info describes one pantry binary.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	Date      string `json:"date,omitempty"`
	GoVersion string `json:"go"`
	Platform  string `json:"platform"`
}

// Get assembles the Info for the running binary.
func Get() Info {
	info := Info{
		Version:   version,
		Commit:    commit,
		Date:      date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if info.Commit == "" {
		if bi, ok := debug.ReadBuildInfo(); ok {
			for _, s := range bi.Settings {
				switch s.Key {
				case "vcs.revision":
					info.Commit = s.Value
				case "vcs.time":
					if info.Date == "" {
						info.Date = s.Value
					}
				}
			}
		}
	}
	return info
}

// String renders the one-line form printed by `pantry version`.
func (i Info) String() string {
	s := "pantry " + i.Version
	if c := i.shortCommit(); c != "" {
		s += " (" + c + ")"
	}
	if i.Date != "" {
		s += " built " + i.Date
	}
	return s + " " + i.GoVersion + " " + i.Platform
}

// Short is just the version number, for logs and user agents.
func (i Info) Short() string {
	return i.Version
}

func (i Info) shortCommit() string {
	if len(i.Commit) > 8 {
		return i.Commit[:8]
	}
	return i.Commit
}
