// Package version reports the library's own build version.
//
// Version and GitCommit default to what the Go module system recorded, and
// can be overridden at build time via -ldflags:
//
//	go build -ldflags "-X github.com/Areteos/arete-utilities/version.Version=1.2.0"
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// These variables may be set at build time using -ldflags.
	Version   = ""
	GitCommit = ""
)

// Info holds the resolved version details.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
	Modified  bool   `json:"modified"`
}

// Get resolves version information, preferring ldflags overrides and falling
// back to whatever the module system embedded in the binary.
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
	}

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		if info.Version == "" {
			info.Version = "unknown"
		}
		return info
	}

	info.GoVersion = buildInfo.GoVersion
	if info.Version == "" {
		info.Version = buildInfo.Main.Version
	}
	if info.Version == "" || info.Version == "(devel)" {
		info.Version = "devel"
	}

	for _, setting := range buildInfo.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.GitCommit == "" {
				info.GitCommit = setting.Value
				if len(info.GitCommit) > 7 {
					info.GitCommit = info.GitCommit[:7]
				}
			}
		case "vcs.modified":
			info.Modified = setting.Value == "true"
		}
	}
	return info
}

// String renders the info as a single human-readable token, such as
// "1.2.0-abc1234" or "devel-abc1234-modified".
func (i Info) String() string {
	s := i.Version
	if i.GitCommit != "" {
		s = fmt.Sprintf("%s-%s", s, i.GitCommit)
	}
	if i.Modified {
		s += "-modified"
	}
	return s
}
