package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit and BuildTime are injected at link time:
//
//	go build -ldflags "-X github.com/heartmarshall/mudhakir-backend/internal/app.Version=1.2.0 \
//	  -X github.com/heartmarshall/mudhakir-backend/internal/app.Commit=$(git rev-parse --short HEAD)"
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion returns the version reported in startup logs and /health.
// Without ldflags the commit and time come from the embedded VCS stamp.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if info, ok := debug.ReadBuildInfo(); ok && (commit == "" || built == "") {
		for _, s := range info.Settings {
			switch {
			case s.Key == "vcs.revision" && commit == "":
				commit = s.Value[:min(len(s.Value), 12)]
			case s.Key == "vcs.time" && built == "":
				built = s.Value
			}
		}
	}
	if commit == "" {
		commit = "unknown"
	}
	if built == "" {
		built = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit, built)
}
