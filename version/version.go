// Package version reports the build of the innkeep binary.
package version

import (
	"fmt"
	"runtime"
)

// Stamped by the release build:
//
//	go build -ldflags "-X github.com/teranos/innkeep/version.Version=v0.3.0 \
//	  -X github.com/teranos/innkeep/version.CommitHash=$(git rev-parse HEAD) \
//	  -X github.com/teranos/innkeep/version.BuildTime=$(date -u +%FT%TZ)"
var (
	CommitHash = "dev"
	BuildTime  = "unknown"
	Version    = "dev"
)

// Info is what `innkeep version` prints, and its --json shape
type Info struct {
	CommitHash string `json:"commit_hash"`
	BuildTime  string `json:"build_time"`
	Version    string `json:"version"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

func Get() Info {
	return Info{
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		Version:    Version,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String is the one-line banner, e.g. "innkeep v0.3.0 (commit 0123456, built 2026-10-01)".
// Untagged builds print "dev".
func (i Info) String() string {
	v := i.Version
	if v == "" {
		v = "dev"
	}
	return fmt.Sprintf("innkeep %s (commit %s, built %s)", v, i.Short(), i.BuildTime)
}

// Short is the abbreviated commit hash
func (i Info) Short() string {
	if len(i.CommitHash) >= 7 {
		return i.CommitHash[:7]
	}
	return i.CommitHash
}
