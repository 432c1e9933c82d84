// Package buildinfo holds the version stamped into the gatexray binary.
//
//	go build -ldflags "-X github.com/matzehuels/gatexray/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/gatexray/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/gatexray/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import (
	"fmt"
	"strings"
)

// Set via ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info is the build stamp as reported by /healthz.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"built"`
}

// Get returns the current build stamp.
func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}

// CacheScope is the cache key prefix for this build. Renderer changes ship
// with new releases, so each release reads only its own cached renders.
// Development builds share one "dev:" scope.
func CacheScope() string {
	v := strings.TrimPrefix(Version, "v")
	if v == "" || v == "dev" {
		return "dev:"
	}
	return "v" + v + ":"
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (%s, built %s)\n", Version, shortCommit(), Date)
}

func shortCommit() string {
	if len(Commit) > 7 {
		return Commit[:7]
	}
	return Commit
}
