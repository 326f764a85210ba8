package app

import "fmt"

// Version, Commit and BuildTime are injected at build time:
//
//	go build -ldflags "-X github.com/heartmarshall/netscheme-backend/internal/app.Version=1.2.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion formats the build metadata for startup logs and /health.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
