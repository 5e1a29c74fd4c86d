package version

import "fmt"

var (
	// Version is the semantic version, set via ldflags on release builds
	Version = "0.1.0-dev"
	// GitCommit is the git sha this binary was built from
	GitCommit = "unknown"
	// FullVersion combines both for the --version output
	FullVersion = fmt.Sprintf("%s (%s)", Version, GitCommit)
)
