// Package bininfo holds build metadata injected with -ldflags -X at link time.
package bininfo

var (
	// Version is the SemVer version of the binary, with the git commit appended after a plus sign when known.
	Version = "v0.0.0"

	// BuildTime is the RFC3339 time at which the binary was built.
	BuildTime = "1970-01-01T00:00:00Z"
)
