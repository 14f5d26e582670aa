// Package buildmeta holds build-time version information injected via ldflags.
//
// The version is set at build time using:
//
//	go build -ldflags="-X github.com/mri-tools/geprotocol/internal/buildmeta.Version=v1.0.0"
//
//nolint:gochecknoglobals
package buildmeta

// Version is the semantic version of the build (e.g., "v1.0.0").
var Version = "unknown"
