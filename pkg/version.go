// Package app holds build metadata for RateDB.
package app

var (
	// Version is the application version, set via ldflags at build time.
	Version = "v0.1.0"

	// Build is the build timestamp or commit, set via ldflags at build time.
	Build = "n/a"
)
