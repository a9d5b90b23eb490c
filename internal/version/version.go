// Package version holds build metadata, overridable with -ldflags "-X".
package version

var (
	Version   = "1.0.2"
	Commit    = ""
	BuildDate = ""
)
