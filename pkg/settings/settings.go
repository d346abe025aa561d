// Package settings provides build metadata, runtime configuration, and
// context helpers used across the palette CLI and library packages.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "palette"

// VersionInformation is populated at build time via ldflags and holds the
// commit hash, semantic version, and build timestamp of the running binary.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build, including the commit hash,
// build version, and build timestamp.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds configuration settings for a single execution of the palette.
// It covers logging, presentation, the search backend, and the tunables the
// query engine exposes.
type Run struct {
	MinLogLevel int8
	NoColor     bool
	CorpusPath  string // empty means the embedded demo corpus
	DebounceMs  int    // search debounce delay; <=0 selects the default
	Width       int    // forced terminal width, 0 = auto-detect
	Height      int    // forced terminal height, 0 = auto-detect
}

// NewCliParams returns Run settings with CLI defaults.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 0,
		NoColor:     false,
		DebounceMs:  0,
	}
}
