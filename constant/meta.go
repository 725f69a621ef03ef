// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// ObsidianLink is the canonical application identifier used for filesystem paths and CLI branding.
	ObsidianLink = "obsidian-link"

	// EnvPrefix is the prefix for environment variable bindings of configuration keys.
	EnvPrefix = "OBSIDIAN_LINK"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent identifies outbound requests to the metadata and release APIs.
	UserAgent = ObsidianLink + "/" + Version
)

// Build metadata, injected at link time via -ldflags.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
