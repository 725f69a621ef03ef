// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 19

// Vault Layout - this key locates the note vault that captures are written into.
const (
	Vault = "vault"
)

// Note Synthesis - these keys govern how captured notes are rendered and post-processed.
const (
	NoteTimezone     = "note.timezone"
	NoteCanonicalURL = "note.canonical_url"
	NoteOpenOnCreate = "note.open_on_create"
	NoteOpenWith     = "note.open_with"
)

// Frontmatter Overrides - these keys pin individual frontmatter fields to static values.
const (
	FrontmatterDate   = "frontmatter.date"
	FrontmatterDay    = "frontmatter.day"
	FrontmatterTime   = "frontmatter.time"
	FrontmatterTags   = "frontmatter.tags"
	FrontmatterURL    = "frontmatter.url"
	FrontmatterAuthor = "frontmatter.author"
)

// Link Classification - this key holds the ordered rule table evaluated against captured URLs.
const (
	Links = "links"
)

// YouTube Data API - these keys manage metadata retrieval for video and shorts captures.
const (
	YouTubeAPIKey        = "youtube.api_key"
	YouTubeCacheMetadata = "youtube.cache_metadata"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern general command-line behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
