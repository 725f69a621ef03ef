package capture

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/obsidian-link/obsidian-link/link"
	"github.com/obsidian-link/obsidian-link/note"
	"github.com/obsidian-link/obsidian-link/resolution"
)

// Options parameterizes a single capture run.
type Options struct {
	// URL is the link to capture.
	URL string
	// Title overrides the note title for web links. Video titles always come
	// from metadata.
	Title string
	// Rules is the ordered classification table.
	Rules []link.Rule
	// Tables are the resolution lookup tables.
	Tables resolution.Tables
	// Provider fetches video metadata. It is consulted only for video and
	// shorts classifications.
	Provider Provider
	// Vault is the vault root path. A leading tilde is expanded.
	Vault string
	// Overrides pin individual frontmatter fields.
	Overrides note.Overrides
	// Timezone names the IANA zone for the date, day and time fields.
	Timezone string
	// CanonicalURL rewrites video note urls to the canonical watch form.
	CanonicalURL bool
	// Open opens the written note with the system handler or OpenWith.
	Open bool
	// OpenWith names the application used when Open is set.
	OpenWith string
	// Json emits the result as a JSON object instead of the bare path.
	Json bool
	// Out receives the result. Defaults to standard output.
	Out io.Writer
}

// Output is the structured result of a capture run.
type Output struct {
	URL     string    `json:"url" jsonschema:"description=The captured URL as supplied."`
	Kind    link.Kind `json:"kind" jsonschema:"description=Classified link family."`
	Folder  string    `json:"folder" jsonschema:"description=Vault folder the note was written into."`
	Width   int       `json:"width" jsonschema:"description=Embed width in pixels. Zero for fallback web links."`
	Height  int       `json:"height" jsonschema:"description=Embed height in pixels. Zero for fallback web links."`
	VideoID string    `json:"videoId,omitempty" jsonschema:"description=Extracted video identifier. Empty for web links."`
	Title   string    `json:"title" jsonschema:"description=Note title before filename sanitization."`
	Path    string    `json:"path" jsonschema:"description=Filesystem path of the written note."`
}

// emit writes the run result: the bare note path by default, the full
// Output object in json mode.
func emit(options *Options, result *Output) error {
	out := options.Out
	if out == nil {
		out = os.Stdout
	}

	if options.Json {
		return json.NewEncoder(out).Encode(result)
	}

	_, err := fmt.Fprintln(out, result.Path)
	return err
}
