// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/muesli/reflow/wordwrap"
	"github.com/obsidian-link/obsidian-link/color"
	"github.com/obsidian-link/obsidian-link/constant"
	"github.com/obsidian-link/obsidian-link/key"
	"github.com/obsidian-link/obsidian-link/style"
	"github.com/obsidian-link/obsidian-link/util"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := constant.EnvPrefix + "_"
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// typeName returns the string representation of the field's underlying value type.
func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	case []int:
		return "[]int"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	// register validates and adds a new configuration field to the global registry.
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		f := Field{Key: k, Value: v, Description: desc}
		Default[k] = f
		EnvExposed = append(EnvExposed, k)
	}

	register(key.Vault, "", "Path to the vault root directory.\nNotes are written to <vault>/<folder>/<title>.md.\nA leading ~ expands to the home directory")
	register(key.NoteTimezone, "America/Los_Angeles", "IANA time zone used to stamp the date, day and time frontmatter fields")
	register(key.NoteCanonicalURL, false, "Rewrite the url frontmatter field of video notes to the canonical\nwatch URL for the extracted video id.\nWhen disabled the captured URL is written unchanged")
	register(key.NoteOpenOnCreate, false, "Open the note after it is written")
	register(key.NoteOpenWith, "", "Application used to open created notes.\nEmpty means the system default handler")
	register(key.FrontmatterDate, "", "Pin the date frontmatter field to a static value.\nEmpty means the current date in note.timezone")
	register(key.FrontmatterDay, "", "Pin the day frontmatter field to a static value.\nEmpty means the current weekday in note.timezone")
	register(key.FrontmatterTime, "", "Pin the time frontmatter field to a static value.\nEmpty means the current time in note.timezone")
	register(key.FrontmatterTags, []string{}, "Pin the tags frontmatter block to a static list.\nEmpty means tags from video metadata")
	register(key.FrontmatterURL, "", "Pin the url frontmatter field to a static value.\nEmpty means the captured URL")
	register(key.FrontmatterAuthor, "", "Pin the author frontmatter field to a static value.\nEmpty means the channel name from video metadata")
	register(key.YouTubeAPIKey, "", "YouTube Data API v3 key used to fetch video metadata.\nFalls back to the system keyring, see \"obsidian-link auth\"")
	register(key.YouTubeCacheMetadata, true, "Cache fetched video metadata on disk to save API quota")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Enable automatic version check")
}

// descriptionWidth bounds the wrap width for field descriptions so they stay
// readable on narrow and very wide terminals alike.
func descriptionWidth() int {
	width, _, err := util.TerminalSize()
	if err != nil || width <= 0 {
		width = 80
	}
	return util.Max(40, util.Min(width, 100))
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    func(s string) string { return style.Faint(wordwrap.String(s, descriptionWidth())) },
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
