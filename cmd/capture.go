// Package cmd implements the command-line interface for obsidian-link.
package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/obsidian-link/obsidian-link/auth"
	"github.com/obsidian-link/obsidian-link/capture"
	"github.com/obsidian-link/obsidian-link/constant"
	"github.com/obsidian-link/obsidian-link/filesystem"
	"github.com/obsidian-link/obsidian-link/key"
	"github.com/obsidian-link/obsidian-link/link"
	"github.com/obsidian-link/obsidian-link/note"
	"github.com/obsidian-link/obsidian-link/resolution"
	"github.com/obsidian-link/obsidian-link/youtube"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(captureCmd)

	captureCmd.Flags().StringP("url", "u", "", "The URL to capture")
	captureCmd.Flags().StringP("title", "t", "", "Note title for web links, video titles come from metadata")
	captureCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	captureCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")
	captureCmd.Flags().Bool("open", false, "Open the created note")
	lo.Must0(viper.BindPFlag(key.NoteOpenOnCreate, captureCmd.Flags().Lookup("open")))
}

// captureCmd executes the URL-to-note pipeline.
var captureCmd = &cobra.Command{
	Use:   "capture [url]",
	Short: "Capture a URL into the vault as a markdown note",
	Long: `Classify the URL against the configured rule table, fetch video metadata
when the matching rule is a video family, and write the rendered note into
the vault folder the rule names.`,
	Example: "  obsidian-link capture https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	Args:    cobra.MaximumNArgs(1),
	PreRun: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 && lo.Must(cmd.Flags().GetString("url")) == "" {
			handleErr(errors.New("url is required, pass it as an argument or with --url"))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		url := lo.Must(cmd.Flags().GetString("url"))
		if len(args) > 0 {
			url = args[0]
		}

		output := lo.Must(cmd.Flags().GetString("output"))
		var writer io.Writer
		if output != "" {
			f, err := filesystem.API().Create(output)
			handleErr(err)
			writer = f
		} else {
			writer = os.Stdout
		}

		handleErr(executeCapture(cmd.Context(), captureParams{
			URL:   url,
			Title: lo.Must(cmd.Flags().GetString("title")),
			Json:  lo.Must(cmd.Flags().GetBool("json")),
			Out:   writer,
		}))
	},
}

// captureParams carries the per-invocation inputs of a capture run.
type captureParams struct {
	URL   string
	Title string
	Json  bool
	Out   io.Writer
}

// executeCapture assembles the pipeline options from configuration and runs it.
func executeCapture(ctx context.Context, params captureParams) error {
	rules, err := link.Rules()
	if err != nil {
		return err
	}

	vault := viper.GetString(key.Vault)
	if vault == "" {
		return fmt.Errorf("vault is not set, run \"%s config set -k %s -v <path>\"", constant.ObsidianLink, key.Vault)
	}

	provider, err := metadataProvider(ctx)
	if err != nil {
		return err
	}

	options := &capture.Options{
		URL:          params.URL,
		Title:        params.Title,
		Rules:        rules,
		Tables:       resolution.Defaults(),
		Provider:     provider,
		Vault:        vault,
		Overrides:    note.OverridesFromConfig(),
		Timezone:     viper.GetString(key.NoteTimezone),
		CanonicalURL: viper.GetBool(key.NoteCanonicalURL),
		Open:         viper.GetBool(key.NoteOpenOnCreate),
		OpenWith:     viper.GetString(key.NoteOpenWith),
		Json:         params.Json,
		Out:          params.Out,
	}

	if err := capture.Run(ctx, options); err != nil {
		if errors.Is(err, capture.ErrNoProvider) {
			return fmt.Errorf("%w, set %s or run \"%s auth store\"", err, key.YouTubeAPIKey, constant.ObsidianLink)
		}
		return err
	}

	return nil
}

// metadataProvider builds the YouTube client when an API key is available,
// preferring configuration and environment over the system keyring. Without
// a key it returns no provider, which only video captures will miss.
func metadataProvider(ctx context.Context) (capture.Provider, error) {
	apiKey := viper.GetString(key.YouTubeAPIKey)
	if apiKey == "" {
		if stored, err := auth.APIKey(); err == nil {
			apiKey = stored
		}
	}

	if apiKey == "" {
		return nil, nil
	}

	return youtube.NewClient(ctx, apiKey)
}

func init() {
	captureCmd.AddCommand(captureSchemaCmd)
}

// captureSchemaCmd generates the JSON schema for structured capture output.
var captureSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema for structured capture output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "video", "output":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		schema := reflector.Reflect(&capture.Output{})
		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
