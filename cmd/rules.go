// Package cmd implements the command-line interface for obsidian-link.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/obsidian-link/obsidian-link/color"
	"github.com/obsidian-link/obsidian-link/icon"
	"github.com/obsidian-link/obsidian-link/link"
	"github.com/obsidian-link/obsidian-link/resolution"
	"github.com/obsidian-link/obsidian-link/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func init() {
	rootCmd.AddCommand(rulesCmd)
}

// rulesCmd provides a parent command for inspecting the link classification table.
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect the configured link classification rules",
}

func init() {
	rulesCmd.AddCommand(rulesListCmd)

	rulesListCmd.Flags().BoolP("json", "j", false, "Format the rule table as a JSON array")
	rulesListCmd.Flags().BoolP("yaml", "y", false, "Format the rule table as a YAML document")
	rulesListCmd.MarkFlagsMutuallyExclusive("json", "yaml")
	rulesListCmd.SetOut(os.Stdout)
}

// rulesListCmd displays the ordered rule table with resolved embed sizes.
var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display the ordered rule table with resolved embed sizes",
	Run: func(cmd *cobra.Command, args []string) {
		rules, err := link.Rules()
		handleErr(err)

		switch {
		case lo.Must(cmd.Flags().GetBool("json")):
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(rules))
		case lo.Must(cmd.Flags().GetBool("yaml")):
			encoder := yaml.NewEncoder(cmd.OutOrStdout())
			handleErr(encoder.Encode(rules))
			handleErr(encoder.Close())
		default:
			tables := resolution.Defaults()

			tw := table.NewWriter()
			tw.SetStyle(table.StyleRounded)
			tw.AppendHeader(table.Row{"#", "Name", "Pattern", "Resolution", "Size", "Folder"})

			for i, rule := range rules {
				size := "-"
				if rule.Name != link.NameDefault {
					lookup := tables.Standard
					if rule.Name == link.NameShorts {
						lookup = tables.Vertical
					}
					if s, err := lookup.Lookup(rule.Resolution); err == nil {
						size = fmt.Sprintf("%dx%d", s.Width, s.Height)
					}
				}

				tw.AppendRow(table.Row{i + 1, rule.Name, rule.Pattern, rule.Resolution, size, rule.Folder})
			}

			cmd.Println(tw.Render())
		}
	},
}

func init() {
	rulesCmd.AddCommand(rulesMatchCmd)

	rulesMatchCmd.Flags().BoolP("json", "j", false, "Format the classification as a JSON object")
	rulesMatchCmd.SetOut(os.Stdout)
}

// rulesMatchCmd dry-runs classification for a URL without fetching metadata or writing a note.
var rulesMatchCmd = &cobra.Command{
	Use:     "match <url>",
	Short:   "Show how a URL would classify, without writing a note",
	Example: "  obsidian-link rules match https://youtu.be/dQw4w9WgXcQ",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rules, err := link.Rules()
		handleErr(err)

		classified, err := link.Classify(args[0], rules, resolution.Defaults())
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(classified))
			return
		}

		cmd.Printf("%s %s\n", icon.Get(icon.Link), style.Bold(classified.URL))
		cmd.Printf("%s %s\n", style.Faint("kind:"), style.Fg(color.Yellow)(string(classified.Kind)))
		cmd.Printf("%s %s\n", style.Faint("folder:"), classified.Folder)
		cmd.Printf("%s %dx%d\n", style.Faint("size:"), classified.Width, classified.Height)
	},
}
