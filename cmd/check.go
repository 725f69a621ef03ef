// Package cmd implements the command-line interface for obsidian-link.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/obsidian-link/obsidian-link/auth"
	"github.com/obsidian-link/obsidian-link/filesystem"
	"github.com/obsidian-link/obsidian-link/icon"
	"github.com/obsidian-link/obsidian-link/key"
	"github.com/obsidian-link/obsidian-link/link"
	"github.com/obsidian-link/obsidian-link/resolution"
	"github.com/obsidian-link/obsidian-link/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.SetOut(os.Stdout)
}

// healthCheck is a single named configuration probe. A nil error means the
// probe passed; the message explains the failure otherwise.
type healthCheck struct {
	name  string
	probe func() error
}

// healthChecks covers everything a capture needs before it runs: a parsable
// rule table with resolvable embed sizes, a reachable vault, a loadable
// time zone and a metadata credential.
var healthChecks = []healthCheck{
	{"rule table parses and validates", func() error {
		_, err := link.Rules()
		return err
	}},
	{"rule resolutions resolve", func() error {
		rules, err := link.Rules()
		if err != nil {
			return err
		}

		tables := resolution.Defaults()
		for _, rule := range rules {
			if rule.Name == link.NameDefault {
				continue
			}

			table := tables.Standard
			if rule.Name == link.NameShorts {
				table = tables.Vertical
			}

			if _, err := table.Lookup(rule.Resolution); err != nil {
				return fmt.Errorf("rule %q: %w", rule.Name, err)
			}
		}

		return nil
	}},
	{"vault is set and reachable", func() error {
		vault := viper.GetString(key.Vault)
		if vault == "" {
			return fmt.Errorf("%s is not set", key.Vault)
		}

		root, err := util.ExpandHome(vault)
		if err != nil {
			return err
		}

		if _, err := filesystem.API().Stat(root); err != nil {
			return fmt.Errorf("vault %s is not reachable: %w", root, err)
		}

		return nil
	}},
	{"note time zone loads", func() error {
		_, err := time.LoadLocation(viper.GetString(key.NoteTimezone))
		return err
	}},
	{"youtube api key is available", func() error {
		if viper.GetString(key.YouTubeAPIKey) != "" {
			return nil
		}

		if _, err := auth.APIKey(); err == nil {
			return nil
		}

		return fmt.Errorf("no key in %s or the keyring, video captures will fail", key.YouTubeAPIKey)
	}},
}

// checkCmd probes the configuration for problems that would fail a capture.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the configuration is ready for captures",
	Long: `Verify the rule table, vault path, time zone and metadata credential,
reporting every problem a capture would run into.`,
	Run: func(cmd *cobra.Command, args []string) {
		var failed int

		for _, check := range healthChecks {
			if err := check.probe(); err != nil {
				failed++
				cmd.Printf("%s %s\n    %s\n", icon.Get(icon.Fail), check.name, err)
				continue
			}

			cmd.Printf("%s %s\n", icon.Get(icon.Success), check.name)
		}

		if failed > 0 {
			cmd.Printf("\n%s\n", util.Quantify(failed, "check failed", "checks failed"))
			os.Exit(1)
		}
	},
}
