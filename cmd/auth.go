// Package cmd implements the command-line interface for obsidian-link.
package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/obsidian-link/obsidian-link/auth"
	"github.com/obsidian-link/obsidian-link/icon"
	"github.com/obsidian-link/obsidian-link/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(authCmd)
}

// authCmd is the parent command for keyring-backed credential management.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the YouTube API key stored in the system keyring",
}

func init() {
	authCmd.AddCommand(authStoreCmd)
	authStoreCmd.Flags().StringP("key", "k", "", "The API key to store, prompted interactively when omitted")
}

// authStoreCmd persists the API key to the system keyring.
var authStoreCmd = &cobra.Command{
	Use:   "store",
	Short: "Store the YouTube API key in the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		apiKey := lo.Must(cmd.Flags().GetString("key"))

		if apiKey == "" {
			prompt := survey.Password{
				Message: "YouTube Data API key:",
				Help:    "Create one at https://console.cloud.google.com/apis/credentials",
			}
			handleErr(survey.AskOne(&prompt, &apiKey, survey.WithValidator(survey.Required)))
		}

		handleErr(auth.SetAPIKey(apiKey))
		fmt.Printf("%s API key stored in the system keyring\n", icon.Get(icon.Lock))
	},
}

func init() {
	authCmd.AddCommand(authShowCmd)
}

// authShowCmd prints the stored API key.
var authShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the YouTube API key stored in the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		apiKey, err := auth.APIKey()
		handleErr(err)
		fmt.Println(apiKey)
	},
}

func init() {
	authCmd.AddCommand(authDeleteCmd)
}

// authDeleteCmd removes the API key from the system keyring.
var authDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Remove the YouTube API key from the system keyring",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		confirm := survey.Confirm{
			Message: "Remove the stored API key?",
			Default: false,
		}
		var response bool
		handleErr(survey.AskOne(&confirm, &response))

		if !response {
			fmt.Println(style.Faint("kept the stored API key"))
			return
		}

		handleErr(auth.DeleteAPIKey())
		fmt.Printf("%s API key removed from the system keyring\n", icon.Get(icon.Lock))
	},
}
