// Package cmd implements the command-line interface for obsidian-link.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/obsidian-link/obsidian-link/color"
	"github.com/obsidian-link/obsidian-link/constant"
	"github.com/obsidian-link/obsidian-link/icon"
	"github.com/obsidian-link/obsidian-link/key"
	"github.com/obsidian-link/obsidian-link/log"
	"github.com/obsidian-link/obsidian-link/style"
	"github.com/obsidian-link/obsidian-link/util"
	"github.com/obsidian-link/obsidian-link/version"
	"github.com/obsidian-link/obsidian-link/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")
	rootCmd.Flags().StringP("url", "u", "", "Capture the given URL, shorthand for the capture command")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, square)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Initialize cleanup of localized temporary files on application startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the obsidian-link application.
var rootCmd = &cobra.Command{
	Use:   constant.ObsidianLink,
	Short: "Capture URLs into an Obsidian vault as structured markdown notes",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiPurple).Render("    - Capture URLs into an Obsidian vault as structured markdown notes"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		if url := lo.Must(cmd.Flags().GetString("url")); url != "" {
			handleErr(executeCapture(cmd.Context(), captureParams{URL: url, Out: os.Stdout}))
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
