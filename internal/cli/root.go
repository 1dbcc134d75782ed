// Package cli provides the Cobra command structure for gospellscan.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gospellscan/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root gospellscan command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "gospellscan",
		Short: "Extract spell-checkable natural text from source code",
		Long: `gospellscan classifies source code into natural-language text and code,
then splits the natural text into spell-checkable words.

It understands C# and C/C++ comments, XML doc comments, string literals
(including verbatim and interpolated forms), Markdown, and plain text.
Identifiers are split at camel-case boundaries, and noise like escape
sequences, format specifiers, URLs, and hex values is filtered out so
that a spell checker only sees words worth checking.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
			// Attach the logger so subcommands and the runner share it.
			cmd.SetContext(logging.WithLogger(cmd.Context(), logging.Default()))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newWordsCommand())
	rootCmd.AddCommand(newScanCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
