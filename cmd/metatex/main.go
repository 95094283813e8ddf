// Package main provides the metatex CLI entry point.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

// verbose enables debug logging to stderr
var verbose bool

// logger is configured before any subcommand runs; silent unless
// --verbose is given.
var logger zerolog.Logger

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
	os.Exit(ExitSuccess)
}

var rootCmd = &cobra.Command{
	Use:   "metatex",
	Short: "Article metadata to LaTeX converter",
	Long: `metatex reads the YAML metadata of an article submission and
generates the LaTeX macro-definition file consumed by the journal's
typesetting pipeline.

Commands output JSON by default for easy integration with publishing
scripts; use --human for plain text.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(level)
	},
}

func init() {
	// Load .env file if present (for METATEX_INPUT / METATEX_OUTPUT)
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging to stderr")
	rootCmd.Version = Version
}
