package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rescience/metatex/internal/article"
	"github.com/rescience/metatex/internal/config"
)

// resolvePath returns the effective path for a file flag: the flag value
// when set explicitly, otherwise the environment override (possibly from
// .env), otherwise the flag's default. ~ is expanded.
func resolvePath(cmd *cobra.Command, flagName, flagValue, envKey string) string {
	path := flagValue
	if !cmd.Flags().Changed(flagName) {
		path = config.FromEnv(envKey, path)
	}
	return config.ExpandPath(path)
}

// loadArticle reads and parses a metadata file, exiting with a coded
// error message on failure.
func loadArticle(path string) *article.Article {
	data, err := os.ReadFile(path)
	if err != nil {
		exitWithError(ExitConfigError, "reading %s: %v", path, err)
	}

	art, err := article.Parse(data)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	logger.Debug().
		Str("input", path).
		Int("authors", len(art.Authors)).
		Int("affiliations", len(art.Affiliations)).
		Msg("parsed metadata")

	return art
}
