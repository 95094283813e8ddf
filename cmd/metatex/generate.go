package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rescience/metatex/internal/article"
	"github.com/rescience/metatex/internal/config"
	"github.com/rescience/metatex/internal/latex"
)

var (
	generateInput  string
	generateOutput string
)

func init() {
	generateCmd.Flags().StringVarP(&generateInput, "input", "i", config.DefaultInput, "Input YAML metadata file")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", config.DefaultOutput, "Output LaTeX file")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the LaTeX metadata file from YAML",
	Long: `Generate the LaTeX macro-definition file from a YAML metadata file.

Examples:
  metatex generate
  metatex generate -i metadata.yaml -o article-metadata.tex`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	input := resolvePath(cmd, "input", generateInput, config.EnvInput)
	output := resolvePath(cmd, "output", generateOutput, config.EnvOutput)

	content, err := generateMetadata(input, loadArticle(input))
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	if err := os.WriteFile(output, []byte(content), 0644); err != nil {
		exitWithError(ExitError, "writing %s: %v", output, err)
	}
	logger.Debug().Str("output", output).Int("bytes", len(content)).Msg("wrote metadata file")

	if humanOutput {
		fmt.Printf("wrote %s\n", output)
		return nil
	}
	return outputJSON(StatusResponse{Status: "ok", Path: output})
}

// generateMetadata validates the parsed article and renders the macro
// file content. A submission without authors is a data error.
func generateMetadata(input string, art *article.Article) (string, error) {
	if len(art.Authors) == 0 {
		return "", fmt.Errorf("no author found in %s", input)
	}
	return latex.Generate(input, art), nil
}
