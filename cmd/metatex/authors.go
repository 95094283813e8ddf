package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rescience/metatex/internal/config"
)

var authorsInput string

func init() {
	authorsCmd.Flags().StringVarP(&authorsInput, "input", "i", config.DefaultInput, "Input YAML metadata file")
	rootCmd.AddCommand(authorsCmd)
}

var authorsCmd = &cobra.Command{
	Use:   "authors",
	Short: "Print the joined author-name lists",
	Long: `Print the three joined author-name lists derived from the metadata:
full names, abbreviated names and family names.

Examples:
  metatex authors
  metatex authors --human -i metadata.yaml`,
	RunE: runAuthors,
}

// AuthorsResponse carries the three joined author-name strings.
type AuthorsResponse struct {
	Full  string `json:"full"`
	Abbrv string `json:"abbrv"`
	Short string `json:"short"`
}

func runAuthors(cmd *cobra.Command, args []string) error {
	input := resolvePath(cmd, "input", authorsInput, config.EnvInput)
	art := loadArticle(input)

	if humanOutput {
		fmt.Println(art.AuthorNames.Full)
		fmt.Println(art.AuthorNames.Abbrv)
		fmt.Println(art.AuthorNames.Short)
		return nil
	}
	return outputJSON(AuthorsResponse{
		Full:  art.AuthorNames.Full,
		Abbrv: art.AuthorNames.Abbrv,
		Short: art.AuthorNames.Short,
	})
}
