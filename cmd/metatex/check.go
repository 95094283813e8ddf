package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rescience/metatex/internal/config"
)

var checkInput string

func init() {
	checkCmd.Flags().StringVarP(&checkInput, "input", "i", config.DefaultInput, "Input YAML metadata file")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Parse the metadata file and report what it contains",
	Long: `Parse the metadata file and report its contributor and affiliation
counts. Fails with a data error when the metadata cannot be parsed.

Examples:
  metatex check
  metatex check -i metadata.yaml --human`,
	RunE: runCheck,
}

// CheckResponse summarizes a successfully parsed metadata file.
type CheckResponse struct {
	Status       string `json:"status"`
	Title        string `json:"title"`
	Authors      int    `json:"authors"`
	Editors      int    `json:"editors"`
	Reviewers    int    `json:"reviewers"`
	Affiliations int    `json:"affiliations"`
	Contact      string `json:"contact,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	input := resolvePath(cmd, "input", checkInput, config.EnvInput)
	art := loadArticle(input)

	contact := ""
	if art.Contact != nil {
		contact = art.Contact.Name
	}

	if humanOutput {
		fmt.Printf("title:        %s\n", art.Title)
		fmt.Printf("authors:      %d\n", len(art.Authors))
		fmt.Printf("editors:      %d\n", len(art.Editors))
		fmt.Printf("reviewers:    %d\n", len(art.Reviewers))
		fmt.Printf("affiliations: %d\n", len(art.Affiliations))
		if contact != "" {
			fmt.Printf("contact:      %s\n", contact)
		}
		return nil
	}
	return outputJSON(CheckResponse{
		Status:       "ok",
		Title:        art.Title,
		Authors:      len(art.Authors),
		Editors:      len(art.Editors),
		Reviewers:    len(art.Reviewers),
		Affiliations: len(art.Affiliations),
		Contact:      contact,
	})
}
