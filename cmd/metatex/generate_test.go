package main

import (
	"strings"
	"testing"

	"github.com/rescience/metatex/internal/article"
)

func TestGenerateMetadataNoAuthors(t *testing.T) {
	doc := `
title: "Re: An Unclaimed Replication"
code:
  - url: https://github.com/example/rep
`
	art, err := article.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	_, err = generateMetadata("metadata.yaml", art)
	if err == nil {
		t.Fatal("generateMetadata() succeeded with zero authors")
	}
	if !strings.Contains(err.Error(), "no author found") {
		t.Errorf("error = %q, want it to say no author found", err)
	}
	if !strings.Contains(err.Error(), "metadata.yaml") {
		t.Errorf("error = %q, want it to name the input file", err)
	}
}

func TestGenerateMetadata(t *testing.T) {
	doc := `
title: "Re: Weighted Voronoi Stippling"
authors:
  - name: Nicolas P. Rougier
    affiliations: 1,*
affiliations:
  - code: 1
    name: INRIA
code:
  - url: https://github.com/rougier/stippling-rep
`
	art, err := article.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	content, err := generateMetadata("metadata.yaml", art)
	if err != nil {
		t.Fatalf("generateMetadata() error: %v", err)
	}
	for _, line := range []string{
		"% DO NOT EDIT - automatically generated from metadata.yaml",
		`\def \codeURL{https://github.com/rougier/stippling-rep}`,
		`\author[1]{Nicolas P. Rougier}`,
		`\affil[1]{INRIA}`,
	} {
		if !strings.Contains(content, line+"\n") {
			t.Errorf("output missing line %q", line)
		}
	}
}
