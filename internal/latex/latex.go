// Package latex renders parsed article metadata as a LaTeX
// macro-definition file for the journal's typesetting pipeline.
package latex

import (
	"fmt"
	"strings"

	"github.com/rescience/metatex/internal/article"
)

// Generate returns the macro file content for an article. One \def per
// metadata field, then one \author line per author and one \affil line
// per affiliation. source names the metadata file in the header comment.
func Generate(source string, a *article.Article) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%% DO NOT EDIT - automatically generated from %s\n\n", source)

	def(&b, "codeURL", a.Code.URL)
	def(&b, "codeDOI", a.Code.DOI)
	def(&b, "codeSWH", a.Code.SWH)
	def(&b, "dataURL", a.Data.URL)
	def(&b, "dataDOI", a.Data.DOI)

	editor := contributorAt(a.Editors, 0)
	def(&b, "editorNAME", editor.Name)
	def(&b, "editorORCID", editor.ORCID)
	reviewerI := contributorAt(a.Reviewers, 0)
	def(&b, "reviewerINAME", reviewerI.Name)
	def(&b, "reviewerIORCID", reviewerI.ORCID)
	reviewerII := contributorAt(a.Reviewers, 1)
	def(&b, "reviewerIINAME", reviewerII.Name)
	def(&b, "reviewerIIORCID", reviewerII.ORCID)

	def(&b, "dateRECEIVED", a.DateReceived.String())
	def(&b, "dateACCEPTED", a.DateAccepted.String())
	def(&b, "datePUBLISHED", a.DatePublished.String())

	def(&b, "articleTITLE", a.Title)
	def(&b, "articleTYPE", a.Type)
	def(&b, "articleDOMAIN", a.Domain)
	def(&b, "articleBIBLIOGRAPHY", a.Bibliography)
	def(&b, "articleYEAR", fmt.Sprintf("%d", a.DatePublished.Year()))

	def(&b, "reviewURL", a.Review.URL)
	def(&b, "articleABSTRACT", escapeAmpersand(a.Abstract))

	def(&b, "replicationCITE", a.Replication.Cite)
	def(&b, "replicationBIB", a.Replication.Bib)
	def(&b, "replicationURL", a.Replication.URL)
	def(&b, "replicationDOI", a.Replication.DOI)

	contact := article.Contributor{}
	if a.Contact != nil {
		contact = *a.Contact
	}
	def(&b, "contactNAME", contact.Name)
	def(&b, "contactEMAIL", contact.Email)

	def(&b, "articleKEYWORDS", a.Keywords)

	def(&b, "journalNAME", a.Journal.Name)
	def(&b, "journalVOLUME", a.Journal.Volume)
	def(&b, "journalISSUE", a.Journal.Issue)
	def(&b, "articleNUMBER", a.Number)
	def(&b, "articleDOI", a.DOI)

	def(&b, "authorsFULL", a.AuthorNames.Full)
	def(&b, "authorsABBRV", a.AuthorNames.Abbrv)
	def(&b, "authorsSHORT", a.AuthorNames.Short)

	b.WriteString("\\title{\\articleTITLE}\n")
	b.WriteString("\\date{}\n")

	for _, author := range a.Authors {
		opts := strings.Join(author.Affiliations, ",")
		if author.ORCID != "" {
			opts += fmt.Sprintf(",\\orcid{%s}", author.ORCID)
		}
		fmt.Fprintf(&b, "\\author[%s]{%s}\n", opts, author.Name)
	}

	for _, affil := range a.Affiliations {
		if affil.Address != "" {
			fmt.Fprintf(&b, "\\affil[%s]{%s, %s}\n", affil.Code, affil.Name, affil.Address)
		} else {
			fmt.Fprintf(&b, "\\affil[%s]{%s}\n", affil.Code, affil.Name)
		}
	}

	return b.String()
}

// def writes a single \def line.
func def(b *strings.Builder, macro, value string) {
	fmt.Fprintf(b, "\\def \\%s{%s}\n", macro, value)
}

// contributorAt returns the i-th contributor, or a zero value when the
// list is shorter. Keeps macro emission total for submissions that are
// still missing an editor or reviewer.
func contributorAt(list []article.Contributor, i int) article.Contributor {
	if i < len(list) {
		return list[i]
	}
	return article.Contributor{}
}

// escapeAmpersand escapes the one character that commonly appears in
// abstracts and breaks TeX.
func escapeAmpersand(s string) string {
	return strings.ReplaceAll(s, "&", `\&`)
}
