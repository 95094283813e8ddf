// Package article builds the typed metadata model of a submission from
// its YAML description.
package article

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rescience/metatex/internal/names"
)

// contactMarker flags the corresponding author inside an affiliation
// code list ("1,2,*").
const contactMarker = "*"

// Article is the parsed metadata of a submission. Constructed once by
// Parse and read-only afterwards.
type Article struct {
	Title        string
	Abstract     string
	Keywords     string
	Type         string
	Domain       string
	Language     string
	Bibliography string

	// Contributors split by role, in document order
	Authors   []Contributor
	Editors   []Contributor
	Reviewers []Contributor

	// Contact is the author marked with "*" in their affiliation list,
	// or nil. When several authors carry the marker the last one wins.
	Contact *Contributor

	Affiliations []Affiliation

	Code Repository // mandatory
	Data Repository // optional, empty when absent

	Review      Review
	Replication Replication

	DateReceived  Date
	DateAccepted  Date
	DatePublished Date

	Journal Journal

	// Article identifiers within the journal
	Number string
	DOI    string
	URL    string

	// The three joined author-list strings
	AuthorNames names.Lists
}

// Parse builds an Article from YAML metadata text.
//
// Optional keys default to empty values. A missing code section returns
// ErrMissingSection; a contributor role outside author/editor/reviewer
// returns ErrUnknownRole. Either aborts construction entirely.
func Parse(data []byte) (*Article, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing metadata: %w", err)
	}
	doc := document(raw)

	a := &Article{
		Title:        doc.str("title"),
		Abstract:     doc.str("abstract"),
		Keywords:     doc.strOrJoin("keywords"),
		Type:         doc.str("type"),
		Domain:       doc.str("domain"),
		Language:     doc.str("language"),
		Bibliography: doc.str("bibliography"),
	}

	dates, _ := doc.section("dates")
	a.DateReceived = NewDate(dates.str("received"))
	a.DateAccepted = NewDate(dates.str("accepted"))
	a.DatePublished = NewDate(dates.str("published"))

	contactIdx := -1
	for _, entry := range doc.entries("authors") {
		codes, marked := parseAffiliationCodes(entry["affiliations"])
		author := NewContributor(RoleAuthor,
			entry.str("name"), entry.str("orcid"), entry.str("email"), codes)
		a.Authors = append(a.Authors, author)
		if marked {
			contactIdx = len(a.Authors) - 1
		}
	}

	for _, entry := range doc.entries("affiliations") {
		a.Affiliations = append(a.Affiliations, Affiliation{
			Code:    entry.str("code"),
			Name:    entry.str("name"),
			Address: entry.str("address"),
		})
	}

	for _, entry := range doc.entries("contributors") {
		c := NewContributor(entry.str("role"),
			entry.str("name"), entry.str("orcid"), "", nil)
		if err := a.addContributor(c); err != nil {
			return nil, err
		}
	}

	code, ok := doc.section("code")
	if !ok {
		return nil, fmt.Errorf("%w: code", ErrMissingSection)
	}
	a.Code = Repository{
		Name: "code",
		URL:  code.str("url"),
		DOI:  code.str("doi"),
		SWH:  code.str("swh"),
	}

	dataRepo, ok := doc.section("data")
	a.Data = Repository{Name: "data"}
	if ok {
		a.Data.URL = dataRepo.str("url")
		a.Data.DOI = dataRepo.str("doi")
	}

	review, _ := doc.section("review")
	a.Review = Review{URL: review.str("url"), DOI: review.str("doi")}

	replication, _ := doc.section("replication")
	a.Replication = Replication{
		Cite: replication.str("cite"),
		Bib:  replication.str("bib"),
		URL:  replication.str("url"),
		DOI:  replication.str("doi"),
	}

	art, _ := doc.section("article")
	a.Number = art.str("number")
	a.DOI = art.str("doi")
	a.URL = art.str("url")

	journal, _ := doc.section("journal")
	a.Journal = Journal{
		Name:   journal.str("name"),
		ISSN:   journal.str("issn"),
		Volume: journal.str("volume"),
		Issue:  journal.str("issue"),
	}

	if contactIdx >= 0 {
		a.Contact = &a.Authors[contactIdx]
	}
	a.AuthorNames = buildAuthorNames(a.Authors)

	return a, nil
}

// addContributor routes a contributor to the list for its role.
func (a *Article) addContributor(c Contributor) error {
	switch c.Role {
	case RoleAuthor:
		a.Authors = append(a.Authors, c)
	case RoleEditor:
		a.Editors = append(a.Editors, c)
	case RoleReviewer:
		a.Reviewers = append(a.Reviewers, c)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRole, c.Role)
	}
	return nil
}

// parseAffiliationCodes splits a comma-separated affiliation value into
// codes and reports whether the contact marker was present. The marker
// is stripped once. A single-character value is taken as one bare code
// with no marker detection, so a lone "*" stays a code and marks nobody.
func parseAffiliationCodes(v any) (codes []string, marked bool) {
	s := scalarString(v)
	if s == "" {
		return nil, false
	}
	if len(s) <= 1 {
		return []string{s}, false
	}
	for _, code := range strings.Split(s, ",") {
		if code == contactMarker && !marked {
			marked = true
			continue
		}
		codes = append(codes, code)
	}
	return codes, marked
}

// buildAuthorNames joins the three per-author renderings, all in
// document order.
func buildAuthorNames(authors []Contributor) names.Lists {
	full := make([]string, len(authors))
	abbrv := make([]string, len(authors))
	short := make([]string, len(authors))
	for i, author := range authors {
		full[i] = author.Name
		abbrv[i] = author.AbbrvName
		short[i] = author.LastName
	}
	return names.BuildLists(full, abbrv, short)
}
