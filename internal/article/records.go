package article

// Affiliation is an institution a contributor belongs to, referenced by
// code from the contributor's affiliation list.
type Affiliation struct {
	Code    string
	Name    string
	Address string
}

// Repository points at the code or data artifacts of a submission.
type Repository struct {
	Name string // "code" or "data"
	URL  string
	DOI  string
	SWH  string // Software Heritage identifier (code only)
}

// Review holds the public review thread of a submission.
type Review struct {
	URL string
	DOI string
}

// Replication identifies the original article being replicated.
type Replication struct {
	Cite string
	Bib  string
	URL  string
	DOI  string
}

// Journal holds journal placement of the published article.
type Journal struct {
	Name   string
	ISSN   string
	Volume string
	Issue  string
}
