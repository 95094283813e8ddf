package article

import "github.com/rescience/metatex/internal/names"

// Contributor roles accepted by Parse.
const (
	RoleAuthor   = "author"
	RoleEditor   = "editor"
	RoleReviewer = "reviewer"
)

// Contributor is a named person with a role in the submission.
//
// LastName and AbbrvName are derived from Name and recomputed by
// SetName; they are never set independently.
type Contributor struct {
	Role         string
	Name         string
	ORCID        string // Identifier without URL prefix
	Email        string
	Affiliations []string // Affiliation codes, document order

	// Derived from Name
	LastName  string
	AbbrvName string
}

// NewContributor builds a Contributor with its derived name forms.
func NewContributor(role, name, orcid, email string, affiliations []string) Contributor {
	c := Contributor{
		Role:         role,
		ORCID:        orcid,
		Email:        email,
		Affiliations: affiliations,
	}
	c.SetName(name)
	return c
}

// SetName updates the full name and recomputes the derived forms.
func (c *Contributor) SetName(name string) {
	c.Name = name
	c.LastName = names.LastName(name)
	c.AbbrvName = names.AbbreviatedName(name)
}
