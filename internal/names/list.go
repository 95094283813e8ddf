package names

import "strings"

// Lists holds the three joined renderings of an author sequence.
// Built once by BuildLists and never mutated afterwards.
type Lists struct {
	Full  string // Full names as written
	Abbrv string // Initials + family names
	Short string // Family names only
}

// Join renders an ordered sequence of per-author strings as a single
// list phrase:
//
//	0 names → ""
//	1 name  → "A"
//	2 names → "A and B"
//	3 names → "A, B and C"
//	4+      → "A et al."
//
// Order is preserved as given; callers pass authors in document order.
func Join(list []string) string {
	switch n := len(list); {
	case n == 0:
		return ""
	case n == 1:
		return list[0]
	case n > 3:
		return list[0] + " et al."
	default:
		return strings.Join(list[:n-1], ", ") + " and " + list[n-1]
	}
}

// BuildLists joins three parallel per-author sequences (full, abbreviated
// and family-name renderings of the same authors, in the same order) into
// a Lists value. The same length-dependent grammar branch applies to all
// three.
func BuildLists(full, abbrv, short []string) Lists {
	return Lists{
		Full:  Join(full),
		Abbrv: Join(abbrv),
		Short: Join(short),
	}
}
