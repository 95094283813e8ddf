// Package names derives display forms of contributor names: family name
// extraction, initials abbreviation, and grammatical list joining.
package names

import "strings"

// suffixes are ordinal surname suffixes that belong to the family name
// in space-separated form ("Kenneth E. Schackart III").
var suffixes = map[string]bool{
	"II": true, "III": true, "IV": true, "V": true,
	"VI": true, "VII": true, "VIII": true, "IX": true, "X": true,
}

// LastName extracts the family name from a full name.
//
// Supported formats:
//   - "Rougier, Nicolas P."       → "Rougier" (comma = Last, First)
//   - "Nicolas P. Rougier"        → "Rougier" (space = First Last)
//   - "Kenneth E. Schackart III"  → "Schackart III" (ordinal suffix merged)
//
// In comma form everything before the comma is the family name as
// written, so "Schackart III, Kenneth E." needs no suffix handling.
// Suffix merging applies only to space-separated names.
func LastName(name string) string {
	if name == "" {
		return ""
	}

	if idx := strings.Index(name, ","); idx >= 0 {
		return strings.TrimSpace(name[:idx])
	}

	parts := strings.Split(name, " ")
	last := parts[len(parts)-1]
	if suffixes[last] && len(parts) >= 2 {
		last = strings.Join(parts[len(parts)-2:], " ")
	}
	return last
}

// AbbreviatedName reduces given names to initials and appends the family
// name: "Rougier, Nicolas P." → "N.P. Rougier". Initials are concatenated
// without separators; hyphenated given names keep their hyphens
// ("Jean-Paul" → "J.-P.").
func AbbreviatedName(name string) string {
	if name == "" {
		return ""
	}

	var last string
	var given []string
	if idx := strings.Index(name, ","); idx >= 0 {
		last = strings.TrimSpace(name[:idx])
		given = strings.Split(strings.TrimSpace(name[idx+1:]), " ")
	} else {
		parts := strings.Split(name, " ")
		cut := len(parts) - 1
		if suffixes[parts[cut]] && len(parts) >= 2 {
			cut--
		}
		last = strings.Join(parts[cut:], " ")
		given = parts[:cut]
	}

	var b strings.Builder
	for _, g := range given {
		if g == "" {
			continue
		}
		if strings.Contains(g, "-") {
			hyphenated := strings.Split(g, "-")
			for i, part := range hyphenated {
				if part == "" {
					continue
				}
				if i > 0 {
					b.WriteString("-")
				}
				b.WriteString(initial(part))
			}
		} else {
			b.WriteString(initial(g))
		}
	}
	return b.String() + " " + last
}

// initial returns the uppercased first character followed by a period.
func initial(token string) string {
	r := []rune(token)
	return strings.ToUpper(string(r[0])) + "."
}
