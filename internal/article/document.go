package article

import (
	"fmt"
	"strings"
	"time"
)

// document is the decoded YAML mapping. Sections like dates, code and
// journal arrive as a sequence of single-key mappings; section flattens
// them into one flat map so field access is a plain lookup.
type document map[string]any

// str returns the scalar at key rendered as a string, or "" when the key
// is absent or null. Absent and explicit null are deliberately
// indistinguishable.
func (d document) str(key string) string {
	return scalarString(d[key])
}

// strOrJoin is str, except a sequence value is joined with ", "
// (keywords may be written either way).
func (d document) strOrJoin(key string) string {
	if seq, ok := d[key].([]any); ok {
		parts := make([]string, 0, len(seq))
		for _, v := range seq {
			parts = append(parts, scalarString(v))
		}
		return strings.Join(parts, ", ")
	}
	return d.str(key)
}

// section flattens the sequence-of-single-key-mappings at key into one
// document. Returns ok=false when the key is absent.
func (d document) section(key string) (document, bool) {
	v, present := d[key]
	if !present || v == nil {
		return document{}, false
	}
	flat := document{}
	switch section := v.(type) {
	case []any:
		for _, item := range section {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			for k, val := range m {
				flat[k] = val
			}
		}
	case map[string]any:
		// Tolerate a plain mapping as well
		for k, val := range section {
			flat[k] = val
		}
	}
	return flat, true
}

// entries returns the sequence of mappings at key (authors,
// affiliations, contributors). Absent key yields an empty list.
func (d document) entries(key string) []document {
	seq, ok := d[key].([]any)
	if !ok {
		return nil
	}
	var out []document
	for _, item := range seq {
		if m, ok := item.(map[string]any); ok {
			out = append(out, document(m))
		}
	}
	return out
}

// scalarString renders a decoded YAML scalar as a string. Numeric codes
// (a bare affiliation code, a volume number) come through the decoder as
// ints; dates may come through as time.Time.
func scalarString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case time.Time:
		return val.Format("2006-01-02")
	default:
		return fmt.Sprint(val)
	}
}
