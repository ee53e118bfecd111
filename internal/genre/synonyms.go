// Package genre holds the genre similarity table used both to broaden
// provider queries and to match book categories against favorite genres.
package genre

import "strings"

// Synonyms maps a canonical genre to its similar terms, in preference order.
// Keys and values are compared case-insensitively.
type Synonyms map[string][]string

// Variants returns the similar terms for genre, or nil when the table has no entry.
func (s Synonyms) Variants(genre string) []string {
	g := normalize(genre)
	if g == "" {
		return nil
	}
	for canonical, variants := range s {
		if normalize(canonical) == g {
			return variants
		}
	}
	return nil
}

// Equivalent reports whether a and b are the same term or belong to the
// same synonym group (the canonical genre plus its variants).
func (s Synonyms) Equivalent(a, b string) bool {
	na, nb := normalize(a), normalize(b)
	if na == "" || nb == "" {
		return false
	}
	if na == nb {
		return true
	}
	for canonical, variants := range s {
		inA, inB := normalize(canonical) == na, normalize(canonical) == nb
		for _, v := range variants {
			nv := normalize(v)
			inA = inA || nv == na
			inB = inB || nv == nb
		}
		if inA && inB {
			return true
		}
	}
	return false
}

// Matches is the widening test used for scoring: case-insensitive substring
// containment in either direction, then synonym equivalence.
func (s Synonyms) Matches(category, favorite string) bool {
	c, f := normalize(category), normalize(favorite)
	if c == "" || f == "" {
		return false
	}
	if strings.Contains(c, f) || strings.Contains(f, c) {
		return true
	}
	return s.Equivalent(c, f)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
