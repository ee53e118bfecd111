package preference

import (
	"fmt"
	"strings"
)

// Kind is what a preference value names.
type Kind string

const (
	KindGenre  Kind = "GENRE"
	KindAuthor Kind = "AUTHOR"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToUpper(strings.TrimSpace(s))) {
	case KindGenre:
		return KindGenre, nil
	case KindAuthor:
		return KindAuthor, nil
	default:
		return "", fmt.Errorf("invalid preference kind: %s", s)
	}
}

// Preference is one favorite genre or author of a user.
type Preference struct {
	UserID string `json:"-"`
	Kind   Kind   `json:"kind"`
	Value  string `json:"value"`
}

// Set is a user's preferences split by kind, in stored order.
type Set struct {
	Genres  []string `json:"genres"`
	Authors []string `json:"authors"`
}

func (s Set) Empty() bool {
	return len(s.Genres) == 0 && len(s.Authors) == 0
}

// Split groups preferences by kind, keeping their order.
func Split(prefs []Preference) Set {
	out := Set{Genres: []string{}, Authors: []string{}}
	for _, p := range prefs {
		switch p.Kind {
		case KindGenre:
			out.Genres = append(out.Genres, p.Value)
		case KindAuthor:
			out.Authors = append(out.Authors, p.Value)
		}
	}
	return out
}

// Normalize trims values, drops blanks and collapses case-insensitive
// duplicates within each kind to their first occurrence.
func Normalize(s Set) Set {
	return Set{Genres: dedupe(s.Genres), Authors: dedupe(s.Authors)}
}

func dedupe(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		key := strings.ToLower(v)
		if v == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out
}
