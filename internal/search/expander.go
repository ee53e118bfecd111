package search

import (
	"strings"

	"bookrec/internal/genre"
	"bookrec/internal/preference"
)

// Query is one provider query in an expansion plan. It is issued only while
// fewer than IssueBelow unique books have been collected; zero means always.
type Query struct {
	Text       string
	Limit      int
	IssueBelow int
}

// Expander turns a preference term into an ordered provider query plan.
type Expander struct {
	synonyms          genre.Synonyms
	maxSynonymQueries int
	synonymLimit      int
}

func NewExpander(synonyms genre.Synonyms, maxSynonymQueries, synonymLimit int) *Expander {
	if synonymLimit <= 0 {
		synonymLimit = 10
	}
	return &Expander{
		synonyms:          synonyms,
		maxSynonymQueries: maxSynonymQueries,
		synonymLimit:      synonymLimit,
	}
}

// Expand builds the query plan for term. The same input always yields the
// same plan.
func (e *Expander) Expand(term string, kind preference.Kind, target int) []Query {
	term = strings.TrimSpace(term)
	if term == "" || target <= 0 {
		return nil
	}

	if kind == preference.KindAuthor {
		return []Query{{Text: "inauthor:" + term, Limit: target}}
	}

	plan := []Query{
		{Text: "subject:" + term, Limit: target},
		{Text: term + " books", Limit: max(target/2, 1), IssueBelow: max(target/2, 1)},
	}

	n := 0
	for _, v := range e.synonyms.Variants(term) {
		if n >= e.maxSynonymQueries {
			break
		}
		v = strings.TrimSpace(v)
		if v == "" || strings.EqualFold(v, term) {
			continue
		}
		plan = append(plan, Query{Text: "subject:" + v, Limit: e.synonymLimit, IssueBelow: target})
		n++
	}
	return plan
}
