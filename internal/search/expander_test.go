package search

import (
	"testing"

	"bookrec/internal/genre"
	"bookrec/internal/preference"

	"github.com/stretchr/testify/assert"
)

var testSynonyms = genre.Synonyms{
	"Fantasy":         {"Epic Fantasy", "Urban Fantasy", "Magic", "Wizards"},
	"Science Fiction": {"Sci-Fi", "Space Opera"},
}

func queryTexts(plan []Query) []string {
	out := make([]string, len(plan))
	for i, q := range plan {
		out[i] = q.Text
	}
	return out
}

func TestExpander_Genre(t *testing.T) {
	e := NewExpander(testSynonyms, 2, 10)

	plan := e.Expand("Fantasy", preference.KindGenre, 20)

	assert.Equal(t, []string{
		"subject:Fantasy",
		"Fantasy books",
		"subject:Epic Fantasy",
		"subject:Urban Fantasy",
	}, queryTexts(plan))
	assert.Equal(t, Query{Text: "subject:Fantasy", Limit: 20}, plan[0])
	assert.Equal(t, Query{Text: "Fantasy books", Limit: 10, IssueBelow: 10}, plan[1])
	assert.Equal(t, Query{Text: "subject:Epic Fantasy", Limit: 10, IssueBelow: 20}, plan[2])
}

func TestExpander_CaseInsensitiveSynonymLookup(t *testing.T) {
	e := NewExpander(testSynonyms, 5, 10)

	plan := e.Expand(" science fiction ", preference.KindGenre, 10)

	assert.Equal(t, []string{
		"subject:science fiction",
		"science fiction books",
		"subject:Sci-Fi",
		"subject:Space Opera",
	}, queryTexts(plan))
}

func TestExpander_UnknownGenreHasNoSynonyms(t *testing.T) {
	e := NewExpander(testSynonyms, 3, 10)

	assert.Equal(t, []string{"subject:Cooking", "Cooking books"}, queryTexts(e.Expand("Cooking", preference.KindGenre, 20)))
}

func TestExpander_Author(t *testing.T) {
	e := NewExpander(testSynonyms, 3, 10)

	plan := e.Expand("Tolkien", preference.KindAuthor, 20)

	assert.Equal(t, []Query{{Text: "inauthor:Tolkien", Limit: 20}}, plan)
}

func TestExpander_Deterministic(t *testing.T) {
	e := NewExpander(testSynonyms, 3, 10)

	first := e.Expand("Fantasy", preference.KindGenre, 20)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, e.Expand("Fantasy", preference.KindGenre, 20))
	}
}

func TestExpander_Empty(t *testing.T) {
	e := NewExpander(testSynonyms, 3, 10)

	assert.Nil(t, e.Expand("  ", preference.KindGenre, 20))
	assert.Nil(t, e.Expand("Fantasy", preference.KindGenre, 0))
}
