package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRecommend(t *testing.T) {
	r := DefaultRecommend()

	assert.Equal(t, 50.0, r.Weights.Genre)
	assert.Equal(t, 30.0, r.Weights.Author)
	assert.Equal(t, 4.0, r.Weights.RatingMultiplier)
	assert.Equal(t, 20.0, r.Weights.TitleFallback)
	require.Len(t, r.Weights.Recency, 2)
	assert.Equal(t, 2020, r.Weights.Recency[0].MinYear)
	assert.Equal(t, "bestseller", r.Search.FallbackQuery)
	assert.Equal(t, 20, r.Search.PerTermLimit)
	assert.Contains(t, r.GenreSynonyms.Variants("science fiction"), "Space Opera")
	assert.Contains(t, r.GenreSynonyms.Variants("Self-Help"), "Personal Development")
}

func TestParseRecommend_Rejects(t *testing.T) {
	cases := map[string]string{
		"negative weight": `
weights: {genre: -1, author: 30, rating_multiplier: 4, title_fallback: 20}
search: {per_term_limit: 20, synonym_query_limit: 10, fan_out: 4, fallback_query: bestseller}
`,
		"zero per term limit": `
weights: {genre: 50}
search: {per_term_limit: 0, synonym_query_limit: 10, fan_out: 4, fallback_query: bestseller}
`,
		"missing fallback": `
search: {per_term_limit: 20, synonym_query_limit: 10, fan_out: 4}
`,
		"duplicate genre": `
search: {per_term_limit: 20, synonym_query_limit: 10, fan_out: 4, fallback_query: bestseller}
genre_synonyms:
  Fantasy: [Magic]
  fantasy: [Wizards]
`,
		"not yaml": `weights: [`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseRecommend([]byte(raw))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("DB_TIMEOUT", "5s")
	t.Setenv("GOOGLE_BOOKS_RPS", "2")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("RECOMMEND_CONFIG", "")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 5*time.Second, cfg.DBTimeout)
	assert.Equal(t, 15*time.Minute, cfg.QueryCacheTTL)
	assert.Equal(t, 2, cfg.GoogleBooks.RPS)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, "bestseller", cfg.Recommend.Search.FallbackQuery)
}

func TestLoad_RecommendFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
weights: {genre: 10, author: 5, rating_multiplier: 1, title_fallback: 2}
search: {per_term_limit: 8, max_synonym_queries: 1, synonym_query_limit: 5, fan_out: 2, fallback_query: classics}
genre_synonyms:
  Poetry: [Verse]
`), 0o600))
	t.Setenv("RECOMMEND_CONFIG", path)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 10.0, cfg.Recommend.Weights.Genre)
	assert.Equal(t, "classics", cfg.Recommend.Search.FallbackQuery)
	assert.Equal(t, []string{"Verse"}, cfg.Recommend.GenreSynonyms.Variants("poetry"))
}

func TestLoad_BadDuration(t *testing.T) {
	t.Setenv("QUERY_CACHE_TTL", "soon")

	_, err := Load()

	assert.Error(t, err)
}
