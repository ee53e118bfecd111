package book

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a book is not in the cache.
var ErrNotFound = errors.New("book not found")

// Book is the canonical book record built from provider results.
// ProviderID is the identity used for dedup and caching; two books with an
// empty ProviderID are never the same book.
type Book struct {
	ProviderID    string   `json:"provider_id"`
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	Description   string   `json:"description,omitempty"`
	Categories    []string `json:"categories"`
	ThumbnailURL  *string  `json:"thumbnail_url,omitempty"`
	AverageRating *float64 `json:"average_rating,omitempty"`
	PublishedDate string   `json:"published_date,omitempty"`
	PageCount     *int     `json:"page_count,omitempty"`
	Language      string   `json:"language,omitempty"`

	// Score is computed by the recommender and is not part of the book identity.
	Score float64 `json:"recommendation_score,omitempty"`

	CachedAt time.Time `json:"cached_at,omitzero"`
}

// Key returns the dedup key. ok is false when the book has no provider id
// and so never equals another book.
func (b Book) Key() (key string, ok bool) {
	return b.ProviderID, b.ProviderID != ""
}
