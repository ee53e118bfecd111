package profile

import (
	"bookrec/internal/user"
)

type Stats struct {
	LibrarySize   int     `json:"library_size"`
	BooksRead     int     `json:"books_read"`
	AverageRating float64 `json:"average_rating"`
	RatingsCount  int     `json:"ratings_count"`
}

type Profile struct {
	User            user.User `json:"user"`
	FavoriteGenres  []string  `json:"favorite_genres"`
	FavoriteAuthors []string  `json:"favorite_authors"`
	Stats           Stats     `json:"stats"`
}
