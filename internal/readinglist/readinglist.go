package readinglist

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bookrec/internal/book"
)

const (
	StatusWishlist = "WISHLIST"
	StatusReading  = "READING"
	StatusFinished = "FINISHED"
)

var (
	// ErrNotFound is returned when the book is not cached or not in the library.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("book already in library")
	ErrInvalidStatus = errors.New("invalid status")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

// ParseStatus normalizes status. An empty status means READING.
func ParseStatus(status string) (string, error) {
	status = strings.ToUpper(strings.TrimSpace(status))
	switch status {
	case "":
		return StatusReading, nil
	case StatusWishlist, StatusReading, StatusFinished:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
}

// Entry is one book in a user's library, resolved to the cached book.
type Entry struct {
	Book    book.Book `json:"book"`
	Status  string    `json:"status"`
	Rating  *int      `json:"rating,omitempty"`
	AddedAt time.Time `json:"added_at"`
}

// RatingStats summarizes the ratings a user has given.
type RatingStats struct {
	Average float64 `json:"average_rating"`
	Count   int     `json:"ratings_count"`
}

//go:generate mockgen -source=readinglist.go -destination=mock_repository.go -package=readinglist

type Repository interface {
	Add(ctx context.Context, userID, providerID, status string) error
	Remove(ctx context.Context, userID, providerID string) error
	List(ctx context.Context, userID, status string, limit, offset int) ([]Entry, int, error)
	ProviderIDs(ctx context.Context, userID string) ([]string, error)
	Rate(ctx context.Context, userID, providerID string, star int) error
	RatingStats(ctx context.Context, userID string) (RatingStats, error)
}

type UserChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}
