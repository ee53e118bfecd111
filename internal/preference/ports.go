package preference

import (
	"context"
)

// Repository stores user preferences.
type Repository interface {
	// ListByUser returns preferences in stored order: genres, then authors,
	// each in submission order.
	ListByUser(ctx context.Context, userID string) ([]Preference, error)
	// Replace deletes every preference of the user and inserts the given set
	// atomically.
	Replace(ctx context.Context, userID string, set Set) error
}

// UserChecker reports whether a user exists.
type UserChecker interface {
	Exists(ctx context.Context, userID string) (bool, error)
}
