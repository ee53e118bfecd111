package profile

import (
	"context"

	"bookrec/internal/preference"
	"bookrec/internal/readinglist"
	"bookrec/internal/user"
)

type UserGetter interface {
	GetByID(ctx context.Context, id string) (user.User, error)
}

type PreferenceGetter interface {
	Get(ctx context.Context, userID string) (preference.Set, error)
}

type LibraryLister interface {
	List(ctx context.Context, userID, status string, limit, offset int) ([]readinglist.Entry, int, error)
	RatingStats(ctx context.Context, userID string) (readinglist.RatingStats, error)
}

type Service struct {
	users   UserGetter
	prefs   PreferenceGetter
	library LibraryLister
}

func NewService(users UserGetter, prefs PreferenceGetter, library LibraryLister) *Service {
	return &Service{users: users, prefs: prefs, library: library}
}

// Get assembles the user's profile. An unknown user yields user.ErrNotFound.
func (s *Service) Get(ctx context.Context, userID string) (Profile, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return Profile{}, err
	}

	set, err := s.prefs.Get(ctx, userID)
	if err != nil {
		return Profile{}, err
	}

	stats, err := s.computeStats(ctx, userID)
	if err != nil {
		return Profile{}, err
	}

	return Profile{
		User:            u,
		FavoriteGenres:  set.Genres,
		FavoriteAuthors: set.Authors,
		Stats:           stats,
	}, nil
}

func (s *Service) computeStats(ctx context.Context, userID string) (Stats, error) {
	_, total, err := s.library.List(ctx, userID, "", 1, 0)
	if err != nil {
		return Stats{}, err
	}
	_, finished, err := s.library.List(ctx, userID, readinglist.StatusFinished, 1, 0)
	if err != nil {
		return Stats{}, err
	}
	ratings, err := s.library.RatingStats(ctx, userID)
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		LibrarySize:   total,
		BooksRead:     finished,
		AverageRating: ratings.Average,
		RatingsCount:  ratings.Count,
	}, nil
}
