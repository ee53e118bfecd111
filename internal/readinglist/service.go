package readinglist

import (
	"context"
	"strings"

	"bookrec/internal/platform/logger"
	"bookrec/internal/user"
)

type Service struct {
	repo  Repository
	users UserChecker
	log   *logger.Logger
}

func NewService(repo Repository, users UserChecker, log *logger.Logger) *Service {
	return &Service{repo: repo, users: users, log: log.With("service", "readinglist")}
}

// Add puts a cached book into the user's library.
func (s *Service) Add(ctx context.Context, userID, providerID, status string) error {
	status, err := ParseStatus(status)
	if err != nil {
		return err
	}
	providerID = strings.TrimSpace(providerID)
	if providerID == "" {
		return ErrNotFound
	}
	if err := s.ensureUser(ctx, userID); err != nil {
		return err
	}
	if err := s.repo.Add(ctx, userID, providerID, status); err != nil {
		return err
	}
	s.log.Info("library entry added", "user_id", userID, "provider_id", providerID, "status", status)
	return nil
}

func (s *Service) Remove(ctx context.Context, userID, providerID string) error {
	if err := s.ensureUser(ctx, userID); err != nil {
		return err
	}
	return s.repo.Remove(ctx, userID, strings.TrimSpace(providerID))
}

// List returns library entries, optionally filtered by status.
func (s *Service) List(ctx context.Context, userID, status string, limit, offset int) ([]Entry, int, error) {
	if status != "" {
		var err error
		if status, err = ParseStatus(status); err != nil {
			return nil, 0, err
		}
	}
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, 0, err
	}
	entries, total, err := s.repo.List(ctx, userID, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, total, nil
}

// ProviderIDs lists the provider ids of every book in the user's library.
func (s *Service) ProviderIDs(ctx context.Context, userID string) ([]string, error) {
	return s.repo.ProviderIDs(ctx, userID)
}

// Rate sets the user's 1-5 star rating on a book already in the library.
func (s *Service) Rate(ctx context.Context, userID, providerID string, star int) error {
	if star < 1 || star > 5 {
		return ErrInvalidRating
	}
	if err := s.ensureUser(ctx, userID); err != nil {
		return err
	}
	return s.repo.Rate(ctx, userID, strings.TrimSpace(providerID), star)
}

func (s *Service) RatingStats(ctx context.Context, userID string) (RatingStats, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return RatingStats{}, err
	}
	return s.repo.RatingStats(ctx, userID)
}

func (s *Service) ensureUser(ctx context.Context, userID string) error {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return user.ErrNotFound
	}
	return nil
}
