package preference

import (
	"context"
	"fmt"

	"bookrec/internal/platform/logger"
	"bookrec/internal/user"
)

type Service struct {
	repo  Repository
	users UserChecker
	log   *logger.Logger
}

func NewService(repo Repository, users UserChecker, log *logger.Logger) *Service {
	return &Service{repo: repo, users: users, log: log.With("service", "preference")}
}

// Get returns the user's favorite genres and authors.
func (s *Service) Get(ctx context.Context, userID string) (Set, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return Set{}, err
	}
	prefs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return Set{}, fmt.Errorf("list preferences: %w", err)
	}
	return Split(prefs), nil
}

// Replace swaps the user's whole preference set for the submitted one.
// After it returns, the stored set equals the normalized submission.
func (s *Service) Replace(ctx context.Context, userID string, set Set) (Set, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return Set{}, err
	}
	set = Normalize(set)
	if err := s.repo.Replace(ctx, userID, set); err != nil {
		return Set{}, fmt.Errorf("replace preferences: %w", err)
	}
	s.log.Info("preferences updated", "user_id", userID, "genres", len(set.Genres), "authors", len(set.Authors))
	return set, nil
}

func (s *Service) ensureUser(ctx context.Context, userID string) error {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return fmt.Errorf("check user: %w", err)
	}
	if !ok {
		return user.ErrNotFound
	}
	return nil
}
