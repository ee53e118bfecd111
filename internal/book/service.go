package book

import (
	"context"
	"strings"
)

// Service provides read access to cached books.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetByProviderID returns a cached book by its provider id.
func (s *Service) GetByProviderID(ctx context.Context, providerID string) (Book, error) {
	providerID = strings.TrimSpace(providerID)
	if providerID == "" {
		return Book{}, ErrNotFound
	}
	return s.repo.GetByProviderID(ctx, providerID)
}
