package user

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, username, email string) (User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if len(username) < 3 {
		return User{}, fmt.Errorf("%w: username too short", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return User{}, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	u := &User{Username: username, Email: email}
	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return *u, nil
}

// GetByID returns the user. A malformed id is reported as ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	if !validID(id) {
		return User{}, ErrNotFound
	}
	u, err := s.repo.GetByID(ctx, id)
	if isMalformedID(err) {
		return User{}, ErrNotFound
	}
	return u, err
}

// Exists reports whether the user is known. A malformed id names no user.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	if !validID(id) {
		return false, nil
	}
	ok, err := s.repo.Exists(ctx, id)
	if isMalformedID(err) {
		return false, nil
	}
	return ok, err
}
