package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=book

// Repository is the book cache store.
type Repository interface {
	ExistsByProviderID(ctx context.Context, providerID string) (bool, error)
	Insert(ctx context.Context, b Book) error
	GetByProviderID(ctx context.Context, providerID string) (Book, error)
}
