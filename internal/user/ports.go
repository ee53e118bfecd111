package user

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (User, error)
	Exists(ctx context.Context, id string) (bool, error)
}
