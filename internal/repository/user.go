package repository

import (
	"context"

	"github.com/akarimov/imagefeed/internal/domain"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, email string) error
}
