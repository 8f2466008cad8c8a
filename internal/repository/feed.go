package repository

import (
	"context"

	"github.com/akarimov/imagefeed/internal/domain"
)

type FeedRepository interface {
	List(ctx context.Context) (*domain.FeedPage, error)
	FindByID(ctx context.Context, id int64) (*domain.FeedItem, error)
	FindByCaption(ctx context.Context, caption string) ([]domain.FeedItem, error)
	Create(ctx context.Context, item *domain.FeedItem) error
	Delete(ctx context.Context, id int64) error
}
