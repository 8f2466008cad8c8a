package usecase

import (
	"context"
	"fmt"
	"net/url"

	"github.com/akarimov/imagefeed/internal/blob"
	"github.com/akarimov/imagefeed/internal/domain"
	"github.com/akarimov/imagefeed/internal/repository"
)

type FeedUsecase struct {
	feed  repository.FeedRepository
	blobs blob.Store
}

func NewFeedUsecase(feed repository.FeedRepository, blobs blob.Store) *FeedUsecase {
	return &FeedUsecase{feed: feed, blobs: blobs}
}

// List returns every feed item with its url swapped for a presigned read URL.
// The stored url is never modified.
func (u *FeedUsecase) List(ctx context.Context) (*domain.FeedPage, error) {
	page, err := u.feed.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range page.Rows {
		signed, err := u.blobs.PresignGet(ctx, storageKey(page.Rows[i].URL))
		if err != nil {
			return nil, fmt.Errorf("presign feed item %d: %w", page.Rows[i].ID, err)
		}
		page.Rows[i].URL = signed
	}
	return page, nil
}

func (u *FeedUsecase) GetByID(ctx context.Context, id int64) (*domain.FeedItem, error) {
	item, err := u.feed.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	signed, err := u.blobs.PresignGet(ctx, storageKey(item.URL))
	if err != nil {
		return nil, fmt.Errorf("presign feed item %d: %w", item.ID, err)
	}
	item.URL = signed
	return item, nil
}

type CreateFeedItemInput struct {
	Caption string
	URL     string
}

// Create validates the input, stores the item with the submitted url
// verbatim, and returns a copy whose url is the presigned read URL for the
// url-encoded storage key. The database row and the response deliberately
// disagree: the row keeps the raw url, the client sees the signed one.
func (u *FeedUsecase) Create(ctx context.Context, input CreateFeedItemInput) (*domain.FeedItem, error) {
	if input.Caption == "" {
		return nil, domain.ErrCaptionRequired
	}
	if input.URL == "" {
		return nil, domain.ErrURLRequired
	}

	item := &domain.FeedItem{Caption: input.Caption, URL: input.URL}
	if err := u.feed.Create(ctx, item); err != nil {
		return nil, err
	}

	signed, err := u.blobs.PresignGet(ctx, storageKey(item.URL))
	if err != nil {
		return nil, fmt.Errorf("presign created item %d: %w", item.ID, err)
	}

	out := *item
	out.URL = signed
	return &out, nil
}

// SignedUploadURL returns a presigned PUT URL for filename.
func (u *FeedUsecase) SignedUploadURL(ctx context.Context, filename string) (string, error) {
	signed, err := u.blobs.PresignPut(ctx, filename)
	if err != nil {
		return "", fmt.Errorf("presign upload %q: %w", filename, err)
	}
	return signed, nil
}

// storageKey maps a stored feed url onto its object key in the bucket.
func storageKey(raw string) string {
	return url.QueryEscape(raw)
}
