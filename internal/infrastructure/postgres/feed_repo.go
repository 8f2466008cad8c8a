package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/akarimov/imagefeed/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FeedRepository struct {
	pool *pgxpool.Pool
}

func NewFeedRepository(pool *pgxpool.Pool) *FeedRepository {
	return &FeedRepository{pool: pool}
}

func (r *FeedRepository) List(ctx context.Context) (*domain.FeedPage, error) {
	query := `
		SELECT id, caption, url, created_at, updated_at
		FROM feed_items
		ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list feed items: %w", err)
	}
	defer rows.Close()

	page := &domain.FeedPage{Rows: []domain.FeedItem{}}
	for rows.Next() {
		var item domain.FeedItem
		if err := rows.Scan(&item.ID, &item.Caption, &item.URL, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan feed item: %w", err)
		}
		page.Rows = append(page.Rows, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list feed items: %w", err)
	}
	page.Count = int64(len(page.Rows))
	return page, nil
}

func (r *FeedRepository) FindByID(ctx context.Context, id int64) (*domain.FeedItem, error) {
	query := `SELECT id, caption, url, created_at, updated_at FROM feed_items WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)
	return scanFeedItem(row)
}

func (r *FeedRepository) FindByCaption(ctx context.Context, caption string) ([]domain.FeedItem, error) {
	query := `
		SELECT id, caption, url, created_at, updated_at
		FROM feed_items
		WHERE caption = $1
		ORDER BY id`

	rows, err := r.pool.Query(ctx, query, caption)
	if err != nil {
		return nil, fmt.Errorf("find feed items by caption: %w", err)
	}
	defer rows.Close()

	var items []domain.FeedItem
	for rows.Next() {
		var item domain.FeedItem
		if err := rows.Scan(&item.ID, &item.Caption, &item.URL, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan feed item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *FeedRepository) Create(ctx context.Context, item *domain.FeedItem) error {
	query := `
		INSERT INTO feed_items (caption, url)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query, item.Caption, item.URL).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create feed item: %w", err)
	}
	return nil
}

func (r *FeedRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM feed_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete feed item: %w", err)
	}
	return nil
}

func scanFeedItem(row pgx.Row) (*domain.FeedItem, error) {
	var item domain.FeedItem
	err := row.Scan(&item.ID, &item.Caption, &item.URL, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFeedItemNotFound
		}
		return nil, fmt.Errorf("scan feed item: %w", err)
	}
	return &item, nil
}
