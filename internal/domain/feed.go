package domain

import (
	"errors"
	"time"
)

var (
	ErrFeedItemNotFound = errors.New("feed item not found")
	ErrCaptionRequired  = errors.New("caption is required")
	ErrURLRequired      = errors.New("file url is required")
)

type FeedItem struct {
	ID        int64     `json:"id"`
	Caption   string    `json:"caption"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FeedPage mirrors the list response shape: total count plus the rows.
type FeedPage struct {
	Count int64      `json:"count"`
	Rows  []FeedItem `json:"rows"`
}
