// seed creates the schema and inserts the dev fixtures: one user
// (fred@gmail.com / 1234) and one feed item. Run: go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/akarimov/imagefeed/internal/domain"
	"github.com/akarimov/imagefeed/internal/infrastructure/postgres"
	"github.com/akarimov/imagefeed/internal/password"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	email         TEXT PRIMARY KEY,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS feed_items (
	id         BIGSERIAL PRIMARY KEY,
	caption    TEXT NOT NULL,
	url        TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

const (
	seedEmail    = "fred@gmail.com"
	seedPassword = "1234"
)

func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, databaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		log.Fatalf("create schema: %v", err)
	}

	users := postgres.NewUserRepository(pool)
	hash, err := password.Hash(seedPassword)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}
	err = users.Create(ctx, &domain.User{Email: seedEmail, PasswordHash: hash})
	switch {
	case err == nil:
		fmt.Printf("created user %s\n", seedEmail)
	case errors.Is(err, domain.ErrUserAlreadyExists):
		fmt.Printf("user %s already present\n", seedEmail)
	default:
		log.Fatalf("create user: %v", err)
	}

	feed := postgres.NewFeedRepository(pool)
	existing, err := feed.FindByCaption(ctx, "Hello")
	if err != nil {
		log.Fatalf("check feed item: %v", err)
	}
	if len(existing) == 0 {
		item := &domain.FeedItem{Caption: "Hello", URL: "test.jpg"}
		if err := feed.Create(ctx, item); err != nil {
			log.Fatalf("create feed item: %v", err)
		}
		fmt.Printf("created feed item %d\n", item.ID)
	} else {
		fmt.Println("feed item already present")
	}
}
