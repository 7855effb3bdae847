package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/clubmate/backend/internal/adapters/database/redis/clubs"
)

// Client groups the per-concern redis sub-stores, each on its own database.
type Client struct {
	Clubs *clubs.Storage
}

type Options struct {
	Host     string
	Port     string
	Password string
}

func New(opts Options) (*Client, error) {
	clubStorage := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", opts.Host, opts.Port),
		Password: opts.Password,
		DB:       0,
	})
	if err := clubStorage.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping club cache storage: %w", err)
	}

	return &Client{
		Clubs: clubs.NewStorage(clubStorage),
	}, nil
}
